package platform

// typedef unsigned char Uint8;
// void OnAudioPlayback(void *userdata, Uint8 *stream, int len);
import "C"
import (
	"fmt"
	"image/color"
	"time"
	"unsafe"

	"github.com/mattn/go-pointer"
	"github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/ushitora-anqou/aqplay/constant"
	"github.com/ushitora-anqou/aqplay/event"
	"github.com/ushitora-anqou/aqplay/render"
	"github.com/ushitora-anqou/aqplay/util"
	"github.com/ushitora-anqou/aqplay/window"
)

// SDLBackend implements window.Backend on SDL2. All calls except the audio
// callback must come from the thread that called Init.
type SDLBackend struct {
	quitEventType uint32
	peeked        []sdl.Event
}

func NewSDLBackend() *SDLBackend {
	return &SDLBackend{
		quitEventType: sdl.USEREVENT + constant.QUIT_EVENT_OFFSET,
		peeked:        make([]sdl.Event, 1),
	}
}

func (b *SDLBackend) Init() error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_TIMER); err != nil {
		return err
	}
	sdl.EventState(sdl.SYSWMEVENT, sdl.IGNORE)
	sdl.EventState(sdl.USEREVENT, sdl.IGNORE)
	return nil
}

func (b *SDLBackend) Quit() {
	sdl.Quit()
}

func (b *SDLBackend) CreateDisplay(title string, width, height int) (window.Display, error) {
	w, err := sdl.CreateWindow(
		title,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(width),
		int32(height),
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		return nil, err
	}
	return &sdlDisplay{window: w}, nil
}

func (b *SDLBackend) PumpEvents() {
	sdl.PumpEvents()
}

func (b *SDLBackend) PollEvent() (event.Event, bool) {
	n, err := sdl.PeepEvents(b.peeked, sdl.GETEVENT, sdl.FIRSTEVENT, sdl.LASTEVENT)
	if err != nil {
		logrus.WithError(err).Warn("Failed to retrieve event")
		return nil, false
	}
	if n == 0 || b.peeked[0] == nil {
		return nil, false
	}
	ev := b.convert(b.peeked[0])
	b.peeked[0] = nil
	return ev, true
}

func (b *SDLBackend) convert(ev sdl.Event) event.Event {
	switch e := ev.(type) {
	case *sdl.QuitEvent:
		return event.Quit{}

	case *sdl.KeyboardEvent:
		if e.Type != sdl.KEYDOWN {
			break
		}
		return event.KeyDown{
			Key:  convertKey(e.Keysym.Sym),
			Sym:  int32(e.Keysym.Sym),
			Name: sdl.GetKeyName(e.Keysym.Sym),
		}

	case *sdl.MouseButtonEvent:
		if e.Type != sdl.MOUSEBUTTONDOWN {
			break
		}
		return event.MouseButtonDown{Button: e.Button, X: e.X, Y: e.Y}

	case *sdl.MouseMotionEvent:
		return event.MouseMotion{X: e.X, Y: e.Y}

	case *sdl.WindowEvent:
		return event.Window{Kind: convertWindowEvent(e.Event), Data1: e.Data1, Data2: e.Data2}

	case *sdl.UserEvent:
		if e.Type == b.quitEventType {
			return event.ApplicationQuit{}
		}
	}

	util.Trace("Unhandled SDL event type: %#x", ev.GetType())
	return event.Other{Type: ev.GetType()}
}

func convertKey(sym sdl.Keycode) event.Key {
	switch sym {
	case sdl.K_ESCAPE:
		return event.KeyEscape
	case sdl.K_q:
		return event.KeyQ
	case sdl.K_f:
		return event.KeyF
	case sdl.K_p:
		return event.KeyP
	case sdl.K_SPACE:
		return event.KeySpace
	case sdl.K_m:
		return event.KeyM
	case sdl.K_KP_MULTIPLY:
		return event.KeyKPMultiply
	case sdl.K_0:
		return event.Key0
	case sdl.K_KP_DIVIDE:
		return event.KeyKPDivide
	case sdl.K_9:
		return event.Key9
	case sdl.K_s:
		return event.KeyS
	case sdl.K_a:
		return event.KeyA
	case sdl.K_v:
		return event.KeyV
	case sdl.K_c:
		return event.KeyC
	case sdl.K_t:
		return event.KeyT
	case sdl.K_w:
		return event.KeyW
	case sdl.K_PAGEUP:
		return event.KeyPageUp
	case sdl.K_PAGEDOWN:
		return event.KeyPageDown
	case sdl.K_LEFT:
		return event.KeyLeft
	case sdl.K_RIGHT:
		return event.KeyRight
	case sdl.K_UP:
		return event.KeyUp
	case sdl.K_DOWN:
		return event.KeyArrowDown
	}
	return event.KeyUnknown
}

func convertWindowEvent(kind uint8) event.WindowKind {
	switch kind {
	case sdl.WINDOWEVENT_SHOWN:
		return event.WindowShown
	case sdl.WINDOWEVENT_EXPOSED:
		return event.WindowExposed
	case sdl.WINDOWEVENT_RESIZED:
		return event.WindowResized
	case sdl.WINDOWEVENT_SIZE_CHANGED:
		return event.WindowSizeChanged
	case sdl.WINDOWEVENT_FOCUS_GAINED:
		return event.WindowFocusGained
	case sdl.WINDOWEVENT_FOCUS_LOST:
		return event.WindowFocusLost
	case sdl.WINDOWEVENT_CLOSE:
		return event.WindowClose
	}
	return event.WindowOther
}

type sdlDisplay struct {
	window *sdl.Window
}

func (d *sdlDisplay) CreateSurface(flags window.SurfaceFlags) (window.Surface, error) {
	var rendererFlags uint32
	if flags&window.SurfaceAccelerated != 0 {
		rendererFlags |= sdl.RENDERER_ACCELERATED
	}
	if flags&window.SurfacePresentVSync != 0 {
		rendererFlags |= sdl.RENDERER_PRESENTVSYNC
	}
	if flags&window.SurfaceSoftware != 0 {
		rendererFlags |= sdl.RENDERER_SOFTWARE
	}

	renderer, err := sdl.CreateRenderer(d.window, -1, rendererFlags)
	if err != nil {
		return nil, err
	}
	return &sdlSurface{renderer: renderer}, nil
}

func (d *sdlDisplay) Destroy() error {
	return d.window.Destroy()
}

type sdlSurface struct {
	renderer      *sdl.Renderer
	texture       *sdl.Texture
	width, height int
}

func (s *sdlSurface) Capabilities() (window.Capabilities, error) {
	info, err := s.renderer.GetInfo()
	if err != nil {
		return window.Capabilities{}, err
	}

	caps := window.Capabilities{Name: info.Name}
	if info.Flags&sdl.RENDERER_ACCELERATED != 0 {
		caps.Flags |= window.SurfaceAccelerated
	}
	if info.Flags&sdl.RENDERER_PRESENTVSYNC != 0 {
		caps.Flags |= window.SurfacePresentVSync
	}
	if info.Flags&sdl.RENDERER_SOFTWARE != 0 {
		caps.Flags |= window.SurfaceSoftware
	}
	for i := 0; i < int(info.NumTextureFormats) && i < len(info.TextureFormats); i++ {
		caps.PixelFormats = append(caps.PixelFormats, uint32(info.TextureFormats[i]))
	}
	caps.NumPixelFormats = len(caps.PixelFormats)
	return caps, nil
}

func (s *sdlSurface) Clear(c color.RGBA) error {
	if err := s.renderer.SetDrawColor(c.R, c.G, c.B, c.A); err != nil {
		return err
	}
	return s.renderer.Clear()
}

func (s *sdlSurface) Present() {
	s.renderer.Present()
}

func (s *sdlSurface) DrawFrame(frame *render.Frame) error {
	if err := frame.Validate(); err != nil {
		return err
	}
	if err := s.ensureTexture(frame.Width, frame.Height); err != nil {
		return err
	}

	// Update the texture
	pixels, pitch, err := s.texture.Lock(nil)
	if err != nil {
		return err
	}
	rowBytes := frame.Width * 4
	for row := 0; row < frame.Height; row++ {
		copy(pixels[row*pitch:row*pitch+rowBytes], frame.Pixels[row*frame.Stride:row*frame.Stride+rowBytes])
	}
	s.texture.Unlock()

	return s.renderer.Copy(s.texture, nil, nil)
}

func (s *sdlSurface) ensureTexture(width, height int) error {
	if s.texture != nil && s.width == width && s.height == height {
		return nil
	}
	if s.texture != nil {
		s.texture.Destroy()
		s.texture = nil
	}
	texture, err := s.renderer.CreateTexture(
		sdl.PIXELFORMAT_ARGB8888,
		sdl.TEXTUREACCESS_STREAMING,
		int32(width),
		int32(height),
	)
	if err != nil {
		return fmt.Errorf("create %dx%d texture: %w", width, height, err)
	}
	s.texture, s.width, s.height = texture, width, height
	return nil
}

func (s *sdlSurface) Destroy() error {
	if s.texture != nil {
		s.texture.Destroy()
		s.texture = nil
	}
	return s.renderer.Destroy()
}

type sdlAudio struct {
	device   sdl.AudioDeviceID
	queue    *window.AudioQueue
	userdata unsafe.Pointer
}

func (b *SDLBackend) OpenAudio(spec window.AudioSpec, queue *window.AudioQueue) (window.AudioOutput, error) {
	audio := &sdlAudio{queue: queue}
	audio.userdata = pointer.Save(audio)

	device, err := sdl.OpenAudioDevice(
		"",
		false,
		&sdl.AudioSpec{
			Freq:     int32(spec.Freq),
			Format:   sdl.AUDIO_F32,
			Channels: uint8(spec.Channels),
			Samples:  uint16(spec.Samples),
			Callback: sdl.AudioCallback(C.OnAudioPlayback),
			UserData: audio.userdata,
		},
		nil,
		0,
	)
	if err != nil {
		pointer.Unref(audio.userdata)
		return nil, err
	}
	sdl.PauseAudioDevice(device, false)
	audio.device = device
	return audio, nil
}

func (a *sdlAudio) Close() {
	sdl.CloseAudioDevice(a.device)
	pointer.Unref(a.userdata)
}

//export OnAudioPlayback
func OnAudioPlayback(userdata unsafe.Pointer, stream *C.Uint8, length C.int) {
	n := int(length) / 4
	buf := unsafe.Slice((*float32)(unsafe.Pointer(stream)), n)
	audio := pointer.Restore(userdata).(*sdlAudio)
	audio.queue.Fill(buf)
}

// SDLClock is the SDL millisecond timer.
type SDLClock struct{}

func (SDLClock) Ticks() time.Duration {
	return time.Duration(sdl.GetTicks()) * time.Millisecond
}

func (SDLClock) Delay(d time.Duration) {
	if d >= time.Millisecond {
		sdl.Delay(uint32(d / time.Millisecond))
	}
}
