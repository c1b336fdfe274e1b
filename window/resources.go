package window

import (
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

type AudioOptions struct {
	Enabled   bool
	Spec      AudioSpec
	QueueSize int
}

type Options struct {
	Title         string
	Width, Height int
	Audio         AudioOptions
}

func (o Options) validate() error {
	if o.Title == "" {
		return errors.New("empty window title")
	}
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", o.Width, o.Height)
	}
	return nil
}

// Resources owns every native presentation handle of the process. A surface
// only ever exists together with its display.
type Resources struct {
	backend  Backend
	display  Display
	surface  Surface
	caps     Capabilities
	audio    AudioOutput
	audioBuf *AudioQueue
	once     sync.Once
}

func Initialize(backend Backend, opts Options) (*Resources, error) {
	if err := opts.validate(); err != nil {
		return nil, &InitializationError{Stage: "options", Err: err}
	}

	if err := backend.Init(); err != nil {
		return nil, &InitializationError{Stage: "subsystem", Err: err}
	}
	r := &Resources{backend: backend}

	display, err := backend.CreateDisplay(opts.Title, opts.Width, opts.Height)
	if err != nil {
		r.Shutdown()
		return nil, &InitializationError{Stage: "display", Err: err}
	}
	r.display = display

	surface, err := display.CreateSurface(SurfaceAccelerated | SurfacePresentVSync)
	if err != nil {
		logrus.WithError(err).Warn("Failed to initialize a hardware accelerated renderer")
		surface, err = display.CreateSurface(0)
	}
	if err != nil {
		r.Shutdown()
		return nil, &InitializationError{Stage: "surface", Err: err}
	}
	r.surface = surface

	caps, err := surface.Capabilities()
	if err == nil && caps.NumPixelFormats == 0 {
		err = ErrNoPixelFormats
	}
	if err != nil {
		r.Shutdown()
		return nil, &InitializationError{Stage: "capabilities", Err: err}
	}
	r.caps = caps
	logrus.Infof("Initialized %s renderer.", caps.Name)

	if opts.Audio.Enabled {
		r.openAudio(opts.Audio)
	}

	return r, nil
}

// openAudio is best effort: the display works without sound.
func (r *Resources) openAudio(opts AudioOptions) {
	queue := NewAudioQueue(opts.Spec.PeriodLength(), opts.QueueSize)
	audio, err := r.backend.OpenAudio(opts.Spec, queue)
	if err != nil {
		logrus.WithError(err).Warn("Failed to open audio output device")
		return
	}
	r.audio = audio
	r.audioBuf = queue
	logrus.WithFields(logrus.Fields{
		"freq":     opts.Spec.Freq,
		"channels": opts.Spec.Channels,
		"samples":  opts.Spec.Samples,
	}).Debug("Opened audio output device")
}

func (r *Resources) Surface() Surface {
	return r.surface
}

func (r *Resources) Display() Display {
	return r.display
}

func (r *Resources) Capabilities() Capabilities {
	return r.caps
}

func (r *Resources) Events() EventSource {
	return r.backend
}

func (r *Resources) HasAudio() bool {
	return r.audio != nil
}

// EnqueueAudio hands one audio period to the output device without blocking.
func (r *Resources) EnqueueAudio(buf []float32) error {
	if r.audioBuf == nil {
		return ErrNoAudio
	}
	return r.audioBuf.Push(buf)
}

// Shutdown releases the audio device, the surface, the display and finally
// the subsystem. Only the first call has any effect.
func (r *Resources) Shutdown() {
	r.once.Do(func() {
		if r.audio != nil {
			r.audio.Close()
			r.audio = nil
			r.audioBuf = nil
		}
		if r.surface != nil {
			if err := r.surface.Destroy(); err != nil {
				logrus.WithError(err).Warn("Failed to destroy renderer")
			}
			r.surface = nil
		}
		if r.display != nil {
			if err := r.display.Destroy(); err != nil {
				logrus.WithError(err).Warn("Failed to destroy window")
			}
			r.display = nil
		}
		r.backend.Quit()
		logrus.Debug("Released presentation resources")
	})
}
