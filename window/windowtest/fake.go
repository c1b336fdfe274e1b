// Package windowtest provides an in-memory window.Backend that records every
// call, for tests that must not touch a real display.
package windowtest

import (
	"errors"
	"image/color"
	"sort"
	"time"

	"github.com/ushitora-anqou/aqplay/event"
	"github.com/ushitora-anqou/aqplay/window"
)

var ErrFake = errors.New("fake failure")

type Backend struct {
	InitErr        error
	DisplayErr     error
	AcceleratedErr error
	SoftwareErr    error
	CapsErr        error
	AudioErr       error
	Caps           window.Capabilities

	// Calls lists every lifecycle call in order.
	Calls []string

	Display *Display
	Surface *Surface
	Audio   *Audio
	Queue   *window.AudioQueue

	pumps     int
	scheduled map[int][]event.Event
	queue     []event.Event
}

func NewBackend() *Backend {
	return &Backend{
		Caps: window.Capabilities{
			Name:            "fake",
			Flags:           window.SurfaceAccelerated,
			PixelFormats:    []uint32{1},
			NumPixelFormats: 1,
		},
		scheduled: map[int][]event.Event{},
	}
}

func (b *Backend) Init() error {
	b.Calls = append(b.Calls, "init")
	return b.InitErr
}

func (b *Backend) Quit() {
	b.Calls = append(b.Calls, "quit")
}

func (b *Backend) CreateDisplay(title string, width, height int) (window.Display, error) {
	b.Calls = append(b.Calls, "create-display")
	if b.DisplayErr != nil {
		return nil, b.DisplayErr
	}
	b.Display = &Display{backend: b, Title: title, Width: width, Height: height}
	return b.Display, nil
}

func (b *Backend) OpenAudio(spec window.AudioSpec, queue *window.AudioQueue) (window.AudioOutput, error) {
	b.Calls = append(b.Calls, "open-audio")
	if b.AudioErr != nil {
		return nil, b.AudioErr
	}
	b.Audio = &Audio{backend: b, Spec: spec}
	b.Queue = queue
	return b.Audio, nil
}

// Feed makes events visible on the next pump.
func (b *Backend) Feed(events ...event.Event) {
	b.FeedAt(b.pumps+1, events...)
}

// FeedAt makes events visible on the n-th pump, counting from 1.
func (b *Backend) FeedAt(pump int, events ...event.Event) {
	b.scheduled[pump] = append(b.scheduled[pump], events...)
}

func (b *Backend) Pumps() int {
	return b.pumps
}

func (b *Backend) Pending() int {
	n := len(b.queue)
	for _, events := range b.scheduled {
		n += len(events)
	}
	return n
}

func (b *Backend) PumpEvents() {
	b.pumps++
	due := []int{}
	for pump := range b.scheduled {
		if pump <= b.pumps {
			due = append(due, pump)
		}
	}
	sort.Ints(due)
	for _, pump := range due {
		b.queue = append(b.queue, b.scheduled[pump]...)
		delete(b.scheduled, pump)
	}
}

func (b *Backend) PollEvent() (event.Event, bool) {
	if len(b.queue) == 0 {
		return nil, false
	}
	ev := b.queue[0]
	b.queue = b.queue[1:]
	return ev, true
}

type Display struct {
	backend       *Backend
	Title         string
	Width, Height int
}

func (d *Display) CreateSurface(flags window.SurfaceFlags) (window.Surface, error) {
	b := d.backend
	if flags&window.SurfaceAccelerated != 0 {
		b.Calls = append(b.Calls, "create-surface-accelerated")
		if b.AcceleratedErr != nil {
			return nil, b.AcceleratedErr
		}
	} else {
		b.Calls = append(b.Calls, "create-surface-software")
		if b.SoftwareErr != nil {
			return nil, b.SoftwareErr
		}
	}
	b.Surface = &Surface{backend: b, Flags: flags}
	return b.Surface, nil
}

func (d *Display) Destroy() error {
	d.backend.Calls = append(d.backend.Calls, "destroy-display")
	return nil
}

type Surface struct {
	backend  *Backend
	Flags    window.SurfaceFlags
	Clears   int
	Presents int
	Color    color.RGBA
	ClearErr error
}

func (s *Surface) Capabilities() (window.Capabilities, error) {
	return s.backend.Caps, s.backend.CapsErr
}

func (s *Surface) Clear(c color.RGBA) error {
	s.Clears++
	s.Color = c
	return s.ClearErr
}

func (s *Surface) Present() {
	s.Presents++
}

func (s *Surface) Destroy() error {
	s.backend.Calls = append(s.backend.Calls, "destroy-surface")
	return nil
}

type Audio struct {
	backend *Backend
	Spec    window.AudioSpec
}

func (a *Audio) Close() {
	a.backend.Calls = append(a.backend.Calls, "close-audio")
}

// Clock is a manual time base. Delay advances it.
type Clock struct {
	Now    time.Duration
	Delays []time.Duration
}

func (c *Clock) Ticks() time.Duration {
	return c.Now
}

func (c *Clock) Delay(d time.Duration) {
	c.Delays = append(c.Delays, d)
	c.Now += d
}
