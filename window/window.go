package window

import (
	"errors"
	"fmt"
	"time"

	"github.com/ushitora-anqou/aqplay/event"
	"github.com/ushitora-anqou/aqplay/render"
)

var (
	ErrNoPixelFormats     = errors.New("surface reports no supported pixel formats")
	ErrNoAudio            = errors.New("no audio output device")
	ErrInvalidAudioBuffer = errors.New("invalid length of audio buffer")
)

// InitializationError is returned when the presentation resources cannot be
// brought up. It is fatal: the loop is never entered.
type InitializationError struct {
	Stage string
	Err   error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("initialize %s: %v", e.Stage, e.Err)
}

func (e *InitializationError) Unwrap() error {
	return e.Err
}

type SurfaceFlags uint32

const (
	SurfaceAccelerated SurfaceFlags = 1 << iota
	SurfacePresentVSync
	SurfaceSoftware
)

type Capabilities struct {
	Name            string
	Flags           SurfaceFlags
	PixelFormats    []uint32
	NumPixelFormats int
}

// Backend is the process-wide windowing and audio subsystem. Init must
// succeed before any other call and Quit is called exactly once.
type Backend interface {
	Init() error
	Quit()
	CreateDisplay(title string, width, height int) (Display, error)
	OpenAudio(spec AudioSpec, queue *AudioQueue) (AudioOutput, error)
	EventSource
}

type EventSource interface {
	// PumpEvents gathers pending hardware events into the queue without
	// removing any.
	PumpEvents()
	// PollEvent removes at most one event from the queue.
	PollEvent() (event.Event, bool)
}

type Display interface {
	CreateSurface(flags SurfaceFlags) (Surface, error)
	Destroy() error
}

type Surface interface {
	render.Surface
	Capabilities() (Capabilities, error)
	Destroy() error
}

type AudioSpec struct {
	Freq     int
	Channels int
	Samples  int
}

// PeriodLength is the number of float32 samples in one audio period.
func (s AudioSpec) PeriodLength() int {
	return s.Samples * s.Channels
}

type AudioOutput interface {
	Close()
}

// Clock is the time base used for refresh pacing.
type Clock interface {
	Ticks() time.Duration
	Delay(d time.Duration)
}
