package render

import (
	"errors"
	"fmt"
	"image/color"
	"time"
)

var ErrRender = errors.New("render failed")

// Background is the color a redraw clears the surface to.
var Background = color.RGBA{R: 0, G: 0, B: 0, A: 0xff}

// Surface is the drawable side of a render surface.
type Surface interface {
	Clear(c color.RGBA) error
	Present()
}

// FrameSurface is a Surface that can also show a decoded picture.
type FrameSurface interface {
	Surface
	DrawFrame(frame *Frame) error
}

// Frame is one decoded picture in ARGB8888, row by row.
type Frame struct {
	Pixels        []uint8
	Width, Height int
	Stride        int
	PTS           time.Duration
}

func (f *Frame) Validate() error {
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("invalid frame size %dx%d", f.Width, f.Height)
	}
	if f.Stride < f.Width*4 {
		return fmt.Errorf("invalid frame stride: expected at least %d, got %d", f.Width*4, f.Stride)
	}
	if len(f.Pixels) < f.Stride*(f.Height-1)+f.Width*4 {
		return fmt.Errorf("invalid length of frame data: got %d", len(f.Pixels))
	}
	return nil
}

// Redrawer produces one visible frame. Implementations must not block and
// must only touch the surface.
type Redrawer interface {
	Redraw(s Surface) error
}

type ClearRedrawer struct {
	Background color.RGBA
}

func NewClearRedrawer() *ClearRedrawer {
	return &ClearRedrawer{Background: Background}
}

func (r *ClearRedrawer) Redraw(s Surface) error {
	if err := s.Clear(r.Background); err != nil {
		return fmt.Errorf("%w: clear: %v", ErrRender, err)
	}
	s.Present()
	return nil
}

// FrameSource hands decoded pictures to the redraw. NextFrame must return
// immediately, with false when nothing new is available.
type FrameSource interface {
	NextFrame() (*Frame, bool)
}

// FrameRedrawer shows the newest frame of a FrameSource on top of the
// background. The last shown frame is repeated until a newer one arrives.
type FrameRedrawer struct {
	source     FrameSource
	background color.RGBA
	current    *Frame
}

func NewFrameRedrawer(source FrameSource) *FrameRedrawer {
	return &FrameRedrawer{source: source, background: Background}
}

func (r *FrameRedrawer) Current() *Frame {
	return r.current
}

func (r *FrameRedrawer) Redraw(s Surface) error {
	// Drain to the newest picture; older ones are already late.
	for {
		frame, ok := r.source.NextFrame()
		if !ok {
			break
		}
		r.current = frame
	}

	if err := s.Clear(r.background); err != nil {
		return fmt.Errorf("%w: clear: %v", ErrRender, err)
	}
	if r.current != nil {
		if fs, ok := s.(FrameSurface); ok {
			if err := fs.DrawFrame(r.current); err != nil {
				// Present anyway so the window keeps updating.
				s.Present()
				return fmt.Errorf("%w: draw frame at %v: %v", ErrRender, r.current.PTS, err)
			}
		}
	}
	s.Present()
	return nil
}
