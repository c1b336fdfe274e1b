package scheduler

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/ushitora-anqou/aqplay/event"
	"github.com/ushitora-anqou/aqplay/render"
	"github.com/ushitora-anqou/aqplay/window"
)

type Pacer interface {
	MaySleep()
}

// Scheduler keeps the surface redrawn while it waits for the next event.
// Redraw and dispatch never overlap: both run on the caller's goroutine.
type Scheduler struct {
	events   window.EventSource
	surface  render.Surface
	redrawer render.Redrawer
	pacer    Pacer
	redraws  uint64
	failures uint64
}

func New(events window.EventSource, surface render.Surface, redrawer render.Redrawer, pacer Pacer) *Scheduler {
	return &Scheduler{
		events:   events,
		surface:  surface,
		redrawer: redrawer,
		pacer:    pacer,
	}
}

// NextEvent returns the oldest pending event. Every poll that finds the
// queue empty is followed by exactly one redraw. A done context yields
// ApplicationQuit after that redraw.
func (s *Scheduler) NextEvent(ctx context.Context) event.Event {
	for {
		s.events.PumpEvents()
		if ev, ok := s.events.PollEvent(); ok {
			return ev
		}
		s.redraw()
		if ctx.Err() != nil {
			return event.ApplicationQuit{}
		}
		s.pacer.MaySleep()
	}
}

func (s *Scheduler) redraw() {
	s.redraws++
	if err := s.redrawer.Redraw(s.surface); err != nil {
		s.failures++
		logrus.WithError(err).WithField("redraw", s.redraws).Warn("Redraw failed")
	}
}

func (s *Scheduler) Redraws() uint64 {
	return s.redraws
}

func (s *Scheduler) Failures() uint64 {
	return s.failures
}
