package player

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ushitora-anqou/aqplay/control"
	"github.com/ushitora-anqou/aqplay/dispatch"
	"github.com/ushitora-anqou/aqplay/render"
	"github.com/ushitora-anqou/aqplay/scheduler"
	"github.com/ushitora-anqou/aqplay/window"
)

const frameQueueSize = 3

type AQPlay struct {
	res        *window.Resources
	frames     *render.FrameQueue
	playback   *control.Playback
	scheduler  *scheduler.Scheduler
	dispatcher *dispatch.Dispatcher
}

// New wires the refresh loop around already initialized resources. The
// player takes ownership of res and releases it when Run returns.
func New(res *window.Resources, clock window.Clock, refreshInterval time.Duration) *AQPlay {
	frames := render.NewFrameQueue(frameQueueSize)
	playback := control.NewPlayback()
	return &AQPlay{
		res:      res,
		frames:   frames,
		playback: playback,
		scheduler: scheduler.New(
			res.Events(),
			res.Surface(),
			render.NewFrameRedrawer(frames),
			window.NewTimeSynchronizer(clock, refreshInterval),
		),
		dispatcher: dispatch.NewDispatcher(playback),
	}
}

// Frames is where a decoder delivers pictures.
func (a *AQPlay) Frames() *render.FrameQueue {
	return a.frames
}

func (a *AQPlay) Playback() *control.Playback {
	return a.playback
}

func (a *AQPlay) Redraws() uint64 {
	return a.scheduler.Redraws()
}

func (a *AQPlay) State() dispatch.State {
	return a.dispatcher.State()
}

// Run handles events until one of them asks to quit, then releases every
// presentation resource.
func (a *AQPlay) Run(ctx context.Context) {
	defer a.res.Shutdown()

	for a.dispatcher.State() == dispatch.Running {
		ev := a.scheduler.NextEvent(ctx)
		a.dispatcher.Dispatch(ev)
	}

	logrus.WithField("redraws", a.scheduler.Redraws()).Debug("Event loop finished")
}
