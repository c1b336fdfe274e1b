package dispatch

import (
	"github.com/sirupsen/logrus"

	"github.com/ushitora-anqou/aqplay/control"
	"github.com/ushitora-anqou/aqplay/event"
)

type State int

const (
	Running State = iota
	Terminating
)

func (s State) String() string {
	if s == Terminating {
		return "terminating"
	}
	return "running"
}

// Dispatcher routes one event at a time. It never releases resources
// itself: a quit only moves it to Terminating and the caller tears down.
type Dispatcher struct {
	state      State
	controller control.Controller
}

func NewDispatcher(controller control.Controller) *Dispatcher {
	return &Dispatcher{state: Running, controller: controller}
}

func (d *Dispatcher) State() State {
	return d.state
}

func (d *Dispatcher) Dispatch(ev event.Event) State {
	if d.state == Terminating {
		return d.state
	}

	switch e := ev.(type) {
	case event.Quit:
		d.terminate("quit requested")
	case event.ApplicationQuit:
		d.terminate("application quit")
	case event.KeyDown:
		d.handleKey(e)
	case event.MouseButtonDown:
		// Reserved for seek-by-click.
	case event.MouseMotion:
		// Reserved for cursor auto-hide.
	case event.Window:
		// Reserved for resize handling.
	default:
		logrus.Tracef("Ignoring event %T", ev)
	}
	return d.state
}

func (d *Dispatcher) handleKey(e event.KeyDown) {
	switch e.Key {
	case event.KeyEscape, event.KeyQ:
		d.terminate("key " + e.Key.String())
		return
	}
	cmd, ok := control.CommandForKey(e.Key)
	if !ok {
		return
	}
	logrus.WithField("key", e.Key.String()).Debug("Key down")
	d.controller.Execute(cmd)
}

func (d *Dispatcher) terminate(reason string) {
	logrus.WithField("reason", reason).Info("Shutting down")
	d.state = Terminating
}
