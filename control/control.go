package control

import (
	"time"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/ushitora-anqou/aqplay/event"
)

type Command int

const (
	ToggleFullscreen Command = iota
	TogglePause
	ToggleMute
	VolumeUp
	VolumeDown
	StepFrame
	CycleAudio
	CycleVideo
	CycleProgram
	CycleSubtitle
	CycleShowMode
	SeekChapterForward
	SeekChapterBackward
	SeekBackward10
	SeekForward10
	SeekForward60
	SeekBackward60
)

var commandNames = map[Command]string{
	ToggleFullscreen:    "toggle-fullscreen",
	TogglePause:         "toggle-pause",
	ToggleMute:          "toggle-mute",
	VolumeUp:            "volume-up",
	VolumeDown:          "volume-down",
	StepFrame:           "step-frame",
	CycleAudio:          "cycle-audio",
	CycleVideo:          "cycle-video",
	CycleProgram:        "cycle-program",
	CycleSubtitle:       "cycle-subtitle",
	CycleShowMode:       "cycle-show-mode",
	SeekChapterForward:  "seek-chapter-forward",
	SeekChapterBackward: "seek-chapter-backward",
	SeekBackward10:      "seek-backward-10s",
	SeekForward10:       "seek-forward-10s",
	SeekForward60:       "seek-forward-60s",
	SeekBackward60:      "seek-backward-60s",
}

func (c Command) String() string {
	return commandNames[c]
}

// SeekOffset is the relative seek a command requests, zero for others.
func (c Command) SeekOffset() time.Duration {
	switch c {
	case SeekBackward10:
		return -10 * time.Second
	case SeekForward10:
		return 10 * time.Second
	case SeekForward60:
		return 60 * time.Second
	case SeekBackward60:
		return -60 * time.Second
	}
	return 0
}

var keyCommands = map[event.Key]Command{
	event.KeyF:          ToggleFullscreen,
	event.KeyP:          TogglePause,
	event.KeySpace:      TogglePause,
	event.KeyM:          ToggleMute,
	event.KeyKPMultiply: VolumeUp,
	event.Key0:          VolumeUp,
	event.KeyKPDivide:   VolumeDown,
	event.Key9:          VolumeDown,
	event.KeyS:          StepFrame,
	event.KeyA:          CycleAudio,
	event.KeyV:          CycleVideo,
	event.KeyC:          CycleProgram,
	event.KeyT:          CycleSubtitle,
	event.KeyW:          CycleShowMode,
	event.KeyPageUp:     SeekChapterForward,
	event.KeyPageDown:   SeekChapterBackward,
	event.KeyLeft:       SeekBackward10,
	event.KeyRight:      SeekForward10,
	event.KeyUp:         SeekForward60,
	event.KeyArrowDown:  SeekBackward60,
}

func CommandForKey(key event.Key) (Command, bool) {
	cmd, ok := keyCommands[key]
	return cmd, ok
}

// CommandKeys lists every key bound to a command.
func CommandKeys() []event.Key {
	return lo.Keys(keyCommands)
}

type Controller interface {
	Execute(cmd Command)
}

const (
	MaxVolume  = 100
	VolumeStep = 5
)

// Playback records the requested playback state. Nothing plays yet; the
// decoder reads this state once it exists.
type Playback struct {
	Paused     bool
	Muted      bool
	Fullscreen bool
	Volume     int
	Steps      int
	// Cycles counts stream cycle requests per command.
	Cycles map[Command]int
	// Seek is the accumulated relative seek not yet served.
	Seek     time.Duration
	Chapters int
}

func NewPlayback() *Playback {
	return &Playback{Volume: MaxVolume, Cycles: map[Command]int{}}
}

func (p *Playback) Execute(cmd Command) {
	switch cmd {
	case ToggleFullscreen:
		p.Fullscreen = !p.Fullscreen
	case TogglePause:
		p.Paused = !p.Paused
	case ToggleMute:
		p.Muted = !p.Muted
	case VolumeUp:
		p.Volume = lo.Clamp(p.Volume+VolumeStep, 0, MaxVolume)
	case VolumeDown:
		p.Volume = lo.Clamp(p.Volume-VolumeStep, 0, MaxVolume)
	case StepFrame:
		p.Steps++
	case CycleAudio, CycleVideo, CycleProgram, CycleSubtitle, CycleShowMode:
		p.Cycles[cmd]++
	case SeekChapterForward:
		p.Chapters++
	case SeekChapterBackward:
		p.Chapters--
	case SeekBackward10, SeekForward10, SeekForward60, SeekBackward60:
		p.Seek += cmd.SeekOffset()
	default:
		logrus.WithField("command", int(cmd)).Warn("Unknown playback command")
		return
	}

	logrus.WithFields(logrus.Fields{
		"command":    cmd.String(),
		"paused":     p.Paused,
		"muted":      p.Muted,
		"volume":     p.Volume,
		"fullscreen": p.Fullscreen,
		"seek":       p.Seek,
	}).Info("Playback command (no media loaded)")
}
