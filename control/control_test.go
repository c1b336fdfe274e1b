package control

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/ushitora-anqou/aqplay/event"
)

func TestCommandForKey(t *testing.T) {
	table := []struct {
		key      event.Key
		expected Command
	}{
		{event.KeyF, ToggleFullscreen},
		{event.KeyP, TogglePause},
		{event.KeySpace, TogglePause},
		{event.KeyM, ToggleMute},
		{event.KeyKPMultiply, VolumeUp},
		{event.Key0, VolumeUp},
		{event.KeyKPDivide, VolumeDown},
		{event.Key9, VolumeDown},
		{event.KeyS, StepFrame},
		{event.KeyA, CycleAudio},
		{event.KeyV, CycleVideo},
		{event.KeyC, CycleProgram},
		{event.KeyT, CycleSubtitle},
		{event.KeyW, CycleShowMode},
		{event.KeyPageUp, SeekChapterForward},
		{event.KeyPageDown, SeekChapterBackward},
		{event.KeyLeft, SeekBackward10},
		{event.KeyRight, SeekForward10},
		{event.KeyUp, SeekForward60},
		{event.KeyArrowDown, SeekBackward60},
	}

	for _, entry := range table {
		cmd, ok := CommandForKey(entry.key)
		if !ok || cmd != entry.expected {
			t.Fatalf("CommandForKey(%v): (got: %v, %v) (expected: %v)", entry.key, cmd, ok, entry.expected)
		}
	}
	if len(CommandKeys()) != len(table) {
		t.Fatalf("CommandKeys: (got: %d) (expected: %d)", len(CommandKeys()), len(table))
	}

	for _, key := range []event.Key{event.KeyEscape, event.KeyQ, event.KeyUnknown} {
		if _, ok := CommandForKey(key); ok {
			t.Fatalf("CommandForKey(%v): unexpected command", key)
		}
	}
}

func TestPlayback(t *testing.T) {
	Convey("Playback", t, func() {
		p := NewPlayback()

		Convey("Should toggle flags", func() {
			p.Execute(TogglePause)
			p.Execute(ToggleMute)
			p.Execute(ToggleFullscreen)
			So(p.Paused, ShouldBeTrue)
			So(p.Muted, ShouldBeTrue)
			So(p.Fullscreen, ShouldBeTrue)
			p.Execute(TogglePause)
			So(p.Paused, ShouldBeFalse)
		})

		Convey("Should clamp volume", func() {
			p.Execute(VolumeUp)
			So(p.Volume, ShouldEqual, MaxVolume)
			for i := 0; i < 30; i++ {
				p.Execute(VolumeDown)
			}
			So(p.Volume, ShouldEqual, 0)
			p.Execute(VolumeUp)
			So(p.Volume, ShouldEqual, VolumeStep)
		})

		Convey("Should accumulate seeks", func() {
			p.Execute(SeekForward60)
			p.Execute(SeekBackward10)
			So(p.Seek, ShouldEqual, 50*time.Second)
			p.Execute(SeekChapterBackward)
			So(p.Chapters, ShouldEqual, -1)
		})

		Convey("Should count cycles and steps", func() {
			p.Execute(CycleSubtitle)
			p.Execute(CycleSubtitle)
			p.Execute(StepFrame)
			So(p.Cycles[CycleSubtitle], ShouldEqual, 2)
			So(p.Steps, ShouldEqual, 1)
		})
	})
}
