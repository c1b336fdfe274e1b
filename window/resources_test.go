package window_test

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/ushitora-anqou/aqplay/window"
	"github.com/ushitora-anqou/aqplay/window/windowtest"
)

func defaultOptions() window.Options {
	return window.Options{Title: "aqplay", Width: 640, Height: 480}
}

func stageOf(err error) string {
	var initErr *window.InitializationError
	if errors.As(err, &initErr) {
		return initErr.Stage
	}
	return ""
}

func TestInitialize(t *testing.T) {
	Convey("Initialize", t, func() {
		b := windowtest.NewBackend()

		Convey("Should create subsystem, display and accelerated surface in order", func() {
			res, err := window.Initialize(b, defaultOptions())
			So(err, ShouldBeNil)
			So(b.Calls, ShouldResemble, []string{"init", "create-display", "create-surface-accelerated"})
			So(b.Surface.Flags, ShouldEqual, window.SurfaceAccelerated|window.SurfacePresentVSync)
			So(res.Surface(), ShouldNotBeNil)
			So(res.Display(), ShouldNotBeNil)
			So(res.Capabilities().Name, ShouldEqual, "fake")
			So(b.Display.Title, ShouldEqual, "aqplay")
		})

		Convey("Should fall back to a software surface", func() {
			b.AcceleratedErr = windowtest.ErrFake
			res, err := window.Initialize(b, defaultOptions())
			So(err, ShouldBeNil)
			So(b.Calls, ShouldResemble, []string{"init", "create-display", "create-surface-accelerated", "create-surface-software"})
			So(res.Surface(), ShouldNotBeNil)
			So(res.Display(), ShouldNotBeNil)
		})

		Convey("Should reject invalid options before touching the subsystem", func() {
			opts := defaultOptions()
			opts.Width = 0
			_, err := window.Initialize(b, opts)
			So(stageOf(err), ShouldEqual, "options")
			So(b.Calls, ShouldBeEmpty)

			opts = defaultOptions()
			opts.Title = ""
			_, err = window.Initialize(b, opts)
			So(stageOf(err), ShouldEqual, "options")
		})

		Convey("Should fail when the subsystem cannot start", func() {
			b.InitErr = windowtest.ErrFake
			res, err := window.Initialize(b, defaultOptions())
			So(res, ShouldBeNil)
			So(stageOf(err), ShouldEqual, "subsystem")
			So(errors.Is(err, windowtest.ErrFake), ShouldBeTrue)
			So(b.Calls, ShouldResemble, []string{"init"})
		})

		Convey("Should release the subsystem when the display fails", func() {
			b.DisplayErr = windowtest.ErrFake
			_, err := window.Initialize(b, defaultOptions())
			So(stageOf(err), ShouldEqual, "display")
			So(b.Calls, ShouldResemble, []string{"init", "create-display", "quit"})
		})

		Convey("Should fail when both surfaces fail and release the display", func() {
			b.AcceleratedErr = windowtest.ErrFake
			b.SoftwareErr = windowtest.ErrFake
			_, err := window.Initialize(b, defaultOptions())
			So(stageOf(err), ShouldEqual, "surface")
			So(b.Calls, ShouldResemble, []string{
				"init", "create-display", "create-surface-accelerated", "create-surface-software",
				"destroy-display", "quit",
			})
		})

		Convey("Should treat zero pixel formats as a surface failure", func() {
			b.Caps.NumPixelFormats = 0
			b.Caps.PixelFormats = nil
			res, err := window.Initialize(b, defaultOptions())
			So(res, ShouldBeNil)
			So(stageOf(err), ShouldEqual, "capabilities")
			So(errors.Is(err, window.ErrNoPixelFormats), ShouldBeTrue)
			So(b.Calls, ShouldResemble, []string{
				"init", "create-display", "create-surface-accelerated",
				"destroy-surface", "destroy-display", "quit",
			})
			So(b.Surface.Clears, ShouldEqual, 0)
			So(b.Surface.Presents, ShouldEqual, 0)
		})

		Convey("Should treat a failed capabilities query as a surface failure", func() {
			b.CapsErr = windowtest.ErrFake
			_, err := window.Initialize(b, defaultOptions())
			So(stageOf(err), ShouldEqual, "capabilities")
		})
	})
}

func TestAudio(t *testing.T) {
	Convey("Audio output", t, func() {
		b := windowtest.NewBackend()
		opts := defaultOptions()
		opts.Audio = window.AudioOptions{
			Enabled:   true,
			Spec:      window.AudioSpec{Freq: 48000, Channels: 2, Samples: 4},
			QueueSize: 2,
		}

		Convey("Should be opened after the surface", func() {
			res, err := window.Initialize(b, opts)
			So(err, ShouldBeNil)
			So(res.HasAudio(), ShouldBeTrue)
			So(b.Calls[len(b.Calls)-1], ShouldEqual, "open-audio")
			So(b.Queue.PeriodLength(), ShouldEqual, 8)

			So(res.EnqueueAudio(make([]float32, 8)), ShouldBeNil)
			So(b.Queue.Len(), ShouldEqual, 1)
			So(errors.Is(res.EnqueueAudio(make([]float32, 3)), window.ErrInvalidAudioBuffer), ShouldBeTrue)
		})

		Convey("Should not make initialization fail", func() {
			b.AudioErr = windowtest.ErrFake
			res, err := window.Initialize(b, opts)
			So(err, ShouldBeNil)
			So(res.HasAudio(), ShouldBeFalse)
			So(res.EnqueueAudio(make([]float32, 8)), ShouldEqual, window.ErrNoAudio)
		})

		Convey("Should be skipped when disabled", func() {
			opts.Audio.Enabled = false
			res, err := window.Initialize(b, opts)
			So(err, ShouldBeNil)
			So(res.HasAudio(), ShouldBeFalse)
			So(b.Calls, ShouldNotContain, "open-audio")
		})
	})
}

func TestShutdown(t *testing.T) {
	Convey("Shutdown", t, func() {
		b := windowtest.NewBackend()
		opts := defaultOptions()
		opts.Audio = window.AudioOptions{Enabled: true, Spec: window.AudioSpec{Freq: 48000, Channels: 2, Samples: 4}}
		res, err := window.Initialize(b, opts)
		So(err, ShouldBeNil)
		b.Calls = nil

		Convey("Should release in reverse acquisition order", func() {
			res.Shutdown()
			So(b.Calls, ShouldResemble, []string{"close-audio", "destroy-surface", "destroy-display", "quit"})
			So(res.Surface(), ShouldBeNil)
			So(res.Display(), ShouldBeNil)
		})

		Convey("Should only take effect once", func() {
			res.Shutdown()
			res.Shutdown()
			So(b.Calls, ShouldResemble, []string{"close-audio", "destroy-surface", "destroy-display", "quit"})
		})
	})
}
