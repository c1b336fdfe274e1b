package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/pprof"
	"syscall"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ushitora-anqou/aqplay/config"
	"github.com/ushitora-anqou/aqplay/constant"
	"github.com/ushitora-anqou/aqplay/platform"
	"github.com/ushitora-anqou/aqplay/player"
	"github.com/ushitora-anqou/aqplay/util"
	"github.com/ushitora-anqou/aqplay/window"
)

func init() {
	// SDL wants every video call on the main thread.
	runtime.LockOSThread()
}

var (
	fs = afero.NewOsFs()
	v  = config.New(fs)
)

func init() {
	flags := rootCmd.Flags()
	flags.String("config", "", "Path to a config file (yaml, toml or json)")
	flags.String("title", constant.WINDOW_TITLE, "Window title")
	flags.Int("width", constant.WINDOW_WIDTH, "Window width")
	flags.Int("height", constant.WINDOW_HEIGHT, "Window height")
	flags.Duration("refresh-interval", constant.REFRESH_INTERVAL, "Minimum time between idle redraws, 0 to busy-wait")
	flags.Bool("no-audio", false, "Do not open an audio output device")
	flags.String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	flags.Bool("log-json", false, "Write logs as JSON")
	flags.String("log-file", "", "Write logs to this file instead of stderr")

	lo.Must0(v.BindPFlag(config.KeyWindowTitle, flags.Lookup("title")))
	lo.Must0(v.BindPFlag(config.KeyWindowWidth, flags.Lookup("width")))
	lo.Must0(v.BindPFlag(config.KeyWindowHeight, flags.Lookup("height")))
	lo.Must0(v.BindPFlag(config.KeyRefreshInterval, flags.Lookup("refresh-interval")))
	lo.Must0(v.BindPFlag(config.KeyLogsLevel, flags.Lookup("log-level")))
	lo.Must0(v.BindPFlag(config.KeyLogsJSON, flags.Lookup("log-json")))
	lo.Must0(v.BindPFlag(config.KeyLogsFile, flags.Lookup("log-file")))
}

var rootCmd = &cobra.Command{
	Use:           constant.APP_NAME + " [INPUT]",
	Short:         "Media player presentation shell",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if lo.Must(cmd.Flags().GetBool("no-audio")) {
			v.Set(config.KeyAudioEnabled, false)
		}
		cfg, err := config.Load(v, lo.Must(cmd.Flags().GetString("config")))
		if err != nil {
			return err
		}
		return run(cfg, args)
	},
}

func run(cfg *config.Config, args []string) error {
	logFile, err := util.SetupLogger(fs, cfg.Log)
	if err != nil {
		return err
	}
	defer logFile.Close()
	if os.Getenv("AQPLAY_TRACE") == "1" {
		util.EnableTrace()
	}

	if filename := os.Getenv("AQPLAY_CPUPROFILE"); filename != "" {
		file, err := os.Create(filename)
		if err != nil {
			return err
		}
		defer file.Close()
		if err := pprof.StartCPUProfile(file); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	if len(args) > 0 {
		// Nothing decodes it yet.
		logrus.WithField("input", args[0]).Debug("Input file given")
	}

	res, err := window.Initialize(platform.NewSDLBackend(), window.Options{
		Title:  cfg.Title,
		Width:  cfg.Width,
		Height: cfg.Height,
		Audio: window.AudioOptions{
			Enabled: cfg.Audio.Enabled,
			Spec: window.AudioSpec{
				Freq:     cfg.Audio.Freq,
				Channels: cfg.Audio.Channels,
				Samples:  cfg.Audio.Samples,
			},
			QueueSize: cfg.Audio.QueueSize,
		},
	})
	if err != nil {
		var initErr *window.InitializationError
		if errors.As(err, &initErr) && initErr.Stage == "subsystem" {
			logrus.WithError(initErr.Err).Error("Could not initialize SDL")
			logrus.Error("(Did you set the DISPLAY variable?)")
		} else {
			logrus.WithError(err).Error("Failed to create window or renderer")
		}
		return util.Reported(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	player.New(res, platform.SDLClock{}, cfg.RefreshInterval).Run(ctx)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !util.IsReported(err) {
			fmt.Fprintf(os.Stderr, "%s: %v\n", constant.APP_NAME, err)
		}
		os.Exit(1)
	}
}
