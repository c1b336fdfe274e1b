// Package config loads aqplay settings from defaults, an optional config
// file, AQPLAY_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/ushitora-anqou/aqplay/constant"
)

var ErrInvalid = errors.New("invalid configuration")

const (
	KeyWindowTitle     = "window.title"
	KeyWindowWidth     = "window.width"
	KeyWindowHeight    = "window.height"
	KeyRefreshInterval = "refresh.interval"
	KeyAudioEnabled    = "audio.enabled"
	KeyAudioFreq       = "audio.freq"
	KeyAudioChannels   = "audio.channels"
	KeyAudioSamples    = "audio.samples"
	KeyAudioQueue      = "audio.queue"
	KeyLogsLevel       = "logs.level"
	KeyLogsJSON        = "logs.json"
	KeyLogsFile        = "logs.file"
)

var Default = map[string]interface{}{
	KeyWindowTitle:     constant.WINDOW_TITLE,
	KeyWindowWidth:     constant.WINDOW_WIDTH,
	KeyWindowHeight:    constant.WINDOW_HEIGHT,
	KeyRefreshInterval: constant.REFRESH_INTERVAL,
	KeyAudioEnabled:    true,
	KeyAudioFreq:       constant.AUDIO_FREQ,
	KeyAudioChannels:   constant.CHANNELS,
	KeyAudioSamples:    constant.AUDIO_SAMPLES,
	KeyAudioQueue:      constant.AUDIO_QUEUE_SIZE,
	KeyLogsLevel:       "info",
	KeyLogsJSON:        false,
	KeyLogsFile:        "",
}

var EnvKeyReplacer = strings.NewReplacer(".", "_")

type AudioConfig struct {
	Enabled   bool
	Freq      int
	Channels  int
	Samples   int
	QueueSize int
}

type LogConfig struct {
	Level string
	JSON  bool
	File  string
}

type Config struct {
	Title           string
	Width, Height   int
	RefreshInterval time.Duration
	Audio           AudioConfig
	Log             LogConfig
}

// New returns a viper instance with defaults and environment bindings set.
func New(fs afero.Fs) *viper.Viper {
	v := viper.New()
	v.SetFs(fs)
	v.SetEnvPrefix(constant.APP_NAME)
	v.SetEnvKeyReplacer(EnvKeyReplacer)
	v.AutomaticEnv()
	v.SetTypeByDefaultValue(true)
	for name, value := range Default {
		v.SetDefault(name, value)
	}
	return v
}

// Load reads the config file, if any, and decodes v. An empty path looks for
// aqplay.{yaml,toml,json} in the working directory and tolerates its absence.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(constant.APP_NAME)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Title:           v.GetString(KeyWindowTitle),
		Width:           v.GetInt(KeyWindowWidth),
		Height:          v.GetInt(KeyWindowHeight),
		RefreshInterval: v.GetDuration(KeyRefreshInterval),
		Audio: AudioConfig{
			Enabled:   v.GetBool(KeyAudioEnabled),
			Freq:      v.GetInt(KeyAudioFreq),
			Channels:  v.GetInt(KeyAudioChannels),
			Samples:   v.GetInt(KeyAudioSamples),
			QueueSize: v.GetInt(KeyAudioQueue),
		},
		Log: LogConfig{
			Level: v.GetString(KeyLogsLevel),
			JSON:  v.GetBool(KeyLogsJSON),
			File:  v.GetString(KeyLogsFile),
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Title == "" {
		return fmt.Errorf("%w: empty window title", ErrInvalid)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if c.RefreshInterval < 0 {
		return fmt.Errorf("%w: negative refresh interval %v", ErrInvalid, c.RefreshInterval)
	}
	if c.Audio.Enabled {
		if c.Audio.Freq <= 0 || c.Audio.Samples <= 0 || c.Audio.QueueSize <= 0 {
			return fmt.Errorf("%w: audio freq=%d samples=%d queue=%d", ErrInvalid, c.Audio.Freq, c.Audio.Samples, c.Audio.QueueSize)
		}
		if c.Audio.Channels < 1 || c.Audio.Channels > 8 {
			return fmt.Errorf("%w: audio channels %d", ErrInvalid, c.Audio.Channels)
		}
		if c.Audio.Samples > 0xffff {
			return fmt.Errorf("%w: audio samples %d", ErrInvalid, c.Audio.Samples)
		}
	}
	return nil
}
