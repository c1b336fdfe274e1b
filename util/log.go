package util

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/ushitora-anqou/aqplay/config"
)

// SetupLogger configures the global logrus logger. Diagnostics go to stderr
// unless a log file is configured. The returned closer releases that file.
func SetupLogger(fs afero.Fs, cfg config.LogConfig) (io.Closer, error) {
	var closer io.Closer = nopCloser{}
	logrus.SetOutput(os.Stderr)

	if cfg.File != "" {
		f, err := fs.OpenFile(cfg.File, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		logrus.SetOutput(f)
		closer = f
	}

	if cfg.JSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{})
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	return closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func EnableTrace() {
	logrus.SetLevel(logrus.TraceLevel)
}

func Trace(format string, v ...interface{}) {
	logrus.Tracef(format, v...)
}
