// Package logger builds the process-wide zerolog logger.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/Domenick1991/airport-service/config"
	"github.com/rs/zerolog"
)

// New returns a logger writing to stderr at cfg.Level. Pretty switches to the
// human-readable console writer. An unknown level falls back to info.
func New(cfg config.LogConfig, service string) zerolog.Logger {
	return newWithWriter(cfg, service, os.Stderr)
}

func newWithWriter(cfg config.LogConfig, service string, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	out := w
	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", service).
		Logger()
}
