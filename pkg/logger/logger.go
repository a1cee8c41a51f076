// Package logger configures the process-wide structured logger.
package logger

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// New creates a logger writing colorized structured output to stderr at the
// given level.
func New(level slog.Level) *slog.Logger {
	handler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})
	return slog.New(handler)
}

// Setup installs a logger at the given level as the slog default and
// returns it.
func Setup(level slog.Level) *slog.Logger {
	log := New(level)
	slog.SetDefault(log)
	return log
}

// Err wraps an error as a structured attribute.
func Err(err error) slog.Attr {
	return slog.Any("error", err)
}
