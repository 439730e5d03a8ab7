package growbuf

import (
	"log/slog"
	"os"
	"time"

	"golang.org/x/time/rate"
)

// Logger wraps slog.Logger with growbuf-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger

	// allocWarn throttles allocation-failure warnings: a caller retrying a
	// denied push in a loop should not flood the log.
	allocWarn rate.Sometimes
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger:    slog.New(handler),
		allocWarn: rate.Sometimes{First: 1, Interval: time.Second},
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.Level(1000), // Unreachable level
		})),
	}
}

// LogGrow logs a capacity growth event.
func (l *Logger) LogGrow(oldCap, newCap, length int) {
	l.Debug("capacity grown",
		"old_cap", oldCap,
		"new_cap", newCap,
		"length", length,
	)
}

// LogShrink logs a shrink-to-fit event.
func (l *Logger) LogShrink(oldCap, newCap int) {
	l.Debug("capacity shrunk",
		"old_cap", oldCap,
		"new_cap", newCap,
	)
}

// LogRelease logs a storage release.
func (l *Logger) LogRelease(byteCap int) {
	l.Debug("storage released",
		"byte_cap", byteCap,
	)
}

// LogAllocationFailure logs a denied allocation. Warnings are throttled to
// at most one per second.
func (l *Logger) LogAllocationFailure(bytes int, err error) {
	l.allocWarn.Do(func() {
		l.Warn("allocation failed",
			"bytes", bytes,
			"error", err,
		)
	})
}
