package domainset

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with domainset-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
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
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithBits adds the exponent k of a 2^k powerset to the logger.
func (l *Logger) WithBits(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("bits", k),
	}
}

// WithWorkers adds a worker count field to the logger.
func (l *Logger) WithWorkers(n int64) *Logger {
	return &Logger{
		Logger: l.Logger.With("workers", n),
	}
}

// LogDispatchStarted logs the start of a bulk powerset dispatch.
func (l *Logger) LogDispatchStarted(ctx context.Context, unitSize uint64, blocking bool) {
	l.DebugContext(ctx, "powerset dispatch started",
		"unit_size", unitSize,
		"blocking", blocking,
	)
}

// LogDispatch logs the outcome of a bulk powerset dispatch.
func (l *Logger) LogDispatch(ctx context.Context, units int, delivered uint64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "powerset dispatch failed",
			"units", units,
			"delivered", delivered,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "powerset dispatch completed",
			"units", units,
			"delivered", delivered,
		)
	}
}

// LogSinkFailure logs a sink rejecting a subset.
func (l *Logger) LogSinkFailure(ctx context.Context, index uint64, err error) {
	l.WarnContext(ctx, "powerset sink failed",
		"index", index,
		"error", err,
	)
}
