package cutpool

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with cutpool-specific context.
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
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
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
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithRound adds the LP round number to the logger (useful for tagging
// one separation/admission cycle).
func (l *Logger) WithRound(round int) *Logger {
	return &Logger{
		Logger: l.Logger.With("round", round),
	}
}

// WithSubproblem adds a subproblem id to the logger.
func (l *Logger) WithSubproblem(id uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("subproblem", id),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogInsert logs an insert operation.
func (l *Logger) LogInsert(ctx context.Context, count int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "insert failed",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "insert completed",
			"count", count,
		)
	}
}

// LogRemove logs an advisory remove. A refusal is routine and stays at
// debug level.
func (l *Logger) LogRemove(ctx context.Context, removed bool) {
	l.DebugContext(ctx, "remove completed",
		"removed", removed,
	)
}

// LogAdmit logs one admission step.
func (l *Logger) LogAdmit(ctx context.Context, admitted, active int) {
	l.InfoContext(ctx, "admission completed",
		"admitted", admitted,
		"active", active,
	)
}

// LogGC logs a garbage-collection pass.
func (l *Logger) LogGC(ctx context.Context, removed int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "gc failed",
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "gc completed",
			"removed", removed,
		)
	}
}

// LogSeparation logs the outcome of a separation round.
func (l *Logger) LogSeparation(ctx context.Context, generated, duplications int) {
	l.InfoContext(ctx, "separation completed",
		"generated", generated,
		"duplications", duplications,
	)
}
