package bitvec

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
)

// Logger wraps slog.Logger with bitvec-specific helpers.
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
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithRound adds a round field to the logger.
func (l *Logger) WithRound(round int) *Logger {
	return &Logger{
		Logger: l.Logger.With("round", round),
	}
}

// WithSeed adds a seed field to the logger.
func (l *Logger) WithSeed(seed int64) *Logger {
	return &Logger{
		Logger: l.Logger.With("seed", seed),
	}
}

// LogViolation logs a broken access precondition.
func (l *Logger) LogViolation(ctx context.Context, err *ErrIndexOutOfRange) {
	l.ErrorContext(ctx, "precondition violated",
		"op", err.Op,
		"index", err.Index,
		"len", err.Len,
	)
}

// LogRound logs one verification round over a vector of the given length.
func (l *Logger) LogRound(ctx context.Context, round int, bits uint64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "round failed",
			"round", round,
			"bits", bits,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "round completed",
			"round", round,
			"bits", bits,
		)
	}
}

var packageLogger atomic.Pointer[Logger]

func init() {
	packageLogger.Store(NewLogger(nil))
}

// SetLogger replaces the logger used to report precondition violations in
// builds with debug assertions. Passing nil restores the default stderr logger.
func SetLogger(l *Logger) {
	if l == nil {
		l = NewLogger(nil)
	}
	packageLogger.Store(l)
}

func currentLogger() *Logger {
	return packageLogger.Load()
}
