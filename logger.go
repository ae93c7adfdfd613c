package fasthash

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
)

// Logger wraps slog.Logger with fasthash-specific context.
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

// WithAlgorithm adds the algorithm name to the logger.
func (l *Logger) WithAlgorithm(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("algorithm", name),
	}
}

// WithSource adds a source (file, object key, URI) field to the logger.
func (l *Logger) WithSource(source string) *Logger {
	return &Logger{
		Logger: l.Logger.With("source", source),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogSum logs the outcome of hashing one source.
func (l *Logger) LogSum(ctx context.Context, source string, size int64, d Digest, err error) {
	if err != nil {
		l.ErrorContext(ctx, "hash failed",
			"source", source,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "hash completed",
		"source", source,
		"bytes", size,
		"digest", d.String(),
	)
}

// LogBatch logs a batch of hashed sources.
func (l *Logger) LogBatch(ctx context.Context, count, failed, duplicates int) {
	if failed > 0 {
		l.WarnContext(ctx, "batch completed with failures",
			"total", count,
			"failed", failed,
			"success", count-failed,
		)
		return
	}
	l.InfoContext(ctx, "batch completed",
		"count", count,
		"duplicates", duplicates,
	)
}

var pkgLogger atomic.Pointer[Logger]

func init() {
	pkgLogger.Store(NewTextLogger(slog.LevelWarn))
}

// SetLogger replaces the package logger used for process-wide events such
// as a degraded seed source. A nil logger disables logging.
func SetLogger(l *Logger) {
	if l == nil {
		l = NoopLogger()
	}
	pkgLogger.Store(l)
}

func logger() *Logger { return pkgLogger.Load() }
