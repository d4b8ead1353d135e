package meanshift

import (
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with clustering-specific helpers.
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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// LogRefine logs the completion of the parallel refinement stage.
func (l *Logger) LogRefine(points, dims, workers int, algo Algorithm, iterations, unconverged int, elapsed time.Duration) {
	if unconverged > 0 {
		l.Warn("refinement completed with unconverged points",
			"points", points,
			"dimension", dims,
			"workers", workers,
			"algorithm", string(algo),
			"iterations", iterations,
			"unconverged", unconverged,
			"elapsed", elapsed,
		)
		return
	}
	l.Info("refinement completed",
		"points", points,
		"dimension", dims,
		"workers", workers,
		"algorithm", string(algo),
		"iterations", iterations,
		"elapsed", elapsed,
	)
}

// LogMerge logs the completion of the merge pass.
func (l *Logger) LogMerge(modes, clusters int, mergeRadius float64, elapsed time.Duration) {
	l.Info("merge completed",
		"modes", modes,
		"clusters", clusters,
		"merge_radius", mergeRadius,
		"elapsed", elapsed,
	)
}
