package logger

import (
	"io"
	"log/slog"
)

// NewNope creates a no-op logger that discards all output.
// Packages in this module use it when no logger is configured.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// OrNope returns l, or a no-op logger when l is nil.
func OrNope(l *slog.Logger) *slog.Logger {
	if l == nil {
		return NewNope()
	}
	return l
}
