package botlog

import (
	"log/slog"

	"github.com/willibrandon/botlog/internal/handler"
)

// NewSlogLogger creates a new slog.Logger backed by a botlog pipeline.
func NewSlogLogger(options ...Option) *slog.Logger {
	return slog.New(New(options...).AsSlogHandler(nil))
}

// AsSlogHandler returns the logger as an slog.Handler. Only the AddSource and
// Level fields of opts are used; opts may be nil.
func (l *Logger) AsSlogHandler(opts *slog.HandlerOptions) slog.Handler {
	return handler.NewSlogHandler(l, opts)
}
