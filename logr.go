package botlog

import (
	"github.com/go-logr/logr"

	"github.com/willibrandon/botlog/internal/handler"
)

// NewLogrLogger creates a new logr.Logger backed by a botlog pipeline.
func NewLogrLogger(options ...Option) logr.Logger {
	return logr.New(New(options...).AsLogrSink())
}

// AsLogrSink returns the logger as a logr.LogSink.
func (l *Logger) AsLogrSink() logr.LogSink {
	return handler.NewLogrSink(l)
}
