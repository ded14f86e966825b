package handler

import (
	"fmt"

	"github.com/go-logr/logr"

	"github.com/willibrandon/botlog/core"
)

// LoggerNameProperty holds the name built with logr's WithName.
const LoggerNameProperty = "logger"

// LogrSink implements logr.LogSink on top of a botlog logger.
type LogrSink struct {
	logger core.Logger
	name   string
	values []any
}

var _ logr.LogSink = (*LogrSink)(nil)

// NewLogrSink creates a new logr.LogSink that writes to the provided logger.
func NewLogrSink(logger core.Logger) *LogrSink {
	return &LogrSink{logger: logger}
}

// Init receives optional information about the logr library.
func (s *LogrSink) Init(logr.RuntimeInfo) {}

// Enabled tests whether this LogSink is enabled at the given V-level.
func (s *LogrSink) Enabled(level int) bool {
	return s.logger.IsEnabled(LogrLevelToCore(level))
}

// Info logs a non-error message with the given key/value pairs.
func (s *LogrSink) Info(level int, msg string, keysAndValues ...any) {
	s.write(LogrLevelToCore(level), msg, nil, keysAndValues)
}

// Error logs an error message with the given key/value pairs.
func (s *LogrSink) Error(err error, msg string, keysAndValues ...any) {
	s.write(core.ErrorLevel, msg, err, keysAndValues)
}

// WithValues returns a new LogSink with additional key/value pairs.
func (s *LogrSink) WithValues(keysAndValues ...any) logr.LogSink {
	values := make([]any, 0, len(s.values)+len(keysAndValues))
	values = append(values, s.values...)
	values = append(values, keysAndValues...)
	return &LogrSink{
		logger: s.logger,
		name:   s.name,
		values: values,
	}
}

// WithName returns a new LogSink with the specified name appended.
func (s *LogrSink) WithName(name string) logr.LogSink {
	newName := name
	if s.name != "" {
		newName = s.name + "." + name
	}
	return &LogrSink{
		logger: s.logger,
		name:   newName,
		values: s.values,
	}
}

func (s *LogrSink) write(level core.LogEventLevel, msg string, err error, keysAndValues []any) {
	props := make(map[string]any, (len(s.values)+len(keysAndValues))/2+1)
	addKeysAndValues(props, s.values)
	addKeysAndValues(props, keysAndValues)
	if s.name != "" {
		props[LoggerNameProperty] = s.name
	}

	event := &core.LogEvent{
		Level:      level,
		Message:    msg,
		Properties: props,
	}
	if err != nil {
		event.Error = err
	}
	s.logger.WriteEvent(event)
}

// addKeysAndValues copies logr key/value pairs into props. A dangling key is
// kept with a nil value, as logr's own sinks do.
func addKeysAndValues(props map[string]any, keysAndValues []any) {
	for i := 0; i < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = fmt.Sprint(keysAndValues[i])
		}
		if i+1 >= len(keysAndValues) {
			props[key] = nil
			break
		}
		props[key] = keysAndValues[i+1]
	}
}

// LogrLevelToCore converts logr V-levels to botlog levels.
// logr levels: 0=info, 1=debug, 2+=verbose
func LogrLevelToCore(level int) core.LogEventLevel {
	switch level {
	case 0:
		return core.InformationLevel
	case 1:
		return core.DebugLevel
	default:
		return core.VerboseLevel
	}
}
