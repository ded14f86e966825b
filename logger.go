package botlog

import (
	"errors"
	"fmt"
	"maps"
	"time"

	"github.com/willibrandon/botlog/core"
)

// ErrorKey is the key whose value is placed in an event's error slot.
const ErrorKey = "error"

// Logger is the default implementation of core.Logger.
type Logger struct {
	minimumLevel core.LogEventLevel
	pipeline     *pipeline
	sinks        []core.LogEventSink
	properties   map[string]any
	err          any
}

var _ core.Logger = (*Logger)(nil)

// New creates a new logger. Without options it logs nothing below
// Information and has no sinks.
//
// Every event is tagged with bot-identifier and run-identifier. Without
// WithIdentity those are NO_BOT_ID and a UUID generated once per New.
func New(options ...Option) *Logger {
	cfg := &config{
		minimumLevel:      core.InformationLevel,
		defaultFormatters: true,
		properties:        make(map[string]any),
	}
	for _, opt := range options {
		opt(cfg)
	}

	props := make(map[string]any, len(cfg.properties))
	var errValue any
	for k, v := range cfg.properties {
		if k == ErrorKey {
			errValue = v
			continue
		}
		props[k] = v
	}

	return &Logger{
		minimumLevel: cfg.minimumLevel,
		pipeline:     newPipeline(cfg.chain(), cfg.sinks),
		sinks:        cfg.sinks,
		properties:   props,
		err:          errValue,
	}
}

// Verbose writes a verbose-level log event.
func (l *Logger) Verbose(message string, keysAndValues ...any) {
	l.Write(core.VerboseLevel, message, keysAndValues...)
}

// Debug writes a debug-level log event.
func (l *Logger) Debug(message string, keysAndValues ...any) {
	l.Write(core.DebugLevel, message, keysAndValues...)
}

// Info writes an information-level log event.
func (l *Logger) Info(message string, keysAndValues ...any) {
	l.Write(core.InformationLevel, message, keysAndValues...)
}

// Warn writes a warning-level log event.
func (l *Logger) Warn(message string, keysAndValues ...any) {
	l.Write(core.WarningLevel, message, keysAndValues...)
}

// Error writes an error-level log event.
func (l *Logger) Error(message string, keysAndValues ...any) {
	l.Write(core.ErrorLevel, message, keysAndValues...)
}

// Fatal writes a fatal-level log event. The process keeps running.
func (l *Logger) Fatal(message string, keysAndValues ...any) {
	l.Write(core.FatalLevel, message, keysAndValues...)
}

// Write writes a log event at the specified level.
func (l *Logger) Write(level core.LogEventLevel, message string, keysAndValues ...any) {
	if !l.IsEnabled(level) {
		return
	}

	event := &core.LogEvent{
		Timestamp:  time.Now(),
		Level:      level,
		Message:    message,
		Properties: make(map[string]any, len(l.properties)+len(keysAndValues)/2),
		Error:      l.err,
	}
	maps.Copy(event.Properties, l.properties)
	applyKeysAndValues(event, keysAndValues)

	l.pipeline.process(event)
}

// WriteEvent processes an event built by a bridge. Context properties fill
// in missing keys, and a top-level "error" property moves to the error slot.
// The event is taken over by the logger and must not be reused.
func (l *Logger) WriteEvent(event *core.LogEvent) {
	if event == nil || !l.IsEnabled(event.Level) {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if event.Properties == nil {
		event.Properties = make(map[string]any, len(l.properties))
	}
	if v, ok := event.Properties[ErrorKey]; ok {
		delete(event.Properties, ErrorKey)
		if event.Error == nil {
			event.Error = v
		}
	}
	for k, v := range l.properties {
		event.AddPropertyIfAbsent(k, v)
	}
	if event.Error == nil {
		event.Error = l.err
	}

	l.pipeline.process(event)
}

// With creates a logger that adds the key/value pairs to every event.
// Keys are converted with fmt.Sprint; a trailing key without a value is ignored.
func (l *Logger) With(keysAndValues ...any) core.Logger {
	return l.with(keysAndValues...)
}

func (l *Logger) with(keysAndValues ...any) *Logger {
	if len(keysAndValues) < 2 {
		return l
	}

	scratch := &core.LogEvent{Properties: maps.Clone(l.properties), Error: l.err}
	if scratch.Properties == nil {
		scratch.Properties = make(map[string]any)
	}
	applyKeysAndValues(scratch, keysAndValues)

	return &Logger{
		minimumLevel: l.minimumLevel,
		pipeline:     l.pipeline,
		sinks:        l.sinks,
		properties:   scratch.Properties,
		err:          scratch.Error,
	}
}

// IsEnabled returns true if events at the specified level would be processed.
func (l *Logger) IsEnabled(level core.LogEventLevel) bool {
	return level >= l.minimumLevel
}

// Close closes every sink and returns their errors joined.
func (l *Logger) Close() error {
	var errs []error
	for _, sink := range l.sinks {
		if err := sink.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func applyKeysAndValues(event *core.LogEvent, keysAndValues []any) {
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = fmt.Sprint(keysAndValues[i])
		}
		value := keysAndValues[i+1]
		if key == ErrorKey {
			event.Error = value
			continue
		}
		event.Properties[key] = value
	}
}
