package core

import "time"

// LogEvent represents a single log record on its way through the formatter
// chain to the sinks.
type LogEvent struct {
	// Timestamp is when the event occurred.
	Timestamp time.Time

	// Level is the severity of the event.
	Level LogEventLevel

	// Message is the human readable message.
	Message string

	// Properties holds the extra fields of the record. Values may be nested
	// map[string]any values, slices or arbitrary opaque values.
	Properties map[string]any

	// Error is the optional error slot. It holds an error, a string, or an
	// arbitrarily nested slice of those.
	Error any
}

// AddPropertyIfAbsent adds a property to the event if it doesn't already exist.
func (e *LogEvent) AddPropertyIfAbsent(name string, value any) {
	if e.Properties == nil {
		e.Properties = make(map[string]any)
	}
	if _, exists := e.Properties[name]; !exists {
		e.Properties[name] = value
	}
}

// AddProperty adds or overwrites a property in the event.
func (e *LogEvent) AddProperty(name string, value any) {
	if e.Properties == nil {
		e.Properties = make(map[string]any)
	}
	e.Properties[name] = value
}

// WithProperties returns a shallow copy of the event that carries props
// instead of the original property map. The receiver is left untouched.
func (e *LogEvent) WithProperties(props map[string]any) *LogEvent {
	clone := *e
	clone.Properties = props
	return &clone
}

// WithError returns a shallow copy of the event with the error slot replaced.
func (e *LogEvent) WithError(err any) *LogEvent {
	clone := *e
	clone.Error = err
	return &clone
}

// HasError reports whether the error slot holds anything worth rendering.
func (e *LogEvent) HasError() bool {
	switch v := e.Error.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case []string:
		return len(v) > 0
	case []any:
		return len(v) > 0
	default:
		return true
	}
}
