// Package core provides the fundamental interfaces and types for botlog.
package core

// Logger is the main logging interface providing structured logging methods.
//
// Arguments after the message are alternating key/value pairs. The key
// "error" is special: its value goes into the event's error slot instead of
// the properties.
type Logger interface {
	// Verbose writes a verbose-level log event.
	Verbose(message string, keysAndValues ...any)

	// Debug writes a debug-level log event.
	Debug(message string, keysAndValues ...any)

	// Info writes an information-level log event.
	Info(message string, keysAndValues ...any)

	// Warn writes a warning-level log event.
	Warn(message string, keysAndValues ...any)

	// Error writes an error-level log event.
	Error(message string, keysAndValues ...any)

	// Fatal writes a fatal-level log event. It does not exit the process.
	Fatal(message string, keysAndValues ...any)

	// Write writes a log event at the specified level.
	Write(level LogEventLevel, message string, keysAndValues ...any)

	// WriteEvent processes an event that was built elsewhere, for example by
	// a bridge from another logging library. A top-level "error" property is
	// moved into the error slot.
	WriteEvent(event *LogEvent)

	// With creates a logger that adds the key/value pairs to every event.
	With(keysAndValues ...any) Logger

	// IsEnabled returns true if events at the specified level would be processed.
	IsEnabled(level LogEventLevel) bool
}
