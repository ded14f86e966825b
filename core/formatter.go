package core

// Formatter transforms a log event before it reaches the sinks.
//
// Implementations must not mutate the event they receive. They return
// either that same event (nothing to change) or a new one.
type Formatter interface {
	Format(event *LogEvent) *LogEvent
}

// FormatterFunc is a function adapter for Formatter.
type FormatterFunc func(event *LogEvent) *LogEvent

// Format calls the function.
func (f FormatterFunc) Format(event *LogEvent) *LogEvent {
	return f(event)
}
