package botlog

import (
	"github.com/willibrandon/botlog/core"
	"github.com/willibrandon/botlog/selflog"
)

// pipeline represents the immutable logging pipeline.
// Once created, the pipeline cannot be modified.
type pipeline struct {
	formatters []core.Formatter
	sinks      []core.LogEventSink
}

func newPipeline(formatters []core.Formatter, sinks []core.LogEventSink) *pipeline {
	return &pipeline{
		formatters: formatters,
		sinks:      sinks,
	}
}

// process runs a log event through all formatters, then hands it to every sink.
func (p *pipeline) process(event *core.LogEvent) {
	for _, f := range p.formatters {
		event = applyFormatter(f, event)
	}
	for _, sink := range p.sinks {
		emit(sink, event)
	}
}

// applyFormatter never lets a formatter drop an event: a nil result or a
// panic leaves the event as it was.
func applyFormatter(f core.Formatter, event *core.LogEvent) (out *core.LogEvent) {
	defer func() {
		if r := recover(); r != nil {
			if selflog.IsEnabled() {
				selflog.Printf("[pipeline] formatter %T panicked: %v", f, r)
			}
			out = event
		}
	}()

	if next := f.Format(event); next != nil {
		return next
	}
	return event
}

func emit(sink core.LogEventSink, event *core.LogEvent) {
	defer func() {
		if r := recover(); r != nil {
			if selflog.IsEnabled() {
				selflog.Printf("[pipeline] sink %T panicked: %v", sink, r)
			}
		}
	}()
	sink.Emit(event)
}
