package botlog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/willibrandon/botlog/core"
	"github.com/willibrandon/botlog/selflog"
	"github.com/willibrandon/botlog/sinks"
)

type panickingFormatter struct{}

func (panickingFormatter) Format(*core.LogEvent) *core.LogEvent { panic("formatter exploded") }

type panickingSink struct{}

func (panickingSink) Emit(*core.LogEvent) { panic("sink exploded") }
func (panickingSink) Close() error        { return nil }

func TestPipelineFormatterPanic(t *testing.T) {
	var selfLog bytes.Buffer
	selflog.Enable(&selfLog)
	defer selflog.Disable()

	memSink := sinks.NewMemorySink()
	p := newPipeline([]core.Formatter{panickingFormatter{}}, []core.LogEventSink{memSink})

	p.process(&core.LogEvent{Level: core.InformationLevel, Message: "survives"})

	if memSink.Count() != 1 || memSink.LastEvent().Message != "survives" {
		t.Fatal("event should reach the sink unchanged")
	}
	if !strings.Contains(selfLog.String(), "formatter botlog.panickingFormatter panicked") {
		t.Errorf("expected selflog entry, got %q", selfLog.String())
	}
}

func TestPipelineNilFormatterResult(t *testing.T) {
	memSink := sinks.NewMemorySink()
	drop := core.FormatterFunc(func(*core.LogEvent) *core.LogEvent { return nil })
	p := newPipeline([]core.Formatter{drop}, []core.LogEventSink{memSink})

	p.process(&core.LogEvent{Message: "kept"})

	if memSink.Count() != 1 {
		t.Fatalf("expected event to be kept, got %d events", memSink.Count())
	}
}

func TestPipelineSinkPanic(t *testing.T) {
	var selfLog bytes.Buffer
	selflog.Enable(&selfLog)
	defer selflog.Disable()

	memSink := sinks.NewMemorySink()
	p := newPipeline(nil, []core.LogEventSink{panickingSink{}, memSink})

	p.process(&core.LogEvent{Message: "after panic"})

	if memSink.Count() != 1 {
		t.Error("later sinks should still receive the event")
	}
	if !strings.Contains(selfLog.String(), "sink botlog.panickingSink panicked") {
		t.Errorf("expected selflog entry, got %q", selfLog.String())
	}
}

func TestPipelineFormatterSequence(t *testing.T) {
	var order []string
	step := func(name string) core.Formatter {
		return core.FormatterFunc(func(e *core.LogEvent) *core.LogEvent {
			order = append(order, name)
			return e.WithProperties(map[string]any{"last": name})
		})
	}

	memSink := sinks.NewMemorySink()
	p := newPipeline([]core.Formatter{step("a"), step("b")}, []core.LogEventSink{memSink})
	p.process(&core.LogEvent{})

	if strings.Join(order, ",") != "a,b" {
		t.Errorf("unexpected order %v", order)
	}
	if memSink.LastEvent().Properties["last"] != "b" {
		t.Error("sink should see the last formatter's output")
	}
}
