package botlog

import (
	"bytes"
	"errors"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/willibrandon/botlog/core"
	"github.com/willibrandon/botlog/formatters"
	"github.com/willibrandon/botlog/sinks"
	"github.com/willibrandon/botlog/testutil"
)

func TestLoggerLevels(t *testing.T) {
	memSink := sinks.NewMemorySink()
	logger := New(WithSink(memSink))

	logger.Verbose("Verbose message")
	logger.Debug("Debug message")
	logger.Info("Info message")
	logger.Warn("Warning message")
	logger.Error("Error message")
	logger.Fatal("Fatal message")

	events := memSink.Events()
	if len(events) != 4 {
		t.Fatalf("Expected 4 events, got %d", len(events))
	}

	expected := []core.LogEventLevel{
		core.InformationLevel,
		core.WarningLevel,
		core.ErrorLevel,
		core.FatalLevel,
	}
	for i, event := range events {
		if event.Level != expected[i] {
			t.Errorf("Event %d: expected level %v, got %v", i, expected[i], event.Level)
		}
	}
}

func TestLoggerMinimumLevelOptions(t *testing.T) {
	tests := []struct {
		name    string
		option  Option
		enabled core.LogEventLevel
		blocked core.LogEventLevel
	}{
		{"verbose", Verbose(), core.VerboseLevel, -1},
		{"debug", Debug(), core.DebugLevel, core.VerboseLevel},
		{"warning", Warning(), core.WarningLevel, core.InformationLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(tt.option)
			if !logger.IsEnabled(tt.enabled) {
				t.Errorf("expected %v to be enabled", tt.enabled)
			}
			if tt.blocked >= 0 && logger.IsEnabled(tt.blocked) {
				t.Errorf("expected %v to be disabled", tt.blocked)
			}
		})
	}
}

func TestLoggerProperties(t *testing.T) {
	memSink := sinks.NewMemorySink()
	logger := New(
		WithSink(memSink),
		WithProperty("service", "keeper"),
		WithProperties(map[string]any{"chain": "mainnet"}),
	)

	logger.Info("Checked positions", "count", 3, "chain", "testnet")

	event := memSink.LastEvent()
	testutil.AssertEqual(t, event.Message, "Checked positions", "message")
	testutil.AssertEqual(t, event.Properties["service"], any("keeper"), "service")
	testutil.AssertEqual(t, event.Properties["count"], any(3), "count")
	// Call-site values win over global ones.
	testutil.AssertEqual(t, event.Properties["chain"], any("testnet"), "chain")
}

func TestLoggerErrorKeyFillsErrorSlot(t *testing.T) {
	memSink := sinks.NewMemorySink()
	logger := New(WithSink(memSink), WithoutDefaultFormatters())

	err := errors.New("boom")
	logger.Error("Update failed", "error", err, "at", "Liquidator#update")

	event := memSink.LastEvent()
	if event.Error != err {
		t.Errorf("expected error slot to hold the error, got %#v", event.Error)
	}
	if _, ok := event.Properties["error"]; ok {
		t.Error("error should not appear among the properties")
	}
	testutil.AssertEqual(t, event.Properties["at"], any("Liquidator#update"), "at")
}

func TestLoggerDefaultFormatters(t *testing.T) {
	memSink := sinks.NewMemorySink()
	logger := New(WithSink(memSink))

	logger.Error("Liquidation failed",
		"error", []any{errors.New("first"), []error{errors.New("second")}},
		"amount", big.NewInt(1000),
	)

	event := memSink.LastEvent()
	stacks, ok := event.Error.([]string)
	if !ok {
		t.Fatalf("expected []string error slot, got %T", event.Error)
	}
	testutil.AssertEqual(t, len(stacks), 2, "stack count")
	testutil.AssertEqual(t, stacks[0], "first", "first stack")
	testutil.AssertEqual(t, stacks[1], "second", "second stack")
	testutil.AssertEqual(t, event.Properties["amount"], any("1000"), "amount")
}

func TestLoggerWithoutDefaultFormatters(t *testing.T) {
	memSink := sinks.NewMemorySink()
	logger := New(WithSink(memSink), WithoutDefaultFormatters())

	amount := big.NewInt(1000)
	logger.Info("Raw", "amount", amount)

	if memSink.LastEvent().Properties["amount"] != amount {
		t.Error("big number should be left alone without default formatters")
	}
}

func TestLoggerIdentity(t *testing.T) {
	memSink := sinks.NewMemorySink()
	logger := New(WithSink(memSink), WithIdentity("keeper-1", "run-42"))

	logger.Info("Started", formatters.BotIdentifierProperty, "spoofed")

	event := memSink.LastEvent()
	testutil.AssertEqual(t, event.Properties[formatters.BotIdentifierProperty], any("keeper-1"), "bot identifier")
	testutil.AssertEqual(t, event.Properties[formatters.RunIdentifierProperty], any("run-42"), "run identifier")
}

func TestLoggerFormatterOrder(t *testing.T) {
	memSink := sinks.NewMemorySink()
	var seen any
	logger := New(
		WithSink(memSink),
		WithIdentity("bot", "run"),
		WithFormatter(core.FormatterFunc(func(e *core.LogEvent) *core.LogEvent {
			seen = e.Properties[formatters.RunIdentifierProperty]
			return e
		})),
	)

	logger.Info("ordered")

	if seen != "run" {
		t.Errorf("custom formatter should run after identity tagging, saw %v", seen)
	}
}

func TestLoggerLinkAnchorsStripped(t *testing.T) {
	memSink := sinks.NewMemorySink()
	logger := New(WithSink(memSink), WithLinkAnchorsStripped())

	logger.Info("Tx <https://etherscan.io/tx/0xabc|0xabc> mined", "link", "<https://x.io|x>")

	event := memSink.LastEvent()
	testutil.AssertEqual(t, event.Message, "Tx https://etherscan.io/tx/0xabc mined", "message")
	testutil.AssertEqual(t, event.Properties["link"], any("https://x.io"), "link")
}

func TestLoggerWriteEvent(t *testing.T) {
	memSink := sinks.NewMemorySink()
	logger := New(WithSink(memSink), WithoutDefaultFormatters()).with("service", "keeper", "error", "ctx-error")

	ts := time.Date(2024, 1, 15, 10, 30, 45, 0, time.UTC)
	logger.WriteEvent(&core.LogEvent{
		Timestamp:  ts,
		Level:      core.WarningLevel,
		Message:    "bridged",
		Properties: map[string]any{"service": "override", "error": "own-error"},
	})

	event := memSink.LastEvent()
	if !event.Timestamp.Equal(ts) {
		t.Errorf("timestamp changed: %v", event.Timestamp)
	}
	testutil.AssertEqual(t, event.Properties["service"], any("override"), "service")
	testutil.AssertEqual(t, event.Error, any("own-error"), "error slot")

	logger.WriteEvent(&core.LogEvent{Level: core.InformationLevel, Message: "bare"})
	event = memSink.LastEvent()
	if event.Timestamp.IsZero() {
		t.Error("expected a timestamp to be filled in")
	}
	testutil.AssertEqual(t, event.Properties["service"], any("keeper"), "context property")
	testutil.AssertEqual(t, event.Error, any("ctx-error"), "context error")

	logger.WriteEvent(&core.LogEvent{Level: core.DebugLevel, Message: "filtered"})
	logger.WriteEvent(nil)
	testutil.AssertEqual(t, memSink.Count(), 2, "event count")
}

func TestLoggerConsoleOutput(t *testing.T) {
	var buf bytes.Buffer
	sink := sinks.NewConsoleSinkWithWriter(&buf)
	sink.SetUseColor(false)
	logger := New(WithSink(sink), WithIdentity("keeper-1", "run-42"))

	logger.Warn("Gas price high", "gwei", big.NewInt(250))

	out := buf.String()
	testutil.AssertStringContains(t, out, "[warn]: {", "line shape")
	testutil.AssertStringContains(t, out, `"gwei": "250"`, "big number")
	testutil.AssertStringContains(t, out, `"bot-identifier": "keeper-1"`, "bot identifier")
	testutil.AssertStringContains(t, out, `"message": "Gas price high"`, "message")
}

type closingSink struct {
	err    error
	closed bool
}

func (s *closingSink) Emit(*core.LogEvent) {}

func (s *closingSink) Close() error {
	s.closed = true
	return s.err
}

func TestLoggerClose(t *testing.T) {
	first := &closingSink{err: errors.New("first failed")}
	second := &closingSink{}
	third := &closingSink{err: errors.New("third failed")}
	logger := New(WithSink(first), WithSink(second), WithSink(third))

	err := logger.Close()
	testutil.AssertError(t, err, "close should report sink errors")
	if !first.closed || !second.closed || !third.closed {
		t.Error("every sink should be closed")
	}
	if !strings.Contains(err.Error(), "first failed") || !strings.Contains(err.Error(), "third failed") {
		t.Errorf("expected both errors, got %v", err)
	}

	testutil.AssertNoError(t, New(WithSink(&closingSink{})).Close(), "clean close")
}

func TestLoggerDefaultIdentity(t *testing.T) {
	memSink := sinks.NewMemorySink()
	logger := New(WithSink(memSink))

	logger.Info("first")
	logger.With("step", 2).Info("second")

	events := memSink.Events()
	testutil.AssertEqual(t, len(events), 2, "event count")
	for _, e := range events {
		testutil.AssertEqual(t, e.Properties[formatters.BotIdentifierProperty], any(formatters.DefaultBotIdentifier), "bot identifier")
	}

	runID, ok := events[0].Properties[formatters.RunIdentifierProperty].(string)
	if !ok {
		t.Fatalf("expected a string run identifier, got %#v", events[0].Properties[formatters.RunIdentifierProperty])
	}
	if _, err := uuid.Parse(runID); err != nil {
		t.Errorf("expected a UUID run identifier, got %q", runID)
	}
	testutil.AssertEqual(t, events[1].Properties[formatters.RunIdentifierProperty], any(runID), "run identifier shared by With")

	other := sinks.NewMemorySink()
	New(WithSink(other)).Info("other")
	if other.LastEvent().Properties[formatters.RunIdentifierProperty] == runID {
		t.Error("each logger should get its own run identifier")
	}
}

func TestLoggerWithoutDefaultFormattersKeepsExplicitIdentity(t *testing.T) {
	memSink := sinks.NewMemorySink()
	New(WithSink(memSink), WithoutDefaultFormatters()).Info("bare")
	if _, ok := memSink.LastEvent().Properties[formatters.BotIdentifierProperty]; ok {
		t.Error("no identity expected without default formatters")
	}

	New(WithSink(memSink), WithoutDefaultFormatters(), WithIdentity("bot", "run")).Info("tagged")
	testutil.AssertEqual(t, memSink.LastEvent().Properties[formatters.BotIdentifierProperty], any("bot"), "explicit identity")
}
