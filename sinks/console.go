package sinks

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"strings"
	"sync"

	"github.com/willibrandon/botlog/core"
	"github.com/willibrandon/botlog/formatters"
	"github.com/willibrandon/botlog/selflog"
)

// MessageProperty is the key under which the message appears in the
// serialized extra fields.
const MessageProperty = "message"

// ConsoleSink writes log events to the console, one rendering per event:
//
//	2024-01-15 10:30:45 [info]: {
//	  "at": "Liquidator#update",
//	  "message": "Checked positions"
//	}
//
// The level name is colored by severity. When the event carries an error,
// its stacks follow on the next lines.
type ConsoleSink struct {
	output   io.Writer
	mu       sync.Mutex
	theme    *ConsoleTheme
	useColor bool
}

// NewConsoleSink creates a new console sink that writes to stdout.
func NewConsoleSink() *ConsoleSink {
	enableWindowsVTProcessing()

	return &ConsoleSink{
		output:   os.Stdout,
		theme:    DefaultTheme(),
		useColor: shouldUseColor(os.Stdout),
	}
}

// NewConsoleSinkWithWriter creates a new console sink with a custom writer.
func NewConsoleSinkWithWriter(w io.Writer) *ConsoleSink {
	return &ConsoleSink{
		output:   w,
		theme:    DefaultTheme(),
		useColor: shouldUseColor(w),
	}
}

// NewConsoleSinkWithTheme creates a new console sink with a custom theme.
func NewConsoleSinkWithTheme(theme *ConsoleTheme) *ConsoleSink {
	sink := NewConsoleSink()
	sink.theme = theme
	if !theme.hasColors() {
		sink.useColor = false
	}
	return sink
}

// SetTheme updates the console theme.
func (cs *ConsoleSink) SetTheme(theme *ConsoleTheme) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.theme = theme
}

// SetUseColor enables or disables color output.
func (cs *ConsoleSink) SetUseColor(useColor bool) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.useColor = useColor
}

// SetOutput changes the destination writer.
func (cs *ConsoleSink) SetOutput(w io.Writer) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.output = w
}

// Emit writes the log event to the console.
func (cs *ConsoleSink) Emit(event *core.LogEvent) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	line := cs.formatEvent(event)
	if _, err := fmt.Fprintln(cs.output, line); err != nil {
		if selflog.IsEnabled() {
			selflog.Printf("[console] write failed: %v", err)
		}
	}
}

// Close releases any resources held by the sink.
func (cs *ConsoleSink) Close() error {
	return nil
}

// formatEvent renders "<timestamp> [<level>]: <extra fields>" followed by the
// error block, if any.
func (cs *ConsoleSink) formatEvent(event *core.LogEvent) string {
	var sb strings.Builder

	timestamp := event.Timestamp.Format(cs.theme.TimestampFormat)
	sb.WriteString(colorize(timestamp, cs.theme.TimestampColor, cs.useColor))
	sb.WriteString(" [")
	sb.WriteString(colorize(event.Level.String(), cs.theme.GetLevelColor(event.Level), cs.useColor))
	sb.WriteString("]: ")
	sb.WriteString(cs.formatExtras(event))

	if event.HasError() {
		sb.WriteByte('\n')
		sb.WriteString(colorize(formatErrorBlock(event.Error), cs.theme.ErrorBlockColor, cs.useColor))
	}

	return sb.String()
}

// formatExtras serializes the properties plus the message as indented JSON.
// It returns "" when there is nothing to show.
func (cs *ConsoleSink) formatExtras(event *core.LogEvent) string {
	extras := make(map[string]any, len(event.Properties)+1)
	maps.Copy(extras, event.Properties)
	if event.Message != "" {
		extras[MessageProperty] = event.Message
	}
	if len(extras) == 0 {
		return ""
	}

	data, err := marshalExtras(extras, cs.theme.Indent)
	if err != nil {
		if selflog.IsEnabled() {
			selflog.Printf("[console] failed to serialize properties: %v", err)
		}
		return fmt.Sprintf("%v", extras)
	}
	return data
}

// marshalExtras encodes extras without HTML escaping so links stay readable.
// Big numbers are written as strings.
func marshalExtras(extras map[string]any, indent string) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while serializing: %v", r)
		}
	}()

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(formatters.ReplaceBigNumbers(extras)); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// formatErrorBlock renders the error slot. Raw errors are converted to their
// stacks first, so the block looks the same with or without the formatter chain.
func formatErrorBlock(value any) string {
	switch v := formatters.ExtractErrorStacks(value).(type) {
	case []string:
		return strings.Join(v, "\n")
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
