package sinks

import (
	"bytes"
	"strings"
	"testing"

	"github.com/willibrandon/botlog/core"
)

func TestConsoleThemes(t *testing.T) {
	event := &core.LogEvent{
		Timestamp: testTime,
		Level:     core.ErrorLevel,
		Message:   "Dispute failed",
		Error:     "stack",
	}

	tests := []struct {
		name     string
		theme    *ConsoleTheme
		expected []string
	}{
		{"default", DefaultTheme(), []string{"2024-01-15 10:30:45 ", "[\033[31merror\033[0m]", "\nstack"}},
		{"literate", LiterateTheme(), []string{"\033[38;5;7m2024-01-15 10:30:45\033[0m", "\033[38;5;9mstack\033[0m"}},
		{"none", NoColorTheme(), []string{"2024-01-15 10:30:45 [error]: ", "\nstack"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			sink := &ConsoleSink{output: &buf, theme: tt.theme, useColor: true}
			sink.Emit(event)

			out := buf.String()
			for _, part := range tt.expected {
				if !strings.Contains(out, part) {
					t.Errorf("expected %q in output %q", part, out)
				}
			}
			if !tt.theme.hasColors() && strings.Contains(out, "\033[") {
				t.Errorf("expected no escape codes, got %q", out)
			}
		})
	}
}

func TestThemeByName(t *testing.T) {
	if _, ok := ThemeByName("literate"); !ok {
		t.Error("expected literate to resolve")
	}
	if theme, ok := ThemeByName("none"); !ok || theme.hasColors() {
		t.Error("expected none to resolve to a colorless theme")
	}
	if theme, ok := ThemeByName("neon"); ok || theme == nil {
		t.Error("expected unknown theme to fall back to the default")
	}
}

func TestShouldUseColor(t *testing.T) {
	var buf bytes.Buffer

	t.Setenv(ForceColorEnvVar, "1")
	if !shouldUseColor(&buf) {
		t.Error("forced color should win")
	}

	t.Setenv(ForceColorEnvVar, "off")
	if shouldUseColor(&buf) {
		t.Error("forced off should disable color")
	}

	t.Setenv(ForceColorEnvVar, "")
	if shouldUseColor(&buf) {
		t.Error("a plain buffer is not a terminal")
	}
}

func TestColorize(t *testing.T) {
	if got := colorize("x", ColorRed, false); got != "x" {
		t.Errorf("disabled colorize changed text: %q", got)
	}
	if got := colorize("x", "", true); got != "x" {
		t.Errorf("empty color changed text: %q", got)
	}
	if got := colorize("x", ColorRed, true); got != "\033[31mx\033[0m" {
		t.Errorf("unexpected colored text: %q", got)
	}
}
