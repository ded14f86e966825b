package sinks

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"golang.org/x/term"

	"github.com/willibrandon/botlog/core"
)

// Color represents an ANSI color code.
type Color string

const (
	ColorReset Color = "\033[0m"
	ColorBold  Color = "\033[1m"
	ColorDim   Color = "\033[2m"

	ColorBlack   Color = "\033[30m"
	ColorRed     Color = "\033[31m"
	ColorGreen   Color = "\033[32m"
	ColorYellow  Color = "\033[33m"
	ColorBlue    Color = "\033[34m"
	ColorMagenta Color = "\033[35m"
	ColorCyan    Color = "\033[36m"
	ColorWhite   Color = "\033[37m"

	ColorBrightBlack Color = "\033[90m"
	ColorBrightRed   Color = "\033[91m"
)

// ForceColorEnvVar overrides color detection: "0", "false", "off" or "none"
// disable colors, "1", "true", "on", "8", "16" or "256" enable them.
const ForceColorEnvVar = "BOTLOG_FORCE_COLOR"

// Ansi256Color creates an ANSI 256-color code.
func Ansi256Color(n int) Color {
	return Color(fmt.Sprintf("\033[38;5;%dm", n))
}

// ConsoleTheme defines the colors and layout of console output.
type ConsoleTheme struct {
	// Level colors
	VerboseColor     Color
	DebugColor       Color
	InformationColor Color
	WarningColor     Color
	ErrorColor       Color
	FatalColor       Color

	// TimestampColor colors the leading timestamp.
	TimestampColor Color
	// ErrorBlockColor colors the error stacks printed under the line.
	ErrorBlockColor Color

	// TimestampFormat is a time layout string.
	TimestampFormat string
	// Indent is the JSON indentation of the extra fields.
	Indent string
}

// DefaultTheme colors only the level name, using the classic npm level colors.
func DefaultTheme() *ConsoleTheme {
	return &ConsoleTheme{
		VerboseColor:     ColorCyan,
		DebugColor:       ColorBlue,
		InformationColor: ColorGreen,
		WarningColor:     ColorYellow,
		ErrorColor:       ColorRed,
		FatalColor:       ColorBrightRed + ColorBold,

		TimestampFormat: "2006-01-02 15:04:05",
		Indent:          "  ",
	}
}

// NoColorTheme returns a theme without any colors.
func NoColorTheme() *ConsoleTheme {
	return &ConsoleTheme{
		TimestampFormat: "2006-01-02 15:04:05",
		Indent:          "  ",
	}
}

// LiterateTheme is a softer theme for 256-color terminals that also dims the
// timestamp and highlights error stacks.
func LiterateTheme() *ConsoleTheme {
	return &ConsoleTheme{
		VerboseColor:     Ansi256Color(7),
		DebugColor:       Ansi256Color(7),
		InformationColor: Ansi256Color(15),
		WarningColor:     Ansi256Color(11),
		ErrorColor:       Ansi256Color(9),
		FatalColor:       Ansi256Color(9) + ColorBold,

		TimestampColor:  Ansi256Color(7),
		ErrorBlockColor: Ansi256Color(9),

		TimestampFormat: "2006-01-02 15:04:05",
		Indent:          "  ",
	}
}

// ThemeByName resolves "default", "literate" or "none". Unknown names yield
// the default theme and false.
func ThemeByName(name string) (*ConsoleTheme, bool) {
	switch strings.ToLower(name) {
	case "", "default":
		return DefaultTheme(), true
	case "literate":
		return LiterateTheme(), true
	case "none", "nocolor", "plain":
		return NoColorTheme(), true
	default:
		return DefaultTheme(), false
	}
}

// GetLevelColor returns the color for a specific log level.
func (t *ConsoleTheme) GetLevelColor(level core.LogEventLevel) Color {
	switch level {
	case core.VerboseLevel:
		return t.VerboseColor
	case core.DebugLevel:
		return t.DebugColor
	case core.InformationLevel:
		return t.InformationColor
	case core.WarningLevel:
		return t.WarningColor
	case core.ErrorLevel:
		return t.ErrorColor
	case core.FatalLevel:
		return t.FatalColor
	default:
		return ""
	}
}

func (t *ConsoleTheme) hasColors() bool {
	return t.VerboseColor != "" || t.DebugColor != "" || t.InformationColor != "" ||
		t.WarningColor != "" || t.ErrorColor != "" || t.FatalColor != "" ||
		t.TimestampColor != "" || t.ErrorBlockColor != ""
}

// shouldUseColor determines if color output should be used for w.
func shouldUseColor(w io.Writer) bool {
	if forceColor := os.Getenv(ForceColorEnvVar); forceColor != "" {
		switch strings.ToLower(forceColor) {
		case "none", "0", "false", "off":
			return false
		case "1", "8", "16", "256", "true", "on":
			return true
		}
	}

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	f, ok := w.(interface{ Fd() uintptr })
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return false
	}

	if runtime.GOOS == "windows" {
		// Classic conhost only understands ANSI once VT processing is on.
		if _, ok := os.LookupEnv("WT_SESSION"); ok {
			return true
		}
		if _, ok := os.LookupEnv("ConEmuPID"); ok {
			return true
		}
		return vtProcessingEnabled()
	}
	return true
}

// colorize applies color to a string if colors are enabled.
func colorize(s string, color Color, useColor bool) string {
	if !useColor || color == "" {
		return s
	}
	return string(color) + s + string(ColorReset)
}
