package core

import (
	"fmt"
	"strings"
)

// LogEventLevel specifies the severity of a log event.
type LogEventLevel int

const (
	// VerboseLevel is the most detailed logging level.
	VerboseLevel LogEventLevel = iota

	// DebugLevel is for debugging information.
	DebugLevel

	// InformationLevel is for informational messages.
	InformationLevel

	// WarningLevel is for warnings.
	WarningLevel

	// ErrorLevel is for errors.
	ErrorLevel

	// FatalLevel is for fatal errors.
	FatalLevel
)

// String returns the lower-case name used in rendered output.
func (l LogEventLevel) String() string {
	switch l {
	case VerboseLevel:
		return "verbose"
	case DebugLevel:
		return "debug"
	case InformationLevel:
		return "info"
	case WarningLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	case FatalLevel:
		return "fatal"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// ParseLevel converts a level name into a LogEventLevel. Both the short
// console names and the long names are accepted, case-insensitively.
func ParseLevel(s string) (LogEventLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "verbose", "vrb", "trace", "silly":
		return VerboseLevel, nil
	case "debug", "dbg":
		return DebugLevel, nil
	case "information", "info", "inf", "":
		return InformationLevel, nil
	case "warning", "warn", "wrn":
		return WarningLevel, nil
	case "error", "err":
		return ErrorLevel, nil
	case "fatal", "ftl", "crit", "critical":
		return FatalLevel, nil
	default:
		return InformationLevel, fmt.Errorf("unknown log level: %s", s)
	}
}
