package botlog

import (
	"io"

	"github.com/willibrandon/botlog/core"
	"github.com/willibrandon/botlog/formatters"
	"github.com/willibrandon/botlog/sinks"
)

// WithConsole adds a console sink writing to stdout.
func WithConsole() Option {
	return WithSink(sinks.NewConsoleSink())
}

// WithConsoleTheme adds a console sink with a custom theme.
func WithConsoleTheme(theme *sinks.ConsoleTheme) Option {
	return WithSink(sinks.NewConsoleSinkWithTheme(theme))
}

// WithConsoleWriter adds a console sink writing to w.
func WithConsoleWriter(w io.Writer) Option {
	return WithSink(sinks.NewConsoleSinkWithWriter(w))
}

// WithLinkAnchorsStripped rewrites <url|label> links to bare URLs.
func WithLinkAnchorsStripped() Option {
	return WithFormatter(formatters.NewLinkAnchorFormatter())
}

// Debug sets the minimum level to Debug.
func Debug() Option {
	return WithMinimumLevel(core.DebugLevel)
}

// Verbose sets the minimum level to Verbose.
func Verbose() Option {
	return WithMinimumLevel(core.VerboseLevel)
}

// Warning sets the minimum level to Warning.
func Warning() Option {
	return WithMinimumLevel(core.WarningLevel)
}
