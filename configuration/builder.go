package configuration

import (
	"errors"

	"github.com/willibrandon/botlog"
	"github.com/willibrandon/botlog/sinks"
)

// Build creates a console logger tagged with the configured identity.
// Extra options are applied after the configured ones.
func Build(cfg *Config, extra ...botlog.Option) (*botlog.Logger, error) {
	if cfg == nil {
		return nil, errors.New("configuration is nil")
	}

	theme, _ := sinks.ThemeByName(cfg.Theme)
	var console *sinks.ConsoleSink
	if cfg.Output != nil {
		console = sinks.NewConsoleSinkWithWriter(cfg.Output)
		console.SetTheme(theme)
	} else {
		console = sinks.NewConsoleSinkWithTheme(theme)
	}
	if cfg.NoColor {
		console.SetUseColor(false)
	}

	options := []botlog.Option{
		botlog.WithMinimumLevel(cfg.Level),
		botlog.WithSink(console),
		botlog.WithIdentity(cfg.BotIdentifier, cfg.RunIdentifier),
	}
	if len(cfg.Properties) > 0 {
		options = append(options, botlog.WithProperties(cfg.Properties))
	}
	if cfg.StripLinks {
		options = append(options, botlog.WithLinkAnchorsStripped())
	}
	options = append(options, extra...)

	return botlog.New(options...), nil
}
