package formatters

import (
	"maps"

	"github.com/willibrandon/botlog/core"
)

const (
	// BotIdentifierProperty is the property that carries the bot identifier.
	BotIdentifierProperty = "bot-identifier"

	// RunIdentifierProperty is the property that carries the run identifier.
	RunIdentifierProperty = "run-identifier"

	// DefaultBotIdentifier tags events of bots that were not given a name.
	DefaultBotIdentifier = "NO_BOT_ID"
)

// IdentityFormatter tags every event with the identity of the running bot.
// Both identifiers are fixed when the formatter is created.
type IdentityFormatter struct {
	botIdentifier string
	runIdentifier string
}

// NewIdentityFormatter creates a formatter that adds the bot and run
// identifiers to every event.
func NewIdentityFormatter(botIdentifier, runIdentifier string) *IdentityFormatter {
	return &IdentityFormatter{
		botIdentifier: botIdentifier,
		runIdentifier: runIdentifier,
	}
}

// BotIdentifier returns the bot identifier added to events.
func (f *IdentityFormatter) BotIdentifier() string { return f.botIdentifier }

// RunIdentifier returns the run identifier added to events.
func (f *IdentityFormatter) RunIdentifier() string { return f.runIdentifier }

// Format returns a copy of the event carrying both identifiers. Existing
// properties with the same names are overwritten.
func (f *IdentityFormatter) Format(event *core.LogEvent) *core.LogEvent {
	props := make(map[string]any, len(event.Properties)+2)
	maps.Copy(props, event.Properties)
	props[BotIdentifierProperty] = f.botIdentifier
	props[RunIdentifierProperty] = f.runIdentifier
	return event.WithProperties(props)
}
