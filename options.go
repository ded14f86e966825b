package botlog

import (
	"github.com/google/uuid"

	"github.com/willibrandon/botlog/core"
	"github.com/willibrandon/botlog/formatters"
)

// config holds the configuration for building a logger.
type config struct {
	minimumLevel      core.LogEventLevel
	defaultFormatters bool
	identity          *formatters.IdentityFormatter
	formatters        []core.Formatter
	sinks             []core.LogEventSink
	properties        map[string]any
}

// Option is a functional option for configuring a logger.
type Option func(*config)

// WithMinimumLevel sets the minimum log level.
func WithMinimumLevel(level core.LogEventLevel) Option {
	return func(c *config) {
		c.minimumLevel = level
	}
}

// WithSink adds a sink to the pipeline.
func WithSink(sink core.LogEventSink) Option {
	return func(c *config) {
		c.sinks = append(c.sinks, sink)
	}
}

// WithFormatter appends a formatter. It runs after the default chain.
func WithFormatter(formatter core.Formatter) Option {
	return func(c *config) {
		c.formatters = append(c.formatters, formatter)
	}
}

// WithIdentity tags every event with the bot and run identifiers.
func WithIdentity(botIdentifier, runIdentifier string) Option {
	return func(c *config) {
		c.identity = formatters.NewIdentityFormatter(botIdentifier, runIdentifier)
	}
}

// WithoutDefaultFormatters disables error stack extraction, big number
// normalization and the default identity. An identity set with WithIdentity
// and formatters added with WithFormatter still run.
func WithoutDefaultFormatters() Option {
	return func(c *config) {
		c.defaultFormatters = false
	}
}

// WithProperty adds a global property to all log events.
func WithProperty(name string, value any) Option {
	return func(c *config) {
		c.properties[name] = value
	}
}

// WithProperties adds multiple global properties.
func WithProperties(properties map[string]any) Option {
	return func(c *config) {
		for k, v := range properties {
			c.properties[k] = v
		}
	}
}

// chain assembles the formatters in their fixed order. Unless default
// formatters are disabled, events of a logger without WithIdentity are tagged
// with DefaultBotIdentifier and a run identifier generated here.
func (c *config) chain() formatters.Chain {
	identity := c.identity
	if identity == nil && c.defaultFormatters {
		identity = formatters.NewIdentityFormatter(formatters.DefaultBotIdentifier, uuid.NewString())
	}

	var chain formatters.Chain
	switch {
	case c.defaultFormatters:
		chain = formatters.Standard(identity)
	case identity != nil:
		chain = formatters.NewChain(identity)
	}
	return append(chain, formatters.NewChain(c.formatters...)...)
}
