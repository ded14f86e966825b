package formatters

import "github.com/willibrandon/botlog/core"

// Chain applies formatters in order, feeding each the previous result.
type Chain []core.Formatter

// NewChain creates a chain from the given formatters. Nil entries are skipped.
func NewChain(formatters ...core.Formatter) Chain {
	chain := make(Chain, 0, len(formatters))
	for _, f := range formatters {
		if f != nil {
			chain = append(chain, f)
		}
	}
	return chain
}

// Format runs the event through every formatter. A formatter returning nil
// leaves the event as it was.
func (c Chain) Format(event *core.LogEvent) *core.LogEvent {
	for _, f := range c {
		if next := f.Format(event); next != nil {
			event = next
		}
	}
	return event
}

// Default returns the standard chain: error stack extraction, big number
// normalization, then identity tagging.
func Default(botIdentifier, runIdentifier string) Chain {
	return Standard(NewIdentityFormatter(botIdentifier, runIdentifier))
}

// Standard returns error stack extraction and big number normalization,
// followed by identity tagging when identity is not nil. Loggers and Default
// both build their chains here, so the order is fixed in one place.
func Standard(identity *IdentityFormatter) Chain {
	if identity == nil {
		return NewChain(NewErrorStackFormatter(), NewBigNumberFormatter())
	}
	return NewChain(NewErrorStackFormatter(), NewBigNumberFormatter(), identity)
}
