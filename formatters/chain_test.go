package formatters

import (
	"math/big"
	"testing"

	"github.com/pkg/errors"

	"github.com/willibrandon/botlog/core"
)

func TestChainOrder(t *testing.T) {
	var order []string
	record := func(name string) core.Formatter {
		return core.FormatterFunc(func(event *core.LogEvent) *core.LogEvent {
			order = append(order, name)
			return event
		})
	}

	NewChain(record("first"), nil, record("second")).Format(&core.LogEvent{})

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("unexpected order %v", order)
	}
}

func TestChainNilResultKeepsEvent(t *testing.T) {
	dropper := core.FormatterFunc(func(*core.LogEvent) *core.LogEvent { return nil })
	event := &core.LogEvent{Message: "kept"}

	if got := NewChain(dropper).Format(event); got != event {
		t.Error("expected the event to survive a nil result")
	}
}

func TestDefaultChain(t *testing.T) {
	chain := Default("bot", "run")
	if len(chain) != 3 {
		t.Fatalf("expected 3 formatters, got %d", len(chain))
	}

	event := &core.LogEvent{
		Message: "settled",
		Properties: map[string]any{
			"amount": big.NewInt(1000),
		},
		Error: []error{errors.New("one"), errors.New("two")},
	}

	got := chain.Format(event)

	if got.Properties["amount"] != "1000" {
		t.Errorf("expected amount to be stringified, got %#v", got.Properties["amount"])
	}
	if got.Properties[BotIdentifierProperty] != "bot" || got.Properties[RunIdentifierProperty] != "run" {
		t.Errorf("expected identity properties, got %v", got.Properties)
	}
	stacks, ok := got.Error.([]string)
	if !ok || len(stacks) != 2 {
		t.Fatalf("expected two stacks, got %#v", got.Error)
	}
	if _, ok := event.Properties["amount"].(*big.Int); !ok {
		t.Error("input event was modified")
	}
}

func TestStandardChain(t *testing.T) {
	chain := Standard(nil)
	if len(chain) != 2 {
		t.Fatalf("expected 2 formatters without identity, got %d", len(chain))
	}
	if _, ok := chain[0].(*ErrorStackFormatter); !ok {
		t.Errorf("expected error stacks first, got %T", chain[0])
	}
	if _, ok := chain[1].(*BigNumberFormatter); !ok {
		t.Errorf("expected big numbers second, got %T", chain[1])
	}

	identity := NewIdentityFormatter("bot", "run")
	chain = Standard(identity)
	if len(chain) != 3 || chain[2] != core.Formatter(identity) {
		t.Errorf("expected identity last, got %v", chain)
	}
}
