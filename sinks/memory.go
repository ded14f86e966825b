package sinks

import (
	"maps"
	"sync"

	"github.com/willibrandon/botlog/core"
)

// MemorySink stores log events in memory for testing purposes.
type MemorySink struct {
	events []core.LogEvent
	mu     sync.RWMutex
}

// NewMemorySink creates a new memory sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{
		events: make([]core.LogEvent, 0),
	}
}

// Emit stores a copy of the event. The property map is copied one level deep
// so that later changes by the caller don't show up in stored events.
func (m *MemorySink) Emit(event *core.LogEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()

	eventCopy := *event
	if event.Properties != nil {
		eventCopy.Properties = maps.Clone(event.Properties)
	}
	m.events = append(m.events, eventCopy)
}

// Close does nothing for memory sink.
func (m *MemorySink) Close() error {
	return nil
}

// Events returns a copy of all stored events.
func (m *MemorySink) Events() []core.LogEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]core.LogEvent, len(m.events))
	copy(result, m.events)
	return result
}

// Clear removes all stored events.
func (m *MemorySink) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = m.events[:0]
}

// Count returns the number of stored events.
func (m *MemorySink) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.events)
}

// FindEvents returns events that match the given predicate.
func (m *MemorySink) FindEvents(predicate func(*core.LogEvent) bool) []core.LogEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []core.LogEvent
	for i := range m.events {
		if predicate(&m.events[i]) {
			result = append(result, m.events[i])
		}
	}
	return result
}

// LastEvent returns the most recent event, or nil if no events.
func (m *MemorySink) LastEvent() *core.LogEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.events) == 0 {
		return nil
	}
	event := m.events[len(m.events)-1]
	return &event
}
