package services

import (
	"sync"

	"github.com/flortune/app-settings/internal/models"
)

// subscriberBuffer bounds each watch channel; slow consumers lose events
// rather than block setters.
const subscriberBuffer = 16

// EventBus fans out setting-change events to watch subscribers, per scope.
type EventBus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[string]map[int]chan models.SettingEvent
}

// NewEventBus creates an empty bus
func NewEventBus() *EventBus {
	return &EventBus{subs: make(map[string]map[int]chan models.SettingEvent)}
}

// Subscribe registers for events on one scope. The returned cancel func
// must be called exactly once; it closes the channel.
func (b *EventBus) Subscribe(scope string) (<-chan models.SettingEvent, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	ch := make(chan models.SettingEvent, subscriberBuffer)

	if b.subs[scope] == nil {
		b.subs[scope] = make(map[int]chan models.SettingEvent)
	}
	b.subs[scope][id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if scoped, ok := b.subs[scope]; ok {
			if ch, ok := scoped[id]; ok {
				delete(scoped, id)
				close(ch)
			}
			if len(scoped) == 0 {
				delete(b.subs, scope)
			}
		}
	}
	return ch, cancel
}

// Publish delivers an event to every subscriber of its scope without
// blocking; full channels drop the event.
func (b *EventBus) Publish(event models.SettingEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subs[event.Scope] {
		select {
		case ch <- event:
		default:
		}
	}
}
