// Package events provides a small in-process publish/subscribe bus used to
// notify listeners that fresh analytics are available for a time range.
package events

import (
	"sync"

	"github.com/happify-app/backend/internal/models"
)

// RefreshEvent announces that an aggregation completed. Generation is the
// orchestrator's monotonically increasing request counter; listeners should
// discard events older than the newest generation they have seen.
type RefreshEvent struct {
	TimeRange  models.TimeRange
	Generation uint64
}

// Bus fans RefreshEvents out to subscribers. Publishing never blocks: a
// subscriber that has fallen behind misses events rather than stalling the
// aggregation path.
type Bus struct {
	mu   sync.RWMutex
	subs map[int]chan RefreshEvent
	next int
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[int]chan RefreshEvent)}
}

// Subscribe registers a listener and returns its channel plus an unsubscribe
// function. The channel is buffered; slow consumers drop events.
func (b *Bus) Subscribe() (<-chan RefreshEvent, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	ch := make(chan RefreshEvent, 8)
	b.subs[id] = ch

	unsubscribe := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}
	return ch, unsubscribe
}

// Publish delivers the event to every subscriber that has buffer room.
func (b *Bus) Publish(ev RefreshEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
