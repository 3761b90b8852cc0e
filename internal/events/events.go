// Package events carries named change notifications from the session engine
// to presentation collaborators.
package events

import (
	"sync"
)

// Name identifies an event stream.
type Name string

// Events emitted by the session engine.
const (
	GroupUpdated       Name = "group_updated"
	GroupDeleted       Name = "group_deleted"
	LikedDrillsUpdated Name = "liked_drills_updated"
	SessionUpdated     Name = "session_updated"
	FiltersUpdated     Name = "filters_updated"
	PreferencesSynced  Name = "preferences_synced"
	SyncError          Name = "sync_error"
)

// Payload keys.
const (
	KeyGroupID = "group_id"
	KeyDrillID = "drill_id"
	KeyError   = "error"
)

// Event is one published notification.
type Event struct {
	Name    Name
	Payload map[string]interface{}
}

// Bus fan-outs events to subscribers. Publishing never blocks; a subscriber
// whose buffer is full misses the event.
type Bus struct {
	mu     sync.Mutex
	subs   []chan Event
	closed bool
}

// NewBus creates an event bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe returns a channel receiving all future events. The buffer size
// bounds how far a slow consumer may lag.
func (b *Bus) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 16
	}
	ch := make(chan Event, buffer)

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		close(ch)
		return ch
	}
	b.subs = append(b.subs, ch)
	return ch
}

// Publish delivers an event to every subscriber without blocking.
func (b *Bus) Publish(name Name, payload map[string]interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	ev := Event{Name: name, Payload: payload}
	for _, ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Close closes every subscriber channel. Publish becomes a no-op.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for _, ch := range b.subs {
		close(ch)
	}
	b.subs = nil
}
