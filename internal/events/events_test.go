package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishReachesAllSubscribers(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	a := bus.Subscribe(4)
	b := bus.Subscribe(4)

	bus.Publish(GroupUpdated, map[string]interface{}{KeyGroupID: "g1"})

	for _, ch := range []<-chan Event{a, b} {
		select {
		case ev := <-ch:
			assert.Equal(t, GroupUpdated, ev.Name)
			assert.Equal(t, "g1", ev.Payload[KeyGroupID])
		case <-time.After(time.Second):
			t.Fatal("subscriber did not receive event")
		}
	}
}

func TestPublishNeverBlocksOnFullBuffer(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	ch := bus.Subscribe(1)

	done := make(chan struct{})
	go func() {
		defer close(done)
		bus.Publish(SessionUpdated, nil)
		bus.Publish(SessionUpdated, nil)
		bus.Publish(SessionUpdated, nil)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}

	// Exactly the buffered event survives.
	ev := <-ch
	assert.Equal(t, SessionUpdated, ev.Name)
	select {
	case _, ok := <-ch:
		require.False(t, ok, "expected no further buffered events")
	default:
	}
}

func TestCloseClosesSubscriberChannels(t *testing.T) {
	bus := NewBus()
	ch := bus.Subscribe(1)

	bus.Close()

	_, ok := <-ch
	assert.False(t, ok)

	// Publishing after close is a no-op.
	bus.Publish(SyncError, nil)
	// Closing twice is fine.
	bus.Close()
}

func TestSubscribeAfterClose(t *testing.T) {
	bus := NewBus()
	bus.Close()

	ch := bus.Subscribe(1)
	_, ok := <-ch
	assert.False(t, ok)
}
