package prefsync

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchside/drillkit/internal/models"
)

// recordingSyncer captures every snapshot it is asked to send.
type recordingSyncer struct {
	mu    sync.Mutex
	sent  []models.Preferences
	err   error
	delay time.Duration
}

func (r *recordingSyncer) SyncPreferences(ctx context.Context, prefs models.Preferences) error {
	if r.delay > 0 {
		time.Sleep(r.delay)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, prefs)
	return r.err
}

func (r *recordingSyncer) calls() []models.Preferences {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Preferences(nil), r.sent...)
}

// prefState is a mutable snapshot source guarded for concurrent reads.
type prefState struct {
	mu    sync.Mutex
	prefs models.Preferences
}

func (p *prefState) set(prefs models.Preferences) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.prefs = prefs
}

func (p *prefState) snapshot() models.Preferences {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.prefs
}

func TestDebounceCoalescesBurst(t *testing.T) {
	syncer := &recordingSyncer{}
	state := &prefState{}
	c := New(syncer, state.snapshot, WithQuietWindow(80*time.Millisecond))
	defer c.Close()

	// A burst of edits inside the quiet window.
	for _, style := range []string{"individual", "group", "team", "final"} {
		state.set(models.Preferences{TrainingStyle: style})
		c.NotifyChange()
		time.Sleep(10 * time.Millisecond)
	}

	require.Eventually(t, func() bool {
		return len(syncer.calls()) == 1
	}, time.Second, 10*time.Millisecond, "burst should produce exactly one sync")

	// Well past the window: still exactly one call, carrying the final state.
	time.Sleep(200 * time.Millisecond)
	calls := syncer.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "final", calls[0].TrainingStyle)
}

func TestSeparateBurstsSyncSeparately(t *testing.T) {
	syncer := &recordingSyncer{}
	state := &prefState{}
	c := New(syncer, state.snapshot, WithQuietWindow(20*time.Millisecond))
	defer c.Close()

	state.set(models.Preferences{TrainingStyle: "first"})
	c.NotifyChange()
	require.Eventually(t, func() bool {
		return len(syncer.calls()) == 1
	}, time.Second, 5*time.Millisecond)

	state.set(models.Preferences{TrainingStyle: "second"})
	c.NotifyChange()
	require.Eventually(t, func() bool {
		return len(syncer.calls()) == 2
	}, time.Second, 5*time.Millisecond)

	calls := syncer.calls()
	assert.Equal(t, "first", calls[0].TrainingStyle)
	assert.Equal(t, "second", calls[1].TrainingStyle)
}

func TestOnboardingSyncsImmediately(t *testing.T) {
	syncer := &recordingSyncer{}
	state := &prefState{}
	c := New(syncer, state.snapshot, WithQuietWindow(time.Hour))
	defer c.Close()

	c.SetOnboarding(true)
	state.set(models.Preferences{Difficulty: "beginner"})
	c.NotifyChange()

	require.Eventually(t, func() bool {
		return len(syncer.calls()) == 1
	}, time.Second, 5*time.Millisecond, "onboarding edits should not wait for the quiet window")
	assert.False(t, c.Pending())
}

func TestSuppressedIgnoresMutations(t *testing.T) {
	syncer := &recordingSyncer{}
	state := &prefState{}
	c := New(syncer, state.snapshot, WithQuietWindow(10*time.Millisecond))
	defer c.Close()

	c.SetSuppressed(true)
	c.NotifyChange()
	assert.False(t, c.Pending())

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, syncer.calls())
}

func TestCancelDropsPendingSync(t *testing.T) {
	syncer := &recordingSyncer{}
	state := &prefState{}
	c := New(syncer, state.snapshot, WithQuietWindow(30*time.Millisecond))
	defer c.Close()

	c.NotifyChange()
	assert.True(t, c.Pending())
	c.Cancel()
	assert.False(t, c.Pending())

	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, syncer.calls())
}

func TestFlushSendsPendingNow(t *testing.T) {
	syncer := &recordingSyncer{}
	state := &prefState{}
	c := New(syncer, state.snapshot, WithQuietWindow(time.Hour))
	defer c.Close()

	state.set(models.Preferences{Location: "indoor court"})
	c.NotifyChange()
	require.True(t, c.Pending())

	c.Flush()

	calls := syncer.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "indoor court", calls[0].Location)
	assert.False(t, c.Pending())

	// Nothing pending: flush is a no-op.
	c.Flush()
	assert.Len(t, syncer.calls(), 1)
}

func TestErrorHandlerReceivesFailures(t *testing.T) {
	wantErr := errors.New("backend down")
	syncer := &recordingSyncer{err: wantErr}
	state := &prefState{}

	var mu sync.Mutex
	var got []error
	c := New(syncer, state.snapshot,
		WithQuietWindow(10*time.Millisecond),
		WithErrorHandler(func(err error) {
			mu.Lock()
			defer mu.Unlock()
			got = append(got, err)
		}))
	defer c.Close()

	c.NotifyChange()

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 1
	}, time.Second, 5*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.ErrorIs(t, got[0], wantErr)
}

func TestCloseStopsFutureSyncs(t *testing.T) {
	syncer := &recordingSyncer{}
	state := &prefState{}
	c := New(syncer, state.snapshot, WithQuietWindow(10*time.Millisecond))

	c.NotifyChange()
	c.Close()

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, syncer.calls())

	// Post-close mutations never schedule anything.
	c.NotifyChange()
	assert.False(t, c.Pending())
}

func TestCloseRacesTimerFire(t *testing.T) {
	// Repeatedly close right around the moment the quiet timer fires so the
	// race detector can see the fire path and the shutdown path collide.
	for i := 0; i < 30; i++ {
		syncer := &recordingSyncer{}
		state := &prefState{}
		c := New(syncer, state.snapshot, WithQuietWindow(time.Millisecond))

		c.NotifyChange()
		if i%2 == 0 {
			time.Sleep(time.Millisecond)
		}
		c.Close()
	}
}
