// Package prefsync coalesces rapid preference edits into single backend
// sync calls.
//
// The controller has two modes. During onboarding every facet mutation syncs
// immediately. In steady state a mutation (re)starts a quiet-period timer,
// so only the last mutation in a burst is transmitted, exactly once. At most
// one outbound sync call is in flight per controller at any time.
package prefsync

import (
	"context"
	"sync"
	"time"

	"github.com/pitchside/drillkit/internal/models"
)

// DefaultQuietWindow is the steady-state debounce interval.
const DefaultQuietWindow = 500 * time.Millisecond

// Syncer pushes a preference snapshot to the backend.
type Syncer interface {
	SyncPreferences(ctx context.Context, prefs models.Preferences) error
}

// Snapshot returns the current preference state. It is called at send time,
// never at schedule time, so the transmitted snapshot is always the freshest.
type Snapshot func() models.Preferences

// Controller owns the debounce timer and the in-flight guard.
type Controller struct {
	syncer   Syncer
	snapshot Snapshot
	quiet    time.Duration
	onError  func(error)

	mu         sync.Mutex
	timer      *time.Timer
	onboarding bool
	suppressed bool
	closed     bool

	// syncMu serializes outbound calls: a timer fire that finds a previous
	// call still in flight waits its turn instead of racing it.
	syncMu sync.Mutex

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Option customizes a controller.
type Option func(*Controller)

// WithQuietWindow overrides the debounce interval.
func WithQuietWindow(d time.Duration) Option {
	return func(c *Controller) { c.quiet = d }
}

// WithErrorHandler installs a callback for failed syncs. Failures are
// reported, never retried, and never revert local state.
func WithErrorHandler(fn func(error)) Option {
	return func(c *Controller) { c.onError = fn }
}

// New creates a controller in steady-state mode.
func New(syncer Syncer, snapshot Snapshot, opts ...Option) *Controller {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Controller{
		syncer:   syncer,
		snapshot: snapshot,
		quiet:    DefaultQuietWindow,
		onError:  func(error) {},
		ctx:      ctx,
		cancel:   cancel,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetOnboarding switches between immediate (onboarding) and debounced
// (steady-state) sync behavior.
func (c *Controller) SetOnboarding(onboarding bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onboarding = onboarding
}

// SetSuppressed bypasses mutation observation entirely. Used while the
// orchestrator is logging a user out.
func (c *Controller) SetSuppressed(suppressed bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.suppressed = suppressed
}

// NotifyChange records a facet mutation. In onboarding mode the sync starts
// immediately; otherwise the quiet-period timer restarts, cancelling any
// previously pending one.
func (c *Controller) NotifyChange() {
	c.mu.Lock()
	if c.suppressed || c.closed {
		c.mu.Unlock()
		return
	}
	if c.onboarding {
		// Add while still holding mu so Close cannot slip its Wait in
		// between the check and the Add.
		c.wg.Add(1)
		c.mu.Unlock()
		go func() {
			defer c.wg.Done()
			c.runSync()
		}()
		return
	}
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.quiet, c.fire)
	c.mu.Unlock()
}

// Pending reports whether a debounce timer is currently scheduled.
func (c *Controller) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.timer != nil
}

// Cancel stops any pending debounce timer without sending. An in-flight
// network call is not interrupted.
func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// Flush sends immediately if a debounced sync is pending. Short-lived
// processes call this on shutdown so the trailing sync isn't dropped.
func (c *Controller) Flush() {
	c.mu.Lock()
	pending := c.timer != nil && !c.closed
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.mu.Unlock()
	if pending {
		c.runSync()
	}
}

// Close cancels pending work and waits for in-flight syncs to settle. The
// controller is unusable afterwards.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.mu.Unlock()
	c.cancel()
	c.wg.Wait()
}

// fire runs from the timer goroutine; a concurrent Close may already be
// waiting on wg, so the Add happens under mu after re-checking closed.
func (c *Controller) fire() {
	c.mu.Lock()
	c.timer = nil
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.wg.Add(1)
	c.mu.Unlock()

	go func() {
		defer c.wg.Done()
		c.runSync()
	}()
}

func (c *Controller) runSync() {
	c.syncMu.Lock()
	defer c.syncMu.Unlock()

	if c.ctx.Err() != nil {
		return
	}

	prefs := c.snapshot()
	if err := c.syncer.SyncPreferences(c.ctx, prefs); err != nil {
		c.onError(err)
	}
}
