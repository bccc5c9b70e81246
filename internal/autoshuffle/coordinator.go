// Package autoshuffle schedules the delayed reshuffle that rescues a board
// with tiles left but no legal move.
//
// A Coordinator keeps two flags: pending (a reshuffle is scheduled) and held
// (the coordinator owns the reshuffle slot). A generation counter makes a
// callback from a cancelled task harmless even if its timer could not be
// stopped in time.
//
// The coordinator is not safe for concurrent use on its own. Its owner calls
// it while holding its own lock and passes a Guard that re-acquires that lock
// before a scheduled callback touches any state.
package autoshuffle

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/solitaire/internal/clock"
)

// Delay bounds.
const (
	MinDelay     = time.Second
	MaxDelay     = 10 * time.Second
	DefaultDelay = 3 * time.Second
)

// Guard runs fn with the owner's state locked.
type Guard func(fn func())

// Coordinator owns the pending auto-shuffle of one game.
type Coordinator struct {
	sched  clock.Scheduler
	guard  Guard
	logger *log.Logger
	delay  time.Duration

	pending bool
	held    bool
	gen     uint64
	task    clock.Task
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithLogger sets the logger used for schedule, fire and cancel events.
func WithLogger(l *log.Logger) Option {
	return func(c *Coordinator) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithGuard sets the function used to serialize callbacks with the owner.
func WithGuard(g Guard) Option {
	return func(c *Coordinator) {
		if g != nil {
			c.guard = g
		}
	}
}

// New creates a coordinator. The delay is clamped to [MinDelay, MaxDelay].
func New(sched clock.Scheduler, delay time.Duration, opts ...Option) *Coordinator {
	c := &Coordinator{
		sched:  sched,
		guard:  func(fn func()) { fn() },
		logger: log.New(io.Discard),
		delay:  ClampDelay(delay),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ClampDelay bounds d to [MinDelay, MaxDelay].
func ClampDelay(d time.Duration) time.Duration {
	if d < MinDelay {
		return MinDelay
	}
	if d > MaxDelay {
		return MaxDelay
	}
	return d
}

// Delay returns the wait between detecting a deadlock and reshuffling.
func (c *Coordinator) Delay() time.Duration {
	return c.delay
}

// Pending reports whether a reshuffle is scheduled.
func (c *Coordinator) Pending() bool {
	return c.pending
}

// Request schedules a reshuffle unless one is already pending.
//
// When the task fires, deadlocked is consulted again; apply runs only if it
// still reports true. Request returns whether a new reshuffle was scheduled.
func (c *Coordinator) Request(deadlocked func() bool, apply func()) bool {
	if c.pending || c.held {
		c.logger.Debug("auto-shuffle already pending")
		return false
	}

	c.held = true
	c.pending = true
	c.gen++
	gen := c.gen

	c.task = c.sched.After(c.delay, func() {
		c.guard(func() {
			c.fire(gen, deadlocked, apply)
		})
	})
	c.logger.Debug("auto-shuffle scheduled", "delay", c.delay)
	return true
}

func (c *Coordinator) fire(gen uint64, deadlocked func() bool, apply func()) {
	if gen != c.gen || !c.pending || !c.held {
		c.logger.Debug("stale auto-shuffle ignored", "gen", gen, "current", c.gen)
		return
	}

	c.release()
	if !deadlocked() {
		c.logger.Debug("deadlock cleared before auto-shuffle")
		return
	}

	c.logger.Debug("auto-shuffle firing")
	apply()
}

// Cancel drops a pending reshuffle. It is safe to call at any time and reports
// whether something was pending.
func (c *Coordinator) Cancel() bool {
	wasPending := c.pending
	if c.task != nil {
		c.task.Stop()
	}
	c.release()
	if wasPending {
		c.gen++
		c.logger.Debug("auto-shuffle cancelled")
	}
	return wasPending
}

func (c *Coordinator) release() {
	c.task = nil
	c.pending = false
	c.held = false
}
