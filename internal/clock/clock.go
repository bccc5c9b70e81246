// Package clock abstracts time so that deferred game work can be driven by a
// real timer in play and advanced by hand in tests.
package clock

import "time"

// Task is a handle to a scheduled callback.
type Task interface {
	// Stop prevents the callback from running. It reports whether the call
	// stopped the task before it ran.
	Stop() bool
}

// Scheduler runs callbacks after a delay and reports the current time.
type Scheduler interface {
	After(d time.Duration, fn func()) Task
	Now() time.Time
}

// Real is a Scheduler backed by the runtime timers. Callbacks run on their own
// goroutine.
type Real struct{}

// After schedules fn with time.AfterFunc.
func (Real) After(d time.Duration, fn func()) Task {
	return time.AfterFunc(d, fn)
}

// Now returns the wall clock time.
func (Real) Now() time.Time {
	return time.Now()
}
