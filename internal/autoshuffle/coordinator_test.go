package autoshuffle

import (
	"sync"
	"testing"
	"time"

	"github.com/vovakirdan/solitaire/internal/clock"
)

func newManual() *clock.Manual {
	return clock.NewManual(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
}

func always() bool { return true }

func TestRequestFiresAfterDelay(t *testing.T) {
	clk := newManual()
	c := New(clk, 2*time.Second)
	applied := 0

	if !c.Request(always, func() { applied++ }) {
		t.Fatal("first Request() should schedule")
	}
	if !c.Pending() {
		t.Error("Pending() should be true after Request()")
	}

	clk.Advance(1999 * time.Millisecond)
	if applied != 0 {
		t.Fatal("reshuffle ran before the delay elapsed")
	}

	clk.Advance(time.Millisecond)
	if applied != 1 {
		t.Errorf("applied = %d, expected 1", applied)
	}
	if c.Pending() {
		t.Error("Pending() should be false after firing")
	}
}

func TestRequestWhilePendingIsIgnored(t *testing.T) {
	clk := newManual()
	c := New(clk, time.Second)
	applied := 0
	apply := func() { applied++ }

	c.Request(always, apply)
	if c.Request(always, apply) {
		t.Error("second Request() should be ignored while pending")
	}
	if clk.Pending() != 1 {
		t.Errorf("scheduled tasks = %d, expected 1", clk.Pending())
	}

	clk.Advance(time.Second)
	if applied != 1 {
		t.Errorf("applied = %d, expected 1", applied)
	}

	if !c.Request(always, apply) {
		t.Error("Request() after firing should schedule again")
	}
}

func TestCancel(t *testing.T) {
	clk := newManual()
	c := New(clk, time.Second)
	applied := 0

	c.Request(always, func() { applied++ })
	if !c.Cancel() {
		t.Error("Cancel() with a pending reshuffle should report true")
	}
	if c.Pending() {
		t.Error("Pending() should be false after Cancel()")
	}

	clk.Advance(5 * time.Second)
	if applied != 0 {
		t.Error("cancelled reshuffle should not run")
	}
}

func TestCancelIsIdempotent(t *testing.T) {
	c := New(newManual(), time.Second)

	if c.Cancel() {
		t.Error("Cancel() with nothing pending should report false")
	}
	if c.Cancel() {
		t.Error("second Cancel() should report false")
	}
	if c.Pending() {
		t.Error("Pending() should stay false")
	}
}

// stubbornTask ignores Stop, like a timer whose callback is already running.
type stubbornTask struct{}

func (stubbornTask) Stop() bool { return false }

type captureScheduler struct {
	fns []func()
}

func (s *captureScheduler) After(_ time.Duration, fn func()) clock.Task {
	s.fns = append(s.fns, fn)
	return stubbornTask{}
}

func (s *captureScheduler) Now() time.Time { return time.Time{} }

func TestStaleCallbackIsIgnored(t *testing.T) {
	sched := &captureScheduler{}
	c := New(sched, time.Second)
	first, second := 0, 0

	c.Request(always, func() { first++ })
	c.Cancel()
	c.Request(always, func() { second++ })

	// The first timer could not be stopped and fires late.
	sched.fns[0]()
	if first != 0 {
		t.Error("callback of a cancelled request should be ignored")
	}
	if !c.Pending() {
		t.Error("stale callback should not clear the newer request")
	}

	sched.fns[1]()
	if second != 1 {
		t.Errorf("second = %d, expected 1", second)
	}
}

func TestFireRechecksDeadlock(t *testing.T) {
	clk := newManual()
	c := New(clk, time.Second)
	deadlocked := true
	applied := 0

	c.Request(func() bool { return deadlocked }, func() { applied++ })
	deadlocked = false
	clk.Advance(time.Second)

	if applied != 0 {
		t.Error("reshuffle should be skipped when the deadlock cleared")
	}
	if c.Pending() {
		t.Error("Pending() should be false after a skipped fire")
	}
}

func TestGuardWrapsCallback(t *testing.T) {
	clk := newManual()
	var mu sync.Mutex
	guarded := false

	c := New(clk, time.Second, WithGuard(func(fn func()) {
		mu.Lock()
		defer mu.Unlock()
		guarded = true
		fn()
	}))
	c.Request(always, func() {
		if mu.TryLock() {
			mu.Unlock()
			t.Error("apply should run with the owner's lock held")
		}
	})
	clk.Advance(time.Second)

	if !guarded {
		t.Error("guard was not used")
	}
}

func TestClampDelay(t *testing.T) {
	tests := []struct {
		in, want time.Duration
	}{
		{0, MinDelay},
		{500 * time.Millisecond, MinDelay},
		{DefaultDelay, DefaultDelay},
		{time.Minute, MaxDelay},
	}
	for _, tc := range tests {
		if got := ClampDelay(tc.in); got != tc.want {
			t.Errorf("ClampDelay(%v) = %v, expected %v", tc.in, got, tc.want)
		}
	}
	if got := New(newManual(), time.Hour).Delay(); got != MaxDelay {
		t.Errorf("Delay() = %v, expected %v", got, MaxDelay)
	}
}
