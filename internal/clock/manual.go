package clock

import (
	"sort"
	"sync"
	"time"
)

// Manual is a Scheduler whose time only moves when Advance is called.
// Due callbacks run synchronously on the goroutine calling Advance, in order
// of their deadline and then of scheduling.
type Manual struct {
	mu    sync.Mutex
	now   time.Time
	seq   uint64
	tasks []*manualTask
}

type manualTask struct {
	m       *Manual
	due     time.Time
	seq     uint64
	fn      func()
	stopped bool
	fired   bool
}

// NewManual creates a manual clock starting at the given instant.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the clock's current time.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// After schedules fn to run once the clock has advanced by d.
func (m *Manual) After(d time.Duration, fn func()) Task {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	t := &manualTask{m: m, due: m.now.Add(d), seq: m.seq, fn: fn}
	m.tasks = append(m.tasks, t)
	return t
}

// Advance moves the clock forward and runs every callback that became due.
// Callbacks may schedule or stop other tasks.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	now := m.now

	var due, rest []*manualTask
	for _, t := range m.tasks {
		switch {
		case t.stopped:
		case !t.due.After(now):
			due = append(due, t)
		default:
			rest = append(rest, t)
		}
	}
	m.tasks = rest
	sort.Slice(due, func(i, j int) bool {
		if !due[i].due.Equal(due[j].due) {
			return due[i].due.Before(due[j].due)
		}
		return due[i].seq < due[j].seq
	})
	m.mu.Unlock()

	for _, t := range due {
		m.mu.Lock()
		run := !t.stopped
		t.fired = run
		m.mu.Unlock()
		if run {
			t.fn()
		}
	}
}

// Pending returns the number of scheduled callbacks that have neither run nor
// been stopped.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.tasks {
		if !t.stopped {
			n++
		}
	}
	return n
}

func (t *manualTask) Stop() bool {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}
