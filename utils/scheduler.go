package utils

import "time"

// Scheduler runs a callback after a fixed delay. The portal's two
// simulated timers (the assistant's delayed reply and the post-booking
// redirect) are single-shot and non-cancelable, so the interface is
// fire-and-forget; tests swap in a ManualScheduler to control time.
type Scheduler interface {
	After(d time.Duration, fn func())
}

// RealScheduler delegates to time.AfterFunc.
type RealScheduler struct{}

func (RealScheduler) After(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}

// ManualScheduler queues callbacks and fires them on demand.
type ManualScheduler struct {
	pending []func()
}

func (m *ManualScheduler) After(d time.Duration, fn func()) {
	m.pending = append(m.pending, fn)
}

// Fire runs all queued callbacks in scheduling order and clears the queue.
func (m *ManualScheduler) Fire() {
	queued := m.pending
	m.pending = nil
	for _, fn := range queued {
		fn()
	}
}

// Pending reports how many callbacks are queued.
func (m *ManualScheduler) Pending() int {
	return len(m.pending)
}
