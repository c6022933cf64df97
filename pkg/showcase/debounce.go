package showcase

import (
	"sync"
	"time"
)

// Debouncer is a single-slot "latest wins" timer. Each Trigger cancels the
// pending action and schedules a new one; only the most recent action runs.
// It is safe for concurrent use.
type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending func()
	seq     uint64
	stopped bool
}

// NewDebouncer creates a Debouncer with the given delay.
// A non-positive delay uses DebounceDelay.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DebounceDelay
	}
	return &Debouncer{delay: delay}
}

// Delay returns the configured delay.
func (d *Debouncer) Delay() time.Duration { return d.delay }

// Trigger schedules fn to run after the delay, replacing any pending action.
// Trigger after Stop is a no-op.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.seq++
	seq := d.seq
	d.pending = fn
	d.timer = time.AfterFunc(d.delay, func() { d.fire(seq) })
}

// fire runs the pending action if seq is still the latest schedule.
// A timer that fired while a newer Trigger held the lock finds a stale seq.
func (d *Debouncer) fire(seq uint64) {
	d.mu.Lock()
	if seq != d.seq || d.pending == nil {
		d.mu.Unlock()
		return
	}
	fn := d.pending
	d.pending = nil
	d.mu.Unlock()
	fn()
}

// Pending reports whether an action is scheduled.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}

// Flush runs the pending action immediately on the calling goroutine.
// It reports whether an action ran.
func (d *Debouncer) Flush() bool {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	fn := d.pending
	d.pending = nil
	d.seq++
	d.mu.Unlock()
	if fn == nil {
		return false
	}
	fn()
	return true
}

// Stop cancels the pending action and disables further triggers.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.pending = nil
	d.seq++
	d.stopped = true
}
