package showcase

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncer_LatestWins(t *testing.T) {
	d := NewDebouncer(100 * time.Millisecond)
	defer d.Stop()

	var calls atomic.Int32
	var last atomic.Int32
	for i := range 5 {
		d.Trigger(func() {
			calls.Add(1)
			last.Store(int32(i))
		})
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(400 * time.Millisecond)

	if got := calls.Load(); got != 1 {
		t.Errorf("calls = %d, want 1", got)
	}
	if got := last.Load(); got != 4 {
		t.Errorf("last = %d, want 4", got)
	}
}

func TestDebouncer_SeparateBursts(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	defer d.Stop()

	var calls atomic.Int32
	d.Trigger(func() { calls.Add(1) })
	time.Sleep(100 * time.Millisecond)
	d.Trigger(func() { calls.Add(1) })
	time.Sleep(100 * time.Millisecond)

	if got := calls.Load(); got != 2 {
		t.Errorf("calls = %d, want 2", got)
	}
}

func TestDebouncer_Flush(t *testing.T) {
	d := NewDebouncer(time.Hour)
	defer d.Stop()

	if d.Flush() {
		t.Error("Flush() with nothing pending should return false")
	}

	ran := false
	d.Trigger(func() { ran = true })
	if !d.Pending() {
		t.Fatal("Pending() = false after Trigger")
	}
	if !d.Flush() {
		t.Error("Flush() should report a pending action")
	}
	if !ran {
		t.Error("Flush() did not run the action")
	}
	if d.Pending() {
		t.Error("Pending() = true after Flush")
	}
}

func TestDebouncer_Stop(t *testing.T) {
	d := NewDebouncer(10 * time.Millisecond)

	var calls atomic.Int32
	d.Trigger(func() { calls.Add(1) })
	d.Stop()
	d.Trigger(func() { calls.Add(1) })
	time.Sleep(50 * time.Millisecond)

	if got := calls.Load(); got != 0 {
		t.Errorf("calls = %d, want 0 after Stop", got)
	}
}

func TestNewDebouncer_DefaultDelay(t *testing.T) {
	if d := NewDebouncer(0); d.Delay() != DebounceDelay {
		t.Errorf("Delay() = %v, want %v", d.Delay(), DebounceDelay)
	}
}
