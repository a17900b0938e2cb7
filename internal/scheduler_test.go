package internal

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncer_OnlyLastScheduleFires(t *testing.T) {
	var fired atomic.Int32
	d := NewDebouncer(20*time.Millisecond, func() { fired.Add(1) })

	d.Trigger()
	d.Trigger()
	d.Trigger()

	time.Sleep(80 * time.Millisecond)
	if got := fired.Load(); got != 1 {
		t.Errorf("fired %d times, want 1", got)
	}
}

func TestDebouncer_RetriggerAfterFire(t *testing.T) {
	var fired atomic.Int32
	d := NewDebouncer(10*time.Millisecond, func() { fired.Add(1) })

	d.Trigger()
	time.Sleep(40 * time.Millisecond)
	d.Trigger()
	time.Sleep(40 * time.Millisecond)

	if got := fired.Load(); got != 2 {
		t.Errorf("fired %d times, want 2", got)
	}
}

func TestDebouncer_Stop(t *testing.T) {
	var fired atomic.Int32
	d := NewDebouncer(10*time.Millisecond, func() { fired.Add(1) })

	d.Trigger()
	d.Stop()

	time.Sleep(40 * time.Millisecond)
	if got := fired.Load(); got != 0 {
		t.Errorf("fired %d times after Stop, want 0", got)
	}
}

func TestDebouncer_SynchronousWhenZeroDelay(t *testing.T) {
	var fired atomic.Int32
	d := NewDebouncer(0, func() { fired.Add(1) })

	d.Trigger()
	if got := fired.Load(); got != 1 {
		t.Errorf("zero-delay trigger should fire inline, fired %d", got)
	}
}

func TestSystemClock_Now(t *testing.T) {
	before := time.Now()
	got := SystemClock{}.Now()
	after := time.Now()

	if got.Before(before) || got.After(after) {
		t.Errorf("SystemClock.Now() = %v outside [%v, %v]", got, before, after)
	}
}
