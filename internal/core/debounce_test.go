package core

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebounceCollapsesBurst(t *testing.T) {
	var calls atomic.Int32
	d := Debounce(func() { calls.Add(1) }, 30*time.Millisecond)

	for range 10 {
		d.Call()
		time.Sleep(2 * time.Millisecond)
	}

	if calls.Load() != 0 {
		t.Fatal("fn ran before the delay elapsed")
	}

	time.Sleep(120 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Errorf("expected exactly one call, got %d", got)
	}
}

func TestDebounceStop(t *testing.T) {
	var calls atomic.Int32
	d := Debounce(func() { calls.Add(1) }, 20*time.Millisecond)

	d.Call()
	d.Stop()
	time.Sleep(60 * time.Millisecond)

	if calls.Load() != 0 {
		t.Error("stopped debouncer still fired")
	}
}
