package countdown

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestRunnerExpires(t *testing.T) {
	r := NewRunner(NewWithLimit(30 * time.Millisecond))

	var ticks atomic.Int32
	expired := make(chan struct{})
	r.Start(10*time.Millisecond,
		func(*Countdown) { ticks.Add(1) },
		func() { close(expired) })

	select {
	case <-expired:
	case <-time.After(time.Second):
		t.Fatal("runner never expired")
	}
	if ticks.Load() < 3 {
		t.Errorf("got %d ticks, want at least 3", ticks.Load())
	}
}

func TestCancelPreventsExpiry(t *testing.T) {
	r := NewRunner(NewWithLimit(50 * time.Millisecond))

	var fired atomic.Bool
	r.Start(10*time.Millisecond, nil, func() { fired.Store(true) })

	time.Sleep(15 * time.Millisecond)
	r.Cancel()

	if fired.Load() {
		t.Fatal("expiry fired before cancel")
	}
	// Nothing may fire after Cancel has returned.
	time.Sleep(80 * time.Millisecond)
	if fired.Load() {
		t.Error("expiry fired after cancel")
	}
}

func TestCancelWithoutStartIsNoop(t *testing.T) {
	r := NewRunner(New())
	r.Cancel()
	r.Cancel()
}

func TestStartRestartsPreviousRun(t *testing.T) {
	r := NewRunner(NewWithLimit(40 * time.Millisecond))

	var firstExpired atomic.Bool
	r.Start(10*time.Millisecond, nil, func() { firstExpired.Store(true) })

	expired := make(chan struct{})
	r.Start(10*time.Millisecond, nil, func() { close(expired) })

	select {
	case <-expired:
	case <-time.After(time.Second):
		t.Fatal("second run never expired")
	}
	if firstExpired.Load() {
		t.Error("first run expired after restart")
	}
}
