package countdown

import (
	"testing"
	"time"
)

func TestExpiresExactlyOnce(t *testing.T) {
	c := New()
	c.Start()

	expirations := 0
	for i := 0; i < 120; i++ {
		if c.Tick(TickInterval) {
			expirations++
		}
	}
	if expirations != 1 {
		t.Errorf("expirations = %d, want 1", expirations)
	}
	if !c.Expired() || c.Running() {
		t.Errorf("state after expiry: expired=%v running=%v", c.Expired(), c.Running())
	}
	if c.Remaining() != 0 {
		t.Errorf("remaining = %v, want 0", c.Remaining())
	}
}

func TestExpiryAtLimit(t *testing.T) {
	c := New()
	c.Start()

	// 99 ticks leave 100ms on the clock.
	for i := 0; i < 99; i++ {
		if c.Tick(TickInterval) {
			t.Fatalf("expired early at tick %d", i+1)
		}
	}
	if !c.Tick(TickInterval) {
		t.Error("100th tick did not expire")
	}
}

func TestStopFreezesRemaining(t *testing.T) {
	c := New()
	c.Start()

	for i := 0; i < 30; i++ {
		c.Tick(TickInterval)
	}
	c.Stop()
	before := c.Remaining()

	if c.Tick(TickInterval) {
		t.Error("tick after stop expired the countdown")
	}
	if c.Remaining() != before {
		t.Errorf("remaining moved after stop: %v -> %v", before, c.Remaining())
	}
	if c.Expired() {
		t.Error("stopped countdown reads as expired")
	}
}

func TestRestartAfterResolution(t *testing.T) {
	c := NewWithLimit(time.Second)
	c.Start()
	c.Tick(2 * time.Second)
	if !c.Expired() {
		t.Fatal("countdown should have expired")
	}

	c.Start()
	if c.Expired() || !c.Running() || c.Remaining() != time.Second {
		t.Errorf("restart state: expired=%v running=%v remaining=%v", c.Expired(), c.Running(), c.Remaining())
	}
}

func TestProgressAndSeconds(t *testing.T) {
	c := New()
	c.Start()

	for i := 0; i < 25; i++ {
		c.Tick(TickInterval)
	}
	if got, want := c.Progress(), 0.75; got < want-1e-9 || got > want+1e-9 {
		t.Errorf("progress = %v, want %v", got, want)
	}
	if got := c.Seconds(); got != 7.5 {
		t.Errorf("seconds = %v, want 7.5", got)
	}
	if got := c.Elapsed(); got != 2500*time.Millisecond {
		t.Errorf("elapsed = %v", got)
	}
}
