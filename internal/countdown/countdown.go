// Package countdown implements the per-question answer timer.
package countdown

import "time"

const (
	// Limit is how long the player has to answer one question.
	Limit = 10 * time.Second

	// TickInterval is the display refresh step.
	TickInterval = 100 * time.Millisecond
)

// Countdown tracks the time left for a single question. It is advanced
// by external ticks so callers control the clock. Once resolved, by
// expiry or by Stop, further ticks are ignored.
type Countdown struct {
	limit     time.Duration
	remaining time.Duration
	running   bool
	expired   bool
}

// New creates a countdown with the standard limit.
func New() *Countdown {
	return NewWithLimit(Limit)
}

// NewWithLimit creates a countdown with a custom limit.
func NewWithLimit(limit time.Duration) *Countdown {
	return &Countdown{limit: limit, remaining: limit}
}

// Start begins the countdown. Starting a resolved countdown restarts it
// from the full limit.
func (c *Countdown) Start() {
	c.remaining = c.limit
	c.running = true
	c.expired = false
}

// Tick advances the countdown by the elapsed step and reports whether
// this tick expired it. Expiry is reported exactly once.
func (c *Countdown) Tick(step time.Duration) (expired bool) {
	if !c.running {
		return false
	}
	c.remaining -= step
	if c.remaining <= 0 {
		c.remaining = 0
		c.running = false
		c.expired = true
		return true
	}
	return false
}

// Stop halts the countdown, keeping the remaining time. Stopping after
// expiry has no effect.
func (c *Countdown) Stop() {
	c.running = false
}

// Running reports whether the countdown is active.
func (c *Countdown) Running() bool { return c.running }

// Expired reports whether the countdown ran out.
func (c *Countdown) Expired() bool { return c.expired }

// Remaining returns the time left.
func (c *Countdown) Remaining() time.Duration { return c.remaining }

// Elapsed returns how much of the limit has been used.
func (c *Countdown) Elapsed() time.Duration { return c.limit - c.remaining }

// Progress returns remaining/limit in [0,1], for drawing the timer bar.
func (c *Countdown) Progress() float64 {
	if c.limit <= 0 {
		return 0
	}
	return float64(c.remaining) / float64(c.limit)
}

// Seconds returns the remaining time in seconds with one decimal of
// precision, matching the display format.
func (c *Countdown) Seconds() float64 {
	return float64(c.remaining.Milliseconds()) / 1000
}
