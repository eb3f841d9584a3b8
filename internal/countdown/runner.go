package countdown

import (
	"sync"
	"time"
)

// Runner drives a Countdown from its own goroutine for callers that are
// not tick-driven themselves. The TUI advances a Countdown directly;
// the Runner exists for plain loops that just want callbacks.
type Runner struct {
	mu     sync.Mutex
	c      *Countdown
	cancel chan struct{}
	done   chan struct{}
}

// NewRunner wraps a countdown in a goroutine driver.
func NewRunner(c *Countdown) *Runner {
	return &Runner{c: c}
}

// Start restarts the countdown and begins ticking it every interval.
// onTick fires after each tick; onExpire fires at most once, when the
// limit elapses before Cancel. Any previous run is cancelled first.
func (r *Runner) Start(interval time.Duration, onTick func(*Countdown), onExpire func()) {
	r.Cancel()

	r.mu.Lock()
	cancel := make(chan struct{})
	done := make(chan struct{})
	r.cancel, r.done = cancel, done
	r.c.Start()
	r.mu.Unlock()

	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-cancel:
				return
			case <-ticker.C:
				r.mu.Lock()
				expired := r.c.Tick(interval)
				r.mu.Unlock()
				if onTick != nil {
					onTick(r.c)
				}
				if expired {
					if onExpire != nil {
						onExpire()
					}
					return
				}
			}
		}
	}()
}

// Cancel stops the run and blocks until the runner goroutine has
// exited. After Cancel returns no callback will fire, so an answer
// processed after Cancel cannot race the expiry path.
func (r *Runner) Cancel() {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.cancel, r.done = nil, nil
	r.mu.Unlock()

	if cancel == nil {
		return
	}
	close(cancel)
	<-done

	r.mu.Lock()
	r.c.Stop()
	r.mu.Unlock()
}
