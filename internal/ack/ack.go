// Package ack implements the transient "copied" acknowledgement shown after a share copy.
package ack

import (
	"sync"
	"time"
)

// DefaultWindow is how long an acknowledgement stays visible after the last trigger.
const DefaultWindow = 2 * time.Second

// Acknowledger holds a boolean that turns on when triggered and reverts after a window.
// Re-triggering replaces the pending reversion instead of adding another one.
type Acknowledger struct {
	window   time.Duration
	onChange func(bool)

	mu      sync.Mutex
	acked   bool
	timer   *time.Timer
	gen     uint64
	stopped bool

	// notifyMu orders callbacks; delivered is the last value handed to onChange.
	notifyMu  sync.Mutex
	delivered bool
}

// New returns an Acknowledger. onChange, when non-nil, is called on every state transition
// outside the state lock. Calls never overlap and the last one always carries the current state.
func New(window time.Duration, onChange func(bool)) *Acknowledger {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Acknowledger{window: window, onChange: onChange}
}

// Trigger sets the acknowledged state and restarts the reversion timer.
func (a *Acknowledger) Trigger() {
	a.mu.Lock()
	if a.stopped {
		a.mu.Unlock()
		return
	}
	if a.timer != nil {
		a.timer.Stop()
	}
	a.gen++
	gen := a.gen
	a.acked = true
	a.timer = time.AfterFunc(a.window, func() { a.revert(gen) })
	a.mu.Unlock()

	a.deliver()
}

// Acknowledged reports whether a trigger happened within the last window.
func (a *Acknowledger) Acknowledged() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.acked
}

// Clear drops the acknowledgement immediately and cancels the pending reversion.
func (a *Acknowledger) Clear() {
	a.mu.Lock()
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.gen++
	a.acked = false
	a.mu.Unlock()

	a.deliver()
}

// Stop releases the pending timer. Later triggers are ignored. Safe to call repeatedly.
func (a *Acknowledger) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.gen++
	a.stopped = true
}

func (a *Acknowledger) revert(gen uint64) {
	a.mu.Lock()
	// A newer trigger or Stop owns the state now.
	if gen != a.gen || !a.acked {
		a.mu.Unlock()
		return
	}
	a.acked = false
	a.timer = nil
	a.mu.Unlock()

	a.deliver()
}

// deliver reports the state as it is now, not as it was when the caller changed it.
// A caller that lost the race to a newer change finds nothing left to report.
func (a *Acknowledger) deliver() {
	a.notifyMu.Lock()
	defer a.notifyMu.Unlock()

	a.mu.Lock()
	v := a.acked
	a.mu.Unlock()

	if v == a.delivered {
		return
	}
	a.delivered = v
	if a.onChange != nil {
		a.onChange(v)
	}
}
