package countup

import (
	"sync"
	"time"
)

// Group owns a set of independent animations keyed by name and cancels them together.
type Group struct {
	mu      sync.Mutex
	cancels map[string]CancelFunc
	closed  bool
}

// NewGroup returns an empty Group.
func NewGroup() *Group {
	return &Group{cancels: make(map[string]CancelFunc)}
}

// Start runs an animation under name, cancelling any previous run with the same name first.
// Starting on a closed group is a no-op.
func (g *Group) Start(name string, target int, duration time.Duration, onTick func(int)) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return nil
	}
	if prev, ok := g.cancels[name]; ok {
		prev()
		delete(g.cancels, name)
	}
	cancel, err := Animate(target, duration, onTick)
	if err != nil {
		return err
	}
	g.cancels[name] = cancel
	return nil
}

// Cancel stops the named animation if it is running.
func (g *Group) Cancel(name string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if cancel, ok := g.cancels[name]; ok {
		cancel()
		delete(g.cancels, name)
	}
}

// Close cancels every animation. Further Start calls are ignored.
func (g *Group) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	for name, cancel := range g.cancels {
		cancel()
		delete(g.cancels, name)
	}
	g.closed = true
}
