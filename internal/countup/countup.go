// Package countup animates a displayed integer from zero up to a target.
package countup

import (
	"errors"
	"math"
	"sync"
	"time"
)

// TickInterval is the fixed emission cadence, independent of target and duration.
const TickInterval = 16 * time.Millisecond

var (
	ErrNegativeTarget      = errors.New("countup: target must be non-negative")
	ErrNonPositiveDuration = errors.New("countup: duration must be positive")
)

// CancelFunc stops an animation. It is safe to call more than once.
type CancelFunc func()

// Steps returns the values an animation emits, in order. The last value is always target.
// A zero target emits nothing.
func Steps(target int, duration, tick time.Duration) ([]int, error) {
	if err := check(target, duration); err != nil {
		return nil, err
	}
	if tick <= 0 {
		tick = TickInterval
	}
	if target == 0 {
		return nil, nil
	}
	var out []int
	s := newStepper(target, duration, tick)
	for {
		v, done := s.next()
		out = append(out, v)
		if done {
			return out, nil
		}
	}
}

// Animate emits count-up values to onTick every TickInterval until target is reached or the
// returned CancelFunc is called. onTick runs on the animation goroutine.
func Animate(target int, duration time.Duration, onTick func(int)) (CancelFunc, error) {
	return animate(target, duration, TickInterval, onTick)
}

func animate(target int, duration, tick time.Duration, onTick func(int)) (CancelFunc, error) {
	if err := check(target, duration); err != nil {
		return nil, err
	}
	if target == 0 || onTick == nil {
		return func() {}, nil
	}

	done := make(chan struct{})
	var once sync.Once
	cancel := func() { once.Do(func() { close(done) }) }

	ticker := time.NewTicker(tick)
	s := newStepper(target, duration, tick)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
			}
			// cancel may race with the tick; prefer cancellation.
			select {
			case <-done:
				return
			default:
			}
			v, finished := s.next()
			onTick(v)
			if finished {
				cancel()
				return
			}
		}
	}()
	return cancel, nil
}

func check(target int, duration time.Duration) error {
	if target < 0 {
		return ErrNegativeTarget
	}
	if duration <= 0 {
		return ErrNonPositiveDuration
	}
	return nil
}

type stepper struct {
	target    float64
	increment float64
	value     float64
}

func newStepper(target int, duration, tick time.Duration) *stepper {
	steps := float64(duration) / float64(tick)
	return &stepper{
		target:    float64(target),
		increment: float64(target) / steps,
	}
}

func (s *stepper) next() (int, bool) {
	s.value += s.increment
	if s.value >= s.target {
		return int(s.target), true
	}
	return int(math.Floor(s.value)), false
}
