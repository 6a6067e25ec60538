package ack

import (
	"sync"
	"testing"
	"time"
)

type changeLog struct {
	mu     sync.Mutex
	events []bool
}

func (c *changeLog) record(v bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, v)
}

func (c *changeLog) snapshot() []bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]bool, len(c.events))
	copy(out, c.events)
	return out
}

func TestTriggerAcknowledgesThenReverts(t *testing.T) {
	var log changeLog
	a := New(30*time.Millisecond, log.record)
	defer a.Stop()

	a.Trigger()
	if !a.Acknowledged() {
		t.Fatalf("expected acknowledged immediately after trigger")
	}

	time.Sleep(80 * time.Millisecond)
	if a.Acknowledged() {
		t.Fatalf("expected acknowledgement to revert after window")
	}
	got := log.snapshot()
	if len(got) != 2 || !got[0] || got[1] {
		t.Fatalf("expected [true false] transitions, got %v", got)
	}
}

func TestSecondTriggerExtendsFromLastTrigger(t *testing.T) {
	var log changeLog
	window := 80 * time.Millisecond
	a := New(window, log.record)
	defer a.Stop()

	a.Trigger()
	time.Sleep(50 * time.Millisecond)
	a.Trigger()

	// Past the first trigger's window, inside the second's.
	time.Sleep(50 * time.Millisecond)
	if !a.Acknowledged() {
		t.Fatalf("expected acknowledgement to hold until window after last trigger")
	}

	time.Sleep(80 * time.Millisecond)
	if a.Acknowledged() {
		t.Fatalf("expected acknowledgement to revert after last window")
	}
	got := log.snapshot()
	if len(got) != 2 {
		t.Fatalf("expected exactly one on/off pair, got %v", got)
	}
}

func TestStopPreventsReversionCallbacksAndTriggers(t *testing.T) {
	var log changeLog
	a := New(20*time.Millisecond, log.record)

	a.Trigger()
	a.Stop()
	a.Stop()

	time.Sleep(50 * time.Millisecond)
	a.Trigger()
	if got := log.snapshot(); len(got) != 1 || !got[0] {
		t.Fatalf("expected only the initial transition, got %v", got)
	}
}

func TestNewDefaultsWindow(t *testing.T) {
	a := New(0, nil)
	if a.window != DefaultWindow {
		t.Fatalf("expected default window, got %s", a.window)
	}
	a.Trigger()
	if !a.Acknowledged() {
		t.Fatalf("expected acknowledged with nil callback")
	}
	a.Stop()
}

func TestClearRevertsImmediately(t *testing.T) {
	var log changeLog
	a := New(30*time.Millisecond, log.record)
	defer a.Stop()

	a.Trigger()
	a.Clear()
	if a.Acknowledged() {
		t.Fatalf("expected cleared state")
	}

	time.Sleep(60 * time.Millisecond)
	got := log.snapshot()
	if len(got) != 2 || got[0] != true || got[1] != false {
		t.Fatalf("expected [true false] without a second revert, got %v", got)
	}

	a.Clear()
	if len(log.snapshot()) != 2 {
		t.Fatalf("expected no notification when already clear")
	}
}

func TestTriggerDuringSlowRevertCallbackEndsAcknowledged(t *testing.T) {
	var log changeLog
	entered := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	a := New(40*time.Millisecond, func(v bool) {
		if !v {
			blocked := false
			once.Do(func() { blocked = true })
			if blocked {
				close(entered)
				<-release
			}
		}
		log.record(v)
	})
	defer a.Stop()

	a.Trigger()
	select {
	case <-entered:
	case <-time.After(time.Second):
		t.Fatalf("revert callback never ran")
	}

	// The state flips back on while the revert callback is still running.
	triggered := make(chan struct{})
	go func() {
		a.Trigger()
		close(triggered)
	}()
	deadline := time.Now().Add(time.Second)
	for !a.Acknowledged() {
		if time.Now().After(deadline) {
			t.Fatalf("second trigger did not take effect")
		}
		time.Sleep(time.Millisecond)
	}
	close(release)
	<-triggered
	a.Stop()

	got := log.snapshot()
	if len(got) == 0 || got[len(got)-1] != a.Acknowledged() {
		t.Fatalf("last transition %v does not match acknowledged=%v", got, a.Acknowledged())
	}
}
