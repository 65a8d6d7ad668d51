package engine

import (
	"testing"
	"time"
)

// TestClockSchedulerStepsOncePerFrame verifies the request-next-frame chain
func TestClockSchedulerStepsOncePerFrame(t *testing.T) {
	ms := NewManualScheduler()
	steps := 0
	cs := NewClockScheduler(ms, func() { steps++ })

	if ms.Pending() != 0 {
		t.Fatalf("Expected no request before Start")
	}

	cs.Start()
	cs.Start() // second start must not open a second chain
	if ms.Pending() != 1 {
		t.Fatalf("Expected exactly one pending frame, got %d", ms.Pending())
	}

	for i := 0; i < 5; i++ {
		if fired := ms.Fire(); fired != 1 {
			t.Fatalf("Frame %d: expected 1 callback, got %d", i, fired)
		}
	}
	if steps != 5 {
		t.Errorf("Expected 5 steps, got %d", steps)
	}
	if cs.TickCount() != 5 {
		t.Errorf("Expected tick count 5, got %d", cs.TickCount())
	}
	if ms.Pending() != 1 {
		t.Errorf("Expected next frame requested, got %d pending", ms.Pending())
	}
}

// TestClockSchedulerStopIsIdempotent verifies no step fires after Stop
func TestClockSchedulerStopIsIdempotent(t *testing.T) {
	ms := NewManualScheduler()
	steps := 0
	cs := NewClockScheduler(ms, func() { steps++ })

	cs.Stop() // stop before start is a no-op
	cs.Start()
	ms.Fire()
	cs.Stop()
	cs.Stop()

	if cs.IsRunning() {
		t.Error("Expected scheduler stopped")
	}
	if ms.Pending() != 0 {
		t.Errorf("Expected pending request cancelled, got %d", ms.Pending())
	}
	if fired := ms.Fire(); fired != 0 {
		t.Errorf("Expected no callbacks after stop, got %d", fired)
	}
	if steps != 1 {
		t.Errorf("Expected 1 step, got %d", steps)
	}

	// Restart opens a new chain
	cs.Start()
	ms.Fire()
	if steps != 2 {
		t.Errorf("Expected restart to resume stepping, got %d steps", steps)
	}
}

// TestClockSchedulerStopFromStep verifies a step can end the loop
func TestClockSchedulerStopFromStep(t *testing.T) {
	ms := NewManualScheduler()
	var cs *ClockScheduler
	cs = NewClockScheduler(ms, func() { cs.Stop() })

	cs.Start()
	ms.Fire()

	if ms.Pending() != 0 {
		t.Errorf("Expected no further request after stop inside step, got %d", ms.Pending())
	}
}

// TestTickerSchedulerDeliversAndCancels verifies posted frames respect cancellation
func TestTickerSchedulerDeliversAndCancels(t *testing.T) {
	ts := NewTickerScheduler(time.Millisecond)
	defer ts.Close()

	fired := make(chan struct{}, 1)
	ts.RequestFrame(func() { fired <- struct{}{} })

	select {
	case fn := <-ts.Frames():
		fn()
	case <-time.After(time.Second):
		t.Fatal("Frame never delivered")
	}
	select {
	case <-fired:
	default:
		t.Fatal("Callback did not run")
	}

	// Cancel after the timer posted: callback must be dropped
	ran := false
	h := ts.RequestFrame(func() { ran = true })
	var fn func()
	select {
	case fn = <-ts.Frames():
	case <-time.After(time.Second):
		t.Fatal("Frame never delivered")
	}
	ts.CancelFrame(h)
	fn()
	if ran {
		t.Error("Cancelled frame callback ran")
	}
}
