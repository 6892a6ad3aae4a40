package core

import (
	"testing"
	"time"
)

func TestFrameClockDelta(t *testing.T) {
	var c FrameClock
	t0 := time.Unix(1000, 0)

	gen := c.Start(t0)
	dt, ok := c.Frame(gen, t0.Add(16*time.Millisecond))
	if !ok || dt != 16*time.Millisecond {
		t.Fatalf("Frame() = %v, %v; expected 16ms, true", dt, ok)
	}

	dt, ok = c.Frame(gen, t0.Add(33*time.Millisecond))
	if !ok || dt != 17*time.Millisecond {
		t.Errorf("Frame() = %v, %v; expected 17ms, true", dt, ok)
	}
}

func TestFrameClockStopRejects(t *testing.T) {
	var c FrameClock
	t0 := time.Unix(1000, 0)

	gen := c.Start(t0)
	c.Stop()
	if _, ok := c.Frame(gen, t0.Add(time.Second)); ok {
		t.Error("stopped clock should reject frames")
	}
	if c.Running() {
		t.Error("Running() should be false after Stop")
	}
}

func TestFrameClockRebaselineOnRestart(t *testing.T) {
	var c FrameClock
	t0 := time.Unix(1000, 0)

	old := c.Start(t0)
	c.Stop()

	// Resume ten seconds later
	resume := t0.Add(10 * time.Second)
	gen := c.Start(resume)

	if _, ok := c.Frame(old, resume.Add(time.Millisecond)); ok {
		t.Error("stale generation should be rejected")
	}

	dt, ok := c.Frame(gen, resume.Add(16*time.Millisecond))
	if !ok {
		t.Fatal("current generation should be accepted")
	}
	if dt != 16*time.Millisecond {
		t.Errorf("first delta after restart = %v, expected 16ms", dt)
	}
}

func TestFrameClockBackwardsTimestamp(t *testing.T) {
	var c FrameClock
	t0 := time.Unix(1000, 0)

	gen := c.Start(t0)
	dt, ok := c.Frame(gen, t0.Add(-time.Second))
	if !ok || dt != 0 {
		t.Errorf("Frame() = %v, %v; expected 0, true", dt, ok)
	}
}
