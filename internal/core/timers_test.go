package core

import (
	"testing"
	"time"
)

func TestTimerQueueOrder(t *testing.T) {
	var q TimerQueue
	base := time.Unix(100, 0)

	q.Schedule(TimerToken{Session: 1, Gen: 2}, base.Add(300*time.Millisecond))
	q.Schedule(TimerToken{Session: 1, Gen: 1}, base.Add(100*time.Millisecond))
	q.Schedule(TimerToken{Session: 1, Gen: 3}, base.Add(300*time.Millisecond))

	if due := q.Due(base); len(due) != 0 {
		t.Fatalf("nothing should be due yet, got %v", due)
	}

	due := q.Due(base.Add(100 * time.Millisecond))
	if len(due) != 1 || due[0].Gen != 1 {
		t.Fatalf("Due(100ms) = %v, want gen 1", due)
	}

	due = q.Due(base.Add(time.Second))
	if len(due) != 2 || due[0].Gen != 2 || due[1].Gen != 3 {
		t.Errorf("Due(1s) = %v, want gens 2 then 3", due)
	}
	if q.Len() != 0 {
		t.Errorf("Len() = %d after draining", q.Len())
	}
}

func TestTimerQueueReset(t *testing.T) {
	var q TimerQueue
	q.Schedule(TimerToken{Gen: 1}, time.Unix(1, 0))
	q.Reset()

	if q.Len() != 0 || q.Due(time.Unix(10, 0)) != nil {
		t.Error("Reset should drop pending timers")
	}
}
