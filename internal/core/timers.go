package core

import (
	"slices"
	"time"
)

// TimerQueue is a deadline list for hosts whose loop polls instead of
// receiving timer messages. It is not safe for concurrent use; the host
// drains it from its update loop.
type TimerQueue struct {
	pending []pendingTimer
}

type pendingTimer struct {
	at    time.Time
	token TimerToken
}

// Schedule adds token to fire at at.
func (q *TimerQueue) Schedule(token TimerToken, at time.Time) {
	q.pending = append(q.pending, pendingTimer{at: at, token: token})
	slices.SortStableFunc(q.pending, func(a, b pendingTimer) int {
		return a.at.Compare(b.at)
	})
}

// Due removes and returns the tokens whose deadline is not after now, in
// deadline order.
func (q *TimerQueue) Due(now time.Time) []TimerToken {
	n := 0
	for n < len(q.pending) && !q.pending[n].at.After(now) {
		n++
	}
	if n == 0 {
		return nil
	}
	due := make([]TimerToken, n)
	for i := range due {
		due[i] = q.pending[i].token
	}
	q.pending = slices.Delete(q.pending, 0, n)
	return due
}

// Len returns the number of pending timers.
func (q *TimerQueue) Len() int {
	return len(q.pending)
}

// Reset drops every pending timer.
func (q *TimerQueue) Reset() {
	q.pending = q.pending[:0]
}
