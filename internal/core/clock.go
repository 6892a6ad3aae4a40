package core

import "time"

// FrameClock drives a single chain of frame callbacks.
//
// Each chain is identified by a generation. Start begins a new chain with a
// fresh baseline; frames carrying an older generation, or arriving while the
// clock is stopped, are rejected. This keeps at most one chain alive and keeps
// a resume from producing one huge delta.
type FrameClock struct {
	last    time.Time
	running bool
	gen     uint64
}

// Start begins a new frame chain at now and returns its generation.
func (c *FrameClock) Start(now time.Time) uint64 {
	c.gen++
	c.last = now
	c.running = true
	return c.gen
}

// Stop ends the current chain. Frames are rejected until the next Start.
func (c *FrameClock) Stop() {
	c.running = false
}

// Running reports whether a chain is active.
func (c *FrameClock) Running() bool {
	return c.running
}

// Generation returns the generation of the latest chain.
func (c *FrameClock) Generation() uint64 {
	return c.gen
}

// Frame accepts one frame of chain gen at timestamp now and returns the time
// elapsed since the previous frame (or since Start). Timestamps that go
// backwards yield a zero delta.
func (c *FrameClock) Frame(gen uint64, now time.Time) (time.Duration, bool) {
	if !c.running || gen != c.gen {
		return 0, false
	}
	dt := now.Sub(c.last)
	if dt < 0 {
		dt = 0
	}
	c.last = now
	return dt, true
}
