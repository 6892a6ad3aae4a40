package flappy

import (
	"math/rand"
	"time"
)

// Obstacle is a pipe pair with an open gap between GapTop and GapBottom.
type Obstacle struct {
	X       float64 // left edge
	GapTop  float64
	GapSize float64
	Passed  bool      // already counted toward the score
	Decor   uint32    // opaque seed for decorative variation; never read by the simulation
	Spawned time.Time // spawn timestamp, monotonic along the stream
}

// GapBottom returns the y coordinate where the bottom pipe starts.
func (o Obstacle) GapBottom() float64 {
	return o.GapTop + o.GapSize
}

// Right returns the x coordinate of the right edge for a pipe of the given width.
func (o Obstacle) Right(width float64) float64 {
	return o.X + width
}

// SpawnBounds describes where a new obstacle may be placed.
type SpawnBounds struct {
	FieldWidth   float64
	FieldHeight  float64
	GroundHeight float64
	GapSize      float64
	MarginMin    float64
}

// GapRange returns the inclusive range for a new gap top. When the field is
// too small for the gap and both margins, the range collapses to MarginMin.
func (b SpawnBounds) GapRange() (lo, hi float64) {
	lo = b.MarginMin
	hi = b.FieldHeight - b.GroundHeight - b.GapSize - b.MarginMin
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// Stream spawns, moves and retires obstacles. Obstacles are kept in spawn
// order, which is also their left-to-right order on screen.
type Stream struct {
	obstacles []Obstacle
	width     float64
	rng       *rand.Rand
	decor     uint32
}

// NewStream creates an empty stream of pipes of the given width.
func NewStream(seed int64, width float64) *Stream {
	return &Stream{
		obstacles: make([]Obstacle, 0, 8),
		width:     width,
		rng:       rand.New(rand.NewSource(seed)),
		decor:     uint32(seed),
	}
}

// Width returns the pipe width shared by all obstacles.
func (s *Stream) Width() float64 {
	return s.width
}

// Obstacles returns the live obstacles in spawn order.
// The slice is owned by the stream and is only valid until the next mutation.
func (s *Stream) Obstacles() []Obstacle {
	return s.obstacles
}

// Len returns the number of live obstacles.
func (s *Stream) Len() int {
	return len(s.obstacles)
}

// Spawn appends one obstacle at the right edge of the field with a gap top
// drawn uniformly from b.GapRange().
func (s *Stream) Spawn(b SpawnBounds, now time.Time) Obstacle {
	lo, hi := b.GapRange()
	o := Obstacle{
		X:       b.FieldWidth,
		GapTop:  lo + s.rng.Float64()*(hi-lo),
		GapSize: b.GapSize,
		Decor:   s.nextDecor(),
		Spawned: now,
	}
	s.obstacles = append(s.obstacles, o)
	return o
}

// TrySpawn spawns a single obstacle when more than interval has passed since
// last, and returns the new last-spawn time. Missed intervals are not caught
// up: at most one obstacle is spawned per call. A zero last spawns at once.
func (s *Stream) TrySpawn(now, last time.Time, interval time.Duration, b SpawnBounds) (time.Time, bool) {
	if !last.IsZero() && now.Sub(last) <= interval {
		return last, false
	}
	s.Spawn(b, now)
	return now, true
}

// Advance moves every obstacle left by speed and drops the ones whose right
// edge has left the field. Returns how many were dropped.
func (s *Stream) Advance(speed float64) int {
	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		o.X -= speed
		if o.Right(s.width) < 0 {
			continue
		}
		kept = append(kept, o)
	}
	dropped := len(s.obstacles) - len(kept)
	clear(s.obstacles[len(kept):])
	s.obstacles = kept
	return dropped
}

// Score marks obstacles whose right edge is strictly left of playerLeft as
// passed and returns how many were newly passed. Each obstacle counts once.
func (s *Stream) Score(playerLeft float64) int {
	passed := 0
	for i := range s.obstacles {
		o := &s.obstacles[i]
		if !o.Passed && o.Right(s.width) < playerLeft {
			o.Passed = true
			passed++
		}
	}
	return passed
}

// nextDecor advances a linear congruential generator. Renderers use the
// value to vary pipe decoration deterministically.
func (s *Stream) nextDecor() uint32 {
	s.decor = s.decor*1664525 + 1013904223
	return s.decor
}
