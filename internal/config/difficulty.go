package config

import (
	"math"
	"time"
)

// Tier returns the difficulty tier for a score: one tier per PointsPerTier
// points, starting at 1.
func (c DifficultyConfig) Tier(score int) int {
	if score < 0 || c.PointsPerTier <= 0 {
		return 1
	}
	return score/c.PointsPerTier + 1
}

// Speed returns the obstacle speed for a tier, capped at SpeedCap.
func (c DifficultyConfig) Speed(tier int) float64 {
	return math.Min(c.SpeedCap, c.BaseSpeed+float64(tier)*c.SpeedStep)
}

// SpawnInterval returns the time between spawns for a tier, floored at IntervalFloorMS.
func (c DifficultyConfig) SpawnInterval(tier int) time.Duration {
	ms := max(c.IntervalFloorMS, c.BaseIntervalMS-tier*c.IntervalStepMS)
	return time.Duration(ms) * time.Millisecond
}

// Difficulty tracks the current tier of one session and the obstacle speed and
// spawn interval derived from it.
type Difficulty struct {
	cfg      DifficultyConfig
	tier     int
	speed    float64
	interval time.Duration
}

// NewDifficulty starts at tier 1 with the base speed and interval.
// Apply(1) yields Speed(1) and SpawnInterval(1) instead, which already include
// one step; only tier-ups move away from the starting values.
func NewDifficulty(cfg DifficultyConfig) *Difficulty {
	return &Difficulty{
		cfg:      cfg,
		tier:     1,
		speed:    cfg.BaseSpeed,
		interval: time.Duration(cfg.BaseIntervalMS) * time.Millisecond,
	}
}

// Tier returns the current tier.
func (d *Difficulty) Tier() int { return d.tier }

// Speed returns the current obstacle speed per tick.
func (d *Difficulty) Speed() float64 { return d.speed }

// Interval returns the current spawn interval.
func (d *Difficulty) Interval() time.Duration { return d.interval }

// Observe is called once per tick with the current score. The tier only moves
// when the score sits exactly on a positive multiple of PointsPerTier and the
// resulting tier is higher than the current one. Returns true on a tier change.
func (d *Difficulty) Observe(score int) bool {
	if !d.cfg.Enabled || score <= 0 || score%d.cfg.PointsPerTier != 0 {
		return false
	}
	next := d.cfg.Tier(score)
	if next <= d.tier {
		return false
	}
	d.Apply(next)
	return true
}

// Apply sets the tier and recomputes speed and interval from it.
func (d *Difficulty) Apply(tier int) {
	d.tier = tier
	d.speed = d.cfg.Speed(tier)
	d.interval = d.cfg.SpawnInterval(tier)
}
