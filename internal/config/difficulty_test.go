package config

import (
	"testing"
	"time"
)

func TestTier(t *testing.T) {
	cfg := DefaultFlappyConfig().Difficulty

	tests := []struct {
		score, tier int
	}{
		{0, 1}, {9, 1}, {10, 2}, {19, 2}, {30, 4}, {100, 11},
	}
	for _, tc := range tests {
		if got := cfg.Tier(tc.score); got != tc.tier {
			t.Errorf("Tier(%d) = %d, expected %d", tc.score, got, tc.tier)
		}
	}
}

func TestSpeedAndIntervalBounds(t *testing.T) {
	cfg := DefaultFlappyConfig().Difficulty

	prevSpeed := cfg.Speed(1)
	prevInterval := cfg.SpawnInterval(1)
	for tier := 2; tier <= 200; tier++ {
		s := cfg.Speed(tier)
		iv := cfg.SpawnInterval(tier)

		if s < prevSpeed {
			t.Fatalf("Speed(%d) = %v decreased from %v", tier, s, prevSpeed)
		}
		if s > cfg.SpeedCap {
			t.Fatalf("Speed(%d) = %v exceeds cap %v", tier, s, cfg.SpeedCap)
		}
		if iv > prevInterval {
			t.Fatalf("SpawnInterval(%d) = %v increased from %v", tier, iv, prevInterval)
		}
		if iv < time.Duration(cfg.IntervalFloorMS)*time.Millisecond {
			t.Fatalf("SpawnInterval(%d) = %v below floor", tier, iv)
		}
		prevSpeed, prevInterval = s, iv
	}

	if got := cfg.Speed(200); got != cfg.SpeedCap {
		t.Errorf("Speed(200) = %v, expected cap %v", got, cfg.SpeedCap)
	}
	if got := cfg.SpawnInterval(200); got != 1100*time.Millisecond {
		t.Errorf("SpawnInterval(200) = %v, expected 1.1s", got)
	}
	if got := cfg.Speed(2); got != 2.0 {
		t.Errorf("Speed(2) = %v, expected 2.0", got)
	}
}

func TestDifficultyStartsAtBase(t *testing.T) {
	cfg := DefaultFlappyConfig().Difficulty
	d := NewDifficulty(cfg)

	if d.Tier() != 1 {
		t.Errorf("initial tier = %d, expected 1", d.Tier())
	}
	if d.Speed() != cfg.BaseSpeed {
		t.Errorf("initial speed = %v, expected base %v", d.Speed(), cfg.BaseSpeed)
	}
	if d.Interval() != 2*time.Second {
		t.Errorf("initial interval = %v, expected 2s", d.Interval())
	}
}

func TestDifficultyObserveOnlyOnMultiples(t *testing.T) {
	d := NewDifficulty(DefaultFlappyConfig().Difficulty)

	for score := 0; score < 10; score++ {
		if d.Observe(score) {
			t.Fatalf("Observe(%d) should not change tier", score)
		}
	}
	if !d.Observe(10) || d.Tier() != 2 {
		t.Fatalf("Observe(10) should move to tier 2, tier = %d", d.Tier())
	}

	// Re-entry at the same score is a no-op
	speed, interval := d.Speed(), d.Interval()
	if d.Observe(10) {
		t.Error("second Observe(10) should not report a change")
	}
	if d.Speed() != speed || d.Interval() != interval {
		t.Error("re-observing the same tier must not alter speed or interval")
	}

	// Skipping past a multiple does not trigger
	if d.Observe(21) {
		t.Error("Observe(21) is not a multiple and must not trigger")
	}
	if d.Tier() != 2 {
		t.Errorf("tier = %d, expected 2", d.Tier())
	}

	if !d.Observe(30) || d.Tier() != 4 {
		t.Errorf("Observe(30) should jump to tier 4, tier = %d", d.Tier())
	}
}

func TestDifficultyApplyIdempotent(t *testing.T) {
	d := NewDifficulty(DefaultFlappyConfig().Difficulty)

	d.Apply(5)
	s1, i1 := d.Speed(), d.Interval()
	d.Apply(5)
	if d.Speed() != s1 || d.Interval() != i1 {
		t.Error("Apply must be idempotent for the same tier")
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := DefaultFlappyConfig().Difficulty
	cfg.Enabled = false
	d := NewDifficulty(cfg)

	if d.Observe(10) {
		t.Error("disabled difficulty should never change tier")
	}
	if d.Speed() != cfg.BaseSpeed {
		t.Errorf("speed = %v, expected base", d.Speed())
	}
}

func TestDifficultyApplyStartingTierDiffersFromInitial(t *testing.T) {
	cfg := DefaultFlappyConfig().Difficulty
	d := NewDifficulty(cfg)

	d.Apply(1)
	if d.Tier() != 1 {
		t.Fatalf("tier = %d, want 1", d.Tier())
	}
	if d.Speed() != cfg.Speed(1) || d.Speed() == cfg.BaseSpeed {
		t.Errorf("speed after Apply(1) = %v, want Speed(1) = %v (not base %v)", d.Speed(), cfg.Speed(1), cfg.BaseSpeed)
	}
	if d.Interval() != cfg.SpawnInterval(1) {
		t.Errorf("interval after Apply(1) = %v, want %v", d.Interval(), cfg.SpawnInterval(1))
	}
}
