// Package config provides file-based game configuration, difficulty presets and
// the tier-based difficulty controller.
package config

import (
	"errors"
	"fmt"
	"time"
)

// FlappyConfig contains all tunables of the game.
type FlappyConfig struct {
	Field      Field            `yaml:"field" toml:"field"`
	Player     PlayerConfig     `yaml:"player" toml:"player"`
	Physics    PhysicsConfig    `yaml:"physics" toml:"physics"`
	Obstacles  ObstacleConfig   `yaml:"obstacles" toml:"obstacles"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// Field is the play field in world units.
type Field struct {
	Width        float64 `yaml:"width" toml:"width"`
	Height       float64 `yaml:"height" toml:"height"`
	GroundHeight float64 `yaml:"ground_height" toml:"ground_height"`
}

// GroundY returns the y coordinate of the ground surface.
func (f Field) GroundY() float64 {
	return f.Height - f.GroundHeight
}

// PlayerConfig places and sizes the player body.
type PlayerConfig struct {
	X      float64 `yaml:"x" toml:"x"`
	StartY float64 `yaml:"start_y" toml:"start_y"`
	Radius float64 `yaml:"radius" toml:"radius"`
}

// PhysicsConfig defines per-tick motion.
type PhysicsConfig struct {
	Gravity    float64 `yaml:"gravity" toml:"gravity"`
	Lift       float64 `yaml:"lift" toml:"lift"`   // jump impulse magnitude
	Scale      float64 `yaml:"scale" toml:"scale"` // multiplier applied to gravity and lift
	JumpFlagMS int     `yaml:"jump_flag_ms" toml:"jump_flag_ms"`
}

// JumpFlagDuration is how long the jumping flag stays set after a jump.
func (p PhysicsConfig) JumpFlagDuration() time.Duration {
	return time.Duration(p.JumpFlagMS) * time.Millisecond
}

// ObstacleConfig defines pipe geometry.
type ObstacleConfig struct {
	Width     float64 `yaml:"width" toml:"width"`
	GapSize   float64 `yaml:"gap_size" toml:"gap_size"`
	MarginMin float64 `yaml:"margin_min" toml:"margin_min"`
}

// DifficultyConfig defines the tier ramp.
type DifficultyConfig struct {
	Enabled         bool    `yaml:"enabled" toml:"enabled"`
	PointsPerTier   int     `yaml:"points_per_tier" toml:"points_per_tier"`
	BaseSpeed       float64 `yaml:"base_speed" toml:"base_speed"`
	SpeedStep       float64 `yaml:"speed_step" toml:"speed_step"`
	SpeedCap        float64 `yaml:"speed_cap" toml:"speed_cap"`
	BaseIntervalMS  int     `yaml:"base_interval_ms" toml:"base_interval_ms"`
	IntervalStepMS  int     `yaml:"interval_step_ms" toml:"interval_step_ms"`
	IntervalFloorMS int     `yaml:"interval_floor_ms" toml:"interval_floor_ms"`
}

// Validate rejects configurations the simulation cannot run with.
// Degenerate spawn ranges are allowed; the stream clamps them.
func (c FlappyConfig) Validate() error {
	var errs []error
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field must be positive, got %vx%v", c.Field.Width, c.Field.Height))
	}
	if c.Field.GroundHeight < 0 || c.Field.GroundHeight >= c.Field.Height {
		errs = append(errs, fmt.Errorf("ground_height %v outside [0, %v)", c.Field.GroundHeight, c.Field.Height))
	}
	if c.Player.Radius <= 0 {
		errs = append(errs, fmt.Errorf("player radius must be positive, got %v", c.Player.Radius))
	}
	if c.Physics.Gravity < 0 || c.Physics.Lift < 0 {
		errs = append(errs, errors.New("gravity and lift must not be negative"))
	}
	if c.Physics.Scale <= 0 {
		errs = append(errs, fmt.Errorf("physics scale must be positive, got %v", c.Physics.Scale))
	}
	if c.Physics.JumpFlagMS < 0 {
		errs = append(errs, fmt.Errorf("jump_flag_ms must not be negative, got %d", c.Physics.JumpFlagMS))
	}
	if c.Obstacles.Width <= 0 || c.Obstacles.GapSize <= 0 {
		errs = append(errs, errors.New("obstacle width and gap_size must be positive"))
	}
	if c.Obstacles.MarginMin < 0 {
		errs = append(errs, fmt.Errorf("margin_min must not be negative, got %v", c.Obstacles.MarginMin))
	}
	d := c.Difficulty
	if d.PointsPerTier <= 0 {
		errs = append(errs, fmt.Errorf("points_per_tier must be positive, got %d", d.PointsPerTier))
	}
	if d.BaseSpeed <= 0 || d.SpeedStep < 0 || d.SpeedCap < d.BaseSpeed {
		errs = append(errs, errors.New("speeds need base_speed > 0, speed_step >= 0 and speed_cap >= base_speed"))
	}
	if d.BaseIntervalMS <= 0 || d.IntervalStepMS < 0 || d.IntervalFloorMS <= 0 || d.IntervalFloorMS > d.BaseIntervalMS {
		errs = append(errs, errors.New("intervals need base_interval_ms > 0, interval_step_ms >= 0 and 0 < interval_floor_ms <= base_interval_ms"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset is a named difficulty adjustment.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. The empty string means "no preset".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}
