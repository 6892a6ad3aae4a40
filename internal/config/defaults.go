package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration. It matches the
// embedded defaults/flappy.yaml and is used when that file cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Field: Field{
			Width:        400,
			Height:       600,
			GroundHeight: 80,
		},
		Player: PlayerConfig{
			X:      80,
			StartY: 300,
			Radius: 20,
		},
		Physics: PhysicsConfig{
			Gravity:    0.25,
			Lift:       6,
			Scale:      1,
			JumpFlagMS: 500,
		},
		Obstacles: ObstacleConfig{
			Width:     60,
			GapSize:   180,
			MarginMin: 50,
		},
		Difficulty: DifficultyConfig{
			Enabled:         true,
			PointsPerTier:   10,
			BaseSpeed:       1.5,
			SpeedStep:       0.25,
			SpeedCap:        4,
			BaseIntervalMS:  2000,
			IntervalStepMS:  150,
			IntervalFloorMS: 1100,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
