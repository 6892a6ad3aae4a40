package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// searchNames are tried in each search directory, in order.
var searchNames = []string{"flappy.yaml", "flappy.yml", "flappy.toml"}

// LoadFlappy loads the game configuration.
// Search order: customPath -> ~/.arcade/configs/flappy.{yaml,toml} ->
// ./configs/flappy.{yaml,toml} -> embedded default.
// Only a custom path that cannot be read, parsed or validated is an error;
// broken files on the search path are skipped.
func LoadFlappy(customPath string) (FlappyConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return FlappyConfig{}, err
		}
		return cfg, nil
	}

	for _, dir := range searchDirs() {
		for _, name := range searchNames {
			if cfg, err := loadFile(filepath.Join(dir, name)); err == nil {
				return cfg, nil
			}
		}
	}

	cfg := DefaultFlappyConfig()
	if err := yaml.Unmarshal(defaultFlappyYAML, &cfg); err != nil {
		return DefaultFlappyConfig(), nil
	}
	return cfg, nil
}

// Decode parses data in the format implied by name's extension on top of the
// built-in defaults, so partial files only override what they mention.
func Decode(name string, data []byte) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig()

	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg); err != nil {
			return FlappyConfig{}, fmt.Errorf("config: cannot parse %s: %w", name, err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return FlappyConfig{}, fmt.Errorf("config: cannot parse %s: %w", name, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return FlappyConfig{}, fmt.Errorf("%s: %w", name, err)
	}
	return cfg, nil
}

// LoadFlappyPreset loads the configuration like LoadFlappy, applies preset
// and validates the result.
func LoadFlappyPreset(customPath string, preset DifficultyPreset) (FlappyConfig, error) {
	cfg, err := LoadFlappy(customPath)
	if err != nil {
		return FlappyConfig{}, err
	}
	ApplyFlappyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return FlappyConfig{}, fmt.Errorf("difficulty %q: %w", preset, err)
	}
	return cfg, nil
}

func loadFile(path string) (FlappyConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FlappyConfig{}, fmt.Errorf("config: cannot read %s: %w", path, err)
	}
	return Decode(path, data)
}

// searchDirs returns the user and working-directory config locations.
func searchDirs() []string {
	var dirs []string
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".arcade", "configs"))
	}
	return append(dirs, "configs")
}

// ApplyFlappyPreset adjusts cfg for a difficulty preset. The empty preset and
// "normal" leave the configuration as loaded.
func ApplyFlappyPreset(cfg *FlappyConfig, preset DifficultyPreset) {
	d := &cfg.Difficulty
	switch preset {
	case DifficultyFixed:
		d.Enabled = false
	case DifficultyEasy:
		d.Enabled = true
		d.BaseSpeed *= 0.8
		d.SpeedStep /= 2
		d.BaseIntervalMS += d.BaseIntervalMS / 5
		d.IntervalFloorMS += d.IntervalFloorMS / 5
		d.SpeedCap = max(d.SpeedCap, d.BaseSpeed)
		cfg.Obstacles.GapSize += 20
	case DifficultyHard:
		d.Enabled = true
		d.BaseSpeed *= 1.3
		d.SpeedCap = max(d.SpeedCap*1.25, d.BaseSpeed)
		d.BaseIntervalMS -= d.BaseIntervalMS / 5
		d.IntervalFloorMS = min(d.IntervalFloorMS, d.BaseIntervalMS)
		cfg.Obstacles.GapSize = max(cfg.Obstacles.GapSize-20, cfg.Obstacles.GapSize*0.75)
	case DifficultyNormal:
		d.Enabled = true
	}
}
