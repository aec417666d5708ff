package hearth

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// Tuning collects the scene's declarative knobs. Values that vary between
// scene variants (counts, speeds, the class mix) live here rather than in
// code.
type Tuning struct {
	// FlakeCount is the fixed number of snowflakes.
	FlakeCount int `yaml:"flake_count"`
	// Mix is the size-class distribution; fractions must sum to 1.
	Mix ClassMix `yaml:"mix"`
	// BaseSpeed is the fall speed in pixels per second before class scaling.
	BaseSpeed float64 `yaml:"base_speed"`
	// SpeedJitter is the bounded per-flake speed variation, e.g. 0.25.
	SpeedJitter float64 `yaml:"speed_jitter"`
	// FadeHeight, when > 0, enables the fade-boundary variant at that many
	// pixels below the top of the viewport.
	FadeHeight float64 `yaml:"fade_height"`
	// SpawnDepth is how far above the screen flakes start and re-enter.
	SpawnDepth float64 `yaml:"spawn_depth"`
	// CloudCount is the number of cloud clusters.
	CloudCount int `yaml:"cloud_count"`
	// Seed seeds the scene's random source; 0 means non-deterministic.
	Seed uint64 `yaml:"seed"`
}

// DefaultTuning returns the stock configuration.
func DefaultTuning() Tuning {
	return Tuning{
		FlakeCount:  defaultFlakeCount,
		Mix:         DefaultClassMix,
		BaseSpeed:   defaultBaseSpeed,
		SpeedJitter: defaultJitter,
		FadeHeight:  0,
		SpawnDepth:  defaultSpawnDepth,
		CloudCount:  defaultCloudCount,
	}
}

// mixTolerance is how far the class-mix sum may stray from 1.
const mixTolerance = 0.01

// Validate checks the tuning for values the engine cannot run with.
func (t Tuning) Validate() error {
	if t.FlakeCount <= 0 {
		return fmt.Errorf("tuning: flake_count must be positive, got %d", t.FlakeCount)
	}
	if t.BaseSpeed <= 0 {
		return fmt.Errorf("tuning: base_speed must be positive, got %g", t.BaseSpeed)
	}
	if t.SpeedJitter < 0 || t.SpeedJitter >= 1 {
		return fmt.Errorf("tuning: speed_jitter must be in [0, 1), got %g", t.SpeedJitter)
	}
	if t.FadeHeight < 0 {
		return fmt.Errorf("tuning: fade_height must not be negative, got %g", t.FadeHeight)
	}
	if t.SpawnDepth < 0 {
		return fmt.Errorf("tuning: spawn_depth must not be negative, got %g", t.SpawnDepth)
	}
	for _, frac := range []float64{t.Mix.Small, t.Mix.Medium, t.Mix.Large, t.Mix.ExtraLarge} {
		if frac < 0 {
			return fmt.Errorf("tuning: mix fractions must not be negative")
		}
	}
	if s := t.Mix.sum(); math.Abs(s-1) > mixTolerance {
		return fmt.Errorf("tuning: mix fractions sum to %g, want 1", s)
	}
	return nil
}

// LoadTuning parses a YAML tuning document over the defaults and validates
// the result, so a partial file only overrides what it names.
func LoadTuning(data []byte) (Tuning, error) {
	t := DefaultTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}
