package hearth

import (
	"strings"
	"testing"
)

func TestDefaultTuningIsValid(t *testing.T) {
	if err := DefaultTuning().Validate(); err != nil {
		t.Fatalf("DefaultTuning().Validate() = %v", err)
	}
}

func TestLoadTuningPartialOverride(t *testing.T) {
	doc := []byte("flake_count: 220\nbase_speed: 120\n")
	tuning, err := LoadTuning(doc)
	if err != nil {
		t.Fatalf("LoadTuning error: %v", err)
	}
	if tuning.FlakeCount != 220 {
		t.Errorf("FlakeCount = %d, want 220", tuning.FlakeCount)
	}
	assertNear(t, "BaseSpeed", tuning.BaseSpeed, 120)
	// Unnamed fields keep their defaults.
	if tuning.Mix != DefaultClassMix {
		t.Errorf("Mix = %+v, want default", tuning.Mix)
	}
	assertNear(t, "SpawnDepth", tuning.SpawnDepth, defaultSpawnDepth)
}

func TestLoadTuningMixOverride(t *testing.T) {
	doc := []byte(`
mix:
  small: 0.5
  medium: 0.3
  large: 0.15
  extra_large: 0.05
`)
	tuning, err := LoadTuning(doc)
	if err != nil {
		t.Fatalf("LoadTuning error: %v", err)
	}
	assertNear(t, "Mix.Small", tuning.Mix.Small, 0.5)
	assertNear(t, "Mix.ExtraLarge", tuning.Mix.ExtraLarge, 0.05)
}

func TestLoadTuningRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"zero count", "flake_count: 0", "flake_count"},
		{"negative speed", "base_speed: -5", "base_speed"},
		{"jitter too large", "speed_jitter: 1.5", "speed_jitter"},
		{"negative fade", "fade_height: -1", "fade_height"},
		{"mix does not sum", "mix: {small: 0.5, medium: 0.1, large: 0.1, extra_large: 0.1}", "sum"},
		{"negative fraction", "mix: {small: 1.4, medium: -0.4, large: 0, extra_large: 0}", "negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTuning([]byte(tt.doc))
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadTuningMalformedYAML(t *testing.T) {
	if _, err := LoadTuning([]byte("flake_count: [not a number")); err == nil {
		t.Fatal("expected a parse error")
	}
}
