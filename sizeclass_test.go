package hearth

import "testing"

func TestClassTableSanity(t *testing.T) {
	prevSpeed := 0.0
	for class := SizeSmall; int(class) < len(classTable); class++ {
		spec := class.spec()
		t.Run(class.String(), func(t *testing.T) {
			if spec.Size.Min <= 0 || spec.Size.Max <= spec.Size.Min {
				t.Errorf("size range %+v is not a positive ascending range", spec.Size)
			}
			if spec.Opacity.Min < 0 || spec.Opacity.Max > 1 || spec.Opacity.Max < spec.Opacity.Min {
				t.Errorf("opacity band %+v outside [0, 1]", spec.Opacity)
			}
			if spec.SpeedScale <= prevSpeed {
				t.Errorf("speed scale %g does not increase with class size (prev %g)", spec.SpeedScale, prevSpeed)
			}
			if spec.HaloTier < 0 || spec.HaloTier > len(haloRings) {
				t.Errorf("halo tier %d outside [0, %d]", spec.HaloTier, len(haloRings))
			}
			if spec.EllipseBias < 0 || spec.EllipseBias > 1 {
				t.Errorf("ellipse bias %g outside [0, 1]", spec.EllipseBias)
			}
		})
		prevSpeed = spec.SpeedScale
	}
}

// Ellipse bias is reserved for the two smaller classes.
func TestEllipseBiasSmallClassesOnly(t *testing.T) {
	if classTable[SizeSmall].EllipseBias == 0 || classTable[SizeMedium].EllipseBias == 0 {
		t.Error("small and medium classes should carry an ellipse bias")
	}
	if classTable[SizeLarge].EllipseBias != 0 || classTable[SizeExtraLarge].EllipseBias != 0 {
		t.Error("large classes should not carry an ellipse bias")
	}
}

func TestDefaultClassMixSumsToOne(t *testing.T) {
	assertNear(t, "mix sum", DefaultClassMix.sum(), 1)
}

func TestClassMixCountsPartition(t *testing.T) {
	for _, total := range []int{1, 7, 10, 97, 160, 500} {
		counts := DefaultClassMix.counts(total)
		sum := 0
		for _, c := range counts {
			if c < 0 {
				t.Fatalf("counts(%d) produced negative class count %v", total, counts)
			}
			sum += c
		}
		if sum != total {
			t.Errorf("counts(%d) sum to %d", total, sum)
		}
	}
}

func TestClassMixCountsProportions(t *testing.T) {
	counts := DefaultClassMix.counts(1000)
	if counts[SizeSmall] < counts[SizeMedium] || counts[SizeMedium] < counts[SizeLarge] {
		t.Errorf("counts should decrease with class size: %v", counts)
	}
	// ~18% of 1000
	if counts[SizeMedium] != 180 {
		t.Errorf("medium count = %d, want 180", counts[SizeMedium])
	}
}

func TestSizeClassEnumValues(t *testing.T) {
	if SizeSmall != 0 {
		t.Errorf("SizeSmall = %d, want 0", SizeSmall)
	}
	if SizeExtraLarge != 3 {
		t.Errorf("SizeExtraLarge = %d, want 3", SizeExtraLarge)
	}
	if SizeExtraLarge.String() != "extra-large" {
		t.Errorf("String() = %q", SizeExtraLarge.String())
	}
}
