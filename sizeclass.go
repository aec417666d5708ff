package hearth

// SizeClass buckets flakes by size. The class determines the size range a
// flake is drawn from and every size-derived parameter: fall-speed scale,
// reset-opacity band, halo tier, and ellipse bias.
type SizeClass uint8

const (
	SizeSmall      SizeClass = iota // background dust, slowest
	SizeMedium                      // mid-field flakes
	SizeLarge                       // foreground flakes, soft halo
	SizeExtraLarge                  // out-of-focus foreground, fastest
)

// sizeClassNames maps each SizeClass to its string form.
var sizeClassNames = [...]string{
	SizeSmall:      "small",
	SizeMedium:     "medium",
	SizeLarge:      "large",
	SizeExtraLarge: "extra-large",
}

func (c SizeClass) String() string {
	return sizeClassNames[c]
}

// classSpec holds the tunable parameters derived from a flake's size class.
// Keeping them in one table avoids size-dependent branching scattered
// through generation and rendering code.
type classSpec struct {
	// Size is the diameter range in pixels.
	Size Range
	// Opacity is the band a flake's opacity is re-drawn from on every recycle.
	Opacity Range
	// SpeedScale multiplies the base fall speed. Larger classes fall faster
	// to read as closer to the viewer.
	SpeedScale float64
	// HaloTier selects the soft-glow spread when rendering: 0 is a bare disc,
	// higher tiers add wider, fainter halo rings to fake depth of field.
	HaloTier int
	// EllipseBias is the probability that a flake is squashed into an
	// ellipse. Only the two smaller classes carry a meaningful bias.
	EllipseBias float64
}

// classTable is indexed by SizeClass. The extra-large opacity band is
// deliberately fixed and low: those flakes read as atmospheric haze.
var classTable = [...]classSpec{
	SizeSmall:      {Size: Range{1, 3}, Opacity: Range{0.55, 0.95}, SpeedScale: 0.6, HaloTier: 0, EllipseBias: 0.6},
	SizeMedium:     {Size: Range{3, 6}, Opacity: Range{0.5, 0.9}, SpeedScale: 0.85, HaloTier: 1, EllipseBias: 0.35},
	SizeLarge:      {Size: Range{6, 10}, Opacity: Range{0.45, 0.8}, SpeedScale: 1.15, HaloTier: 2, EllipseBias: 0},
	SizeExtraLarge: {Size: Range{10, 16}, Opacity: Range{0.4, 0.4}, SpeedScale: 1.5, HaloTier: 3, EllipseBias: 0},
}

// spec returns the class's parameter table entry.
func (c SizeClass) spec() classSpec {
	return classTable[c]
}

// ClassMix describes what fraction of a field belongs to each size class.
// Fractions should sum to 1; Tuning.Validate enforces this for loaded
// configs.
type ClassMix struct {
	Small      float64 `yaml:"small"`
	Medium     float64 `yaml:"medium"`
	Large      float64 `yaml:"large"`
	ExtraLarge float64 `yaml:"extra_large"`
}

// DefaultClassMix matches the distribution of the richest observed scene:
// mostly background dust with a handful of large foreground flakes.
var DefaultClassMix = ClassMix{Small: 0.69, Medium: 0.18, Large: 0.08, ExtraLarge: 0.05}

// sum returns the total of all fractions.
func (m ClassMix) sum() float64 {
	return m.Small + m.Medium + m.Large + m.ExtraLarge
}

// counts partitions total into per-class counts that sum exactly to total.
// Rounding remainder goes to the small class.
func (m ClassMix) counts(total int) [len(classTable)]int {
	var c [len(classTable)]int
	c[SizeMedium] = int(float64(total) * m.Medium)
	c[SizeLarge] = int(float64(total) * m.Large)
	c[SizeExtraLarge] = int(float64(total) * m.ExtraLarge)
	c[SizeSmall] = total - c[SizeMedium] - c[SizeLarge] - c[SizeExtraLarge]
	return c
}
