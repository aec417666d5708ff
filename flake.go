package hearth

import (
	"math/rand/v2"

	"github.com/tanema/gween"
)

// DriftDirection is the horizontal motion pattern assigned to a flake for
// one fall cycle.
type DriftDirection uint8

const (
	DriftLeft  DriftDirection = iota // linear drift toward the left edge
	DriftRight                       // linear drift toward the right edge
	DriftSway                        // back-and-forth oscillation
)

// driftNames maps each DriftDirection to its string form.
var driftNames = [...]string{
	DriftLeft:  "left",
	DriftRight: "right",
	DriftSway:  "sway",
}

func (d DriftDirection) String() string {
	return driftNames[d]
}

// Flake is one animated snowflake. Position and opacity are live animated
// values written by the Field each update; the render layer only reads.
// Each flake exclusively owns its animation handles; there is no global
// animation registry.
type Flake struct {
	// Index is the flake's stable identity within its Field.
	Index int
	// Class determines size range and every size-derived parameter.
	Class SizeClass
	// X, Y is the current position in viewport coordinates.
	X, Y float64
	// Size is the core diameter in pixels, fixed at generation.
	Size float64
	// Opacity in [0, 1], re-drawn from the class band on every recycle.
	Opacity float64
	// Rotation in degrees, [0, 360).
	Rotation float64
	// Elliptical marks flakes drawn squashed rather than round.
	Elliptical bool
	// Drift is the horizontal pattern for the current fall cycle.
	Drift DriftDirection
	// Speed is the vertical fall speed in pixels per second.
	Speed float64
	// Active is cleared on teardown; any animation completion that fires
	// afterwards must leave the flake untouched.
	Active bool

	// In-flight animation handles. At most one fall cycle is live at a time;
	// starting a new cycle replaces all three.
	fall  *gween.Tween
	drift *gween.Tween
	fade  *gween.Tween

	// Sway bookkeeping: the anchor x at cycle start, the signed amplitude,
	// the per-leg duration, and the current leg (two full sways = 4 legs).
	swayAnchor float64
	swayAmp    float64
	swayHalf   float32
	swayLeg    int
}

// FieldConfig controls flake generation and motion.
type FieldConfig struct {
	// Count is the number of flakes, fixed for the Field's lifetime.
	Count int
	// Viewport is the visible area flakes fall through.
	Viewport Rect
	// Mix is the size-class distribution. Zero value means DefaultClassMix.
	Mix ClassMix
	// BaseSpeed is the fall speed in pixels per second before class scaling
	// and jitter.
	BaseSpeed float64
	// SpeedJitter is the bounded random speed variation as a fraction of the
	// scaled speed, e.g. 0.25 for ±25%.
	SpeedJitter float64
	// FadeHeight, when > 0, places a fade boundary that many pixels below
	// the viewport top: falls end there and the flake fades to zero opacity
	// before recycling. Zero recycles at the bottom edge with no fade.
	FadeHeight float64
	// SpawnDepth is how far above the viewport flakes start and re-enter.
	// Recycled y positions are staggered uniformly within it.
	SpawnDepth float64
	// Rand is the random source for all attribute draws. Nil selects a
	// freshly seeded source; tests inject a deterministic one.
	Rand *rand.Rand
}

// Field owns a fixed set of flakes and drives their fall/recycle loop.
// It is single-threaded: the host calls Update from its frame clock and
// reads Flakes for rendering.
type Field struct {
	cfg    FieldConfig
	rng    *rand.Rand
	flakes []Flake
	active bool
}

const (
	defaultFlakeCount = 160
	defaultBaseSpeed  = 90
	defaultJitter     = 0.25
	defaultSpawnDepth = 120

	minViewportWidth  = 320
	minViewportHeight = 480
)

// NewField generates cfg.Count flakes with randomized attributes and starts
// one fall cycle per flake. Generation always succeeds.
func NewField(cfg FieldConfig) *Field {
	if cfg.Count <= 0 {
		cfg.Count = defaultFlakeCount
	}
	if cfg.BaseSpeed <= 0 {
		cfg.BaseSpeed = defaultBaseSpeed
	}
	if cfg.SpeedJitter <= 0 {
		cfg.SpeedJitter = defaultJitter
	}
	if cfg.SpawnDepth <= 0 {
		cfg.SpawnDepth = defaultSpawnDepth
	}
	if cfg.Viewport.Width < minViewportWidth {
		cfg.Viewport.Width = minViewportWidth
	}
	if cfg.Viewport.Height < minViewportHeight {
		cfg.Viewport.Height = minViewportHeight
	}
	if (cfg.Mix == ClassMix{}) {
		cfg.Mix = DefaultClassMix
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	f := &Field{
		cfg:    cfg,
		rng:    rng,
		flakes: make([]Flake, cfg.Count),
		active: true,
	}

	counts := cfg.Mix.counts(cfg.Count)
	i := 0
	for class := SizeSmall; int(class) < len(counts); class++ {
		for n := 0; n < counts[class]; n++ {
			f.generate(&f.flakes[i], i, class)
			i++
		}
	}
	for i := range f.flakes {
		f.startCycle(&f.flakes[i])
	}
	return f
}

// generate initializes a flake with randomized attributes drawn from its
// class's parameter table.
func (f *Field) generate(fl *Flake, index int, class SizeClass) {
	vp := f.cfg.Viewport
	spec := class.spec()

	fl.Index = index
	fl.Class = class
	fl.Size = spec.Size.rand(f.rng)
	fl.X = vp.X + f.rng.Float64()*vp.Width
	fl.Y = vp.Y - f.rng.Float64()*f.cfg.SpawnDepth - fl.Size
	fl.Opacity = spec.Opacity.rand(f.rng)
	fl.Rotation = f.rng.Float64() * 360
	fl.Elliptical = f.rng.Float64() < spec.EllipseBias
	fl.Drift = DriftDirection(f.rng.IntN(len(driftNames)))
	jitter := 1 + (f.rng.Float64()*2-1)*f.cfg.SpeedJitter
	fl.Speed = f.cfg.BaseSpeed * spec.SpeedScale * jitter
	fl.Active = true
}

// recycle re-enters a completed flake from above the screen: fresh staggered
// y above the viewport, fresh x across its width, fresh opacity from the
// class band, fresh drift direction, and the next cycle starts immediately.
// A no-op after teardown so a stale completion cannot mutate released state.
func (f *Field) recycle(fl *Flake) {
	if !f.active || !fl.Active {
		return
	}
	vp := f.cfg.Viewport
	spec := fl.Class.spec()

	fl.Y = vp.Y - f.rng.Float64()*f.cfg.SpawnDepth - fl.Size
	fl.X = vp.X + f.rng.Float64()*vp.Width
	fl.Opacity = spec.Opacity.rand(f.rng)
	fl.Drift = DriftDirection(f.rng.IntN(len(driftNames)))
	f.startCycle(fl)
}

// Update advances every active flake by dt seconds and recycles the ones
// whose cycle completed. No-op once the field has been stopped.
func (f *Field) Update(dt float64) {
	if !f.active {
		return
	}
	d := float32(dt)
	for i := range f.flakes {
		fl := &f.flakes[i]
		if !fl.Active {
			continue
		}
		if f.advance(fl, d) {
			f.recycle(fl)
		}
	}
}

// Stop synchronously deactivates every flake and drops in-flight animation
// handles. Called on unmount; Update and recycle become no-ops afterwards.
func (f *Field) Stop() {
	f.active = false
	for i := range f.flakes {
		fl := &f.flakes[i]
		fl.Active = false
		fl.fall = nil
		fl.drift = nil
		fl.fade = nil
	}
}

// Active reports whether the field is still running.
func (f *Field) Active() bool {
	return f.active
}

// Flakes returns the flake slice for rendering. The returned slice MUST NOT
// be mutated by the caller.
func (f *Field) Flakes() []Flake {
	return f.flakes
}

// Viewport returns the (floor-clamped) area the field animates within.
func (f *Field) Viewport() Rect {
	return f.cfg.Viewport
}
