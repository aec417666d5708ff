package hearth

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// glowRing is one circle in a soft-glow disc, from the outside in.
// Radius is a fraction of the disc's core radius; Alpha increases toward
// the solid core.
type glowRing struct {
	Radius float64
	Alpha  float64
}

// discCoreRadius is the core radius in texture pixels. Flakes scale the
// cached texture so the core diameter matches their Size.
const discCoreRadius = 16

// ellipseSquash is the vertical squash factor for elliptical flakes.
const ellipseSquash = 0.65

// baseRings is the shared soft-edge stack: the rendering surface has no
// radial-gradient primitive, so a disc is approximated by concentric
// decreasing-radius, increasing-opacity circles ending in a solid core.
var baseRings = [...]glowRing{
	{Radius: 1.0, Alpha: 0.3},
	{Radius: 0.72, Alpha: 0.65},
	{Radius: 0.46, Alpha: 1.0},
}

// haloRings are extra outer rings prepended per tier to widen the glow.
// Tier 0 draws none; each higher tier adds the next, wider and fainter,
// ring to read as shallower depth of field.
var haloRings = [...]glowRing{
	{Radius: 1.35, Alpha: 0.12},
	{Radius: 1.75, Alpha: 0.07},
	{Radius: 2.2, Alpha: 0.045},
}

// glowRingsFor returns the full ring stack for a halo tier, ordered
// outermost first.
func glowRingsFor(tier int) []glowRing {
	if tier < 0 {
		tier = 0
	}
	if tier > len(haloRings) {
		tier = len(haloRings)
	}
	rings := make([]glowRing, 0, tier+len(baseRings))
	for i := tier - 1; i >= 0; i-- {
		rings = append(rings, haloRings[i])
	}
	rings = append(rings, baseRings[:]...)
	return rings
}

// buildDisc renders the ring stack for a halo tier into a cached texture.
func buildDisc(tier int) *ebiten.Image {
	rings := glowRingsFor(tier)
	outer := discCoreRadius * rings[0].Radius
	side := int(math.Ceil(outer*2)) + 2
	img := ebiten.NewImage(side, side)
	c := float32(side) / 2
	for _, ring := range rings {
		clr := Color{1, 1, 1, ring.Alpha}
		vector.DrawFilledCircle(img, c, c, float32(discCoreRadius*ring.Radius), clr.toRGBA(), true)
	}
	return img
}

// SnowLayer paints a Field's flakes as layered soft-glow discs. It is
// purely presentational: it reads live flake state and never mutates it.
type SnowLayer struct {
	field *Field
	discs [len(classTable)]*ebiten.Image
}

// NewSnowLayer creates a render layer over the given field.
func NewSnowLayer(field *Field) *SnowLayer {
	return &SnowLayer{field: field}
}

// disc returns the cached glow texture for a size class, building it on
// first use.
func (l *SnowLayer) disc(c SizeClass) *ebiten.Image {
	if l.discs[c] == nil {
		l.discs[c] = buildDisc(c.spec().HaloTier)
	}
	return l.discs[c]
}

// Draw paints every active flake at its current animated position.
func (l *SnowLayer) Draw(screen *ebiten.Image) {
	for i := range l.field.flakes {
		fl := &l.field.flakes[i]
		if !fl.Active || fl.Opacity <= 0 {
			continue
		}
		img := l.disc(fl.Class)
		b := img.Bounds()

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
		if fl.Elliptical {
			op.GeoM.Scale(1, ellipseSquash)
		}
		op.GeoM.Rotate(fl.Rotation * math.Pi / 180)
		scale := fl.Size / (2 * discCoreRadius)
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(fl.X, fl.Y)
		op.ColorScale.ScaleAlpha(float32(fl.Opacity))
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(img, op)
	}
}
