package hearth

import (
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// cloudPuff is one disc in a cloud cluster, as offsets and a radius scale
// relative to the cloud's own scale.
type cloudPuff struct {
	DX, DY, R float64
}

// puffTemplate is the shared cluster shape every cloud is built from.
var puffTemplate = [...]cloudPuff{
	{0, 0, 1},
	{-0.8, 0.15, 0.7},
	{0.85, 0.2, 0.75},
	{0.3, -0.35, 0.8},
	{-0.35, -0.3, 0.65},
}

// Cloud is one gently oscillating cloud cluster. Clouds are generated once
// at mount and never recycled; their sway is independent of the snow layer.
type Cloud struct {
	X, Y    float64
	Scale   float64
	Opacity float64

	baseX   float64
	amp     float64
	halfDur float32
	out     bool // current sway leg direction
	sway    *gween.Tween
}

const (
	defaultCloudCount = 4
	cloudBandFrac     = 0.28 // clouds live in the top fraction of the sky
	cloudPuffRadius   = 26.0 // base puff radius in pixels at scale 1
)

// CloudLayer owns the cloud set and its sway animation.
type CloudLayer struct {
	viewport Rect
	clouds   []Cloud
	disc     *ebiten.Image
	active   bool
}

// NewCloudLayer generates count clouds across the upper sky band. A count
// of zero or less selects the default.
func NewCloudLayer(viewport Rect, count int, rng *rand.Rand) *CloudLayer {
	if count <= 0 {
		count = defaultCloudCount
	}
	l := &CloudLayer{
		viewport: viewport,
		clouds:   make([]Cloud, count),
		active:   true,
	}
	band := viewport.Height * cloudBandFrac
	for i := range l.clouds {
		c := &l.clouds[i]
		c.X = viewport.X + rng.Float64()*viewport.Width
		c.Y = viewport.Y + 20 + rng.Float64()*band
		c.Scale = 0.7 + rng.Float64()*0.8
		c.Opacity = 0.5 + rng.Float64()*0.35
		c.baseX = c.X
		c.amp = 8 + rng.Float64()*10
		c.halfDur = float32(4 + rng.Float64()*4)
		c.out = true
		c.sway = gween.New(float32(c.X), float32(c.baseX+c.amp), c.halfDur, ease.InOutSine)
	}
	return l
}

// Update advances every cloud's sway by dt seconds. Each completed leg
// starts the return leg, indefinitely (yoyo).
func (l *CloudLayer) Update(dt float64) {
	if !l.active {
		return
	}
	d := float32(dt)
	for i := range l.clouds {
		c := &l.clouds[i]
		if c.sway == nil {
			continue
		}
		v, done := c.sway.Update(d)
		c.X = float64(v)
		if done {
			c.out = !c.out
			target := c.baseX
			if c.out {
				target = c.baseX + c.amp
			}
			c.sway = gween.New(float32(c.X), float32(target), c.halfDur, ease.InOutSine)
		}
	}
}

// Stop drops the sway handles. Called on unmount.
func (l *CloudLayer) Stop() {
	l.active = false
	for i := range l.clouds {
		l.clouds[i].sway = nil
	}
}

// Clouds returns the cloud slice. The returned slice MUST NOT be mutated.
func (l *CloudLayer) Clouds() []Cloud {
	return l.clouds
}

// Draw paints every cloud as a cluster of soft discs, dimmed by the
// palette's cloud multiplier.
func (l *CloudLayer) Draw(screen *ebiten.Image, dim float64) {
	if dim <= 0 {
		return
	}
	if l.disc == nil {
		l.disc = buildDisc(1)
	}
	b := l.disc.Bounds()
	for i := range l.clouds {
		c := &l.clouds[i]
		for _, p := range puffTemplate {
			r := cloudPuffRadius * c.Scale * p.R
			scale := r / discCoreRadius
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
			op.GeoM.Scale(scale, scale*0.7)
			op.GeoM.Translate(c.X+p.DX*cloudPuffRadius*c.Scale, c.Y+p.DY*cloudPuffRadius*c.Scale)
			op.ColorScale.ScaleAlpha(float32(c.Opacity * dim))
			op.Filter = ebiten.FilterLinear
			screen.DrawImage(l.disc, op)
		}
	}
}
