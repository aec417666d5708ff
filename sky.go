package hearth

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Palette is the full set of weather-derived colors and levels for one
// Weather value. Crossfades interpolate whole palettes, so every layer
// transitions on the same clock.
type Palette struct {
	SkyTop     Color
	SkyHorizon Color
	FloorNear  Color   // floor color at the bottom edge
	FloorFar   Color   // floor color at the horizon
	Sunlight   float64 // brightness overlay level, [0, 1]
	CloudDim   float64 // cloud opacity multiplier, 0 hides the layer
}

// palettes is indexed by Weather.
var palettes = [...]Palette{
	SunnyDay: {
		SkyTop:     Color{0.31, 0.62, 0.93, 1},
		SkyHorizon: Color{0.72, 0.87, 0.98, 1},
		FloorNear:  Color{0.45, 0.68, 0.4, 1},
		FloorFar:   Color{0.62, 0.8, 0.55, 1},
		Sunlight:   1,
		CloudDim:   0,
	},
	SunnyNight: {
		SkyTop:     Color{0.05, 0.07, 0.2, 1},
		SkyHorizon: Color{0.16, 0.2, 0.38, 1},
		FloorNear:  Color{0.1, 0.14, 0.18, 1},
		FloorFar:   Color{0.16, 0.21, 0.27, 1},
		Sunlight:   0,
		CloudDim:   0,
	},
	CloudyDay: {
		SkyTop:     Color{0.55, 0.62, 0.7, 1},
		SkyHorizon: Color{0.78, 0.82, 0.86, 1},
		FloorNear:  Color{0.42, 0.55, 0.42, 1},
		FloorFar:   Color{0.56, 0.66, 0.52, 1},
		Sunlight:   0.35,
		CloudDim:   1,
	},
	CloudyNight: {
		SkyTop:     Color{0.08, 0.1, 0.16, 1},
		SkyHorizon: Color{0.18, 0.2, 0.28, 1},
		FloorNear:  Color{0.09, 0.12, 0.15, 1},
		FloorFar:   Color{0.14, 0.17, 0.22, 1},
		Sunlight:   0,
		CloudDim:   0.45,
	},
	SnowDay: {
		SkyTop:     Color{0.62, 0.7, 0.8, 1},
		SkyHorizon: Color{0.85, 0.89, 0.94, 1},
		FloorNear:  Color{0.88, 0.91, 0.95, 1},
		FloorFar:   Color{0.78, 0.83, 0.9, 1},
		Sunlight:   0.2,
		CloudDim:   1,
	},
	SnowNight: {
		SkyTop:     Color{0.07, 0.09, 0.18, 1},
		SkyHorizon: Color{0.2, 0.24, 0.36, 1},
		FloorNear:  Color{0.55, 0.6, 0.72, 1},
		FloorFar:   Color{0.4, 0.45, 0.58, 1},
		Sunlight:   0,
		CloudDim:   0.55,
	},
}

// paletteFor returns the palette for a weather value.
func paletteFor(w Weather) Palette {
	return palettes[w]
}

// lerpPalette interpolates every component of a and b by t.
func lerpPalette(a, b Palette, t float64) Palette {
	return Palette{
		SkyTop:     lerpColor(a.SkyTop, b.SkyTop, t),
		SkyHorizon: lerpColor(a.SkyHorizon, b.SkyHorizon, t),
		FloorNear:  lerpColor(a.FloorNear, b.FloorNear, t),
		FloorFar:   lerpColor(a.FloorFar, b.FloorFar, t),
		Sunlight:   lerp(a.Sunlight, b.Sunlight, t),
		CloudDim:   lerp(a.CloudDim, b.CloudDim, t),
	}
}

const (
	// crossfadeDuration is the palette transition time in seconds.
	crossfadeDuration = 1.2
	// horizonFrac is the sky/floor split as a fraction of viewport height.
	horizonFrac = 0.62
)

// Sky renders the gradient sky and floor bands and owns the palette
// crossfade every other layer reads from.
type Sky struct {
	viewport Rect
	from, to Palette
	blend    *gween.Tween
	t        float64 // crossfade progress, 1 when settled
}

// NewSky creates a settled sky showing the palette for w.
func NewSky(viewport Rect, w Weather) *Sky {
	p := paletteFor(w)
	return &Sky{viewport: viewport, from: p, to: p, t: 1}
}

// SetWeather starts a crossfade from the currently displayed palette
// (mid-fade included) to the palette for w.
func (s *Sky) SetWeather(w Weather) {
	s.from = s.Current()
	s.to = paletteFor(w)
	s.t = 0
	s.blend = gween.New(0, 1, crossfadeDuration, ease.InOutQuad)
}

// Update advances an in-flight crossfade by dt seconds.
func (s *Sky) Update(dt float64) {
	if s.blend == nil {
		return
	}
	v, done := s.blend.Update(float32(dt))
	s.t = float64(v)
	if done {
		s.blend = nil
	}
}

// Current returns the palette as displayed this frame.
func (s *Sky) Current() Palette {
	if s.t >= 1 {
		return s.to
	}
	return lerpPalette(s.from, s.to, s.t)
}

// Draw paints the sky gradient above the horizon line and the floor
// gradient below it.
func (s *Sky) Draw(screen *ebiten.Image) {
	p := s.Current()
	vp := s.viewport
	horizon := vp.Height * horizonFrac

	sky := Rect{X: vp.X, Y: vp.Y, Width: vp.Width, Height: horizon}
	floor := Rect{X: vp.X, Y: vp.Y + horizon, Width: vp.Width, Height: vp.Height - horizon}

	drawGradientQuad(screen, sky, p.SkyTop, p.SkyHorizon)
	drawGradientQuad(screen, floor, p.FloorFar, p.FloorNear)
}

// gradientQuad builds a vertex-colored quad over WhitePixel: top color along
// the upper edge blending to bottom color along the lower edge.
func gradientQuad(r Rect, top, bottom Color) ([]ebiten.Vertex, []uint16) {
	v := []ebiten.Vertex{
		{DstX: float32(r.X), DstY: float32(r.Y)},
		{DstX: float32(r.X + r.Width), DstY: float32(r.Y)},
		{DstX: float32(r.X + r.Width), DstY: float32(r.Y + r.Height)},
		{DstX: float32(r.X), DstY: float32(r.Y + r.Height)},
	}
	for i := range v {
		c := top
		if i >= 2 {
			c = bottom
		}
		v[i].SrcX, v[i].SrcY = 0.5, 0.5
		v[i].ColorR = float32(c.R)
		v[i].ColorG = float32(c.G)
		v[i].ColorB = float32(c.B)
		v[i].ColorA = float32(c.A)
	}
	return v, []uint16{0, 1, 2, 0, 2, 3}
}

// drawGradientQuad submits a gradient quad to the screen.
func drawGradientQuad(screen *ebiten.Image, r Rect, top, bottom Color) {
	verts, indices := gradientQuad(r, top, bottom)
	screen.DrawTriangles(verts, indices, WhitePixel, &ebiten.DrawTrianglesOptions{})
}
