package hearth

import "github.com/hajimehoshi/ebiten/v2"

// sunlightMaxAlpha caps the brightness overlay so full sunlight warms the
// scene without washing it out.
const sunlightMaxAlpha = 0.18

// sunlightTint is the warm white added over the scene in sunlight.
var sunlightTint = Color{1, 0.96, 0.82, 1}

// Sunlight is a full-screen additive brightness overlay. Its level comes
// from the sky's current palette, so it crossfades on the same clock as
// the gradients.
type Sunlight struct {
	viewport Rect
}

// NewSunlight creates the overlay for a viewport.
func NewSunlight(viewport Rect) *Sunlight {
	return &Sunlight{viewport: viewport}
}

// Draw adds the overlay at the given level in [0, 1]. Zero draws nothing.
func (s *Sunlight) Draw(screen *ebiten.Image, level float64) {
	if level <= 0 {
		return
	}
	c := sunlightTint
	c.A = clamp(level, 0, 1) * sunlightMaxAlpha
	verts, indices := gradientQuad(s.viewport, c, c)
	op := &ebiten.DrawTrianglesOptions{Blend: ebiten.BlendLighter}
	screen.DrawTriangles(verts, indices, WhitePixel, op)
}
