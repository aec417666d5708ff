package hearth

import (
	"image/color"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is plain opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts to an 8-bit color.RGBA with premultiplied alpha.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(c.R * c.A * 255),
		G: uint8(c.G * c.A * 255),
		B: uint8(c.B * c.A * 255),
		A: uint8(c.A * 255),
	}
}

// Vec2 is a 2D vector used for positions, offsets, and sizes.
type Vec2 struct {
	X, Y float64
}

// WhitePixel is a 1x1 white image used as the texture for vertex-colored
// quads (sky, floor, sunlight overlay).
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(ColorWhite.toRGBA())
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Range is a general-purpose min/max range used for randomized attribute
// draws (flake size, opacity bands, speed jitter).
type Range struct {
	Min, Max float64
}

// rand returns a random float64 in [Min, Max] drawn from rng.
func (r Range) rand(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// lerpColor linearly interpolates each component of a and b by t.
func lerpColor(a, b Color, t float64) Color {
	return Color{
		R: lerp(a.R, b.R, t),
		G: lerp(a.G, b.G, t),
		B: lerp(a.B, b.B, t),
		A: lerp(a.A, b.A, t),
	}
}

// clamp limits v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
