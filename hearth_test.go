package hearth

import (
	"math"
	"math/rand/v2"
	"testing"
)

// assertNear fails the test when got is not within tolerance of want.
func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-4 {
		t.Errorf("%s = %f, want %f", name, got, want)
	}
}

// testRand returns a deterministic random source for generation tests.
func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestRectContains(t *testing.T) {
	r := Rect{10, 20, 100, 50}
	tests := []struct {
		name   string
		x, y   float64
		expect bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"left edge", 10, 40, true},
		{"outside left", 9, 40, false},
		{"outside below", 50, 71, false},
		{"far outside", 999, 999, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Contains(tt.x, tt.y)
			if got != tt.expect {
				t.Errorf("Rect%v.Contains(%v, %v) = %v, want %v", r, tt.x, tt.y, got, tt.expect)
			}
		})
	}
}

func TestRangeRand(t *testing.T) {
	rng := testRand()
	r := Range{10, 20}
	for i := 0; i < 100; i++ {
		v := r.rand(rng)
		if v < 10 || v > 20 {
			t.Fatalf("rand() = %f, outside [10, 20]", v)
		}
	}

	// Equal min/max.
	r2 := Range{5, 5}
	for i := 0; i < 10; i++ {
		if r2.rand(rng) != 5 {
			t.Fatal("rand() with Min==Max should return Min")
		}
	}
}

func TestLerp(t *testing.T) {
	assertNear(t, "lerp(0,10,0)", lerp(0, 10, 0), 0)
	assertNear(t, "lerp(0,10,0.5)", lerp(0, 10, 0.5), 5)
	assertNear(t, "lerp(0,10,1)", lerp(0, 10, 1), 10)
}

func TestLerpColor(t *testing.T) {
	a := Color{0, 0, 0, 0}
	b := Color{1, 0.5, 0.2, 1}
	mid := lerpColor(a, b, 0.5)
	assertNear(t, "R", mid.R, 0.5)
	assertNear(t, "G", mid.G, 0.25)
	assertNear(t, "B", mid.B, 0.1)
	assertNear(t, "A", mid.A, 0.5)
}

func TestClamp(t *testing.T) {
	assertNear(t, "below", clamp(-1, 0, 10), 0)
	assertNear(t, "inside", clamp(5, 0, 10), 5)
	assertNear(t, "above", clamp(11, 0, 10), 10)
}
