package hearth

import "testing"

func TestPaletteTableSanity(t *testing.T) {
	for w := SunnyDay; int(w) < len(palettes); w++ {
		p := paletteFor(w)
		t.Run(w.String(), func(t *testing.T) {
			for name, c := range map[string]Color{
				"SkyTop": p.SkyTop, "SkyHorizon": p.SkyHorizon,
				"FloorNear": p.FloorNear, "FloorFar": p.FloorFar,
			} {
				for _, v := range []float64{c.R, c.G, c.B, c.A} {
					if v < 0 || v > 1 {
						t.Errorf("%s component %g outside [0, 1]", name, v)
					}
				}
			}
			if p.Sunlight < 0 || p.Sunlight > 1 {
				t.Errorf("Sunlight = %g outside [0, 1]", p.Sunlight)
			}
			if p.CloudDim < 0 || p.CloudDim > 1 {
				t.Errorf("CloudDim = %g outside [0, 1]", p.CloudDim)
			}
			if w.Night() && p.Sunlight != 0 {
				t.Errorf("night palette has sunlight %g", p.Sunlight)
			}
			if w.Cloudy() && p.CloudDim == 0 {
				t.Error("cloudy palette hides the cloud layer")
			}
			if !w.Cloudy() && p.CloudDim != 0 {
				t.Error("clear palette shows the cloud layer")
			}
		})
	}
}

func TestSkySettledShowsPalette(t *testing.T) {
	sky := NewSky(Rect{0, 0, 400, 800}, SnowNight)
	got := sky.Current()
	if got != paletteFor(SnowNight) {
		t.Errorf("settled palette = %+v, want snow-night", got)
	}
}

func TestSkyCrossfade(t *testing.T) {
	sky := NewSky(Rect{0, 0, 400, 800}, SunnyDay)
	from := paletteFor(SunnyDay)
	to := paletteFor(SnowNight)

	sky.SetWeather(SnowNight)
	if got := sky.Current(); got != from {
		t.Errorf("palette at t=0 = %+v, want the old palette", got)
	}

	// Mid-fade: strictly between the endpoints.
	sky.Update(crossfadeDuration / 2)
	mid := sky.Current()
	if mid == from || mid == to {
		t.Error("mid-fade palette should differ from both endpoints")
	}
	lo, hi := from.Sunlight, to.Sunlight
	if lo > hi {
		lo, hi = hi, lo
	}
	if mid.Sunlight <= lo || mid.Sunlight >= hi {
		t.Errorf("mid-fade sunlight %g not between %g and %g", mid.Sunlight, lo, hi)
	}

	// Settled after the full duration.
	sky.Update(crossfadeDuration / 2)
	if got := sky.Current(); got != to {
		t.Errorf("palette after crossfade = %+v, want snow-night", got)
	}
	if sky.blend != nil {
		t.Error("blend handle should be dropped once settled")
	}
}

// Retargeting mid-fade starts from the displayed palette, not the old
// endpoint, so there is no visual jump.
func TestSkyCrossfadeRetarget(t *testing.T) {
	sky := NewSky(Rect{0, 0, 400, 800}, SunnyDay)
	sky.SetWeather(SnowNight)
	sky.Update(crossfadeDuration / 2)
	mid := sky.Current()

	sky.SetWeather(CloudyDay)
	if got := sky.Current(); got != mid {
		t.Errorf("retarget should start from the displayed palette, got %+v", got)
	}
	sky.Update(crossfadeDuration)
	if got := sky.Current(); got != paletteFor(CloudyDay) {
		t.Errorf("retargeted crossfade ended at %+v, want cloudy-day", got)
	}
}

func TestLerpPaletteMidpoint(t *testing.T) {
	a := Palette{Sunlight: 0, CloudDim: 1, SkyTop: Color{0, 0, 0, 1}}
	b := Palette{Sunlight: 1, CloudDim: 0, SkyTop: Color{1, 1, 1, 1}}
	mid := lerpPalette(a, b, 0.5)
	assertNear(t, "Sunlight", mid.Sunlight, 0.5)
	assertNear(t, "CloudDim", mid.CloudDim, 0.5)
	assertNear(t, "SkyTop.R", mid.SkyTop.R, 0.5)
}

func TestGradientQuadGeometry(t *testing.T) {
	top := Color{1, 0, 0, 1}
	bottom := Color{0, 0, 1, 0.5}
	verts, indices := gradientQuad(Rect{10, 20, 100, 50}, top, bottom)

	if len(verts) != 4 {
		t.Fatalf("vertex count = %d, want 4", len(verts))
	}
	wantIdx := []uint16{0, 1, 2, 0, 2, 3}
	for i, idx := range indices {
		if idx != wantIdx[i] {
			t.Fatalf("indices = %v, want %v", indices, wantIdx)
		}
	}

	// Corners.
	assertNear(t, "v0.DstX", float64(verts[0].DstX), 10)
	assertNear(t, "v0.DstY", float64(verts[0].DstY), 20)
	assertNear(t, "v2.DstX", float64(verts[2].DstX), 110)
	assertNear(t, "v2.DstY", float64(verts[2].DstY), 70)

	// Top edge carries the top color, bottom edge the bottom color.
	for _, i := range []int{0, 1} {
		if verts[i].ColorR != 1 || verts[i].ColorB != 0 || verts[i].ColorA != 1 {
			t.Errorf("vertex %d color = (%g,%g,%g,%g), want top color",
				i, verts[i].ColorR, verts[i].ColorG, verts[i].ColorB, verts[i].ColorA)
		}
	}
	for _, i := range []int{2, 3} {
		if verts[i].ColorR != 0 || verts[i].ColorB != 1 || verts[i].ColorA != 0.5 {
			t.Errorf("vertex %d color = (%g,%g,%g,%g), want bottom color",
				i, verts[i].ColorR, verts[i].ColorG, verts[i].ColorB, verts[i].ColorA)
		}
	}
}
