package hearth

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Motion tuning. Horizontal reach scales with flake size so bigger
// (closer-reading) flakes drift further, matching the speed parallax.
const (
	// driftPerSize is the linear drift distance per pixel of flake size.
	driftPerSize = 6.0
	// swayPerSize is the sway amplitude per pixel of flake size.
	swayPerSize = 2.5
	// swayLegs is the number of half-oscillations per fall cycle
	// (4 legs = two full sways).
	swayLegs = 4
	// fadeDuration is the fade-to-zero time at a fade boundary, in seconds.
	fadeDuration = 0.6
)

// startCycle plans one composite fall cycle for fl: a linear vertical fall
// from the current y to the cycle's end line, with duration distance/speed,
// plus a concurrent horizontal tween chosen by the drift direction. Any
// previous cycle's handles are replaced, so at most one cycle is ever live.
func (f *Field) startCycle(fl *Flake) {
	end := f.cycleEnd(fl)
	dist := end - fl.Y
	if dist <= 0 {
		dist = 1
	}
	dur := float32(dist / fl.Speed)

	fl.fall = gween.New(float32(fl.Y), float32(end), dur, ease.Linear)
	fl.fade = nil

	vp := f.cfg.Viewport
	switch fl.Drift {
	case DriftLeft, DriftRight:
		// Linear displacement proportional to size, clamped so the flake
		// never leaves the horizontal bounds before the fall completes.
		d := fl.Size * driftPerSize
		if fl.Drift == DriftLeft {
			d = -d
		}
		target := clamp(fl.X+d, vp.X, vp.X+vp.Width)
		fl.drift = gween.New(float32(fl.X), float32(target), dur, ease.Linear)
	case DriftSway:
		fl.swayAnchor = fl.X
		fl.swayAmp = f.swayAmplitude(fl)
		fl.swayHalf = dur / swayLegs
		fl.swayLeg = 0
		fl.drift = gween.New(float32(fl.X), float32(fl.X+fl.swayAmp), fl.swayHalf, ease.InOutSine)
	}
}

// cycleEnd returns the y where the current fall finishes: the fade line if
// one is configured, otherwise just past the bottom edge so the flake fully
// exits before recycling.
func (f *Field) cycleEnd(fl *Flake) float64 {
	vp := f.cfg.Viewport
	if f.cfg.FadeHeight > 0 {
		return vp.Y + f.cfg.FadeHeight
	}
	return vp.Y + vp.Height + fl.Size
}

// swayAmplitude picks a signed sway amplitude for fl, flipped or shortened
// as needed so the oscillation stays within the horizontal bounds.
func (f *Field) swayAmplitude(fl *Flake) float64 {
	vp := f.cfg.Viewport
	amp := fl.Size * swayPerSize
	if f.rng.IntN(2) == 0 {
		amp = -amp
	}
	if fl.X+amp > vp.X+vp.Width || fl.X+amp < vp.X {
		amp = -amp
	}
	return clamp(fl.X+amp, vp.X, vp.X+vp.Width) - fl.X
}

// advance moves fl's live animations forward by dt seconds and reports
// whether the cycle completed. The cycle completes only when the vertical
// fall finishes and, when a fade boundary is configured, the subsequent
// fade-out has run to zero.
func (f *Field) advance(fl *Flake, dt float32) bool {
	// Fade phase: the fall already ended at the fade line.
	if fl.fade != nil {
		v, done := fl.fade.Update(dt)
		fl.Opacity = float64(v)
		if done {
			fl.fade = nil
			return true
		}
		return false
	}

	if fl.drift != nil {
		v, done := fl.drift.Update(dt)
		fl.X = float64(v)
		if done {
			fl.drift = nil
			if fl.Drift == DriftSway && fl.swayLeg < swayLegs-1 {
				fl.swayLeg++
				target := fl.swayAnchor
				if fl.swayLeg%2 == 0 {
					target = fl.swayAnchor + fl.swayAmp
				}
				fl.drift = gween.New(float32(fl.X), float32(target), fl.swayHalf, ease.InOutSine)
			}
		}
	}

	if fl.fall == nil {
		return false
	}
	y, done := fl.fall.Update(dt)
	fl.Y = float64(y)
	if !done {
		return false
	}
	fl.fall = nil
	fl.drift = nil

	if f.cfg.FadeHeight > 0 {
		fl.fade = gween.New(float32(fl.Opacity), 0, fadeDuration, ease.Linear)
		return false
	}
	return true
}
