package hearth

import (
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is the mounted house-scene screen: sky and floor gradients, cloud
// layer, snow field, and sunlight overlay, composed over an optional
// host-drawn backdrop. It implements [ebiten.Game].
//
// Mount is construction; unmount is [Scene.Dispose]. There is no other
// imperative API: the scene reacts to the frame clock and to SetWeather.
type Scene struct {
	weather  Weather
	viewport Rect
	tuning   Tuning
	rng      *rand.Rand

	sky    *Sky
	sun    *Sunlight
	clouds *CloudLayer
	field  *Field
	snow   *SnowLayer

	updateFunc   func() error
	backdropFunc func(*ebiten.Image)

	showFPS  bool
	disposed bool
}

// NewScene mounts a scene with the given viewport dimensions, initial
// weather, and tuning. Implausibly small host dimensions are floor-clamped.
// The flake field is created once here and lives until Dispose.
func NewScene(width, height float64, w Weather, tuning Tuning) *Scene {
	if width < minViewportWidth {
		width = minViewportWidth
	}
	if height < minViewportHeight {
		height = minViewportHeight
	}
	vp := Rect{Width: width, Height: height}

	seed := tuning.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed+1))

	s := &Scene{
		weather:  w,
		viewport: vp,
		tuning:   tuning,
		rng:      rng,
		sky:      NewSky(vp, w),
		sun:      NewSunlight(vp),
		clouds:   NewCloudLayer(vp, tuning.CloudCount, rng),
	}
	s.field = NewField(FieldConfig{
		Count:       tuning.FlakeCount,
		Viewport:    vp,
		Mix:         tuning.Mix,
		BaseSpeed:   tuning.BaseSpeed,
		SpeedJitter: tuning.SpeedJitter,
		FadeHeight:  tuning.FadeHeight,
		SpawnDepth:  tuning.SpawnDepth,
		Rand:        rng,
	})
	s.snow = NewSnowLayer(s.field)
	return s
}

// Weather returns the current weather state.
func (s *Scene) Weather() Weather {
	return s.weather
}

// SetWeather hands a new weather value in from the surrounding screen and
// starts the palette crossfade. The snow field keeps cycling either way;
// it is only drawn while the weather reports Snowing.
func (s *Scene) SetWeather(w Weather) {
	if s.disposed || w == s.weather {
		return
	}
	s.weather = w
	s.sky.SetWeather(w)
}

// Viewport returns the floor-clamped viewport.
func (s *Scene) Viewport() Rect {
	return s.viewport
}

// SetUpdateFunc registers a callback invoked at the start of every Update,
// before the scene's own layers advance. A non-nil error aborts the game
// loop.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// SetBackdropFunc registers a host draw callback painted between the
// sky/cloud layers and the snow, where the house belongs.
func (s *Scene) SetBackdropFunc(fn func(screen *ebiten.Image)) {
	s.backdropFunc = fn
}

// Update advances all layers by one fixed frame step (1/TPS seconds).
func (s *Scene) Update() error {
	if s.disposed {
		return nil
	}
	if s.updateFunc != nil {
		if err := s.updateFunc(); err != nil {
			return err
		}
	}
	s.update(1.0 / float64(ebiten.TPS()))
	return nil
}

// update advances the layers by dt seconds. Split from Update so tests can
// drive the scene with an explicit clock.
func (s *Scene) update(dt float64) {
	if s.disposed {
		return
	}
	s.sky.Update(dt)
	s.clouds.Update(dt)
	s.field.Update(dt)
}

// Draw paints the scene back to front: gradients, clouds, host backdrop,
// snow, sunlight overlay.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.disposed {
		return
	}
	s.sky.Draw(screen)
	p := s.sky.Current()
	s.clouds.Draw(screen, p.CloudDim)
	if s.backdropFunc != nil {
		s.backdropFunc(screen)
	}
	if s.weather.Snowing() {
		s.snow.Draw(screen)
	}
	s.sun.Draw(screen, p.Sunlight)
	if s.showFPS {
		drawFPS(screen)
	}
}

// Layout reports the scene's fixed logical size.
func (s *Scene) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(s.viewport.Width), int(s.viewport.Height)
}

// Dispose unmounts the scene: every flake is deactivated and all in-flight
// animation handles are dropped synchronously, so nothing mutates scene
// state after this returns. Update and Draw become no-ops.
func (s *Scene) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	s.field.Stop()
	s.clouds.Stop()
}

// IsDisposed reports whether the scene has been unmounted.
func (s *Scene) IsDisposed() bool {
	return s.disposed
}
