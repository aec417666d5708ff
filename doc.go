// Package hearth renders a stylized house-scene screen with animated
// day/night and weather effects for [Ebitengine]: gradient sky and floor
// crossfades, falling snow, drifting clouds, and a sunlight brightness
// overlay.
//
// The heart of the package is the snow layer: a fixed [Field] of flakes
// generated once at mount with randomized size, speed, drift, opacity and
// halo, animated continuously and recycled back above the screen whenever
// a fall cycle completes.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	scene := hearth.NewScene(420, 800, hearth.SnowNight, hearth.DefaultTuning())
//	hearth.Run(scene, hearth.RunConfig{
//		Title: "Hearth", Width: 420, Height: 800,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw] directly:
//
//	type Game struct{ scene *hearth.Scene }
//
//	func (g *Game) Update() error         { return g.scene.Update() }
//	func (g *Game) Draw(s *ebiten.Image)  { g.scene.Draw(s) }
//	func (g *Game) Layout(w, h int) (int, int) { return g.scene.Layout(w, h) }
//
// # Lifecycle
//
// A [Scene] is mounted by constructing it and released with [Scene.Dispose].
// Disposal synchronously deactivates every flake and drops in-flight
// animation handles, so no animation callback mutates state after teardown.
// The flake count is fixed for the lifetime of the scene; flakes are
// recycled, never destroyed.
//
// Weather is owned by the surrounding screen and handed in via
// [Scene.SetWeather]. The snow layer only cares whether the value reports
// [Weather.Snowing]; everything else selects palettes.
//
// Tuning (flake counts, class mix, speeds, cloud count) is declarative and
// can be loaded from YAML via [LoadTuning].
//
// [Ebitengine]: https://ebitengine.org
package hearth
