package hearth

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	// Title is the window title.
	Title string
	// Width and Height are the window size. Zero values fall back to the
	// scene's viewport.
	Width  int
	Height int
	// ShowFPS overlays FPS/TPS counters in the top-left corner.
	ShowFPS bool
}

// Run creates a window and runs the scene's game loop until the window is
// closed. It blocks; for full control implement [ebiten.Game] yourself.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Title == "" {
		cfg.Title = "hearth"
	}
	if cfg.Width <= 0 {
		cfg.Width = int(scene.viewport.Width)
	}
	if cfg.Height <= 0 {
		cfg.Height = int(scene.viewport.Height)
	}
	scene.showFPS = cfg.ShowFPS

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(scene)
}

// drawFPS prints the live FPS and TPS counters.
func drawFPS(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}
