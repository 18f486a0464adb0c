package shapefall

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window and HUD for Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// TPS is the update rate and therefore the maximum frame rate.
	TPS int

	ShowFPS      bool
	ShowStats    bool
	ShowControls bool

	ScreenshotDir string
	Debug         bool
}

// DefaultRunConfig returns an 800x450 canvas at 60 TPS with every readout
// and control shown.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:         "shapefall",
		Width:         DefaultCanvasWidth,
		Height:        DefaultViewHeight,
		TPS:           60,
		ShowFPS:       true,
		ShowStats:     true,
		ShowControls:  true,
		ScreenshotDir: "screenshots",
	}
}

// withDefaults fills zero size, rate and directory fields. Readout flags are
// left alone: false hides the element.
func (c RunConfig) withDefaults() RunConfig {
	d := DefaultRunConfig()
	if c.Title == "" {
		c.Title = d.Title
	}
	if c.Width <= 0 {
		c.Width = d.Width
	}
	if c.Height <= 0 {
		c.Height = d.Height
	}
	if c.TPS <= 0 {
		c.TPS = d.TPS
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = d.ScreenshotDir
	}
	return c
}

// Run opens a window and runs g until the window is closed or Update returns
// an error.
func Run(g *Game) error {
	cfg := g.cfg
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
