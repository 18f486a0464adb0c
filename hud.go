package shapefall

import (
	"fmt"
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is how often, in seconds, the FPS readout is refreshed.
const fpsRefresh = 0.5

var (
	hudPanelColor   = Color{R: 0, G: 0, B: 0, A: 0.5}
	buttonColor     = Color{R: 0.18, G: 0.2, B: 0.26, A: 0.9}
	buttonHighlight = Color{R: 0.45, G: 0.6, B: 0.95, A: 0.9}
)

// hud holds the text readouts. Text is rebuilt once per frame from the
// simulation state; the FPS line only every fpsRefresh seconds.
type hud struct {
	count string
	area  string
	rates string
	fps   string

	sinceFPS float64
}

// FormatArea renders an occupied area for display: rounded to an integer and
// suffixed with " px^2".
func FormatArea(area float64) string {
	return strconv.FormatInt(int64(math.Round(area)), 10) + " px^2"
}

// refresh rebuilds the count, area and rate readouts.
func (h *hud) refresh(st *State) {
	h.count = "Shapes: " + strconv.Itoa(st.Count())
	h.area = "Area: " + FormatArea(st.Area())
	h.rates = fmt.Sprintf("Spawn: %.1f/s  Gravity: %.1f", st.SpawnRate, st.GravityRate)
}

// refreshFPS updates the FPS line at most every fpsRefresh seconds.
func (h *hud) refreshFPS(dt float64, fps, tps float64) {
	h.sinceFPS += dt
	if h.fps != "" && h.sinceFPS < fpsRefresh {
		return
	}
	h.sinceFPS = 0
	h.fps = fmt.Sprintf("FPS: %.2f  TPS: %.1f", fps, tps)
}

// drawHUD draws whichever readouts and controls are enabled.
func (g *Game) drawHUD(screen *ebiten.Image) {
	const lineH = 16
	var lines []string
	if g.cfg.ShowStats {
		lines = append(lines, g.hud.count, g.hud.area, g.hud.rates)
	}
	if g.cfg.ShowFPS {
		lines = append(lines, g.hud.fps)
	}
	if len(lines) > 0 {
		g.surface.fillRect(screen, Rect{X: 4, Y: 4, Width: 220, Height: float64(len(lines)*lineH + 6)}, hudPanelColor)
		for i, l := range lines {
			ebitenutil.DebugPrintAt(screen, l, 8, 6+i*lineH)
		}
	}

	if !g.cfg.ShowControls {
		return
	}
	for _, b := range g.controls {
		c := lerpColor(buttonColor, buttonHighlight, b.highlight)
		g.surface.fillRect(screen, b.Bounds, c)
		ebitenutil.DebugPrintAt(screen, b.Control.String(), int(b.Bounds.X)+6, int(b.Bounds.Y)+2)
	}
}

func lerpColor(a, b Color, t float64) Color {
	return Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}
