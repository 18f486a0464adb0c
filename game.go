package shapefall

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// Game hosts a Simulation in an Ebitengine window. It implements ebiten.Game.
//
// Each Update reads input, applies clicks and control presses, advances the
// spawn scheduler, ticks the frame loop and refreshes the readouts. Draw
// renders the live shapes, removal ghosts and HUD.
type Game struct {
	sim *Simulation
	cfg RunConfig

	// ClearColor fills the canvas before each frame. Zero alpha leaves the
	// screen as Ebitengine provides it.
	ClearColor Color

	// ScreenshotDir is where Screenshot writes PNGs.
	ScreenshotDir string

	controls []*Button
	hud      hud
	surface  surface
	fades    []*fade

	pointer      pointerState
	dragDeadZone float64
	injectQueue  []syntheticPointerEvent

	testRunner      *TestRunner
	screenshotQueue []string

	updateFunc func() error
	debug      bool
}

// NewGame creates a game around sim. Zero RunConfig fields take defaults.
func NewGame(sim *Simulation, cfg RunConfig) *Game {
	cfg = cfg.withDefaults()
	g := &Game{
		sim:           sim,
		cfg:           cfg,
		ClearColor:    Color{R: 0.098, G: 0.098, B: 0.137, A: 1},
		ScreenshotDir: cfg.ScreenshotDir,
		controls:      layoutControls(float64(cfg.Width)),
		dragDeadZone:  defaultDragDeadZone,
		debug:         cfg.Debug,
	}
	prev := sim.OnRemove
	sim.OnRemove = func(s *Shape, cause RemoveCause) {
		if prev != nil {
			prev(s, cause)
		}
		if cause == RemovedClicked {
			g.fades = append(g.fades, newFade(s, fadeDuration, ease.OutQuad))
		}
	}
	g.hud.refresh(sim.State)
	return g
}

// Simulation returns the hosted simulation.
func (g *Game) Simulation() *Simulation {
	return g.sim
}

// SetUpdateFunc sets a callback run at the end of every Update.
func (g *Game) SetUpdateFunc(fn func() error) {
	g.updateFunc = fn
}

// SetTestRunner attaches a TestRunner. Its step runs at the start of every
// Update, before input is read.
func (g *Game) SetTestRunner(runner *TestRunner) {
	g.testRunner = runner
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = g.cfg.TPS
	}
	dt := time.Second / time.Duration(tps)

	if g.testRunner != nil {
		g.testRunner.step(g)
	}
	smp := g.samplePointer()
	g.processKeys()
	if err := g.step(dt, smp); err != nil {
		return err
	}
	if g.cfg.ShowFPS {
		g.hud.refreshFPS(dt.Seconds(), ebiten.ActualFPS(), ebiten.ActualTPS())
	}
	return nil
}

// step advances one frame given the elapsed time and pointer sample.
func (g *Game) step(dt time.Duration, smp pointerSample) error {
	var t0 time.Time
	if g.debug {
		t0 = time.Now()
	}

	g.processPointer(smp)
	g.sim.Advance(dt)
	removed := g.sim.Tick()

	sec := float32(dt.Seconds())
	g.fades = updateFades(g.fades, sec)
	for _, b := range g.controls {
		b.update(sec)
	}
	g.hud.refresh(g.sim.State)

	if g.debug {
		g.debugLogUpdate(updateStats{
			tickTime: time.Since(t0),
			live:     g.sim.State.Count(),
			removed:  len(removed),
			fades:    len(g.fades),
		})
	}

	if g.updateFunc != nil {
		return g.updateFunc()
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if g.debug {
		t0 = time.Now()
	}
	g.surface.drawCalls = 0

	if g.ClearColor.A > 0 {
		screen.Fill(g.ClearColor.toRGBA())
	}
	for _, s := range g.sim.State.Shapes() {
		g.surface.drawShape(screen, s, 1, 1)
	}
	for _, f := range g.fades {
		g.surface.drawShape(screen, f.shape, f.alpha, f.scale)
	}
	g.drawHUD(screen)

	g.flushScreenshots(screen)

	if g.debug {
		g.debugLogDraw(time.Since(t0), g.surface.drawCalls)
	}
}

// Layout implements ebiten.Game. The canvas keeps its configured size and
// Ebitengine scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
