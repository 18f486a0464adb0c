package shapefall

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// defaultDragDeadZone is how far, in pixels, the pointer may travel between
// press and release and still count as a click.
const defaultDragDeadZone = 4.0

// pointerTarget is what lies under the pointer: a control, a shape, or
// nothing (the zero value, meaning empty canvas).
type pointerTarget struct {
	control *Button
	shape   *Shape
}

// pointerSample is one frame's pointer reading in canvas coordinates.
type pointerSample struct {
	x, y    float64
	pressed bool
	button  MouseButton
}

type pointerState struct {
	down   bool
	startX float64
	startY float64
	lastX  float64
	lastY  float64
	target pointerTarget
	button MouseButton // button captured at press time
}

// hitTest finds what is under the canvas point (x, y). Controls sit above
// shapes.
func (g *Game) hitTest(x, y float64) pointerTarget {
	if g.cfg.ShowControls {
		for _, b := range g.controls {
			if b.Bounds.Contains(x, y) {
				return pointerTarget{control: b}
			}
		}
	}
	if s := g.sim.State.ShapeAt(x, y); s != nil {
		return pointerTarget{shape: s}
	}
	return pointerTarget{}
}

// samplePointer returns this frame's pointer reading. A queued synthetic
// event takes precedence over the real mouse.
func (g *Game) samplePointer() pointerSample {
	if evt, ok := g.popInjected(); ok {
		return pointerSample{x: evt.screenX, y: evt.screenY, pressed: evt.pressed, button: evt.button}
	}
	mx, my := ebiten.CursorPosition()
	smp := pointerSample{x: float64(mx), y: float64(my)}
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		smp.pressed, smp.button = true, MouseButtonLeft
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		smp.pressed, smp.button = true, MouseButtonRight
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle):
		smp.pressed, smp.button = true, MouseButtonMiddle
	}
	return smp
}

// processKeys maps arrow keys onto the controls.
func (g *Game) processKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		g.pressControl(ControlGravityUp)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		g.pressControl(ControlGravityDown)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.pressControl(ControlSpawnUp)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.pressControl(ControlSpawnDown)
	}
}

// processPointer runs the pointer state machine for one sample. A press
// followed by a release over the same target, without leaving the dead
// zone, is a click.
func (g *Game) processPointer(smp pointerSample) {
	ps := &g.pointer
	x, y := smp.x, smp.y

	switch {
	case smp.pressed && !ps.down:
		// Just pressed: capture the button and target for this interaction.
		ps.down = true
		ps.button = smp.button
		ps.startX, ps.startY = x, y
		ps.lastX, ps.lastY = x, y
		ps.target = g.hitTest(x, y)

	case !smp.pressed && ps.down:
		target := g.hitTest(x, y)
		dx := x - ps.startX
		dy := y - ps.startY
		if target == ps.target && math.Sqrt(dx*dx+dy*dy) <= g.dragDeadZone {
			g.click(target, x, y, ps.button)
		}
		ps.down = false
		ps.target = pointerTarget{}
		ps.lastX, ps.lastY = x, y

	default:
		ps.lastX, ps.lastY = x, y
	}
}

// click dispatches a completed click.
func (g *Game) click(target pointerTarget, x, y float64, button MouseButton) {
	if button != MouseButtonLeft {
		return
	}
	switch {
	case target.control != nil:
		g.pressControl(target.control.Control)
	case target.shape != nil:
		g.sim.RemoveShape(target.shape)
	default:
		g.sim.Spawn(&Vec2{X: x, Y: y})
	}
}
