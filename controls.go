package shapefall

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Control identifies one of the rate adjustment buttons.
type Control uint8

const (
	ControlSpawnUp     Control = iota // spawn rate +0.1
	ControlSpawnDown                  // spawn rate -0.1, floored at 0.1
	ControlGravityUp                  // gravity rate +0.1
	ControlGravityDown                // gravity rate -0.1, floored at 0.1
)

// String returns the button label.
func (c Control) String() string {
	switch c {
	case ControlSpawnUp:
		return "Spawn +"
	case ControlSpawnDown:
		return "Spawn -"
	case ControlGravityUp:
		return "Gravity +"
	case ControlGravityDown:
		return "Gravity -"
	default:
		return "?"
	}
}

// ControlByName resolves a control from its label or short name
// ("spawn+", "spawn-", "gravity+", "gravity-").
func ControlByName(name string) (Control, bool) {
	switch name {
	case "spawn+", ControlSpawnUp.String():
		return ControlSpawnUp, true
	case "spawn-", ControlSpawnDown.String():
		return ControlSpawnDown, true
	case "gravity+", ControlGravityUp.String():
		return ControlGravityUp, true
	case "gravity-", ControlGravityDown.String():
		return ControlGravityDown, true
	}
	return 0, false
}

// Button is an on-canvas control.
type Button struct {
	Control Control
	Bounds  Rect

	// highlight fades from 1 to 0 after a press.
	highlight float64
	pulse     *gween.Tween
}

const (
	buttonW       = 76
	buttonH       = 20
	buttonGap     = 4
	buttonMargin  = 8
	pulseDuration = 0.25
)

// layoutControls places the four buttons in a row at the top-right corner.
func layoutControls(canvasWidth float64) []*Button {
	controls := []Control{ControlSpawnDown, ControlSpawnUp, ControlGravityDown, ControlGravityUp}
	buttons := make([]*Button, len(controls))
	x := canvasWidth - buttonMargin - float64(len(controls))*(buttonW+buttonGap) + buttonGap
	for i, c := range controls {
		buttons[i] = &Button{
			Control: c,
			Bounds:  Rect{X: x, Y: buttonMargin, Width: buttonW, Height: buttonH},
		}
		x += buttonW + buttonGap
	}
	return buttons
}

// press starts the highlight pulse.
func (b *Button) press() {
	b.highlight = 1
	b.pulse = gween.New(1, 0, pulseDuration, ease.OutQuad)
}

// update advances the highlight pulse by dt seconds.
func (b *Button) update(dt float32) {
	if b.pulse == nil {
		return
	}
	v, done := b.pulse.Update(dt)
	b.highlight = float64(v)
	if done {
		b.highlight = 0
		b.pulse = nil
	}
}

// pressControl applies a control to the simulation and pulses its button.
func (g *Game) pressControl(c Control) {
	switch c {
	case ControlSpawnUp:
		g.sim.IncreaseSpawnRate()
	case ControlSpawnDown:
		g.sim.DecreaseSpawnRate()
	case ControlGravityUp:
		g.sim.IncreaseGravity()
	case ControlGravityDown:
		g.sim.DecreaseGravity()
	default:
		return
	}
	if b := g.button(c); b != nil {
		b.press()
	}
}

// button returns the on-canvas button for c, or nil.
func (g *Game) button(c Control) *Button {
	for _, b := range g.controls {
		if b.Control == c {
			return b
		}
	}
	return nil
}
