package shapefall

// syntheticPointerEvent represents a single injected pointer event in canvas
// coordinates.
type syntheticPointerEvent struct {
	screenX, screenY float64
	pressed          bool
	button           MouseButton
}

// InjectPress queues a pointer press event at the given canvas coordinates
// (left button). The event is consumed on the next frame's Update.
func (g *Game) InjectPress(x, y float64) {
	g.injectQueue = append(g.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y,
		pressed: true,
		button:  MouseButtonLeft,
	})
}

// InjectRelease queues a pointer release event at the given canvas coordinates.
func (g *Game) InjectRelease(x, y float64) {
	g.injectQueue = append(g.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y,
		pressed: false,
		button:  MouseButtonLeft,
	})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same coordinates. Consumes two frames.
func (g *Game) InjectClick(x, y float64) {
	g.InjectPress(x, y)
	g.InjectRelease(x, y)
}

// InjectControl queues a click on the center of the button for c.
// It does nothing if controls are hidden.
func (g *Game) InjectControl(c Control) {
	b := g.button(c)
	if b == nil || !g.cfg.ShowControls {
		return
	}
	g.InjectClick(b.Bounds.X+b.Bounds.Width/2, b.Bounds.Y+b.Bounds.Height/2)
}

// popInjected removes and returns the oldest queued event.
func (g *Game) popInjected() (syntheticPointerEvent, bool) {
	if len(g.injectQueue) == 0 {
		return syntheticPointerEvent{}, false
	}
	evt := g.injectQueue[0]
	copy(g.injectQueue, g.injectQueue[1:])
	g.injectQueue = g.injectQueue[:len(g.injectQueue)-1]
	return evt, true
}
