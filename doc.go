// Package shapefall is a small falling-shapes simulation for [Ebitengine].
//
// Rectangles, circles, stars and triangles spawn above the canvas at a
// configurable rate and fall at a configurable number of pixels per frame.
// Clicking a shape removes it, clicking empty canvas spawns one under the
// pointer, and four buttons adjust the spawn and gravity rates. The HUD shows
// the live shape count, the total area they occupy and the frame rate.
//
// # Quick start
//
//	sim := shapefall.NewSimulation(shapefall.SimConfig{SpawnRate: 1, GravityRate: 1})
//	game := shapefall.NewGame(sim, shapefall.DefaultRunConfig())
//	if err := shapefall.Run(game); err != nil {
//		log.Fatal(err)
//	}
//
// The simulation has no dependency on a window: [Simulation.Tick] runs one
// frame, [Simulation.Advance] feeds elapsed time to the spawn scheduler and
// [Simulation.Spawn] / [Simulation.RemoveShape] add and pick shapes. The
// aggregates in [State] always match the live collection between calls.
//
// # Automated runs
//
// [LoadTestScript] parses a JSON script of clicks, button presses, waits and
// screenshots that a [Game] replays frame by frame:
//
//	{"steps": [
//		{"action": "wait", "frames": 120},
//		{"action": "button", "label": "gravity+"},
//		{"action": "click", "x": 400, "y": 200},
//		{"action": "screenshot", "label": "after-click"}
//	]}
//
// [Ebitengine]: https://ebitengine.org
package shapefall
