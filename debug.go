package shapefall

import (
	"time"

	"github.com/rs/zerolog/log"
)

// updateStats holds per-frame simulation metrics.
// Only populated when the game runs in debug mode.
type updateStats struct {
	tickTime time.Duration
	live     int
	removed  int
	fades    int
}

// debugFrameInterval throttles debug stats to one line per second at 60 TPS.
const debugFrameInterval = 60

// SetDebugMode enables or disables per-frame timing stats, logged at debug
// level.
func (g *Game) SetDebugMode(enabled bool) {
	g.debug = enabled
}

// debugLogUpdate logs update timing and shape counts.
func (g *Game) debugLogUpdate(stats updateStats) {
	if !g.debug || g.sim.Frame()%debugFrameInterval != 0 {
		return
	}
	log.Debug().
		Uint64("frame", g.sim.Frame()).
		Dur("update", stats.tickTime).
		Int("live", stats.live).
		Int("removed", stats.removed).
		Int("fades", stats.fades).
		Float64("area", g.sim.State.Area()).
		Msg("update stats")
}

// debugLogDraw logs draw timing and draw-call count.
func (g *Game) debugLogDraw(drawTime time.Duration, drawCalls int) {
	if !g.debug || g.sim.Frame()%debugFrameInterval != 0 {
		return
	}
	log.Debug().
		Uint64("frame", g.sim.Frame()).
		Dur("draw", drawTime).
		Int("draw_calls", drawCalls).
		Msg("draw stats")
}
