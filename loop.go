package shapefall

import (
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultViewHeight is the bottom bound shapes fall past before removal.
const DefaultViewHeight = 450

// SimConfig configures a Simulation.
type SimConfig struct {
	SpawnRate   float64 // shapes per second; <= 0 uses 1
	GravityRate float64 // pixels per frame; <= 0 uses 1
	ViewWidth   float64 // <= 0 uses DefaultCanvasWidth
	ViewHeight  float64 // <= 0 uses DefaultViewHeight
	Seed        uint64  // 0 seeds randomly
}

// RemoveCause tells why a shape left the simulation.
type RemoveCause uint8

const (
	RemovedOffscreen RemoveCause = iota // fell past the bottom bound
	RemovedClicked                      // picked by the pointer
)

// Simulation owns the state, shape factory and spawn scheduler, and runs the
// per-frame sweep.
type Simulation struct {
	State     *State
	Factory   *Factory
	Scheduler *SpawnScheduler

	ViewWidth  float64
	ViewHeight float64

	// OnRemove, if set, is called after a shape has been removed and the
	// counters updated.
	OnRemove func(s *Shape, cause RemoveCause)

	loop    LoopState
	frame   uint64
	removed []*Shape
}

// NewSimulation creates an idle simulation.
func NewSimulation(cfg SimConfig) *Simulation {
	if cfg.SpawnRate <= 0 {
		cfg.SpawnRate = 1
	}
	if cfg.GravityRate <= 0 {
		cfg.GravityRate = 1
	}
	if cfg.ViewWidth <= 0 {
		cfg.ViewWidth = DefaultCanvasWidth
	}
	if cfg.ViewHeight <= 0 {
		cfg.ViewHeight = DefaultViewHeight
	}
	var factory *Factory
	if cfg.Seed != 0 {
		factory = NewSeededFactory(cfg.Seed, cfg.ViewWidth)
	} else {
		factory = NewFactory(nil, cfg.ViewWidth)
	}
	st := NewState(cfg.SpawnRate, cfg.GravityRate)
	return &Simulation{
		State:      st,
		Factory:    factory,
		Scheduler:  NewSpawnScheduler(st.SpawnRate),
		ViewWidth:  cfg.ViewWidth,
		ViewHeight: cfg.ViewHeight,
	}
}

// LoopState returns the frame loop's lifecycle state.
func (sim *Simulation) LoopState() LoopState {
	return sim.loop
}

// Frame returns the number of ticks run so far.
func (sim *Simulation) Frame() uint64 {
	return sim.frame
}

// Start moves the loop from idle to running. Calling it again is a no-op.
func (sim *Simulation) Start() {
	if sim.loop == LoopRunning {
		return
	}
	sim.loop = LoopRunning
	log.Debug().Float64("spawn_rate", sim.State.SpawnRate).
		Float64("gravity_rate", sim.State.GravityRate).Msg("frame loop started")
}

// Tick runs one frame: every live shape moves down by the gravity rate and
// any shape past the bottom bound is removed. The returned slice holds the
// shapes removed this frame and is only valid until the next Tick.
func (sim *Simulation) Tick() []*Shape {
	sim.Start()
	sim.frame++
	sim.removed = sim.removed[:0]

	st := sim.State
	g := st.GravityRate
	for i := 0; i < len(st.live); {
		s := st.live[i]
		s.Y += g
		if s.pastBottom(sim.ViewHeight) {
			st.removeAt(i)
			sim.removed = append(sim.removed, s)
			continue
		}
		i++
	}

	for _, s := range sim.removed {
		log.Debug().Uint32("id", s.ID).Str("kind", s.Kind.String()).Msg("shape left view")
		if sim.OnRemove != nil {
			sim.OnRemove(s, RemovedOffscreen)
		}
	}
	return sim.removed
}

// Spawn creates a shape and registers it. A nil at spawns above the top edge.
func (sim *Simulation) Spawn(at *Vec2) *Shape {
	s := sim.Factory.CreateShape(at)
	sim.State.Add(s)
	return s
}

// Advance feeds elapsed time to the spawn scheduler and spawns one shape per
// trigger. It returns the number spawned.
func (sim *Simulation) Advance(dt time.Duration) int {
	n := sim.Scheduler.Advance(dt)
	for range n {
		sim.Spawn(nil)
	}
	return n
}

// RemoveShape removes a live shape picked by the user. It reports false if
// the shape was not live.
func (sim *Simulation) RemoveShape(s *Shape) bool {
	if !sim.State.Remove(s) {
		return false
	}
	log.Debug().Uint32("id", s.ID).Str("kind", s.Kind.String()).Msg("shape clicked")
	if sim.OnRemove != nil {
		sim.OnRemove(s, RemovedClicked)
	}
	return true
}

// IncreaseSpawnRate raises the spawn rate one step and reschedules spawning.
func (sim *Simulation) IncreaseSpawnRate() {
	sim.Scheduler.Reschedule(sim.State.AdjustSpawnRate(RateStep))
}

// DecreaseSpawnRate lowers the spawn rate one step and reschedules spawning.
func (sim *Simulation) DecreaseSpawnRate() {
	sim.Scheduler.Reschedule(sim.State.AdjustSpawnRate(-RateStep))
}

// IncreaseGravity raises the gravity rate one step.
func (sim *Simulation) IncreaseGravity() {
	sim.State.AdjustGravityRate(RateStep)
}

// DecreaseGravity lowers the gravity rate one step.
func (sim *Simulation) DecreaseGravity() {
	sim.State.AdjustGravityRate(-RateStep)
}
