package shapefall

import "github.com/rs/zerolog/log"

// Rate tuning.
const (
	RateStep = 0.1 // change applied by one control press
	MinRate  = 0.1 // floor for spawn and gravity rates
)

// State holds the simulation tunables, the live shape collection and the
// aggregate counters derived from it. The counters are only changed together
// with the collection, so between calls Count() == len(Shapes()) and Area()
// is the sum of the live shapes' areas.
type State struct {
	// SpawnRate is shapes created per second by the spawn scheduler.
	SpawnRate float64
	// GravityRate is pixels of downward translation per frame.
	GravityRate float64

	live  []*Shape
	count int
	area  float64
}

// NewState creates a state with the given rates. Rates below MinRate are
// raised to MinRate.
func NewState(spawnRate, gravityRate float64) *State {
	return &State{
		SpawnRate:   clampRate(spawnRate),
		GravityRate: clampRate(gravityRate),
	}
}

// Count returns the number of live shapes.
func (st *State) Count() int {
	return st.count
}

// Area returns the total area occupied by live shapes.
func (st *State) Area() float64 {
	return st.area
}

// Shapes returns the live shapes in insertion order. The returned slice MUST
// NOT be mutated by the caller.
func (st *State) Shapes() []*Shape {
	return st.live
}

// Add registers s as live and accounts for its area.
func (st *State) Add(s *Shape) {
	if s == nil {
		panic("shapefall: cannot add nil shape")
	}
	st.live = append(st.live, s)
	st.count++
	st.area += s.Area
	log.Debug().Uint32("id", s.ID).Str("kind", s.Kind.String()).
		Float64("area", s.Area).Bool("degenerate", s.Degenerate).Msg("shape spawned")
}

// Remove drops s from the live collection and subtracts its area. It reports
// false, changing nothing, if s is not live.
func (st *State) Remove(s *Shape) bool {
	for i, c := range st.live {
		if c == s {
			st.removeAt(i)
			return true
		}
	}
	return false
}

// removeAt removes the shape at index i along with its counters.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (st *State) removeAt(i int) *Shape {
	s := st.live[i]
	copy(st.live[i:], st.live[i+1:])
	st.live[len(st.live)-1] = nil
	st.live = st.live[:len(st.live)-1]
	st.count--
	st.area -= s.Area
	if st.count == 0 {
		// Drop accumulated rounding error.
		st.area = 0
	}
	return s
}

// ShapeAt returns the topmost live shape under the world point (x, y), or nil.
func (st *State) ShapeAt(x, y float64) *Shape {
	// Iterate backward (reverse painter order): topmost shape first.
	for i := len(st.live) - 1; i >= 0; i-- {
		if st.live[i].Contains(x, y) {
			return st.live[i]
		}
	}
	return nil
}

// AdjustSpawnRate adds delta to SpawnRate, flooring at MinRate, and returns
// the new rate. Callers owning a scheduler must reschedule it.
func (st *State) AdjustSpawnRate(delta float64) float64 {
	st.SpawnRate = clampRate(st.SpawnRate + delta)
	log.Info().Float64("spawn_rate", st.SpawnRate).Msg("spawn rate changed")
	return st.SpawnRate
}

// AdjustGravityRate adds delta to GravityRate, flooring at MinRate, and
// returns the new rate. It applies from the next tick.
func (st *State) AdjustGravityRate(delta float64) float64 {
	st.GravityRate = clampRate(st.GravityRate + delta)
	log.Info().Float64("gravity_rate", st.GravityRate).Msg("gravity rate changed")
	return st.GravityRate
}

func clampRate(v float64) float64 {
	if v > MinRate {
		return v
	}
	return MinRate
}
