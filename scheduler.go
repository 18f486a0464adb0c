package shapefall

import "time"

// maxSpawnCatchUp bounds how many spawns a single Advance may report, so a
// long stall (window drag, breakpoint) does not flood the canvas.
const maxSpawnCatchUp = 8

// SpawnScheduler is a periodic trigger driven by elapsed frame time. The first
// trigger fires one full interval after (re)scheduling.
type SpawnScheduler struct {
	interval time.Duration
	elapsed  time.Duration
}

// IntervalForRate converts a per-second rate to a trigger interval.
func IntervalForRate(rate float64) time.Duration {
	return time.Duration(float64(time.Second) / clampRate(rate))
}

// NewSpawnScheduler creates a scheduler firing rate times per second.
func NewSpawnScheduler(rate float64) *SpawnScheduler {
	return &SpawnScheduler{interval: IntervalForRate(rate)}
}

// Interval returns the current trigger interval.
func (s *SpawnScheduler) Interval() time.Duration {
	return s.interval
}

// Reschedule cancels the pending trigger and restarts at the new rate.
func (s *SpawnScheduler) Reschedule(rate float64) {
	s.interval = IntervalForRate(rate)
	s.elapsed = 0
}

// Advance accounts for dt of elapsed time and returns how many triggers fired.
func (s *SpawnScheduler) Advance(dt time.Duration) int {
	if dt <= 0 || s.interval <= 0 {
		return 0
	}
	s.elapsed += dt
	fired := 0
	for s.elapsed >= s.interval {
		if fired == maxSpawnCatchUp {
			s.elapsed %= s.interval
			break
		}
		s.elapsed -= s.interval
		fired++
	}
	return fired
}
