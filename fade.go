package shapefall

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// fadeDuration is how long a clicked shape's ghost stays visible, in seconds.
const fadeDuration = 0.3

// fade animates the ghost of a removed shape: alpha to zero while it grows
// slightly around its center. The ghost is not part of the simulation and
// never counts towards the aggregates.
//
// There is no global animation manager; the Game updates its fades itself.
type fade struct {
	shape  *Shape
	alpha  float64
	scale  float64
	tweens [2]*gween.Tween
	fields [2]*float64
	Done   bool
}

// newFade snapshots s for fading. Later changes to s do not affect the ghost.
func newFade(s *Shape, duration float32, fn ease.TweenFunc) *fade {
	ghost := *s
	ghost.Points = append([]Vec2(nil), s.Points...)
	f := &fade{shape: &ghost, alpha: 1, scale: 1}
	f.tweens[0] = gween.New(1, 0, duration, fn)
	f.tweens[1] = gween.New(1, 1.2, duration, fn)
	f.fields[0] = &f.alpha
	f.fields[1] = &f.scale
	return f
}

// Update advances both tweens by dt seconds and writes their values.
func (f *fade) Update(dt float32) {
	if f.Done {
		return
	}
	allDone := true
	for i, tw := range f.tweens {
		val, finished := tw.Update(dt)
		*f.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	f.Done = allDone
}

// updateFades advances all ghosts and drops finished ones in place.
func updateFades(fades []*fade, dt float32) []*fade {
	kept := fades[:0]
	for _, f := range fades {
		f.Update(dt)
		if !f.Done {
			kept = append(kept, f)
		}
	}
	for i := len(kept); i < len(fades); i++ {
		fades[i] = nil
	}
	return kept
}
