package sim

import "math"

// DefaultFPS is the target number of executed frames per second.
const DefaultFPS = 60

// Gate admits at most one frame per Interval milliseconds. When a frame is
// admitted the time past the interval boundary is carried over instead of
// being dropped.
type Gate struct {
	Interval float64
	last     float64
}

func NewGate(fps float64) *Gate {
	g := &Gate{}
	if fps > 0 {
		g.Interval = 1000 / fps
	}
	return g
}

// Admit reports whether the opportunity at ts (ms) should execute a frame.
func (g *Gate) Admit(ts float64) bool {
	delta := ts - g.last
	if g.Interval <= 0 {
		g.last = ts
		return true
	}
	if delta < g.Interval {
		return false
	}
	g.last = ts - math.Mod(delta, g.Interval)
	return true
}
