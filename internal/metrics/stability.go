package metrics

import (
	"math"

	"github.com/san-kum/threebody/internal/physics"
	"github.com/san-kum/threebody/internal/sim"
)

// Stability is the fraction of frames in which every body stays finite and
// within radius of the origin, i.e. on screen for the default scale.
type Stability struct {
	name       string
	radius     float64
	violations int
	samples    int
}

func NewStability(radius float64) *Stability {
	return &Stability{
		name:   "stability",
		radius: radius,
	}
}

func (s *Stability) Name() string {
	return s.name
}

func (s *Stability) OnFrame(f sim.Frame) {
	s.Observe(&f.System.Bodies)
}

func (s *Stability) Observe(bodies *[physics.NumBodies]physics.Body) {
	s.samples++
	for _, b := range bodies {
		r := math.Hypot(b.Pos.X, b.Pos.Y)
		if !b.Pos.IsFinite() || r > s.radius {
			s.violations++
			break
		}
	}
}

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *Stability) Reset() {
	s.violations = 0
	s.samples = 0
}
