package physics

import (
	"image/color"
	"math"

	"github.com/san-kum/threebody/internal/dynamo"
)

// NumBodies is fixed; bodies are never created or destroyed individually.
const NumBodies = 3

// Figure-eight seed (Chenciner-Montgomery). Reproduced exactly.
const (
	SeedX1  = 0.97000436
	SeedY1  = -0.24308753
	SeedVX3 = -0.93240737
	SeedVY3 = -0.86473146
)

type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// Body is one of the three point masses.
type Body struct {
	Pos   Vec2
	Vel   Vec2
	Color color.NRGBA
	Trail *Trail
}

// FigureEight returns positions and velocities of the canonical seed.
// Colors and trails are left zero.
func FigureEight() [NumBodies]Body {
	v := Vec2{SeedVX3, SeedVY3}
	half := Vec2{-SeedVX3 / 2, -SeedVY3 / 2}
	return [NumBodies]Body{
		{Pos: Vec2{SeedX1, SeedY1}, Vel: half},
		{Pos: Vec2{-SeedX1, -SeedY1}, Vel: half},
		{Pos: Vec2{0, 0}, Vel: v},
	}
}

// Step advances all bodies by p.SubSteps increments of p.Dt in place.
//
// Contributions for the pair (i, j) point from i toward j on body i and the
// opposite way on body j. The magnitude is G/distSq projected with dx/dist,
// where softening is added to the squared distance unsquared.
func Step(bodies *[NumBodies]Body, p dynamo.Params) {
	for s := 0; s < p.SubSteps; s++ {
		var acc [NumBodies]Vec2
		for i := 0; i < NumBodies; i++ {
			for j := i + 1; j < NumBodies; j++ {
				dx := bodies[j].Pos.X - bodies[i].Pos.X
				dy := bodies[j].Pos.Y - bodies[i].Pos.Y
				distSq := dx*dx + dy*dy + p.Softening
				dist := math.Sqrt(distSq)
				f := p.G / distSq
				ax, ay := f*dx/dist, f*dy/dist
				acc[i].X += ax
				acc[i].Y += ay
				acc[j].X -= ax
				acc[j].Y -= ay
			}
		}
		// velocity first, then position with the new velocity
		for i := range bodies {
			b := &bodies[i]
			b.Vel.X += acc[i].X * p.Dt
			b.Vel.Y += acc[i].Y * p.Dt
			b.Pos.X += b.Vel.X * p.Dt
			b.Pos.Y += b.Vel.Y * p.Dt
		}
	}
}

// System is the complete animation state owned by the driving loop.
type System struct {
	Bodies [NumBodies]Body
	Time   float64
	Frames int
}

// NewSystem seeds the figure-eight with one color per body and empty trails
// of the given capacity.
func NewSystem(colors [NumBodies]color.NRGBA, trailCapacity int) *System {
	s := &System{}
	for i := range s.Bodies {
		s.Bodies[i].Color = colors[i]
		s.Bodies[i].Trail = NewTrail(trailCapacity)
	}
	s.Reset()
	return s
}

// Reset restores the canonical seed and clears every trail. Colors persist.
func (s *System) Reset() {
	seed := FigureEight()
	for i := range s.Bodies {
		s.Bodies[i].Pos = seed[i].Pos
		s.Bodies[i].Vel = seed[i].Vel
		if s.Bodies[i].Trail != nil {
			s.Bodies[i].Trail.Clear()
		}
	}
	s.Time = 0
	s.Frames = 0
}

// Step advances the bodies by one frame worth of sub-steps.
func (s *System) Step(p dynamo.Params) {
	Step(&s.Bodies, p)
	s.Time += p.FrameTime()
	s.Frames++
}

// Record appends each body's current position to its trail.
func (s *System) Record() {
	for i := range s.Bodies {
		s.Bodies[i].Trail.Push(s.Bodies[i].Pos)
	}
}

// Valid reports whether every position and velocity is finite.
func (s *System) Valid() bool {
	for i := range s.Bodies {
		if !s.Bodies[i].Pos.IsFinite() || !s.Bodies[i].Vel.IsFinite() {
			return false
		}
	}
	return true
}
