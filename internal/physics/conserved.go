package physics

import "math"

// Momentum sums unit-mass velocities. It stays at zero for the seed.
func Momentum(bodies *[NumBodies]Body) (px, py float64) {
	for i := range bodies {
		px += bodies[i].Vel.X
		py += bodies[i].Vel.Y
	}
	return
}

// Energy is kinetic plus softened potential energy for the given constants.
// It uses the potential -G/sqrt(r^2+softening) with the same un-squared
// softening as the force law.
func Energy(bodies *[NumBodies]Body, g, softening float64) float64 {
	ke, pe := 0.0, 0.0
	for i := range bodies {
		v := bodies[i].Vel
		ke += 0.5 * (v.X*v.X + v.Y*v.Y)
		for j := i + 1; j < NumBodies; j++ {
			d := bodies[j].Pos.Sub(bodies[i].Pos)
			pe -= g / math.Sqrt(d.X*d.X+d.Y*d.Y+softening)
		}
	}
	return ke + pe
}

func AngularMomentum(bodies *[NumBodies]Body) float64 {
	l := 0.0
	for i := range bodies {
		b := bodies[i]
		l += b.Pos.X*b.Vel.Y - b.Pos.Y*b.Vel.X
	}
	return l
}
