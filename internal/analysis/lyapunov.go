package analysis

import (
	"math"

	"github.com/san-kum/threebody/internal/dynamo"
	"github.com/san-kum/threebody/internal/physics"
)

// LyapunovExponent estimates the largest Lyapunov exponent using the
// trajectory separation method: a copy of the seed with body A shifted by
// perturbation along x is stepped alongside, and the log growth of their
// phase-space separation is averaged per unit time.
func LyapunovExponent(p dynamo.Params, frames int, perturbation float64) float64 {
	if frames <= 0 || perturbation <= 0 {
		return 0
	}

	x := physics.FigureEight()
	xp := physics.FigureEight()
	xp[0].Pos.X += perturbation
	d0 := perturbation

	dt := p.FrameTime()
	sumLog := 0.0
	count := 0

	for n := 0; n < frames; n++ {
		physics.Step(&x, p)
		physics.Step(&xp, p)

		sep := separation(&x, &xp)
		if sep > 0 {
			sumLog += math.Log(sep / d0)
			count++
		}

		// Renormalize before the copy drifts onto another orbit.
		if sep > 0 {
			scale := d0 / sep
			for i := range xp {
				xp[i].Pos = x[i].Pos.Add(xp[i].Pos.Sub(x[i].Pos).Scale(scale))
				xp[i].Vel = x[i].Vel.Add(xp[i].Vel.Sub(x[i].Vel).Scale(scale))
			}
		}
	}

	if count == 0 {
		return 0
	}
	return sumLog / (float64(count) * dt)
}

func separation(a, b *[physics.NumBodies]physics.Body) float64 {
	sum := 0.0
	for i := range a {
		dp := b[i].Pos.Sub(a[i].Pos)
		dv := b[i].Vel.Sub(a[i].Vel)
		sum += dp.X*dp.X + dp.Y*dp.Y + dv.X*dv.X + dv.Y*dv.Y
	}
	return math.Sqrt(sum)
}
