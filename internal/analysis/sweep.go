package analysis

import (
	"math"

	"github.com/san-kum/threebody/internal/dynamo"
	"github.com/san-kum/threebody/internal/physics"
)

// SweepPoint is the outcome of one softening value.
type SweepPoint struct {
	Softening float64
	Period    float64
	Drift     float64
}

// SweepSoftening runs the seed for frames at steps evenly spaced softening
// values in [lo, hi], keeping the other parameters of base. Values that fail
// validation are skipped.
func SweepSoftening(base dynamo.Params, lo, hi float64, steps, frames int) []SweepPoint {
	if steps < 2 {
		steps = 2
	}
	inc := (hi - lo) / float64(steps-1)

	results := make([]SweepPoint, 0, steps)
	for i := 0; i < steps; i++ {
		p := base
		p.Softening = lo + float64(i)*inc
		if p.Validate() != nil {
			continue
		}

		bodies := physics.FigureEight()
		e0 := physics.Energy(&bodies, p.G, p.Softening)
		xs := make([]float64, 0, frames)
		drift := 0.0
		for n := 0; n < frames; n++ {
			physics.Step(&bodies, p)
			xs = append(xs, bodies[0].Pos.X)
			e := physics.Energy(&bodies, p.G, p.Softening)
			drift = math.Max(drift, math.Abs((e-e0)/e0))
		}

		results = append(results, SweepPoint{
			Softening: p.Softening,
			Period:    CrossingPeriod(xs, p.FrameTime()),
			Drift:     drift,
		})
	}
	return results
}
