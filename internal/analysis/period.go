package analysis

import (
	"github.com/san-kum/threebody/internal/dynamo"
	"github.com/san-kum/threebody/internal/physics"
)

// Trajectory holds per-frame positions of the three bodies.
type Trajectory struct {
	Dt float64
	X  [physics.NumBodies][]float64
	Y  [physics.NumBodies][]float64
}

func (t *Trajectory) Len() int { return len(t.X[0]) }

// Sample steps the seed frames times and records every body after each frame.
func Sample(p dynamo.Params, frames int) *Trajectory {
	tr := &Trajectory{Dt: p.FrameTime()}
	for i := range tr.X {
		tr.X[i] = make([]float64, 0, frames)
		tr.Y[i] = make([]float64, 0, frames)
	}

	bodies := physics.FigureEight()
	for n := 0; n < frames; n++ {
		physics.Step(&bodies, p)
		for i := range bodies {
			tr.X[i] = append(tr.X[i], bodies[i].Pos.X)
			tr.Y[i] = append(tr.Y[i], bodies[i].Pos.Y)
		}
	}
	return tr
}

// Crossings returns the interpolated times at which data rises through its
// mean.
func Crossings(data []float64, dt float64) []float64 {
	if len(data) < 2 {
		return nil
	}

	mean := 0.0
	for _, v := range data {
		mean += v
	}
	mean /= float64(len(data))

	var times []float64
	prev := data[0] - mean
	for n := 1; n < len(data); n++ {
		curr := data[n] - mean
		if prev < 0 && curr >= 0 {
			frac := -prev / (curr - prev)
			times = append(times, (float64(n-1)+frac)*dt)
		}
		prev = curr
	}
	return times
}

// CrossingPeriod averages the spacing of upward mean crossings. It needs at
// least two crossings and returns 0 otherwise.
func CrossingPeriod(data []float64, dt float64) float64 {
	times := Crossings(data, dt)
	if len(times) < 2 {
		return 0
	}
	return (times[len(times)-1] - times[0]) / float64(len(times)-1)
}
