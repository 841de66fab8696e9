package metrics

import "github.com/san-kum/threebody/internal/sim"

// Metric accumulates a scalar over the frames a loop executes.
type Metric interface {
	sim.Observer
	Name() string
	Value() float64
	Reset()
}

// Attach registers every metric as an observer of the loop.
func Attach(l *sim.Loop, ms ...Metric) {
	for _, m := range ms {
		l.AddObserver(m)
	}
}
