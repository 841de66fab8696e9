package metrics

import (
	"math"

	"github.com/san-kum/threebody/internal/physics"
	"github.com/san-kum/threebody/internal/sim"
)

// Momentum records the magnitude of total linear momentum. The seed has
// none, so any growth is integration error.
type Momentum struct {
	name    string
	max     float64
	history []float64
}

func NewMomentum() *Momentum {
	return &Momentum{
		name: "momentum",
	}
}

func (m *Momentum) Name() string {
	return m.name
}

func (m *Momentum) OnFrame(f sim.Frame) {
	m.Observe(&f.System.Bodies)
}

func (m *Momentum) Observe(bodies *[physics.NumBodies]physics.Body) {
	px, py := physics.Momentum(bodies)
	mag := math.Hypot(px, py)
	m.max = math.Max(m.max, mag)
	m.history = append(m.history, mag)
}

func (m *Momentum) Value() float64 {
	return m.max
}

func (m *Momentum) History() []float64 { return m.history }

func (m *Momentum) Reset() {
	m.max = 0
	m.history = m.history[:0]
}
