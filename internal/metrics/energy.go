package metrics

import (
	"math"

	"github.com/san-kum/threebody/internal/dynamo"
	"github.com/san-kum/threebody/internal/physics"
	"github.com/san-kum/threebody/internal/sim"
)

// EnergyDrift tracks the relative deviation of total energy from its value
// at the first observed frame.
type EnergyDrift struct {
	name          string
	g             float64
	softening     float64
	initialEnergy float64
	currentEnergy float64
	maxDrift      float64
	samples       int
	history       []float64
}

func NewEnergyDrift(p dynamo.Params) *EnergyDrift {
	return &EnergyDrift{
		name:      "energy_drift",
		g:         p.G,
		softening: p.Softening,
	}
}

func (e *EnergyDrift) Name() string { return e.name }

func (e *EnergyDrift) OnFrame(f sim.Frame) {
	e.Observe(&f.System.Bodies)
}

func (e *EnergyDrift) Observe(bodies *[physics.NumBodies]physics.Body) {
	energy := physics.Energy(bodies, e.g, e.softening)

	if e.samples == 0 {
		e.initialEnergy = energy
	}

	e.currentEnergy = energy
	e.samples++

	drift := 0.0
	if e.initialEnergy != 0 {
		drift = math.Abs(energy-e.initialEnergy) / math.Abs(e.initialEnergy)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
	e.history = append(e.history, drift)
}

// Value is the largest relative drift seen so far.
func (e *EnergyDrift) Value() float64 {
	return e.maxDrift
}

func (e *EnergyDrift) Initial() float64 { return e.initialEnergy }
func (e *EnergyDrift) Current() float64 { return e.currentEnergy }

// History returns the per-frame relative drift.
func (e *EnergyDrift) History() []float64 { return e.history }

func (e *EnergyDrift) Reset() {
	e.initialEnergy = 0
	e.currentEnergy = 0
	e.maxDrift = 0
	e.samples = 0
	e.history = e.history[:0]
}
