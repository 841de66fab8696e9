package dynamo

import (
	"fmt"
	"math"
)

const (
	DefaultG         = 1.0
	DefaultDt        = 0.002
	DefaultSoftening = 0.01
	DefaultSubSteps  = 4
)

// Params holds the integration constants applied on every Step call.
type Params struct {
	G         float64 `yaml:"g"`
	Dt        float64 `yaml:"dt"`
	Softening float64 `yaml:"softening"`
	SubSteps  int     `yaml:"sub_steps"`
}

func DefaultParams() Params {
	return Params{
		G:         DefaultG,
		Dt:        DefaultDt,
		Softening: DefaultSoftening,
		SubSteps:  DefaultSubSteps,
	}
}

// FrameTime is the simulated time advanced by one Step call.
func (p Params) FrameTime() float64 {
	return float64(p.SubSteps) * p.Dt
}

func (p Params) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{{"g", p.G}, {"dt", p.Dt}, {"softening", p.Softening}}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%s=%v: %w", f.name, f.v, ErrInvalidParams)
		}
	}
	if p.Softening <= 0 {
		return fmt.Errorf("softening=%v: %w", p.Softening, ErrNonPositiveSoftening)
	}
	if p.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f: %w", p.Dt, ErrInvalidParams)
	}
	if p.SubSteps < 1 {
		return fmt.Errorf("sub_steps must be at least 1, got %d: %w", p.SubSteps, ErrInvalidParams)
	}
	return nil
}
