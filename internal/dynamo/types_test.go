package dynamo

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()

	if p.G != 1 || p.Dt != 0.002 || p.Softening != 0.01 || p.SubSteps != 4 {
		t.Errorf("unexpected defaults: %+v", p)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
	if math.Abs(p.FrameTime()-0.008) > 1e-15 {
		t.Errorf("FrameTime() = %v, want 0.008", p.FrameTime())
	}
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
		want   error
	}{
		{"zero softening", func(p *Params) { p.Softening = 0 }, ErrNonPositiveSoftening},
		{"negative softening", func(p *Params) { p.Softening = -0.01 }, ErrNonPositiveSoftening},
		{"zero dt", func(p *Params) { p.Dt = 0 }, ErrInvalidParams},
		{"no sub-steps", func(p *Params) { p.SubSteps = 0 }, ErrInvalidParams},
		{"NaN g", func(p *Params) { p.G = math.NaN() }, ErrInvalidParams},
		{"Inf dt", func(p *Params) { p.Dt = math.Inf(1) }, ErrInvalidParams},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)
			err := p.Validate()
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSimulationError(t *testing.T) {
	err := &SimulationError{Frame: 150, Time: 1.2, Wrapped: ErrInvalidState}
	expected := "frame 150 (t=1.2000): dynamo: invalid state (NaN or Inf detected)"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
	if !errors.Is(err, ErrInvalidState) {
		t.Error("SimulationError should unwrap to ErrInvalidState")
	}
}
