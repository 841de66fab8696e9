package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrInvalidState indicates a body with NaN or Inf position or velocity.
	ErrInvalidState = errors.New("dynamo: invalid state (NaN or Inf detected)")

	// ErrNonPositiveSoftening indicates softening <= 0, which allows singular forces.
	ErrNonPositiveSoftening = errors.New("dynamo: softening must be positive")

	// ErrInvalidParams indicates a non-finite or out-of-range integration parameter.
	ErrInvalidParams = errors.New("dynamo: parameter out of valid bounds")

	// ErrInvalidSurface indicates a drawing surface with non-positive dimensions.
	ErrInvalidSurface = errors.New("dynamo: surface dimensions must be positive")

	// ErrStopped indicates an operation on a loop that has already stopped.
	ErrStopped = errors.New("dynamo: loop stopped")
)

// SimulationError wraps an error with the frame it happened on.
type SimulationError struct {
	Frame   int
	Time    float64
	Wrapped error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("frame %d (t=%.4f): %v", e.Frame, e.Time, e.Wrapped)
}

func (e *SimulationError) Unwrap() error {
	return e.Wrapped
}
