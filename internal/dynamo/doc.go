// Package dynamo provides the integration parameters and error values shared
// by the simulator, the driving loop and the configuration layer.
//
//   - [Params]: gravitational constant, sub-step size, softening, sub-steps
//   - [SimulationError]: wraps a failure with frame and time context
//
// # Example
//
//	p := dynamo.DefaultParams()
//	if err := p.Validate(); err != nil {
//	    return err
//	}
//	physics.Step(&sys.Bodies, p)
//
// # Softening
//
// Softening is added to the squared distance before the square root. A zero
// softening lets two close bodies drive the state to NaN/Inf, after which no
// frame recovers, so [Params.Validate] rejects it.
package dynamo
