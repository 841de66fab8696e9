// Package physics provides the three-body figure-eight simulator.
//
// The state is an explicit [System] owned by the driving loop:
//
//   - [Body]: position, velocity, display color and a bounded [Trail]
//   - [System]: exactly three bodies seeded with [FigureEight]
//   - [Step]: pairwise softened gravity with semi-implicit Euler sub-steps
//
// # Conserved Quantities
//
// The seed is built so that total momentum cancels. Use [Momentum],
// [Energy] and [AngularMomentum] to monitor drift:
//
//	sys := physics.NewSystem(palette, 80)
//	for i := 0; i < 1000; i++ {
//	    sys.Step(dynamo.DefaultParams())
//	}
//	px, py := physics.Momentum(&sys.Bodies)
package physics
