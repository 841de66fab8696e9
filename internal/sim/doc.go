// Package sim drives the simulator and renderer from a stream of display
// refresh opportunities.
//
//   - [Gate]: drops opportunities that arrive faster than the target rate
//     while carrying the remainder so the rate does not drift
//   - [FrameSource]: "await next frame" abstraction over tickers, fixed
//     clocks and host callbacks
//   - [Loop]: Running/Stopped state machine that steps, records trails and
//     draws once per admitted frame
//
// # Example
//
//	loop := sim.New(sys, params, surface, renderer, sim.DefaultOptions())
//	src := sim.NewTickerSource(120)
//	defer src.Close()
//	err := loop.Run(ctx, src)
//
// # Thread Safety
//
// A Loop is owned by one goroutine. Only [Loop.Stop] may be called from
// another goroutine; every other method must run on the owner.
package sim
