// Package analysis characterizes the choreography offline, without a
// surface or a frame gate.
//
//   - [Sample]: records body positions once per frame
//   - [EstimatePeriod]: orbital period from the dominant spectral peak
//   - [CrossingPeriod]: orbital period from upward mean crossings
//   - [LyapunovExponent]: divergence rate of a perturbed copy of the system
//   - [SweepSoftening]: period and energy drift as softening varies
//   - [PortraitToASCII]: the traced orbit as text
//
// # Period
//
// The unsoftened figure-eight repeats every 6.3259 time units. With the
// default softening the orbit stretches to roughly 6.5:
//
//	tr := analysis.Sample(dynamo.DefaultParams(), 4096)
//	period := analysis.CrossingPeriod(tr.X[0], tr.Dt)
package analysis
