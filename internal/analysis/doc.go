// Package analysis characterizes recorded pendulum trajectories.
//
//   - [PowerSpectrum]: magnitude spectrum of a sampled series
//   - [DominantPeriod]: period of the strongest oscillation
//   - [SmallAnglePeriod]: the linearized reference period 2π·√(L/g)
//
// Large swings have longer periods than the small-angle reference:
//
//	period, err := analysis.DominantPeriod(result.Series(sim.Theta), cfg.Dt)
package analysis
