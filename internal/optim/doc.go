// Package optim sweeps pendulum parameters over a grid and ranks the runs by a
// metric.
package optim
