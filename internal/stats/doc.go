// Package stats provides small numeric helpers for simulation code:
// sample standard deviation and Poisson-distributed integer sampling.
//
// All functions are pure apart from consuming draws from a caller-supplied
// Source. Invalid input fails fast with an *ArgumentError instead of
// returning NaN or infinity.
package stats
