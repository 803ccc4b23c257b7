// Package rng generates reference-distribution random observations for
// chart calibration and simulation.
package rng

// RNG is a random number generator
type RNG interface {
	Rand() float64
}

// VectorRNG is a random vector generator
type VectorRNG interface {
	RandVector() []float64
}
