package rng

import (
	"math/rand"
	"time"
)

var _ RNG = &NormalRNG{}

// NormalRNG generates normally distributed numbers
type NormalRNG struct {
	mean  float64
	stdev float64
	r     *rand.Rand
}

func (r *NormalRNG) Rand() float64 {
	return r.r.NormFloat64()*r.stdev + r.mean
}

// Subgroup generates n observations as one subgroup row
func (r *NormalRNG) Subgroup(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = r.Rand()
	}
	return out
}

func NewNormalRNG(mean float64, stdev float64) *NormalRNG {
	return NewSeededNormalRNG(mean, stdev, time.Now().UnixNano())
}

// NewSeededNormalRNG fixes the seed for reproducible simulations
func NewSeededNormalRNG(mean float64, stdev float64, seed int64) *NormalRNG {
	return &NormalRNG{
		mean:  mean,
		stdev: stdev,
		r:     rand.New(rand.NewSource(seed)),
	}
}
