package rng

import (
	"fmt"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/mat"
)

var _ VectorRNG = &MultinormalRNG{}

// MultinormalRNG generates multivariate normal vectors by coloring
// independent standard normals with the Cholesky factor of the target
// covariance
type MultinormalRNG struct {
	mu    []float64
	lower *mat.TriDense
	r     *rand.Rand
}

func (r *MultinormalRNG) RandVector() []float64 {
	p := len(r.mu)
	z := mat.NewVecDense(p, nil)
	for i := 0; i < p; i++ {
		z.SetVec(i, r.r.NormFloat64())
	}
	var out mat.VecDense
	out.MulVec(r.lower, z)
	vec := make([]float64, p)
	for i := 0; i < p; i++ {
		vec[i] = out.AtVec(i) + r.mu[i]
	}
	return vec
}

func NewMultinormalRNG(mu []float64, cov *mat.SymDense) (*MultinormalRNG, error) {
	return NewSeededMultinormalRNG(mu, cov, time.Now().UnixNano())
}

// NewSeededMultinormalRNG fixes the seed for reproducible simulations
func NewSeededMultinormalRNG(mu []float64, cov *mat.SymDense, seed int64) (*MultinormalRNG, error) {
	if cov.SymmetricDim() != len(mu) {
		return nil, fmt.Errorf("covariance dimension %d does not match mean vector length %d", cov.SymmetricDim(), len(mu))
	}
	var chol mat.Cholesky
	if ok := chol.Factorize(cov); !ok {
		return nil, fmt.Errorf("covariance matrix must be positive definite")
	}
	lower := mat.NewTriDense(len(mu), mat.Lower, nil)
	chol.LTo(lower)
	return &MultinormalRNG{
		mu:    append([]float64(nil), mu...),
		lower: lower,
		r:     rand.New(rand.NewSource(seed)),
	}, nil
}
