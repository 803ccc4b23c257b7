// Package fredholm solves Fredholm integral equations of the second kind
// by Nystrom discretization over a quadrature grid.
package fredholm

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Kernel is the two-argument kernel K(t, s) of the integral equation.
type Kernel func(t, s float64) float64

// Solve evaluates f(t0) for the equation
//
//	f(t) = g(t) + λ·∫ K(t, s)·f(s) ds
//
// where the definite integral is approximated by the quadrature nodes x and
// weights w.  The discretized system (I − λA)·L = g(x) with
// A[i,j] = w[j]·K(x[i], x[j]) is solved directly, then f(t0) is recovered by
// Nystrom interpolation.  A singular system, which arises when λ coincides
// with an eigenvalue of the discretized kernel, is returned as an error.
func Solve(t0 float64, K Kernel, g func(float64) float64, lambda float64, x, w []float64) (float64, error) {
	if len(x) != len(w) {
		return 0, fmt.Errorf("quadrature nodes and weights must be the same length: %d != %d", len(x), len(w))
	}
	if len(x) == 0 {
		return 0, fmt.Errorf("quadrature grid must not be empty")
	}

	n := len(x)
	a := mat.NewDense(n, n, nil)
	b := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		b.SetVec(i, g(x[i]))
		for j := 0; j < n; j++ {
			ident := 0.0
			if i == j {
				ident = 1.0
			}
			a.Set(i, j, ident-lambda*w[j]*K(x[i], x[j]))
		}
	}

	var lu mat.LU
	lu.Factorize(a)
	var l mat.VecDense
	if err := lu.SolveVecTo(&l, false, b); err != nil {
		return 0, fmt.Errorf("singular Nystrom system: %v", err)
	}

	// Nystrom interpolation back to t0
	sum := 0.0
	for j := 0; j < n; j++ {
		sum += w[j] * l.AtVec(j) * K(t0, x[j])
	}
	return g(t0) + lambda*sum, nil
}
