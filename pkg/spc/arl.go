package spc

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"

	"github.com/nklsxn/mqr/pkg/dist"
	"github.com/nklsxn/mqr/pkg/fredholm"
)

// defaultARLNodes is the quadrature size used when the caller does not
// choose one.  Twenty Gauss-Legendre nodes reproduce the literature ARL
// values for typical dimensions and smoothing parameters.
const defaultARLNodes = 20

// SolveARL computes the in-control average run length of an MEWMA chart
// with control limit h4, dimension p and smoothing parameter lambda.  The
// run length satisfies a second-kind Fredholm equation over the chart
// statistic's transition kernel, a noncentral chi-squared density; the
// equation is discretized on nodes Gauss-Legendre points mapped onto
// [0, √(h4·λ/(2−λ))].  Passing nodes <= 0 selects the default grid.
func SolveARL(h4 float64, p int, lambda float64, nodes int) (float64, error) {
	if h4 <= 0 {
		return 0, fmt.Errorf("control limit h4 must be positive, got %g", h4)
	}
	if p < 1 {
		return 0, fmt.Errorf("dimension p must be at least 1, got %d", p)
	}
	if err := validateLambda(lambda); err != nil {
		return 0, err
	}
	if nodes <= 0 {
		nodes = defaultARLNodes
	}

	b := math.Sqrt(h4 * lambda / (2 - lambda))
	x := make([]float64, nodes)
	w := make([]float64, nodes)
	quad.Legendre{}.FixedLocations(x, w, 0, b)

	ratio := (1 - lambda) / lambda
	kernel := func(t, s float64) float64 {
		ncx2 := dist.NoncentralChiSquared{K: float64(p), Lambda: t * t * ratio * ratio}
		return ncx2.Prob(s*s/(lambda*lambda)) * 2 * s
	}
	g := func(float64) float64 { return 1 }

	// the node weights already carry the interval scale, so the integral
	// multiplier is only the substitution factor 1/λ²
	return fredholm.Solve(0, kernel, g, 1/(lambda*lambda), x, w)
}

// SolveH4 calibrates the MEWMA control limit h4 so that the chart's
// in-control average run length equals arl0, starting the search at initH4.
// The ARL is strictly increasing in h4, which makes the root unique; a
// search that fails to converge or escapes to a non-positive limit is an
// error, and retrying with a different initial guess is the caller's
// decision.
func SolveH4(arl0 float64, p int, lambda float64, initH4 float64) (float64, error) {
	if arl0 <= 1 {
		return 0, fmt.Errorf("target ARL must be greater than 1, got %g", arl0)
	}
	const (
		maxIter = 60
		tol     = 1e-9
	)

	f := func(h4 float64) (float64, error) {
		arl, err := SolveARL(h4, p, lambda, 0)
		if err != nil {
			return 0, err
		}
		return arl - arl0, nil
	}

	x0 := initH4
	x1 := initH4 * 1.05
	f0, err := f(x0)
	if err != nil {
		return 0, err
	}
	f1, err := f(x1)
	if err != nil {
		return 0, err
	}

	for i := 0; i < maxIter; i++ {
		if math.Abs(f1) <= tol*arl0 {
			return x1, nil
		}
		if f1 == f0 {
			return 0, fmt.Errorf("h4 search stalled at %g after %d iterations", x1, i)
		}
		x2 := x1 - f1*(x1-x0)/(f1-f0)
		if x2 <= 0 || math.IsNaN(x2) {
			return 0, fmt.Errorf("h4 search left the feasible region from initial guess %g", initH4)
		}
		x0, f0 = x1, f1
		x1 = x2
		if f1, err = f(x1); err != nil {
			return 0, err
		}
	}
	return 0, fmt.Errorf("h4 search did not converge within %d iterations", maxIter)
}
