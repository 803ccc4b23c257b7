package bias

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/stat/distuv"
)

// Integral definitions of d2 and d3 as the mean and standard deviation of
// the range of n standard normal observations.  These are used offline by
// cmd/spctab to build the constant tables and by tests that check the
// shipped tables; the hot path uses the table lookups in bias.go.

// Quadrature domains.  The integrands decay like normal tails, so values
// beyond these bounds are below double-precision noise for n <= 100.
const (
	d2Bound  = 12.0
	d3SBound = 12.0
	d3TBound = 14.0
	d2Nodes  = 500
	d3SNodes = 200
	d3TNodes = 160
)

// D2Integral computes d2 for arbitrary real n >= 2 by integrating
//
//	1 − (1−Φ(x))^n − Φ(x)^n
//
// over the real line.
func D2Integral(n float64) float64 {
	f := func(x float64) float64 {
		p := distuv.UnitNormal.CDF(x)
		return 1 - math.Pow(1-p, n) - math.Pow(p, n)
	}
	return quad.Fixed(f, -d2Bound, d2Bound, d2Nodes, quad.Legendre{}, 0)
}

// D3Integral computes d3 for arbitrary real n >= 2 from the second moment
// of the range:
//
//	d3(n) = √(2·∬ f3 − d2(n)²)
//
// where the double integral runs over the rotated bivariate tail form f3,
// with s over the real line and t over [0, ∞).  The d2 term uses D2Integral
// so the function is self-contained for non-integer n.
func D3Integral(n float64) float64 {
	sqrt2 := math.Sqrt(2)
	f3 := func(s, t float64) float64 {
		px := distuv.UnitNormal.CDF((s - t) / sqrt2)
		py := distuv.UnitNormal.CDF((s + t) / sqrt2)
		return 1 - math.Pow(py, n) - math.Pow(1-px, n) + math.Pow(py-px, n)
	}
	outer := func(t float64) float64 {
		return quad.Fixed(func(s float64) float64 { return f3(s, t) }, -d3SBound, d3SBound, d3SNodes, quad.Legendre{}, 0)
	}
	integral := quad.Fixed(outer, 0, d3TBound, d3TNodes, quad.Legendre{}, 0)
	d2 := D2Integral(n)
	return math.Sqrt(2*integral - d2*d2)
}
