// Package dist implements the noncentral chi-squared distribution, which
// gonum's distuv does not provide.  It is used as the transition kernel in
// the MEWMA average-run-length calculation.
package dist

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// NoncentralChiSquared is the noncentral chi-squared distribution with K
// degrees of freedom and noncentrality parameter Lambda >= 0.  Lambda of 0
// reduces to the central chi-squared distribution.
type NoncentralChiSquared struct {
	K      float64
	Lambda float64
}

// Prob computes the value of the probability density function at x.  The
// density is the Poisson(Lambda/2) mixture of central chi-squared densities
//
//	f(x) = Σ_j  e^(−λ/2)·(λ/2)^j / j!  ·  χ²(k+2j).pdf(x)
//
// summed outward from the mode of the Poisson weight in log space, so large
// noncentralities do not underflow term-by-term.
func (n NoncentralChiSquared) Prob(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if n.Lambda == 0 {
		return distuv.ChiSquared{K: n.K}.Prob(x)
	}

	half := n.Lambda / 2
	logTerm := func(j float64) float64 {
		lg, _ := math.Lgamma(j + 1)
		logw := -half + j*math.Log(half) - lg
		return logw + distuv.ChiSquared{K: n.K + 2*j}.LogProb(x)
	}

	// start at the mode of the Poisson weights and expand in both
	// directions until the terms no longer contribute
	j0 := math.Floor(half)
	sum := math.Exp(logTerm(j0))
	for j := j0 + 1; ; j++ {
		term := math.Exp(logTerm(j))
		sum += term
		if term < sum*1e-18 {
			break
		}
	}
	for j := j0 - 1; j >= 0; j-- {
		term := math.Exp(logTerm(j))
		sum += term
		if term < sum*1e-18 {
			break
		}
	}
	return sum
}

// LogProb computes the natural logarithm of the value of the probability
// density function at x.
func (n NoncentralChiSquared) LogProb(x float64) float64 {
	return math.Log(n.Prob(x))
}

// Mean returns the mean of the distribution, K + Lambda.
func (n NoncentralChiSquared) Mean() float64 {
	return n.K + n.Lambda
}
