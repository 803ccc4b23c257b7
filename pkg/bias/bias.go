// Package bias provides the bias-correction constants c4, d2 and d3 that
// relate the sample standard deviation and sample range to the standard
// deviation of a normal process.  Constants for sample sizes 2 through 100
// are precomputed in tables_gen.go; the closed-form and integral definitions
// are available for arbitrary sample sizes.
package bias

import "math"

//go:generate go run ../../cmd/spctab --out tables_gen.go

// RangeError is returned when a sample size falls outside the precomputed
// table range of [2, 100].
type RangeError struct {
	N int
}

func (e RangeError) Error() string {
	return "sample size n must be between 2 and 100"
}

// C4 returns the bias-correction constant c4 for sample size n.  The sample
// standard deviation divided by c4(n) is an unbiased estimate of sigma.
func C4(n int) (float64, error) {
	if n < 2 || n > 100 {
		return math.NaN(), RangeError{N: n}
	}
	return c4Table[n-2], nil
}

// D2 returns the bias-correction constant d2 for sample size n, the expected
// range of n standard normal observations.  The sample range divided by d2(n)
// is an unbiased estimate of sigma.
func D2(n int) (float64, error) {
	if n < 2 || n > 100 {
		return math.NaN(), RangeError{N: n}
	}
	return d2Table[n-2], nil
}

// D3 returns the bias-correction constant d3 for sample size n, the standard
// deviation of the range of n standard normal observations.
func D3(n int) (float64, error) {
	if n < 2 || n > 100 {
		return math.NaN(), RangeError{N: n}
	}
	return d3Table[n-2], nil
}

// C4Fn computes c4 from its closed form
//
//	c4(n) = Γ(n/2)·√(2/(n−1)) / Γ((n−1)/2)
//
// for arbitrary real n > 1.  Computed with log-gamma so that large n, such
// as pooled observation counts, do not overflow the gamma function.
func C4Fn(n float64) float64 {
	num, _ := math.Lgamma(n / 2)
	den, _ := math.Lgamma((n - 1) / 2)
	return math.Exp(num-den) * math.Sqrt(2/(n-1))
}
