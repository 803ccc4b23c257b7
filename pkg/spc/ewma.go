package spc

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/nklsxn/mqr/pkg/bias"
)

var _ ControlParams = &EwmaParams{}

// EwmaParams is an exponentially weighted moving average chart.  The
// plotted statistic carries memory of past subgroups:
//
//	z_t = λ·x̄_t + (1−λ)·z_{t−1},  z_{−1} = mu0
//
// Control limits widen over the first points as the variance of z ramps up,
// unless the chart is configured for steady state, in which case the
// asymptotic limits apply from the first point.
type EwmaParams struct {
	mu0         float64
	sigma       float64
	lambda      float64
	l           float64
	steadyState bool
}

// EwmaOption configures optional EWMA chart behavior.
type EwmaOption func(p *EwmaParams) error

// WithSteadyState uses the asymptotic control limits for every point
// instead of the transient variance ramp.
func WithSteadyState() EwmaOption {
	return func(p *EwmaParams) error {
		p.steadyState = true
		return nil
	}
}

// NewEwmaParams constructs an EWMA chart with in-control mean mu0, process
// sigma, smoothing parameter lambda in (0, 1], and limit width l in
// multiples of the statistic's standard error.
func NewEwmaParams(mu0, sigma, lambda, l float64, opts ...EwmaOption) (*EwmaParams, error) {
	if err := validateSigma(sigma); err != nil {
		return nil, err
	}
	if err := validateLambda(lambda); err != nil {
		return nil, err
	}
	if l <= 0 {
		return nil, fmt.Errorf("limit width L must be positive, got %g", l)
	}
	p := &EwmaParams{mu0: mu0, sigma: sigma, lambda: lambda, l: l}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// EwmaFromData estimates EWMA chart parameters from a balanced reference
// batch: mu0 is the grand mean of the subgroup means and sigma is the
// pooled standard deviation of all observations, unbiased with the
// closed-form c4 at the total observation count.
func EwmaFromData(s *Samples, lambda, l float64, opts ...EwmaOption) (*EwmaParams, error) {
	if _, err := s.balanced(); err != nil {
		return nil, err
	}
	all := s.values()
	if len(all) < 2 {
		return nil, fmt.Errorf("need at least 2 observations to estimate sigma, got %d", len(all))
	}
	mu0 := stat.Mean(s.Means(), nil)
	sigma := stat.StdDev(all, nil) / bias.C4Fn(float64(len(all)))
	return NewEwmaParams(mu0, sigma, lambda, l, opts...)
}

// Mu0 returns the in-control mean.
func (p *EwmaParams) Mu0() float64 { return p.mu0 }

// Sigma returns the process standard deviation.
func (p *EwmaParams) Sigma() float64 { return p.sigma }

// Lambda returns the smoothing parameter.
func (p *EwmaParams) Lambda() float64 { return p.lambda }

// Statistic computes the EWMA of the subgroup means, seeded with mu0 as
// the value before the first subgroup.
func (p *EwmaParams) Statistic(s *Samples) (*ControlStatistic, error) {
	z := p.mu0
	means := s.Means()
	out := make([]float64, len(means))
	for i, m := range means {
		z = p.lambda*m + (1-p.lambda)*z
		out[i] = z
	}
	return NewControlStatistic(out, s.Nobs())
}

// Target returns the in-control mean.
func (p *EwmaParams) Target() float64 {
	return p.mu0
}

// LCL computes the lower control limits for subgroups with sizes in nobs.
func (p *EwmaParams) LCL(nobs []int) ([]float64, error) {
	return p.limits(nobs, -1)
}

// UCL computes the upper control limits for subgroups with sizes in nobs.
func (p *EwmaParams) UCL(nobs []int) ([]float64, error) {
	return p.limits(nobs, +1)
}

func (p *EwmaParams) limits(nobs []int, direction float64) ([]float64, error) {
	out := make([]float64, len(nobs))
	for t, n := range nobs {
		if n < 1 {
			return nil, fmt.Errorf("subgroup size must be at least 1, got %d", n)
		}
		stderr := p.sigma / math.Sqrt(float64(n))
		out[t] = p.mu0 + direction*p.l*stderr*p.multiplier(t)
	}
	return out, nil
}

// multiplier is the √(λ/(2−λ)·(1−(1−λ)^(2t+2))) variance-ramp term for the
// 0-based point position t, or its t→∞ limit in steady state.
func (p *EwmaParams) multiplier(t int) float64 {
	ratio := p.lambda / (2 - p.lambda)
	if p.steadyState {
		return math.Sqrt(ratio)
	}
	return math.Sqrt(ratio * (1 - math.Pow(1-p.lambda, float64(2*t+2))))
}
