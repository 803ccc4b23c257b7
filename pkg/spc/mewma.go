package spc

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

var _ ControlParams = &MewmaParams{}

// MewmaParams is a multivariate EWMA chart.  The vector EWMA state
//
//	z_t = λ·x_t + (1−λ)·z_{t−1},  z_{−1} = mu
//
// is reduced at each point to the Hotelling-type distance
//
//	T²_t = (z_t−mu)ᵀ · Σ_t⁻¹ · (z_t−mu)
//
// where Σ_t is the time-varying covariance of the EWMA state.  The chart is
// one-sided: the statistic is a squared distance, so there is no lower
// control limit and the target is always zero.
type MewmaParams struct {
	mu     []float64
	cov    *mat.SymDense
	lambda float64
	limit  float64

	// Cholesky factor of cov, computed once at construction; the per-point
	// T² uses a triangular solve rather than an explicit inverse.
	chol mat.Cholesky
}

// NewMewmaParams constructs an MEWMA chart for a process with in-control
// mean vector mu and covariance cov.  The covariance must be positive
// definite.  The upper control limit is typically calibrated with SolveH4
// for a target in-control average run length.
func NewMewmaParams(mu []float64, cov *mat.SymDense, lambda, limit float64) (*MewmaParams, error) {
	if len(mu) == 0 {
		return nil, fmt.Errorf("mean vector must not be empty")
	}
	if cov.SymmetricDim() != len(mu) {
		return nil, fmt.Errorf("covariance dimension %d does not match mean vector length %d", cov.SymmetricDim(), len(mu))
	}
	if err := validateLambda(lambda); err != nil {
		return nil, err
	}
	p := &MewmaParams{
		mu:     append([]float64(nil), mu...),
		cov:    mat.NewSymDense(len(mu), nil),
		lambda: lambda,
		limit:  limit,
	}
	p.cov.CopySym(cov)
	if ok := p.chol.Factorize(p.cov); !ok {
		return nil, fmt.Errorf("covariance matrix must be positive definite")
	}
	return p, nil
}

// MewmaFromData estimates MEWMA chart parameters from a reference batch
// with one column per process variable: mu is the column means and cov the
// sample covariance.  The limit comes from ARL calibration, not from the
// data.
func MewmaFromData(s *Samples, limit, lambda float64) (*MewmaParams, error) {
	p, err := s.balanced()
	if err != nil {
		return nil, err
	}
	n := s.Len()
	if n < 2 {
		return nil, fmt.Errorf("need at least 2 subgroups to estimate covariance, got %d", n)
	}
	data := mat.NewDense(n, p, nil)
	for i := 0; i < n; i++ {
		data.SetRow(i, s.rows[i])
	}
	mu := make([]float64, p)
	for j := 0; j < p; j++ {
		mu[j] = stat.Mean(mat.Col(nil, j, data), nil)
	}
	cov := mat.NewSymDense(p, nil)
	stat.CovarianceMatrix(cov, data, nil)
	return NewMewmaParams(mu, cov, lambda, limit)
}

// Mu returns a copy of the in-control mean vector.
func (p *MewmaParams) Mu() []float64 {
	return append([]float64(nil), p.mu...)
}

// Limit returns the calibrated upper control limit.
func (p *MewmaParams) Limit() float64 { return p.limit }

// Statistic computes the T² series for a batch with one column per process
// variable.  The batch must be balanced with the chart's dimension.
func (p *MewmaParams) Statistic(s *Samples) (*ControlStatistic, error) {
	width, err := s.balanced()
	if err != nil {
		return nil, err
	}
	if width != len(p.mu) {
		return nil, fmt.Errorf("samples have %d variables, chart has %d", width, len(p.mu))
	}

	st := p.Stepper()
	out := make([]float64, s.Len())
	for t := 0; t < s.Len(); t++ {
		if out[t], err = st.Step(s.rows[t]); err != nil {
			return nil, err
		}
	}
	return NewControlStatistic(out, s.Nobs())
}

// MewmaStepper evaluates the MEWMA statistic one observation vector at a
// time, carrying the EWMA state between calls.  Streaming monitors use it
// to avoid recomputing the whole series on every new subgroup.
type MewmaStepper struct {
	p *MewmaParams
	z []float64
	t int
}

// Stepper returns a fresh incremental evaluator seeded at z = mu.
func (p *MewmaParams) Stepper() *MewmaStepper {
	return &MewmaStepper{p: p, z: append([]float64(nil), p.mu...)}
}

// Step folds one observation vector into the EWMA state and returns the T²
// value for the resulting point.
func (s *MewmaStepper) Step(row []float64) (float64, error) {
	dim := len(s.p.mu)
	if len(row) != dim {
		return 0, fmt.Errorf("observation has %d variables, chart has %d", len(row), dim)
	}
	diff := mat.NewVecDense(dim, nil)
	for j := 0; j < dim; j++ {
		if math.IsNaN(row[j]) || math.IsInf(row[j], 0) {
			return 0, fmt.Errorf("observation %d is not finite", j)
		}
		s.z[j] = s.p.lambda*row[j] + (1-s.p.lambda)*s.z[j]
		diff.SetVec(j, s.z[j]-s.p.mu[j])
	}
	// Σ_t is a scalar multiple of cov, so the factorization from
	// construction serves every point
	var solved mat.VecDense
	if err := s.p.chol.SolveVecTo(&solved, diff); err != nil {
		return 0, fmt.Errorf("covariance solve failed: %v", err)
	}
	t2 := mat.Dot(diff, &solved) / s.p.covScale(s.t)
	s.t++
	return t2, nil
}

// covScale is the scalar λ/(2−λ)·(1−(1−λ)^(2t+2)) relating cov to the
// EWMA state covariance at 0-based point position t.
func (p *MewmaParams) covScale(t int) float64 {
	ratio := p.lambda / (2 - p.lambda)
	return ratio * (1 - math.Pow(1-p.lambda, float64(2*t+2)))
}

// Target returns the desired distance of the process from mu, always zero.
func (p *MewmaParams) Target() float64 {
	return 0
}

// LCL returns nil: a squared distance has no meaningful lower limit.
func (p *MewmaParams) LCL(nobs []int) ([]float64, error) {
	return nil, nil
}

// UCL broadcasts the calibrated limit over the points in nobs.
func (p *MewmaParams) UCL(nobs []int) ([]float64, error) {
	out := make([]float64, len(nobs))
	for i := range out {
		out[i] = p.limit
	}
	return out, nil
}
