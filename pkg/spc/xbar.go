package spc

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/nklsxn/mqr/pkg/bias"
)

var _ ShewhartParams = &XBarParams{}

// XBarParams is an X-bar chart: the plotted statistic is the subgroup mean.
type XBarParams struct {
	centre float64
	sigma  float64
	nsigma float64
}

// NewXBarParams constructs an X-bar chart with the given centre line,
// process sigma and control-limit width in multiples of the standard error.
func NewXBarParams(centre, sigma, nsigma float64) (*XBarParams, error) {
	if err := validateSigma(sigma); err != nil {
		return nil, err
	}
	if err := validateNSigma(nsigma); err != nil {
		return nil, err
	}
	return &XBarParams{centre: centre, sigma: sigma, nsigma: nsigma}, nil
}

// XBarFromStddev constructs an X-bar chart from the mean subgroup standard
// deviation of a reference batch, unbiased with c4(nobs).
func XBarFromStddev(centre, sBar float64, nobs int, nsigma float64) (*XBarParams, error) {
	c4, err := bias.C4(nobs)
	if err != nil {
		return nil, err
	}
	return NewXBarParams(centre, sBar/c4, nsigma)
}

// XBarFromRange constructs an X-bar chart from the mean subgroup range of a
// reference batch, unbiased with d2(nobs).
func XBarFromRange(centre, rBar float64, nobs int, nsigma float64) (*XBarParams, error) {
	d2, err := bias.D2(nobs)
	if err != nil {
		return nil, err
	}
	return NewXBarParams(centre, rBar/d2, nsigma)
}

// XBarFromData estimates X-bar chart parameters from a balanced reference
// batch: the centre is the grand mean and sigma comes from the mean subgroup
// standard deviation or range, selected by method.
func XBarFromData(s *Samples, method EstimateMethod, nsigma float64) (*XBarParams, error) {
	nobs, err := s.balanced()
	if err != nil {
		return nil, err
	}
	centre := stat.Mean(s.Means(), nil)
	switch method {
	case EstimateSBar:
		return XBarFromStddev(centre, stat.Mean(s.Stddevs(), nil), nobs, nsigma)
	case EstimateRBar:
		return XBarFromRange(centre, stat.Mean(s.Ranges(), nil), nobs, nsigma)
	default:
		return nil, fmt.Errorf("method %q not supported", method)
	}
}

// Centre returns the centre line.
func (p *XBarParams) Centre() float64 { return p.centre }

// Sigma returns the process standard deviation.
func (p *XBarParams) Sigma() float64 { return p.sigma }

// Statistic computes the subgroup means.
func (p *XBarParams) Statistic(s *Samples) (*ControlStatistic, error) {
	return NewControlStatistic(s.Means(), s.Nobs())
}

// SE computes the standard error of the subgroup mean, sigma/√n.
func (p *XBarParams) SE(nobs []int) ([]float64, error) {
	out := make([]float64, len(nobs))
	for i, n := range nobs {
		if n < 1 {
			return nil, fmt.Errorf("subgroup size must be at least 1, got %d", n)
		}
		out[i] = p.sigma / math.Sqrt(float64(n))
	}
	return out, nil
}

// Target returns the centre line.  The centre of an X-bar chart does not
// depend on subgroup size.
func (p *XBarParams) Target() float64 {
	return p.centre
}

// LCL computes the lower control limits for subgroups with sizes in nobs.
func (p *XBarParams) LCL(nobs []int) ([]float64, error) {
	se, err := p.SE(nobs)
	if err != nil {
		return nil, err
	}
	for i := range se {
		se[i] = p.centre - p.nsigma*se[i]
	}
	return se, nil
}

// UCL computes the upper control limits for subgroups with sizes in nobs.
func (p *XBarParams) UCL(nobs []int) ([]float64, error) {
	se, err := p.SE(nobs)
	if err != nil {
		return nil, err
	}
	for i := range se {
		se[i] = p.centre + p.nsigma*se[i]
	}
	return se, nil
}
