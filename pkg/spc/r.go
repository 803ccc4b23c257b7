package spc

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/nklsxn/mqr/pkg/bias"
)

var _ ShewhartParams = &RParams{}

// RParams is an R chart: the plotted statistic is the subgroup range.
type RParams struct {
	centre float64
	sigma  float64
	nsigma float64
}

// NewRParams constructs an R chart with the given expected range, process
// sigma and control-limit width.
func NewRParams(centre, sigma, nsigma float64) (*RParams, error) {
	if err := validateSigma(sigma); err != nil {
		return nil, err
	}
	if err := validateNSigma(nsigma); err != nil {
		return nil, err
	}
	return &RParams{centre: centre, sigma: sigma, nsigma: nsigma}, nil
}

// RFromRange constructs an R chart from a mean subgroup range, with sigma
// unbiased by d2(nobs).
func RFromRange(rBar float64, nobs int, nsigma float64) (*RParams, error) {
	d2, err := bias.D2(nobs)
	if err != nil {
		return nil, err
	}
	return NewRParams(rBar, rBar/d2, nsigma)
}

// RFromData estimates R chart parameters from a balanced reference batch.
func RFromData(s *Samples, nsigma float64) (*RParams, error) {
	nobs, err := s.balanced()
	if err != nil {
		return nil, err
	}
	return RFromRange(stat.Mean(s.Ranges(), nil), nobs, nsigma)
}

// Centre returns the expected subgroup range.
func (p *RParams) Centre() float64 { return p.centre }

// Sigma returns the process standard deviation.
func (p *RParams) Sigma() float64 { return p.sigma }

// Statistic computes the subgroup ranges.
func (p *RParams) Statistic(s *Samples) (*ControlStatistic, error) {
	return NewControlStatistic(s.Ranges(), s.Nobs())
}

// SE computes the standard error of the subgroup range, d3(n)·sigma.
func (p *RParams) SE(nobs []int) ([]float64, error) {
	out := make([]float64, len(nobs))
	for i, n := range nobs {
		d3, err := bias.D3(n)
		if err != nil {
			return nil, err
		}
		out[i] = d3 * p.sigma
	}
	return out, nil
}

// Target returns the expected subgroup range.
func (p *RParams) Target() float64 {
	return p.centre
}

// LCL computes the lower control limits for subgroups with sizes in nobs,
// clamped at zero since a range cannot be negative.
func (p *RParams) LCL(nobs []int) ([]float64, error) {
	se, err := p.SE(nobs)
	if err != nil {
		return nil, err
	}
	for i := range se {
		se[i] = math.Max(0, p.centre-p.nsigma*se[i])
	}
	return se, nil
}

// UCL computes the upper control limits for subgroups with sizes in nobs.
func (p *RParams) UCL(nobs []int) ([]float64, error) {
	se, err := p.SE(nobs)
	if err != nil {
		return nil, err
	}
	for i := range se {
		se[i] = p.centre + p.nsigma*se[i]
	}
	return se, nil
}
