package spc

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/nklsxn/mqr/pkg/bias"
)

var _ ShewhartParams = &SParams{}

// SParams is an S chart: the plotted statistic is the subgroup sample
// standard deviation.  The centre line doubles as the basis of the sigma
// estimate in the standard-error formula.
type SParams struct {
	centre float64
	nsigma float64
}

// NewSParams constructs an S chart with the given expected subgroup
// standard deviation and control-limit width.
func NewSParams(centre, nsigma float64) (*SParams, error) {
	if err := validateSigma(centre); err != nil {
		return nil, err
	}
	if err := validateNSigma(nsigma); err != nil {
		return nil, err
	}
	return &SParams{centre: centre, nsigma: nsigma}, nil
}

// SFromData estimates S chart parameters from a balanced reference batch:
// the centre is the mean subgroup standard deviation.
func SFromData(s *Samples, nsigma float64) (*SParams, error) {
	if _, err := s.balanced(); err != nil {
		return nil, err
	}
	return NewSParams(stat.Mean(s.Stddevs(), nil), nsigma)
}

// Centre returns the expected subgroup standard deviation.
func (p *SParams) Centre() float64 { return p.centre }

// Statistic computes the subgroup sample standard deviations.
func (p *SParams) Statistic(s *Samples) (*ControlStatistic, error) {
	return NewControlStatistic(s.Stddevs(), s.Nobs())
}

// SE computes the standard error of the subgroup standard deviation,
// centre·√(1−c4(n)²)/c4(n).
func (p *SParams) SE(nobs []int) ([]float64, error) {
	out := make([]float64, len(nobs))
	for i, n := range nobs {
		c4, err := bias.C4(n)
		if err != nil {
			return nil, err
		}
		out[i] = p.centre * math.Sqrt(1-c4*c4) / c4
	}
	return out, nil
}

// Target returns the expected subgroup standard deviation.
func (p *SParams) Target() float64 {
	return p.centre
}

// LCL computes the lower control limits for subgroups with sizes in nobs,
// clamped at zero since a standard deviation cannot be negative.
func (p *SParams) LCL(nobs []int) ([]float64, error) {
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
func (p *SParams) UCL(nobs []int) ([]float64, error) {
	se, err := p.SE(nobs)
	if err != nil {
		return nil, err
	}
	for i := range se {
		se[i] = p.centre + p.nsigma*se[i]
	}
	return se, nil
}
