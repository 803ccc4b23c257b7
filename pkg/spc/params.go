package spc

import "fmt"

// ControlParams is the capability contract shared by every chart variant.
// Params are a fitted model: constructed once, directly or through a
// From* factory, then used read-only to produce statistics and limits for
// any number of sample batches.
type ControlParams interface {
	// Statistic computes the chart statistic for a batch of subgroups.
	Statistic(s *Samples) (*ControlStatistic, error)
	// Target is the centre line of the chart.
	Target() float64
	// LCL computes the lower control limit for each subgroup size.  A nil
	// series means the chart has no lower limit.
	LCL(nobs []int) ([]float64, error)
	// UCL computes the upper control limit for each subgroup size.
	UCL(nobs []int) ([]float64, error)
}

// ShewhartParams is a ControlParams whose statistic has a standard error
// that is a function of subgroup size.  Zone rules such as a-of-b beyond
// n-sigma require this capability.
type ShewhartParams interface {
	ControlParams
	// SE computes the standard error of the plotted statistic for each
	// subgroup size.
	SE(nobs []int) ([]float64, error)
}

// EstimateMethod selects how a From-data factory estimates process sigma
// from a reference batch.
type EstimateMethod string

const (
	// EstimateSBar estimates sigma from the mean subgroup standard deviation.
	EstimateSBar EstimateMethod = "s_bar"
	// EstimateRBar estimates sigma from the mean subgroup range.
	EstimateRBar EstimateMethod = "r_bar"
)

func validateSigma(sigma float64) error {
	if sigma <= 0 {
		return fmt.Errorf("sigma must be positive, got %g", sigma)
	}
	return nil
}

func validateNSigma(nsigma float64) error {
	if nsigma <= 0 {
		return fmt.Errorf("nsigma must be positive, got %g", nsigma)
	}
	return nil
}

func validateLambda(lambda float64) error {
	if lambda <= 0 || lambda > 1 {
		return fmt.Errorf("lambda must be in (0, 1], got %g", lambda)
	}
	return nil
}
