// Package process summarises measured process data and rates its
// capability against engineering specifications.
package process

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Sample holds the descriptive statistics of one KPI's measurements.
// Skewness and kurtosis are the population moment ratios and kurtosis is
// reported as excess over the normal distribution.  Quartiles use linear
// interpolation between order statistics.
type Sample struct {
	Name string
	N    int

	Mean     float64
	SEM      float64
	Std      float64
	Var      float64
	Skewness float64
	Kurtosis float64

	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
	IQR    float64

	// Outliers are the observations beyond 1.5 IQR of the nearer quartile,
	// those below first
	Outliers []float64

	// ADStat and ADPValue are the Anderson-Darling normality statistic and
	// its p-value
	ADStat   float64
	ADPValue float64
}

// minSampleSize is the smallest sample for which the Anderson-Darling
// p-value approximation holds
const minSampleSize = 8

// NewSample summarises one KPI's measurements.
func NewSample(name string, data []float64) (*Sample, error) {
	n := len(data)
	if n < minSampleSize {
		return nil, fmt.Errorf("sample %s needs at least %d observations, got %d", name, minSampleSize, n)
	}
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("sample %s observation %d is not finite", name, i)
		}
	}

	sorted := append([]float64(nil), data...)
	sort.Float64s(sorted)

	mean := stat.Mean(data, nil)
	variance := stat.Variance(data, nil)
	std := math.Sqrt(variance)
	if std == 0 {
		return nil, fmt.Errorf("sample %s has zero variance", name)
	}

	s := &Sample{
		Name:     name,
		N:        n,
		Mean:     mean,
		SEM:      std / math.Sqrt(float64(n)),
		Std:      std,
		Var:      variance,
		Skewness: momentRatio(data, mean, 3),
		Kurtosis: momentRatio(data, mean, 4) - 3,
		Min:      sorted[0],
		Q1:       quantile(sorted, 0.25),
		Median:   quantile(sorted, 0.5),
		Q3:       quantile(sorted, 0.75),
		Max:      sorted[n-1],
	}
	s.IQR = s.Q3 - s.Q1

	lo := s.Q1 - 1.5*s.IQR
	hi := s.Q3 + 1.5*s.IQR
	for _, v := range data {
		if v < lo {
			s.Outliers = append(s.Outliers, v)
		}
	}
	for _, v := range data {
		if v > hi {
			s.Outliers = append(s.Outliers, v)
		}
	}

	s.ADStat, s.ADPValue = andersonDarling(sorted, mean, std)
	return s, nil
}

// Study is a named collection of per-KPI samples summarised at a shared
// confidence level.
type Study struct {
	Name    string
	Conf    float64
	Samples map[string]*Sample
}

// NewStudy summarises every KPI in data.
func NewStudy(name string, data map[string][]float64, conf float64) (*Study, error) {
	if conf <= 0 || conf >= 1 {
		return nil, fmt.Errorf("confidence level must be in (0, 1), got %g", conf)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("study %s has no measurements", name)
	}
	samples := make(map[string]*Sample, len(data))
	for kpi, vals := range data {
		s, err := NewSample(kpi, vals)
		if err != nil {
			return nil, err
		}
		samples[kpi] = s
	}
	return &Study{Name: name, Conf: conf, Samples: samples}, nil
}

// momentRatio computes the k-th standardized population moment
// m_k / m_2^(k/2)
func momentRatio(data []float64, mean float64, k int) float64 {
	var m2, mk float64
	for _, v := range data {
		d := v - mean
		m2 += d * d
		mk += math.Pow(d, float64(k))
	}
	n := float64(len(data))
	m2 /= n
	mk /= n
	return mk / math.Pow(m2, float64(k)/2)
}

// quantile linearly interpolates order statistics of sorted data at
// probability q
func quantile(sorted []float64, q float64) float64 {
	h := q * float64(len(sorted)-1)
	lo := int(math.Floor(h))
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// andersonDarling computes the A² normality statistic against the fitted
// normal and its p-value from the small-sample adjusted statistic
// A²(1 + 0.75/n + 2.25/n²).
func andersonDarling(sorted []float64, mean, std float64) (float64, float64) {
	n := len(sorted)
	fn := float64(n)

	a2 := -fn
	for i := 0; i < n; i++ {
		zi := distuv.UnitNormal.CDF((sorted[i] - mean) / std)
		zrev := distuv.UnitNormal.CDF((sorted[n-1-i] - mean) / std)
		a2 -= (2*float64(i+1) - 1) / fn * (math.Log(zi) + math.Log(1-zrev))
	}

	z := a2 * (1 + 0.75/fn + 2.25/(fn*fn))
	var p float64
	switch {
	case z < 0.2:
		p = 1 - math.Exp(-13.436+101.14*z-223.73*z*z)
	case z < 0.34:
		p = 1 - math.Exp(-8.318+42.796*z-59.938*z*z)
	case z < 0.6:
		p = math.Exp(0.9177 - 4.279*z - 1.38*z*z)
	default:
		p = math.Exp(1.2937 - 5.709*z + 0.0186*z*z)
	}
	return a2, p
}
