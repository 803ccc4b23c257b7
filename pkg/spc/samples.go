// Package spc implements control-chart parameter models for statistical
// process control: the Shewhart family (X-bar, R, S), the exponentially
// weighted moving average (EWMA), and the multivariate EWMA (MEWMA).  Each
// model computes a control statistic from time-ordered subgroups of raw
// observations and exposes its centre line and control limits as functions
// of subgroup size.
package spc

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Samples holds time-ordered subgroups of raw observations, one row per
// sampling period and one column per replicate observation.  Missing
// observations are marked NaN; rows may have unequal numbers of valid
// observations.  Samples are immutable after construction.
type Samples struct {
	rows [][]float64
}

// NewSamples validates and copies the subgroup rows.  Every row must hold
// at least one valid (finite) observation.
func NewSamples(rows [][]float64) (*Samples, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("samples must contain at least one subgroup")
	}
	cp := make([][]float64, len(rows))
	for i, row := range rows {
		if len(finite(row)) == 0 {
			return nil, fmt.Errorf("subgroup %d has no valid observations", i)
		}
		cp[i] = append([]float64(nil), row...)
	}
	return &Samples{rows: cp}, nil
}

// Len returns the number of subgroups.
func (s *Samples) Len() int {
	return len(s.rows)
}

// Row returns a copy of subgroup i including any missing observations.
func (s *Samples) Row(i int) []float64 {
	return append([]float64(nil), s.rows[i]...)
}

// Nobs returns the number of valid observations in each subgroup.
func (s *Samples) Nobs() []int {
	out := make([]int, len(s.rows))
	for i, row := range s.rows {
		out[i] = len(finite(row))
	}
	return out
}

// Means returns the mean of the valid observations in each subgroup.
func (s *Samples) Means() []float64 {
	out := make([]float64, len(s.rows))
	for i, row := range s.rows {
		out[i] = stat.Mean(finite(row), nil)
	}
	return out
}

// Ranges returns the range (max minus min) of the valid observations in
// each subgroup.
func (s *Samples) Ranges() []float64 {
	out := make([]float64, len(s.rows))
	for i, row := range s.rows {
		vals := finite(row)
		out[i] = floats.Max(vals) - floats.Min(vals)
	}
	return out
}

// Stddevs returns the sample standard deviation (n−1 denominator) of the
// valid observations in each subgroup.  A subgroup with a single valid
// observation yields NaN.
func (s *Samples) Stddevs() []float64 {
	out := make([]float64, len(s.rows))
	for i, row := range s.rows {
		out[i] = stat.StdDev(finite(row), nil)
	}
	return out
}

// values returns every valid observation in row order.
func (s *Samples) values() []float64 {
	var out []float64
	for _, row := range s.rows {
		out = append(out, finite(row)...)
	}
	return out
}

// balanced returns the common subgroup width, or an error when subgroups
// differ in width or contain missing observations.  Parameter estimation
// from reference data assumes a balanced, complete design.
func (s *Samples) balanced() (int, error) {
	width := len(s.rows[0])
	for i, row := range s.rows {
		if len(row) != width {
			return 0, fmt.Errorf("only balanced designs are supported: subgroup %d has %d observations, want %d", i, len(row), width)
		}
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return 0, fmt.Errorf("only balanced designs are supported: subgroup %d contains missing observations", i)
			}
		}
	}
	return width, nil
}

func finite(row []float64) []float64 {
	out := make([]float64, 0, len(row))
	for _, v := range row {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}
	return out
}
