package spc

import "fmt"

// ControlStatistic is the time-ordered series of a chart statistic together
// with the number of observations behind each point.  The index is implicit
// run order.  A ControlStatistic is a pure computation result: immutable
// once built, with no identity beyond its values.
type ControlStatistic struct {
	stat []float64
	nobs []int
}

// NewControlStatistic copies the statistic values and per-point observation
// counts.  The two series must be the same length.
func NewControlStatistic(stat []float64, nobs []int) (*ControlStatistic, error) {
	if len(stat) != len(nobs) {
		return nil, fmt.Errorf("stat and nobs must be the same length: %d != %d", len(stat), len(nobs))
	}
	return &ControlStatistic{
		stat: append([]float64(nil), stat...),
		nobs: append([]int(nil), nobs...),
	}, nil
}

// Len returns the number of points in the series.
func (c *ControlStatistic) Len() int {
	return len(c.stat)
}

// At returns the statistic value at position i.
func (c *ControlStatistic) At(i int) float64 {
	return c.stat[i]
}

// NobsAt returns the observation count at position i.
func (c *ControlStatistic) NobsAt(i int) int {
	return c.nobs[i]
}

// Stat returns a copy of the statistic values in run order.
func (c *ControlStatistic) Stat() []float64 {
	return append([]float64(nil), c.stat...)
}

// Nobs returns a copy of the per-point observation counts.
func (c *ControlStatistic) Nobs() []int {
	return append([]int(nil), c.nobs...)
}
