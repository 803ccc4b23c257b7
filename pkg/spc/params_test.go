package spc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nklsxn/mqr/pkg/bias"
)

// reference batch: 4 balanced subgroups of 3 observations
func referenceSamples(t *testing.T) *Samples {
	t.Helper()
	s, err := NewSamples([][]float64{
		{10.2, 9.8, 10.1},
		{9.9, 10.4, 10.0},
		{10.3, 9.7, 10.2},
		{10.0, 10.1, 9.9},
	})
	require.NoError(t, err)
	return s
}

func TestNewSamplesValidation(t *testing.T) {
	_, err := NewSamples(nil)
	assert.Error(t, err)

	_, err = NewSamples([][]float64{{1, 2}, {math.NaN(), math.NaN()}})
	assert.Error(t, err)
}

func TestSamplesRowStatistics(t *testing.T) {
	s := referenceSamples(t)
	assert.Equal(t, []int{3, 3, 3, 3}, s.Nobs())
	assert.InDeltaSlice(t, []float64{10.033333333333333, 10.1, 10.066666666666666, 10.0}, s.Means(), 1e-12)
	assert.InDeltaSlice(t, []float64{0.4, 0.5, 0.6, 0.2}, s.Ranges(), 1e-12)
}

func TestSamplesMissingObservations(t *testing.T) {
	s, err := NewSamples([][]float64{
		{10.2, 9.8, 10.1},
		{9.9, math.NaN(), 10.0},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, s.Nobs())
	assert.InDelta(t, 9.95, s.Means()[1], 1e-12)

	// unbalanced batches cannot be used for parameter estimation
	_, err = XBarFromData(s, EstimateSBar, 3)
	assert.Error(t, err)
	_, err = EwmaFromData(s, 0.2, 3)
	assert.Error(t, err)
}

func TestControlStatisticShape(t *testing.T) {
	_, err := NewControlStatistic([]float64{1, 2}, []int{3})
	assert.Error(t, err)

	cs, err := NewControlStatistic([]float64{1, 2}, []int{3, 3})
	require.NoError(t, err)
	assert.Equal(t, 2, cs.Len())
}

func TestXBarLimits(t *testing.T) {
	p, err := NewXBarParams(10, 2, 3)
	require.NoError(t, err)

	assert.Equal(t, 10.0, p.Target())

	se, err := p.SE([]int{4})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, se[0], 1e-12)

	lcl, err := p.LCL([]int{4, 16})
	require.NoError(t, err)
	ucl, err := p.UCL([]int{4, 16})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{7, 8.5}, lcl, 1e-12)
	assert.InDeltaSlice(t, []float64{13, 11.5}, ucl, 1e-12)
}

func TestXBarStatistic(t *testing.T) {
	p, err := NewXBarParams(10, 2, 3)
	require.NoError(t, err)

	cs, err := p.Statistic(referenceSamples(t))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{10.033333333333333, 10.1, 10.066666666666666, 10.0}, cs.Stat(), 1e-12)
}

func TestXBarFactories(t *testing.T) {
	s := referenceSamples(t)

	p, err := XBarFromData(s, EstimateSBar, 3)
	require.NoError(t, err)
	assert.InDelta(t, 10.05, p.Centre(), 1e-12)
	assert.InDelta(t, 0.2522482478070372, p.Sigma(), 1e-12)

	p, err = XBarFromData(s, EstimateRBar, 3)
	require.NoError(t, err)
	assert.InDelta(t, 0.25109762887828146, p.Sigma(), 1e-12)

	_, err = XBarFromData(s, EstimateMethod("mad"), 3)
	assert.Error(t, err)
}

func TestFactoriesPropagateRangeErrors(t *testing.T) {
	_, err := XBarFromStddev(10, 1, 1, 3)
	assert.IsType(t, bias.RangeError{}, err)

	_, err = XBarFromRange(10, 1, 101, 3)
	assert.IsType(t, bias.RangeError{}, err)

	_, err = RFromRange(1, 200, 3)
	assert.IsType(t, bias.RangeError{}, err)

	r, err := NewRParams(1, 0.5, 3)
	require.NoError(t, err)
	_, err = r.SE([]int{150})
	assert.IsType(t, bias.RangeError{}, err)

	s, err := NewSParams(1, 3)
	require.NoError(t, err)
	_, err = s.UCL([]int{1})
	assert.IsType(t, bias.RangeError{}, err)
}

func TestParamValidation(t *testing.T) {
	_, err := NewXBarParams(10, -1, 3)
	assert.Error(t, err)
	_, err = NewXBarParams(10, 1, 0)
	assert.Error(t, err)
	_, err = NewEwmaParams(10, 1, 0, 3)
	assert.Error(t, err)
	_, err = NewEwmaParams(10, 1, 1.2, 3)
	assert.Error(t, err)
	_, err = NewEwmaParams(10, 1, 0.2, -1)
	assert.Error(t, err)
}

func TestRChart(t *testing.T) {
	p, err := RFromData(referenceSamples(t), 3)
	require.NoError(t, err)
	assert.InDelta(t, 0.425, p.Centre(), 1e-12)
	assert.InDelta(t, 0.25109762887828146, p.Sigma(), 1e-12)
	assert.Equal(t, p.Centre(), p.Target())

	se, err := p.SE([]int{3})
	require.NoError(t, err)
	assert.InDelta(t, 0.22306709938707864, se[0], 1e-12)

	// 3-sigma lower limit would be negative, so it clamps at zero
	lcl, err := p.LCL([]int{3})
	require.NoError(t, err)
	assert.Equal(t, 0.0, lcl[0])

	ucl, err := p.UCL([]int{3})
	require.NoError(t, err)
	assert.InDelta(t, 0.425+3*0.22306709938707864, ucl[0], 1e-12)
}

func TestSChart(t *testing.T) {
	p, err := SFromData(referenceSamples(t), 3)
	require.NoError(t, err)
	assert.InDelta(t, 0.22354918910487592, p.Centre(), 1e-12)

	se, err := p.SE([]int{3})
	require.NoError(t, err)
	assert.InDelta(t, 0.11685434768237281, se[0], 1e-12)

	lcl, err := p.LCL([]int{3})
	require.NoError(t, err)
	assert.Equal(t, 0.0, lcl[0])
}

func TestRSLowerLimitNeverNegative(t *testing.T) {
	tt := []struct {
		name   string
		centre float64
		sigma  float64
		nsigma float64
	}{
		{name: "wide", centre: 1, sigma: 10, nsigma: 3},
		{name: "tight", centre: 5, sigma: 0.1, nsigma: 50},
		{name: "typical", centre: 2.3, sigma: 1, nsigma: 3},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			r, err := NewRParams(tc.centre, tc.sigma, tc.nsigma)
			require.NoError(t, err)
			s, err := NewSParams(tc.centre, tc.nsigma)
			require.NoError(t, err)
			for n := 2; n <= 100; n++ {
				rl, err := r.LCL([]int{n})
				require.NoError(t, err)
				assert.GreaterOrEqual(t, rl[0], 0.0)

				sl, err := s.LCL([]int{n})
				require.NoError(t, err)
				assert.GreaterOrEqual(t, sl[0], 0.0)
			}
		})
	}
}
