package spc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEwmaStatistic(t *testing.T) {
	p, err := NewEwmaParams(10, 2, 0.3, 3)
	require.NoError(t, err)
	assert.Equal(t, 10.0, p.Target())

	s, err := NewSamples([][]float64{
		{11, 11, 11, 11},
		{9, 9, 9, 9},
		{10.5, 10.5, 10.5, 10.5},
		{12, 12, 12, 12},
	})
	require.NoError(t, err)

	cs, err := p.Statistic(s)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{10.3, 9.91, 10.087, 10.6609}, cs.Stat(), 1e-12)
}

func TestEwmaTransientLimits(t *testing.T) {
	p, err := NewEwmaParams(10, 2, 0.3, 3)
	require.NoError(t, err)

	nobs := []int{4, 4, 4, 4}
	lcl, err := p.LCL(nobs)
	require.NoError(t, err)
	ucl, err := p.UCL(nobs)
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{9.1, 8.901409994583966, 8.816200608211002, 8.776612616543721}, lcl, 1e-12)
	assert.InDeltaSlice(t, []float64{10.9, 11.098590005416034, 11.183799391788998, 11.223387383456279}, ucl, 1e-12)
}

func TestEwmaSteadyStateLimits(t *testing.T) {
	p, err := NewEwmaParams(10, 2, 0.3, 3, WithSteadyState())
	require.NoError(t, err)

	ucl, err := p.UCL([]int{4, 4, 4})
	require.NoError(t, err)
	want := 10 + 3*1*math.Sqrt(0.3/1.7)
	for _, u := range ucl {
		assert.InDelta(t, want, u, 1e-12)
	}
}

// The transient standard error starts below the steady-state value and
// increases monotonically toward it.
func TestEwmaTransientApproachesSteadyState(t *testing.T) {
	transient, err := NewEwmaParams(10, 2, 0.2, 3)
	require.NoError(t, err)
	steady, err := NewEwmaParams(10, 2, 0.2, 3, WithSteadyState())
	require.NoError(t, err)

	const points = 200
	nobs := make([]int, points)
	for i := range nobs {
		nobs[i] = 5
	}
	ut, err := transient.UCL(nobs)
	require.NoError(t, err)
	us, err := steady.UCL(nobs)
	require.NoError(t, err)

	assert.Less(t, ut[0], us[0])
	for i := 1; i < points; i++ {
		assert.Greater(t, ut[i], ut[i-1])
		assert.Less(t, ut[i], us[i])
	}
	assert.InDelta(t, us[points-1], ut[points-1], 1e-9)
}

func TestEwmaUnequalSubgroupSizes(t *testing.T) {
	p, err := NewEwmaParams(10, 2, 0.3, 3)
	require.NoError(t, err)

	ucl, err := p.UCL([]int{4, 16})
	require.NoError(t, err)
	// the second point has both a smaller standard error and a wider
	// variance-ramp multiplier
	assert.InDelta(t, 10+3*(2.0/4.0)*p.multiplier(1), ucl[1], 1e-12)
}

func TestEwmaFromData(t *testing.T) {
	p, err := EwmaFromData(referenceSamples(t), 0.2, 3)
	require.NoError(t, err)
	assert.InDelta(t, 10.05, p.Mu0(), 1e-12)
	assert.InDelta(t, 0.21145085795616575, p.Sigma(), 1e-12)
	assert.Equal(t, 0.2, p.Lambda())
}
