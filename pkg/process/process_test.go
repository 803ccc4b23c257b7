package process

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fill volumes from a short reference run
var fillVolumes = []float64{14.8, 15.2, 14.9, 15.1, 15.0, 15.3, 14.7, 15.05, 14.95, 15.1}

func TestNewSample(t *testing.T) {
	s, err := NewSample("fill_volume", fillVolumes)
	require.NoError(t, err)

	assert.Equal(t, "fill_volume", s.Name)
	assert.Equal(t, 10, s.N)
	assert.InDelta(t, 15.01, s.Mean, 1e-12)
	assert.InDelta(t, 0.05715476066494085, s.SEM, 1e-12)
	assert.InDelta(t, 0.18073922282301288, s.Std, 1e-12)
	assert.InDelta(t, 0.0326666666666667, s.Var, 1e-12)
	assert.InDelta(t, -0.15532478689659734, s.Skewness, 1e-12)
	assert.InDelta(t, -0.7035957240038804, s.Kurtosis, 1e-12)
}

func TestSampleQuartiles(t *testing.T) {
	s, err := NewSample("fill_volume", fillVolumes)
	require.NoError(t, err)

	assert.InDelta(t, 14.7, s.Min, 1e-12)
	assert.InDelta(t, 14.9125, s.Q1, 1e-12)
	assert.InDelta(t, 15.025, s.Median, 1e-12)
	assert.InDelta(t, 15.1, s.Q3, 1e-12)
	assert.InDelta(t, 15.3, s.Max, 1e-12)
	assert.InDelta(t, 0.1875, s.IQR, 1e-12)
	assert.Len(t, s.Outliers, 0)
}

func TestSampleOutliers(t *testing.T) {
	data := append([]float64(nil), fillVolumes...)
	data = append(data, 17.0, 12.0)
	s, err := NewSample("fill_volume", data)
	require.NoError(t, err)

	// below-quartile outliers come first
	require.Len(t, s.Outliers, 2)
	assert.Equal(t, 12.0, s.Outliers[0])
	assert.Equal(t, 17.0, s.Outliers[1])
}

func TestSampleNormality(t *testing.T) {
	s, err := NewSample("fill_volume", fillVolumes)
	require.NoError(t, err)

	assert.InDelta(t, 0.1223723325066266, s.ADStat, 1e-12)
	assert.InDelta(t, 0.9795148021765425, s.ADPValue, 1e-12)
}

func TestSampleValidation(t *testing.T) {
	_, err := NewSample("too_small", []float64{1, 2, 3})
	assert.Error(t, err)

	bad := append([]float64(nil), fillVolumes...)
	bad[3] = math.NaN()
	_, err = NewSample("not_finite", bad)
	assert.Error(t, err)

	_, err = NewSample("constant", []float64{5, 5, 5, 5, 5, 5, 5, 5})
	assert.Error(t, err)
}

func TestNewStudy(t *testing.T) {
	study, err := NewStudy("line trial", map[string][]float64{
		"fill_volume": fillVolumes,
	}, 0.95)
	require.NoError(t, err)
	assert.Equal(t, 0.95, study.Conf)
	require.Contains(t, study.Samples, "fill_volume")
	assert.Equal(t, 10, study.Samples["fill_volume"].N)

	_, err = NewStudy("bad conf", map[string][]float64{"x": fillVolumes}, 1.5)
	assert.Error(t, err)

	_, err = NewStudy("empty", map[string][]float64{}, 0.95)
	assert.Error(t, err)
}

func TestNewSpecification(t *testing.T) {
	spec, err := NewSpecification(15, 14.5, 15.5)
	require.NoError(t, err)
	assert.Equal(t, 15.0, spec.Target)

	_, err = NewSpecification(15, 15.5, 14.5)
	assert.Error(t, err)
	_, err = NewSpecification(15, 15.0, 15.0)
	assert.Error(t, err)
}

func TestCapability(t *testing.T) {
	s, err := NewSample("fill_volume", fillVolumes)
	require.NoError(t, err)
	spec, err := NewSpecification(15, 14.5, 15.5)
	require.NoError(t, err)

	c := NewCapability(s, spec)
	assert.InDelta(t, 0.9221388919541464, c.Cp, 1e-12)
	assert.InDelta(t, 0.9036961141150639, c.Cpk, 1e-12)
	assert.InDelta(t, 0.005741294677263253, c.DefectsST, 1e-12)
	assert.InDelta(t, 0.06532542393021656, c.DefectsLT, 1e-12)
}

func TestNewProcess(t *testing.T) {
	study, err := NewStudy("line trial", map[string][]float64{
		"fill_volume": fillVolumes,
	}, 0.95)
	require.NoError(t, err)
	spec, err := NewSpecification(15, 14.5, 15.5)
	require.NoError(t, err)

	p, err := NewProcess(study, map[string]Specification{"fill_volume": spec})
	require.NoError(t, err)
	require.Contains(t, p.Capabilities, "fill_volume")
	assert.InDelta(t, 0.9221388919541464, p.Capabilities["fill_volume"].Cp, 1e-12)

	// every sample needs a spec
	_, err = NewProcess(study, map[string]Specification{})
	assert.Error(t, err)
}
