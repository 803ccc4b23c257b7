package dist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestProb(t *testing.T) {
	tt := []struct {
		name   string
		x      float64
		k      float64
		lambda float64
		pdf    float64
	}{
		{name: "k2 lambda3", x: 4.0, k: 2, lambda: 3, pdf: 0.10809148167046621},
		{name: "k5 lambda0.8", x: 1.5, k: 5, lambda: 0.8, pdf: 0.08704411839191833},
		{name: "central", x: 4.0, k: 2, lambda: 0, pdf: 0.06766764161830634},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			d := NoncentralChiSquared{K: tc.k, Lambda: tc.lambda}
			assert.InDelta(t, tc.pdf, d.Prob(tc.x), 1e-12)
		})
	}
}

func TestZeroLambdaReducesToCentral(t *testing.T) {
	d := NoncentralChiSquared{K: 4, Lambda: 0}
	central := distuv.ChiSquared{K: 4}
	for x := 0.1; x < 20; x += 0.7 {
		assert.InDelta(t, central.Prob(x), d.Prob(x), 1e-15)
	}
}

func TestDensityNormalizes(t *testing.T) {
	tt := []struct {
		k      float64
		lambda float64
	}{
		{k: 2, lambda: 3},
		{k: 5, lambda: 0.8},
		{k: 3, lambda: 40},
	}
	for _, tc := range tt {
		d := NoncentralChiSquared{K: tc.k, Lambda: tc.lambda}
		total := quad.Fixed(d.Prob, 0, 300, 500, quad.Legendre{}, 0)
		mean := quad.Fixed(func(x float64) float64 { return x * d.Prob(x) }, 0, 300, 500, quad.Legendre{}, 0)
		assert.InDelta(t, 1.0, total, 1e-8)
		assert.InDelta(t, d.Mean(), mean, 1e-6)
	}
}

func TestNonpositiveSupport(t *testing.T) {
	d := NoncentralChiSquared{K: 3, Lambda: 2}
	assert.Equal(t, 0.0, d.Prob(0))
	assert.Equal(t, 0.0, d.Prob(-1))
}
