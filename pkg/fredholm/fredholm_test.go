package fredholm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/integrate/quad"
)

func legendre(n int, min, max float64) ([]float64, []float64) {
	x := make([]float64, n)
	w := make([]float64, n)
	quad.Legendre{}.FixedLocations(x, w, min, max)
	return x, w
}

func TestZeroKernelReducesToG(t *testing.T) {
	zero := func(t, s float64) float64 { return 0 }
	g := func(t float64) float64 { return 5 }
	x, w := legendre(10, 0, 1)

	for _, t0 := range []float64{0, 0.25, 0.5, 2.0} {
		f, err := Solve(t0, zero, g, 0.7, x, w)
		assert.NoError(t, err)
		assert.InDelta(t, 5.0, f, 1e-12)
	}
}

// A degenerate kernel K(t,s) = 1 on [0,1] with g(t) = 1 has the closed-form
// solution f(t) = 1/(1-λ) for λ != 1.
func TestDegenerateKernel(t *testing.T) {
	tt := []struct {
		name   string
		lambda float64
	}{
		{name: "small", lambda: 0.25},
		{name: "moderate", lambda: 0.5},
		{name: "negative", lambda: -1.5},
	}
	one := func(t, s float64) float64 { return 1 }
	g := func(t float64) float64 { return 1 }
	x, w := legendre(20, 0, 1)

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			f, err := Solve(0.5, one, g, tc.lambda, x, w)
			assert.NoError(t, err)
			assert.InDelta(t, 1/(1-tc.lambda), f, 1e-10)
		})
	}
}

func TestMismatchedGrid(t *testing.T) {
	zero := func(t, s float64) float64 { return 0 }
	g := func(t float64) float64 { return 1 }

	_, err := Solve(0, zero, g, 1, []float64{0, 1}, []float64{1})
	assert.Error(t, err)

	_, err = Solve(0, zero, g, 1, nil, nil)
	assert.Error(t, err)
}

// With K = 1, a single node at weight 1 and λ = 1, the discretized system
// (I - λA) is exactly zero and must surface as a failed solve.
func TestSingularSystem(t *testing.T) {
	one := func(t, s float64) float64 { return 1 }
	g := func(t float64) float64 { return 1 }

	_, err := Solve(0, one, g, 1, []float64{0.5}, []float64{1})
	assert.Error(t, err)
}
