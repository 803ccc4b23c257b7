package monitor

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/nklsxn/mqr/pkg/spc"
)

// accumulator folds one subgroup at a time into the chart statistic,
// carrying whatever state the variant needs between calls.  It mirrors
// the batch Statistic computation of the corresponding params point for
// point.
type accumulator interface {
	push(row []float64) (value float64, nobs int, err error)
}

func newAccumulator(params spc.ControlParams) (accumulator, error) {
	switch p := params.(type) {
	case *spc.XBarParams:
		return rowStat(func(vals []float64) float64 {
			return stat.Mean(vals, nil)
		}), nil
	case *spc.RParams:
		return rowStat(func(vals []float64) float64 {
			return floats.Max(vals) - floats.Min(vals)
		}), nil
	case *spc.SParams:
		return rowStat(func(vals []float64) float64 {
			return stat.StdDev(vals, nil)
		}), nil
	case *spc.EwmaParams:
		return &ewmaAccumulator{z: p.Mu0(), lambda: p.Lambda()}, nil
	case *spc.MewmaParams:
		return &mewmaAccumulator{stepper: p.Stepper()}, nil
	default:
		return nil, fmt.Errorf("no accumulator for chart type %T", params)
	}
}

// rowStat computes a per-subgroup statistic with no memory between
// subgroups (the Shewhart family)
type rowStat func(vals []float64) float64

func (f rowStat) push(row []float64) (float64, int, error) {
	vals := finiteValues(row)
	if len(vals) == 0 {
		return 0, 0, fmt.Errorf("subgroup has no valid observations")
	}
	return f(vals), len(vals), nil
}

type ewmaAccumulator struct {
	z      float64
	lambda float64
}

func (a *ewmaAccumulator) push(row []float64) (float64, int, error) {
	vals := finiteValues(row)
	if len(vals) == 0 {
		return 0, 0, fmt.Errorf("subgroup has no valid observations")
	}
	a.z = a.lambda*stat.Mean(vals, nil) + (1-a.lambda)*a.z
	return a.z, len(vals), nil
}

type mewmaAccumulator struct {
	stepper *spc.MewmaStepper
}

func (a *mewmaAccumulator) push(row []float64) (float64, int, error) {
	t2, err := a.stepper.Step(row)
	if err != nil {
		return 0, 0, err
	}
	return t2, len(row), nil
}

func finiteValues(row []float64) []float64 {
	out := make([]float64, 0, len(row))
	for _, v := range row {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}
	return out
}
