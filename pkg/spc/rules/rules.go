// Package rules implements out-of-control signal detection for control
// charts.  Each rule is a pure function over a control statistic and its
// chart parameters, producing a boolean alarm series aligned to the
// statistic; rules compose point-wise with boolean combinators.
package rules

import (
	"fmt"

	"github.com/nklsxn/mqr/pkg/spc"
)

// Alarms is a boolean series aligned to a control statistic's index, true
// at points flagged by a rule.
type Alarms []bool

// Rule evaluates a control statistic against chart parameters.
type Rule func(cs *spc.ControlStatistic, params spc.ControlParams) (Alarms, error)

// Limits flags points at or beyond the chart's control limits.  A chart
// without one of the limits, such as the MEWMA lower limit, never triggers
// on that side.
func Limits(cs *spc.ControlStatistic, params spc.ControlParams) (Alarms, error) {
	nobs := cs.Nobs()
	lcl, err := params.LCL(nobs)
	if err != nil {
		return nil, err
	}
	ucl, err := params.UCL(nobs)
	if err != nil {
		return nil, err
	}

	alarms := make(Alarms, cs.Len())
	for i := range alarms {
		if ucl != nil && cs.At(i) >= ucl[i] {
			alarms[i] = true
		}
		if lcl != nil && cs.At(i) <= lcl[i] {
			alarms[i] = true
		}
	}
	return alarms, nil
}

// AOfBNSigma builds a rule that flags a point when at least a of the last b
// consecutive points lie beyond target ± n standard errors on the same
// side.  The rule needs the statistic's standard error, so it applies only
// to Shewhart-family charts.
func AOfBNSigma(a, b int, n float64) (Rule, error) {
	if a > b {
		return nil, fmt.Errorf("cannot detect more than b of b signals (was passed %d of %d)", a, b)
	}
	if a < 1 {
		return nil, fmt.Errorf("a must be at least 1, got %d", a)
	}
	return func(cs *spc.ControlStatistic, params spc.ControlParams) (Alarms, error) {
		shewhart, ok := params.(spc.ShewhartParams)
		if !ok {
			return nil, fmt.Errorf("rule requires a Shewhart-family chart with a standard error")
		}
		se, err := shewhart.SE(cs.Nobs())
		if err != nil {
			return nil, err
		}
		target := params.Target()

		alarms := make(Alarms, cs.Len())
		// two independent sliding windows of width b, one per side
		above, below := 0, 0
		aboveFlags := make([]bool, cs.Len())
		belowFlags := make([]bool, cs.Len())
		for i := 0; i < cs.Len(); i++ {
			aboveFlags[i] = cs.At(i) >= target+n*se[i]
			belowFlags[i] = cs.At(i) <= target-n*se[i]
			if aboveFlags[i] {
				above++
			}
			if belowFlags[i] {
				below++
			}
			if i >= b {
				if aboveFlags[i-b] {
					above--
				}
				if belowFlags[i-b] {
					below--
				}
			}
			alarms[i] = above >= a || below >= a
		}
		return alarms, nil
	}, nil
}

// NOneSide builds a rule that flags a point when n consecutive points fall
// on the same side of the target.  Points exactly on target count as their
// own side.
func NOneSide(n int) Rule {
	return func(cs *spc.ControlStatistic, params spc.ControlParams) (Alarms, error) {
		if n < 1 {
			return nil, fmt.Errorf("run length n must be at least 1, got %d", n)
		}
		target := params.Target()

		alarms := make(Alarms, cs.Len())
		run := 0
		prev := 0
		for i := 0; i < cs.Len(); i++ {
			s := sign(cs.At(i) - target)
			if i > 0 && s == prev {
				run++
			} else {
				run = 1
			}
			prev = s
			alarms[i] = run >= n
		}
		return alarms, nil
	}
}

// NTrending builds a rule that flags a point when n consecutive points are
// monotonically trending, i.e. all n−1 consecutive first differences share
// the same sign.
func NTrending(n int) Rule {
	return func(cs *spc.ControlStatistic, params spc.ControlParams) (Alarms, error) {
		if n < 2 {
			return nil, fmt.Errorf("trend length n must be at least 2, got %d", n)
		}

		alarms := make(Alarms, cs.Len())
		run := 0
		prev := 0
		for i := 1; i < cs.Len(); i++ {
			s := sign(cs.At(i) - cs.At(i-1))
			if i > 1 && s == prev {
				run++
			} else {
				run = 1
			}
			prev = s
			alarms[i] = run >= n-1
		}
		return alarms, nil
	}
}

// Combiner reduces two aligned alarm points to one.
type Combiner func(a, b bool) bool

// Or fires when either rule fires.
func Or(a, b bool) bool { return a || b }

// And fires only when both rules fire.
func And(a, b bool) bool { return a && b }

// Combine builds a composite rule that reduces the alarm series of every
// sub-rule point-wise with op.
func Combine(op Combiner, rules ...Rule) Rule {
	return func(cs *spc.ControlStatistic, params spc.ControlParams) (Alarms, error) {
		if len(rules) == 0 {
			return nil, fmt.Errorf("combine requires at least one rule")
		}
		acc, err := rules[0](cs, params)
		if err != nil {
			return nil, err
		}
		for _, rule := range rules[1:] {
			next, err := rule(cs, params)
			if err != nil {
				return nil, err
			}
			for i := range acc {
				acc[i] = op(acc[i], next[i])
			}
		}
		return acc, nil
	}
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
