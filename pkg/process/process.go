package process

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"
)

// Specification holds the design target and tolerance band of one KPI
type Specification struct {
	Target float64
	LSL    float64
	USL    float64
}

// NewSpecification validates that the tolerance band is non-degenerate
func NewSpecification(target, lsl, usl float64) (Specification, error) {
	if usl <= lsl {
		return Specification{}, fmt.Errorf("upper spec limit %g must exceed lower spec limit %g", usl, lsl)
	}
	return Specification{Target: target, LSL: lsl, USL: usl}, nil
}

// Capability rates a sample against its specification.  Cp is the process
// potential were it centred on target, Cpk the realised capability, and
// the defect rates are the out-of-spec probability of a normal fitted to
// the sample.  The long-term rate inflates the fitted stddev by the
// conventional factor 1.5.
type Capability struct {
	Cp        float64
	Cpk       float64
	DefectsST float64
	DefectsLT float64
}

// NewCapability computes the capability of a sample against spec.
func NewCapability(sample *Sample, spec Specification) Capability {
	st := distuv.Normal{Mu: sample.Mean, Sigma: sample.Std}
	lt := distuv.Normal{Mu: sample.Mean, Sigma: 1.5 * sample.Std}

	cpk := (spec.USL - sample.Mean) / (3 * sample.Std)
	if other := (sample.Mean - spec.LSL) / (3 * sample.Std); other < cpk {
		cpk = other
	}
	return Capability{
		Cp:        (spec.USL - spec.LSL) / (6 * sample.Std),
		Cpk:       cpk,
		DefectsST: 1 - (st.CDF(spec.USL) - st.CDF(spec.LSL)),
		DefectsLT: 1 - (lt.CDF(spec.USL) - lt.CDF(spec.LSL)),
	}
}

// Process ties a study to per-KPI specifications and rates every sample
type Process struct {
	Study          *Study
	Specifications map[string]Specification
	Capabilities   map[string]Capability
}

// NewProcess computes the capability of every sample in the study.  Every
// sample must have a specification; extra specifications are allowed.
func NewProcess(study *Study, specs map[string]Specification) (*Process, error) {
	for kpi := range study.Samples {
		if _, ok := specs[kpi]; !ok {
			return nil, fmt.Errorf("sample %s has no specification", kpi)
		}
	}
	caps := make(map[string]Capability, len(study.Samples))
	for kpi, sample := range study.Samples {
		caps[kpi] = NewCapability(sample, specs[kpi])
	}
	return &Process{
		Study:          study,
		Specifications: specs,
		Capabilities:   caps,
	}, nil
}
