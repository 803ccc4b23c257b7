package monitor

import "github.com/nklsxn/mqr/pkg/fsm"

const (
	// Baseline collects reference subgroups until the chart can be fitted
	Baseline = fsm.State("baseline")
	// Testing evaluates alarm rules against each new subgroup
	Testing = fsm.State("testing")
	// Alarmed latches after a rule fires until manually transitioned
	Alarmed = fsm.State("alarmed")
)

func newMachine(initial fsm.State) (*fsm.Machine, error) {
	return fsm.NewMachine(initial, fsm.WithTransitions(
		fsm.T(Baseline, Testing),
		fsm.T(Testing, Alarmed, Baseline),
		fsm.T(Alarmed, Testing, Baseline),
	))
}
