package monitor

import (
	"github.com/nklsxn/mqr/pkg/eventbus"
	"github.com/nklsxn/mqr/pkg/spc"
)

const (
	// ChartFit is dispatched when a chart finishes its baseline and fits
	// its parameters
	ChartFit = eventbus.EventType("chart_fit")
	// AlarmRaised is dispatched when a rule flags the newest point
	AlarmRaised = eventbus.EventType("alarm_raised")
)

// FitEvent is the payload of a ChartFit event
type FitEvent struct {
	Chart  string
	Params spc.ControlParams
}

// AlarmEvent is the payload of an AlarmRaised event.  Groups holds the
// contiguous out-of-control spans of the statistic at the time the alarm
// fired.
type AlarmEvent struct {
	Chart  string
	Groups [][]int
}
