// Package monitor evaluates control charts over streaming subgroups.  A
// chart collects baseline subgroups, fits its parameters (or starts from
// parameters given up front), then tests each new subgroup against its
// alarm rules, latching an alarmed state and dispatching events until it is
// manually transitioned back.
package monitor

import (
	"fmt"
	"sync"

	"github.com/nklsxn/mqr/pkg/eventbus"
	"github.com/nklsxn/mqr/pkg/fsm"
	"github.com/nklsxn/mqr/pkg/spc"
	"github.com/nklsxn/mqr/pkg/spc/rules"
)

// Fitter estimates chart parameters from a batch of baseline subgroups.
type Fitter func(s *spc.Samples) (spc.ControlParams, error)

// Chart is a single monitored control chart.  Record serializes access, so
// a chart may be shared across goroutines feeding one stream.
type Chart struct {
	mu       sync.Mutex
	name     Name
	params   spc.ControlParams
	fitter   Fitter
	baseline *Recorder
	rule     rules.Rule
	machine  *fsm.Machine
	bus      *eventbus.Bus
	acc      accumulator
	stat     []float64
	nobs     []int
}

// ChartOption configures a chart during construction
type ChartOption func(c *Chart) error

// WithParams starts the chart in the testing state with parameters known
// up front
func WithParams(params spc.ControlParams) ChartOption {
	return func(c *Chart) error {
		if c.fitter != nil {
			return fmt.Errorf("chart cannot have both fixed params and a fitter")
		}
		c.params = params
		return nil
	}
}

// WithFitter collects n baseline subgroups, then estimates the chart
// parameters from them before testing begins
func WithFitter(fit Fitter, n int) ChartOption {
	return func(c *Chart) error {
		if c.params != nil {
			return fmt.Errorf("chart cannot have both fixed params and a fitter")
		}
		rec, err := NewRecorder(n)
		if err != nil {
			return err
		}
		c.fitter = fit
		c.baseline = rec
		return nil
	}
}

// WithRules replaces the default beyond-limits rule with a composite of
// the given rules, any of which raises the alarm
func WithRules(rr ...rules.Rule) ChartOption {
	return func(c *Chart) error {
		if len(rr) == 0 {
			return fmt.Errorf("at least one rule is required")
		}
		c.rule = rules.Combine(rules.Or, rr...)
		return nil
	}
}

// WithBus dispatches fit and alarm events on the bus, on a topic named
// after the chart
func WithBus(bus *eventbus.Bus) ChartOption {
	return func(c *Chart) error {
		c.bus = bus
		return nil
	}
}

// NewChart creates a chart.  Either WithParams or WithFitter is required.
func NewChart(name Name, opts ...ChartOption) (*Chart, error) {
	c := &Chart{
		name: name,
		rule: rules.Limits,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("unable to create chart %s: %v", name, err)
		}
	}

	initial := Baseline
	if c.params != nil {
		initial = Testing
	} else if c.fitter == nil {
		return nil, fmt.Errorf("chart %s requires either params or a fitter", name)
	}
	machine, err := newMachine(initial)
	if err != nil {
		return nil, fmt.Errorf("failed to create chart FSM: %v", err)
	}
	c.machine = machine

	if c.params != nil {
		if c.acc, err = newAccumulator(c.params); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Name returns the chart name with metadata
func (c *Chart) Name() string {
	return c.name.String()
}

// State returns the current lifecycle state of the chart
func (c *Chart) State() fsm.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.machine.State()
}

// HasAlarmed returns true once a rule has flagged the newest point.  It
// continues to return true until the chart is manually transitioned.
func (c *Chart) HasAlarmed() bool {
	return c.State() == Alarmed
}

// Params returns the fitted or configured chart parameters, nil while the
// chart is still collecting its baseline
func (c *Chart) Params() spc.ControlParams {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.params
}

// Statistic returns a copy of the accumulated statistic series for the
// plotting or reporting collaborator.
func (c *Chart) Statistic() (*spc.ControlStatistic, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.stat) == 0 {
		return nil, fmt.Errorf("chart %s has no statistic yet", c.name)
	}
	return spc.NewControlStatistic(c.stat, c.nobs)
}

// Record adds one subgroup to the chart.  In the baseline state the
// subgroup is buffered, and once the buffer fills the chart fits its
// parameters, replays the baseline through the statistic and moves to
// testing.  In the testing state the subgroup extends the statistic and
// the alarm rules run over the series; a flag on the newest point latches
// the alarmed state.
func (c *Chart) Record(subgroup []float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.machine.State() {
	case Baseline:
		c.baseline.Record(subgroup)
		if c.baseline.Count() < c.baseline.Capacity() {
			return nil
		}
		if err := c.fit(); err != nil {
			return err
		}
		return c.evaluate()
	case Testing:
		if err := c.push(subgroup); err != nil {
			return err
		}
		return c.evaluate()
	default:
		// alarm already latched, keep the series current
		return c.push(subgroup)
	}
}

// Transition attempts to move the chart to the desired state.  Optionally
// discard the statistic and baseline so the chart collects fresh reference
// data before testing again.
func (c *Chart) Transition(state fsm.State, resetSeries bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if state == Baseline && c.fitter == nil {
		return fmt.Errorf("chart %s has fixed params and no baseline state", c.name)
	}
	if resetSeries {
		c.stat = nil
		c.nobs = nil
		if c.baseline != nil {
			c.baseline.Reset()
		}
		if c.params != nil {
			acc, err := newAccumulator(c.params)
			if err != nil {
				return err
			}
			c.acc = acc
		}
	}
	return c.machine.Transition(state)
}

func (c *Chart) fit() error {
	s, err := spc.NewSamples(c.baseline.Rows())
	if err != nil {
		return fmt.Errorf("chart %s baseline: %v", c.name, err)
	}
	params, err := c.fitter(s)
	if err != nil {
		return fmt.Errorf("chart %s fit: %v", c.name, err)
	}
	acc, err := newAccumulator(params)
	if err != nil {
		return err
	}
	c.params = params
	c.acc = acc
	if err := c.machine.Transition(Testing); err != nil {
		return err
	}
	c.dispatch(ChartFit, FitEvent{Chart: c.name.String(), Params: params})

	// replay the baseline through the fitted statistic
	for _, row := range c.baseline.Rows() {
		if err := c.push(row); err != nil {
			return err
		}
	}
	return nil
}

func (c *Chart) push(subgroup []float64) error {
	value, nobs, err := c.acc.push(subgroup)
	if err != nil {
		return fmt.Errorf("chart %s: %v", c.name, err)
	}
	c.stat = append(c.stat, value)
	c.nobs = append(c.nobs, nobs)
	return nil
}

func (c *Chart) evaluate() error {
	cs, err := spc.NewControlStatistic(c.stat, c.nobs)
	if err != nil {
		return err
	}
	alarms, err := c.rule(cs, c.params)
	if err != nil {
		return fmt.Errorf("chart %s rules: %v", c.name, err)
	}
	if len(alarms) == 0 || !alarms[len(alarms)-1] {
		return nil
	}
	if err := c.machine.Transition(Alarmed); err != nil {
		return err
	}
	c.dispatch(AlarmRaised, AlarmEvent{Chart: c.name.String(), Groups: rules.AlarmSubsets(alarms)})
	return nil
}

func (c *Chart) dispatch(et eventbus.EventType, data interface{}) {
	if c.bus == nil {
		return
	}
	c.bus.Dispatch(eventbus.Event{EventType: et, Data: data}, eventbus.Topic(c.name.String()))
}
