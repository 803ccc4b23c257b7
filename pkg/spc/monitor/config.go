package monitor

import (
	"fmt"
	"io"
	"io/ioutil"

	"github.com/go-yaml/yaml"

	"github.com/nklsxn/mqr/pkg/eventbus"
	"github.com/nklsxn/mqr/pkg/spc"
	"github.com/nklsxn/mqr/pkg/spc/rules"
)

// Config declares a suite of monitored charts, normally loaded from a YAML
// file.
type Config struct {
	Charts []ChartConfig `yaml:"charts"`
}

// ChartConfig declares one chart: which statistic to track, the baseline
// size its parameters are fitted from, and an optional rule set.  Charts
// with known parameters are constructed in code with WithParams instead.
type ChartConfig struct {
	Name     string            `yaml:"name"`
	Metadata map[string]string `yaml:"metadata"`
	Type     string            `yaml:"type"`
	NSigma   float64           `yaml:"nsigma"`
	Method   string            `yaml:"method"`
	Lambda   float64           `yaml:"lambda"`
	L        float64           `yaml:"l"`
	ARL0     float64           `yaml:"arl0"`
	InitH4   float64           `yaml:"init_h4"`
	Baseline int               `yaml:"baseline"`
	Rules    []RuleConfig      `yaml:"rules"`
}

// RuleConfig declares one alarm rule by kind with its parameters
type RuleConfig struct {
	Kind   string  `yaml:"kind"`
	N      int     `yaml:"n"`
	A      int     `yaml:"a"`
	B      int     `yaml:"b"`
	NSigma float64 `yaml:"nsigma"`
}

// LoadConfig parses a YAML chart-suite definition and validates every
// chart, returning all validation problems at once rather than the first
// one encountered.
func LoadConfig(r io.Reader) (*Config, []error) {
	raw, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, []error{fmt.Errorf("failed to read config: %v", err)}
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, []error{fmt.Errorf("failed to parse config: %v", err)}
	}

	var errors []error
	if len(cfg.Charts) == 0 {
		errors = append(errors, fmt.Errorf("config declares no charts"))
	}
	seen := map[string]bool{}
	for i, cc := range cfg.Charts {
		for _, err := range cc.validate() {
			errors = append(errors, fmt.Errorf("chart %d (%s): %v", i, cc.Name, err))
		}
		key := NewName(cc.Name, cc.Metadata).String()
		if seen[key] {
			errors = append(errors, fmt.Errorf("chart %d: duplicate chart name %s", i, key))
		}
		seen[key] = true
	}
	if len(errors) > 0 {
		return nil, errors
	}
	return &cfg, nil
}

func (cc ChartConfig) validate() []error {
	var errors []error
	if cc.Name == "" {
		errors = append(errors, fmt.Errorf("name is required"))
	}
	if cc.Baseline <= 0 {
		errors = append(errors, fmt.Errorf("baseline size must be at least 1"))
	}
	switch cc.Type {
	case "xbar":
		switch cc.Method {
		case "", string(spc.EstimateSBar), string(spc.EstimateRBar):
		default:
			errors = append(errors, fmt.Errorf("unknown estimate method %q, want s_bar or r_bar", cc.Method))
		}
	case "r", "s":
	case "ewma":
		if cc.Lambda <= 0 || cc.Lambda > 1 {
			errors = append(errors, fmt.Errorf("ewma smoothing lambda must be in (0, 1], got %g", cc.Lambda))
		}
	case "mewma":
		if cc.Lambda <= 0 || cc.Lambda > 1 {
			errors = append(errors, fmt.Errorf("mewma smoothing lambda must be in (0, 1], got %g", cc.Lambda))
		}
		if cc.ARL0 <= 1 {
			errors = append(errors, fmt.Errorf("mewma charts require a target in-control ARL greater than 1"))
		}
	default:
		errors = append(errors, fmt.Errorf("unknown chart type %q", cc.Type))
	}
	for j, rc := range cc.Rules {
		if err := rc.validate(); err != nil {
			errors = append(errors, fmt.Errorf("rule %d: %v", j, err))
		}
	}
	return errors
}

func (rc RuleConfig) validate() error {
	switch rc.Kind {
	case "limits":
		return nil
	case "n_one_side", "n_trending":
		if rc.N < 2 {
			return fmt.Errorf("%s requires n >= 2, got %d", rc.Kind, rc.N)
		}
		return nil
	case "a_of_b":
		_, err := rules.AOfBNSigma(rc.A, rc.B, rc.NSigma)
		return err
	default:
		return fmt.Errorf("unknown rule kind %q", rc.Kind)
	}
}

// Build constructs the configured chart suite.  Every chart shares the
// given bus, which may be nil to disable event dispatch.
func (c *Config) Build(bus *eventbus.Bus) ([]*Chart, []error) {
	var charts []*Chart
	var errors []error
	for i, cc := range c.Charts {
		chart, err := cc.build(bus)
		if err != nil {
			errors = append(errors, fmt.Errorf("chart %d (%s): %v", i, cc.Name, err))
			continue
		}
		charts = append(charts, chart)
	}
	if len(errors) > 0 {
		return nil, errors
	}
	return charts, nil
}

func (cc ChartConfig) build(bus *eventbus.Bus) (*Chart, error) {
	opts := []ChartOption{WithFitter(cc.fitter(), cc.Baseline)}
	if rr, err := cc.rules(); err != nil {
		return nil, err
	} else if len(rr) > 0 {
		opts = append(opts, WithRules(rr...))
	}
	if bus != nil {
		opts = append(opts, WithBus(bus))
	}
	return NewChart(NewName(cc.Name, cc.Metadata), opts...)
}

func (cc ChartConfig) rules() ([]rules.Rule, error) {
	var rr []rules.Rule
	for _, rc := range cc.Rules {
		switch rc.Kind {
		case "limits":
			rr = append(rr, rules.Limits)
		case "n_one_side":
			rr = append(rr, rules.NOneSide(rc.N))
		case "n_trending":
			rr = append(rr, rules.NTrending(rc.N))
		case "a_of_b":
			rule, err := rules.AOfBNSigma(rc.A, rc.B, rc.NSigma)
			if err != nil {
				return nil, err
			}
			rr = append(rr, rule)
		}
	}
	return rr, nil
}

// fitter selects the parameter estimator matching the chart type.  Widths
// (nsigma, lambda, l) default to the conventional three-sigma settings
// when the config leaves them zero.
func (cc ChartConfig) fitter() Fitter {
	nsigma := cc.NSigma
	if nsigma == 0 {
		nsigma = 3
	}
	switch cc.Type {
	case "r":
		return func(s *spc.Samples) (spc.ControlParams, error) {
			return spc.RFromData(s, nsigma)
		}
	case "s":
		return func(s *spc.Samples) (spc.ControlParams, error) {
			return spc.SFromData(s, nsigma)
		}
	case "ewma":
		l := cc.L
		if l == 0 {
			l = 3
		}
		return func(s *spc.Samples) (spc.ControlParams, error) {
			return spc.EwmaFromData(s, cc.Lambda, l, spc.WithSteadyState())
		}
	case "mewma":
		return func(s *spc.Samples) (spc.ControlParams, error) {
			p := len(s.Row(0))
			init := cc.InitH4
			if init == 0 {
				init = 5 * float64(p)
			}
			h4, err := spc.SolveH4(cc.ARL0, p, cc.Lambda, init)
			if err != nil {
				return nil, fmt.Errorf("failed to calibrate control limit: %v", err)
			}
			return spc.MewmaFromData(s, h4, cc.Lambda)
		}
	default:
		method := spc.EstimateMethod(cc.Method)
		if cc.Method == "" {
			method = spc.EstimateSBar
		}
		return func(s *spc.Samples) (spc.ControlParams, error) {
			return spc.XBarFromData(s, method, nsigma)
		}
	}
}
