package operator

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlmaze/params"
)

// Factory builds an operator from registry parameters.
type Factory func(p params.Params) (Operator, error)

// registry is the closed set of operators known to New.
var registry = map[string]Factory{
	KindResize.String():            newResizeFrom,
	KindNewPath.String():           newNewPathFrom,
	KindDeadEnd.String():           newDeadEndFrom,
	KindChangeOptimalPath.String(): newChangeOptimalPathFrom,
}

// Names lists the registered operator names in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// New constructs the operator registered under name. Parameters absent from
// p take the operator's defaults; unknown keys are rejected.
//
//	resize:               cost, max-step, seed
//	new-path:             cost, min, max, candidates, limit, seed
//	dead-end:             cost, min, max, prefer-route, limit, seed
//	change-optimal-path:  cost, seed
func New(name string, p params.Params) (Operator, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperator, name)
	}
	op, err := f(p)
	if err != nil {
		return nil, fmt.Errorf("operator %q: %w", name, err)
	}
	return op, nil
}

// Parse constructs an operator from a "name:key=value,..." spec.
func Parse(spec string) (Operator, error) {
	name, p, err := params.Parse(spec)
	if err != nil {
		return nil, err
	}
	return New(name, p)
}

func newResizeFrom(p params.Params) (Operator, error) {
	d := DefaultResizeConfig()
	r := params.NewReader(p)
	cfg := ResizeConfig{
		CostPerDimension: r.Int("cost", d.CostPerDimension),
		MaxStep:          r.Int("max-step", d.MaxStep),
		Seed:             r.Int64("seed", d.Seed),
	}
	if err := r.Done("cost", "max-step", "seed"); err != nil {
		return nil, err
	}
	return NewResize(cfg)
}

func newNewPathFrom(p params.Params) (Operator, error) {
	d := DefaultNewPathConfig()
	r := params.NewReader(p)
	cfg := NewPathConfig{
		CostPerNode:    r.Int("cost", d.CostPerNode),
		MinLength:      r.Int("min", d.MinLength),
		MaxLength:      r.Int("max", d.MaxLength),
		Candidates:     r.Int("candidates", d.Candidates),
		ExpansionLimit: r.Int("limit", d.ExpansionLimit),
		Seed:           r.Int64("seed", d.Seed),
	}
	if err := r.Done("cost", "min", "max", "candidates", "limit", "seed"); err != nil {
		return nil, err
	}
	return NewNewPath(cfg)
}

func newDeadEndFrom(p params.Params) (Operator, error) {
	d := DefaultDeadEndConfig()
	r := params.NewReader(p)
	cfg := DeadEndConfig{
		CostPerNode:    r.Int("cost", d.CostPerNode),
		MinLength:      r.Int("min", d.MinLength),
		MaxLength:      r.Int("max", d.MaxLength),
		PreferRoute:    r.Float("prefer-route", d.PreferRoute),
		ExpansionLimit: r.Int("limit", d.ExpansionLimit),
		Seed:           r.Int64("seed", d.Seed),
	}
	if err := r.Done("cost", "min", "max", "prefer-route", "limit", "seed"); err != nil {
		return nil, err
	}
	return NewDeadEnd(cfg)
}

func newChangeOptimalPathFrom(p params.Params) (Operator, error) {
	d := DefaultChangeOptimalPathConfig()
	r := params.NewReader(p)
	cfg := ChangeOptimalPathConfig{
		CostPerIncrease: r.Int("cost", d.CostPerIncrease),
		Seed:            r.Int64("seed", d.Seed),
	}
	if err := r.Done("cost", "seed"); err != nil {
		return nil, err
	}
	return NewChangeOptimalPath(cfg)
}
