package policy

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlmaze/agent"
	"github.com/katalvlaran/lvlmaze/params"
)

// Factory builds a policy from registry parameters.
type Factory func(p params.Params) (agent.Policy, error)

var registry = map[string]Factory{
	"greedy":             newGreedyFrom,
	"random":             newRandomFrom,
	"epsilon-greedy":     newEpsilonGreedyFrom,
	"decreasing-epsilon": newDecreasingEpsilonFrom,
	"epsilon-first":      newEpsilonFirstFrom,
	"softmax":            newSoftmaxFrom,
	"vdbe":               newVDBEFrom,
}

// Names lists the registered policy names in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// New constructs the policy registered under name. Absent parameters take
// their defaults; unknown keys are rejected.
//
//	greedy, random:      seed
//	epsilon-greedy:      epsilon (0.1), seed
//	decreasing-epsilon:  epsilon (1), factor (0.99), seed
//	epsilon-first:       explore (1), exploit (0.05), n (100), seed
//	softmax:             temperature (1), digits (34), seed
//	vdbe:                epsilon (0.5), sigma (1), digits (34), seed
func New(name string, p params.Params) (agent.Policy, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
	pol, err := f(p)
	if err != nil {
		return nil, fmt.Errorf("policy %q: %w", name, err)
	}
	return pol, nil
}

// Parse constructs a policy from a "name:key=value,..." spec.
func Parse(spec string) (agent.Policy, error) {
	name, p, err := params.Parse(spec)
	if err != nil {
		return nil, err
	}
	return New(name, p)
}

const defaultSeed = 1

func newGreedyFrom(p params.Params) (agent.Policy, error) {
	r := params.NewReader(p)
	seed := r.Int64("seed", defaultSeed)
	if err := r.Done("seed"); err != nil {
		return nil, err
	}
	return NewGreedy(seed), nil
}

func newRandomFrom(p params.Params) (agent.Policy, error) {
	r := params.NewReader(p)
	seed := r.Int64("seed", defaultSeed)
	if err := r.Done("seed"); err != nil {
		return nil, err
	}
	return NewRandom(seed), nil
}

func newEpsilonGreedyFrom(p params.Params) (agent.Policy, error) {
	r := params.NewReader(p)
	eps := r.Float("epsilon", 0.1)
	seed := r.Int64("seed", defaultSeed)
	if err := r.Done("epsilon", "seed"); err != nil {
		return nil, err
	}
	return NewEpsilonGreedy(eps, seed)
}

func newDecreasingEpsilonFrom(p params.Params) (agent.Policy, error) {
	r := params.NewReader(p)
	eps := r.Float("epsilon", 1)
	factor := r.Float("factor", 0.99)
	seed := r.Int64("seed", defaultSeed)
	if err := r.Done("epsilon", "factor", "seed"); err != nil {
		return nil, err
	}
	return NewDecreasingEpsilon(eps, factor, seed)
}

func newEpsilonFirstFrom(p params.Params) (agent.Policy, error) {
	r := params.NewReader(p)
	explore := r.Float("explore", 1)
	exploit := r.Float("exploit", 0.05)
	n := r.Int("n", 100)
	seed := r.Int64("seed", defaultSeed)
	if err := r.Done("explore", "exploit", "n", "seed"); err != nil {
		return nil, err
	}
	return NewEpsilonFirst(explore, exploit, n, seed)
}

func newSoftmaxFrom(p params.Params) (agent.Policy, error) {
	r := params.NewReader(p)
	t := r.Float("temperature", 1)
	digits := r.Int("digits", DefaultDigits)
	seed := r.Int64("seed", defaultSeed)
	if err := r.Done("temperature", "digits", "seed"); err != nil {
		return nil, err
	}
	if digits < 1 {
		return nil, invalid("Softmax", "Digits", digits)
	}
	return NewSoftmax(t, uint32(digits), seed)
}

func newVDBEFrom(p params.Params) (agent.Policy, error) {
	r := params.NewReader(p)
	eps := r.Float("epsilon", 0.5)
	sigma := r.Float("sigma", 1)
	digits := r.Int("digits", DefaultDigits)
	seed := r.Int64("seed", defaultSeed)
	if err := r.Done("epsilon", "sigma", "digits", "seed"); err != nil {
		return nil, err
	}
	if digits < 1 {
		return nil, invalid("VDBE", "Digits", digits)
	}
	return NewVDBE(eps, sigma, uint32(digits), seed)
}
