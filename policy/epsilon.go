package policy

import (
	"math/rand"

	"github.com/katalvlaran/lvlmaze/agent"
	"github.com/katalvlaran/lvlmaze/rng"
)

// Generator streams derived from a policy seed.
const (
	streamDraw uint64 = iota + 1
	streamRandom
	streamGreedy
	streamExploit
)

// EpsilonGreedy explores with probability ε: a draw u ≤ ε delegates to
// Random, anything else to Greedy.
type EpsilonGreedy struct {
	epsilon float64
	draw    *rand.Rand
	random  *Random
	greedy  *Greedy
}

// NewEpsilonGreedy validates ε ∈ [0, 1] and derives three generators from seed.
func NewEpsilonGreedy(epsilon float64, seed int64) (*EpsilonGreedy, error) {
	if !probability(epsilon) {
		return nil, invalid("EpsilonGreedy", "Epsilon", epsilon)
	}
	return &EpsilonGreedy{
		epsilon: epsilon,
		draw:    rng.Derive(seed, streamDraw),
		random:  NewRandom(rng.DeriveSeed(seed, streamRandom)),
		greedy:  NewGreedy(rng.DeriveSeed(seed, streamGreedy)),
	}, nil
}

// Epsilon returns the current exploration probability.
func (e *EpsilonGreedy) Epsilon() float64 { return e.epsilon }

// SetEpsilon replaces ε. Values outside [0, 1] are rejected.
func (e *EpsilonGreedy) SetEpsilon(epsilon float64) error {
	if !probability(epsilon) {
		return invalid("EpsilonGreedy", "Epsilon", epsilon)
	}
	e.epsilon = epsilon
	return nil
}

// Select implements agent.Policy.
func (e *EpsilonGreedy) Select(state string, values map[agent.Action]float64) (agent.Action, error) {
	if e.draw.Float64() <= e.epsilon {
		return e.random.Select(state, values)
	}
	return e.greedy.Select(state, values)
}

// DecreasingEpsilon is an EpsilonGreedy whose ε shrinks by a constant
// factor after every selection: ε_n = ε₀·factorⁿ.
type DecreasingEpsilon struct {
	inner  *EpsilonGreedy
	factor float64
}

// NewDecreasingEpsilon validates ε₀ ∈ [0, 1] and factor ∈ (0, 1).
func NewDecreasingEpsilon(epsilon, factor float64, seed int64) (*DecreasingEpsilon, error) {
	if !(factor > 0 && factor < 1) {
		return nil, invalid("DecreasingEpsilon", "Factor", factor)
	}
	inner, err := NewEpsilonGreedy(epsilon, seed)
	if err != nil {
		return nil, err
	}
	return &DecreasingEpsilon{inner: inner, factor: factor}, nil
}

// Epsilon returns the current exploration probability.
func (d *DecreasingEpsilon) Epsilon() float64 { return d.inner.epsilon }

// Select implements agent.Policy.
func (d *DecreasingEpsilon) Select(state string, values map[agent.Action]float64) (agent.Action, error) {
	a, err := d.inner.Select(state, values)
	d.inner.epsilon *= d.factor
	return a, err
}

// EpsilonFirst explores with ε_explore for the first N selections and then
// switches for good to a second EpsilonGreedy with ε_exploit.
type EpsilonFirst struct {
	explore, exploit *EpsilonGreedy
	n, selections    int
}

// NewEpsilonFirst validates both probabilities and n ≥ 0.
func NewEpsilonFirst(explore, exploit float64, n int, seed int64) (*EpsilonFirst, error) {
	if n < 0 {
		return nil, invalid("EpsilonFirst", "N", n)
	}
	ex, err := NewEpsilonGreedy(explore, seed)
	if err != nil {
		return nil, err
	}
	ep, err := NewEpsilonGreedy(exploit, rng.DeriveSeed(seed, streamExploit))
	if err != nil {
		return nil, err
	}
	return &EpsilonFirst{explore: ex, exploit: ep, n: n}, nil
}

// Exploring reports whether the next selection still uses ε_explore.
func (f *EpsilonFirst) Exploring() bool { return f.selections < f.n }

// Select implements agent.Policy.
func (f *EpsilonFirst) Select(state string, values map[agent.Action]float64) (agent.Action, error) {
	p := f.exploit
	if f.Exploring() {
		p = f.explore
	}
	f.selections++
	return p.Select(state, values)
}
