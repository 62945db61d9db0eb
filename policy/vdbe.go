package policy

import (
	"math"

	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/lvlmaze/agent"
)

// VDBE is value-difference based exploration: an EpsilonGreedy whose ε is
// tracked per state and adapted after every update by how much the
// Q-value moved.
//
//	act = |e^(Qold/σ) − e^(Qnew/σ)| / (e^(Qold/σ) + e^(Qnew/σ))
//	ε   ← lr·act + (1 − lr)·ε
//
// with lr = 1 / (passable neighbors of the node left) and σ the inverse
// sensitivity. Both exponentials are shifted by max(Qold, Qnew), which
// leaves act unchanged. Unseen states start at ε₀.
type VDBE struct {
	inner   *EpsilonGreedy
	initial float64
	sigma   float64
	digits  uint32
	eps     map[string]float64
}

// NewVDBE validates ε₀ ∈ [0, 1], σ > 0 and digits ≥ 1.
func NewVDBE(epsilon, sigma float64, digits uint32, seed int64) (*VDBE, error) {
	if !(sigma > 0) {
		return nil, invalid("VDBE", "Sigma", sigma)
	}
	if digits < 1 {
		return nil, invalid("VDBE", "Digits", digits)
	}
	inner, err := NewEpsilonGreedy(epsilon, seed)
	if err != nil {
		return nil, err
	}
	return &VDBE{
		inner:   inner,
		initial: epsilon,
		sigma:   sigma,
		digits:  digits,
		eps:     make(map[string]float64),
	}, nil
}

// Epsilon returns ε for state, ε₀ when the state was never updated.
func (v *VDBE) Epsilon(state string) float64 {
	if e, ok := v.eps[state]; ok {
		return e
	}
	return v.initial
}

// Select implements agent.Policy with the ε of state.
func (v *VDBE) Select(state string, values map[agent.Action]float64) (agent.Action, error) {
	if err := v.inner.SetEpsilon(v.Epsilon(state)); err != nil {
		return 0, err
	}
	return v.inner.Select(state, values)
}

// PostProcess implements agent.PostProcessor.
func (v *VDBE) PostProcess(t agent.Transition) error {
	if t.Neighbors < 1 {
		return invalid("VDBE", "Neighbors", t.Neighbors)
	}
	c := newCalc(v.digits)
	sigma := c.num(v.sigma)
	m := c.num(math.Max(t.OldQ, t.NewQ))
	eOld := c.expShift(c.num(t.OldQ), m, sigma)
	eNew := c.expShift(c.num(t.NewQ), m, sigma)
	act := c.quo(c.abs(c.sub(eOld, eNew)), c.add(eOld, eNew))

	one := apd.New(1, 0)
	lr := c.quo(one, apd.New(int64(t.Neighbors), 0))
	eps := c.add(c.mul(lr, act), c.mul(c.sub(one, lr), c.num(v.Epsilon(t.State))))
	f := c.float(eps)
	if c.err != nil {
		return c.err
	}
	v.eps[t.State] = f
	return nil
}
