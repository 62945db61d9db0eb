package policy

import (
	"math"
	"math/rand"

	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/lvlmaze/agent"
	"github.com/katalvlaran/lvlmaze/rng"
)

// Softmax performs Boltzmann selection: action a is chosen with probability
// proportional to exp(Q(s,a)/T). Weights are computed in decimal arithmetic
// as exp((Q(s,a) − max Q)/T), so the best action always weighs 1 and very
// low temperatures neither overflow nor fail.
type Softmax struct {
	temperature float64
	digits      uint32
	rand        *rand.Rand
}

// NewSoftmax validates temperature > 0 and digits ≥ 1.
func NewSoftmax(temperature float64, digits uint32, seed int64) (*Softmax, error) {
	if !(temperature > 0) {
		return nil, invalid("Softmax", "Temperature", temperature)
	}
	if digits < 1 {
		return nil, invalid("Softmax", "Digits", digits)
	}
	return &Softmax{temperature: temperature, digits: digits, rand: rng.New(seed)}, nil
}

// Temperature returns T.
func (s *Softmax) Temperature() float64 { return s.temperature }

// Probabilities returns the selection probability of each action in values.
func (s *Softmax) Probabilities(values map[agent.Action]float64) (map[agent.Action]float64, error) {
	actions, weights, sum, c := s.weigh(values)
	if c.err != nil {
		return nil, c.err
	}
	out := make(map[agent.Action]float64, len(actions))
	for i, a := range actions {
		out[a] = c.float(c.quo(weights[i], sum))
	}
	return out, c.err
}

// Select implements agent.Policy. It draws u uniformly in [0, Σw) and walks
// the cumulative weights in canonical action order.
func (s *Softmax) Select(_ string, values map[agent.Action]float64) (agent.Action, error) {
	actions, weights, sum, c := s.weigh(values)
	if c.err != nil {
		return 0, c.err
	}
	if len(actions) == 0 {
		return 0, ErrNoActions
	}
	u := c.mul(sum, c.num(s.rand.Float64()))
	cum := new(apd.Decimal)
	for i, a := range actions {
		cum = c.add(cum, weights[i])
		if c.err != nil {
			return 0, c.err
		}
		if u.Cmp(cum) < 0 {
			return a, nil
		}
	}
	return actions[len(actions)-1], nil
}

func (s *Softmax) weigh(values map[agent.Action]float64) ([]agent.Action, []*apd.Decimal, *apd.Decimal, *calc) {
	c := newCalc(s.digits)
	t := c.num(s.temperature)
	actions := agent.SortedActions(values)
	weights := make([]*apd.Decimal, len(actions))
	sum := new(apd.Decimal)
	if len(actions) == 0 {
		return actions, weights, sum, c
	}
	top := values[actions[0]]
	for _, a := range actions[1:] {
		top = math.Max(top, values[a])
	}
	m := c.num(top)
	for i, a := range actions {
		weights[i] = c.expShift(c.num(values[a]), m, t)
		sum = c.add(sum, weights[i])
	}
	return actions, weights, sum, c
}
