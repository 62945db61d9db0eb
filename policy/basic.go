package policy

import (
	"math/rand"

	"github.com/katalvlaran/lvlmaze/agent"
	"github.com/katalvlaran/lvlmaze/rng"
)

// Greedy picks an action of maximal value. Ties are broken uniformly with
// its own generator after sorting the tied actions canonically.
type Greedy struct {
	rand *rand.Rand
}

// NewGreedy returns a Greedy policy seeded with seed.
func NewGreedy(seed int64) *Greedy {
	return &Greedy{rand: rng.New(seed)}
}

// Select implements agent.Policy.
func (g *Greedy) Select(_ string, values map[agent.Action]float64) (agent.Action, error) {
	var (
		best  []agent.Action
		value float64
	)
	for _, a := range agent.SortedActions(values) {
		v := values[a]
		switch {
		case len(best) == 0 || v > value:
			best, value = append(best[:0], a), v
		case v == value:
			best = append(best, a)
		}
	}
	switch len(best) {
	case 0:
		return 0, ErrNoActions
	case 1:
		return best[0], nil
	}
	return best[g.rand.Intn(len(best))], nil
}

// Random picks a legal action uniformly.
type Random struct {
	rand *rand.Rand
}

// NewRandom returns a Random policy seeded with seed.
func NewRandom(seed int64) *Random {
	return &Random{rand: rng.New(seed)}
}

// Select implements agent.Policy.
func (r *Random) Select(_ string, values map[agent.Action]float64) (agent.Action, error) {
	a, ok := rng.Pick(agent.SortedActions(values), r.rand)
	if !ok {
		return 0, ErrNoActions
	}
	return a, nil
}
