package operator

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/lvlmaze/dfs"
	"github.com/katalvlaran/lvlmaze/maze"
	"github.com/katalvlaran/lvlmaze/rng"
)

// DeadEndConfig parameterizes the DeadEnd operator.
type DeadEndConfig struct {
	// CostPerNode is charged per carved cell (> 0).
	CostPerNode int
	// MinLength and MaxLength bound the branch length (0 < Min ≤ Max).
	MinLength, MaxLength int
	// PreferRoute is the probability of rooting the branch on the optimal
	// path or a parallel route rather than elsewhere (0 ≤ p ≤ 1).
	PreferRoute float64
	// ExpansionLimit caps each randomized search (≥ 1).
	ExpansionLimit int
	// Seed drives pool choice, length, roots and searches.
	Seed int64
}

// DefaultDeadEndConfig returns cost 1 per node, lengths [2,6], PreferRoute 0.7.
func DefaultDeadEndConfig() DeadEndConfig {
	return DeadEndConfig{
		CostPerNode:    1,
		MinLength:      2,
		MaxLength:      6,
		PreferRoute:    0.7,
		ExpansionLimit: dfs.DefaultExpansionLimit,
		Seed:           1,
	}
}

// Validate reports the first out-of-range field.
func (c DeadEndConfig) Validate() error {
	switch {
	case c.CostPerNode <= 0:
		return invalid("DeadEnd", "CostPerNode", c.CostPerNode)
	case c.MinLength <= 0:
		return invalid("DeadEnd", "MinLength", c.MinLength)
	case c.MaxLength < c.MinLength:
		return invalid("DeadEnd", "MaxLength", c.MaxLength)
	case !(c.PreferRoute >= 0 && c.PreferRoute <= 1):
		return invalid("DeadEnd", "PreferRoute", c.PreferRoute)
	case c.ExpansionLimit < 1:
		return invalid("DeadEnd", "ExpansionLimit", c.ExpansionLimit)
	}
	return nil
}

// DeadEnd carves a branch from a passable root that touches no other
// passable cell, so it leads nowhere.
type DeadEnd struct {
	cfg    DeadEndConfig
	rand   *rand.Rand
	staged []maze.Position
}

// NewDeadEnd validates cfg and returns a DeadEnd operator.
func NewDeadEnd(cfg DeadEndConfig) (*DeadEnd, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &DeadEnd{cfg: cfg, rand: rng.New(cfg.Seed)}, nil
}

// Kind implements Operator.
func (o *DeadEnd) Kind() Kind { return KindDeadEnd }

// EstimateCost draws a target length k within budget and the preferred root
// pool, then tries the roots of that pool (and then the other) in shuffled
// order. Cost = k × CostPerNode.
func (o *DeadEnd) EstimateCost(m *maze.Maze, budget int) (int, error) {
	o.staged = nil
	maxLen := min(o.cfg.MaxLength, budget/o.cfg.CostPerNode)
	if maxLen < o.cfg.MinLength {
		return 0, nil
	}
	a, err := analyze(m, true)
	if err != nil {
		return 0, err
	}
	k := o.cfg.MinLength + o.rand.Intn(maxLen-o.cfg.MinLength+1)

	route := a.route()
	onRoute := make(map[maze.Position]struct{}, len(route))
	for _, p := range route {
		onRoute[p] = struct{}{}
	}
	var other []maze.Position
	for _, p := range m.Passables() {
		if _, ok := onRoute[p]; !ok {
			other = append(other, p)
		}
	}
	pools := [2][]maze.Position{route, other}
	if o.rand.Float64() >= o.cfg.PreferRoute {
		pools[0], pools[1] = pools[1], pools[0]
	}

	for _, pool := range pools {
		roots := append([]maze.Position(nil), pool...)
		rng.Shuffle(roots, o.rand)
		for _, root := range roots {
			path, err := dfs.RandomPath(m, root,
				dfs.WithRand(o.rand),
				dfs.WithLength(k, k),
				dfs.WithExpansionLimit(o.cfg.ExpansionLimit),
				dfs.WithStep(func(path []maze.Position, next maze.Position) bool {
					for _, q := range m.PassableNeighbors(next) {
						if q != root || len(path) > 0 {
							return false
						}
					}
					return true
				}),
			)
			if errors.Is(err, dfs.ErrNoCandidate) {
				continue
			}
			if err != nil {
				return 0, err
			}
			o.staged = path
			return k * o.cfg.CostPerNode, nil
		}
	}
	return 0, nil
}

// ChangeMaze carves the staged branch.
func (o *DeadEnd) ChangeMaze(m *maze.Maze) (bool, error) {
	cells := o.staged
	o.staged = nil
	if cells == nil {
		return false, nil
	}
	if err := carve(m, cells); err != nil {
		return false, err
	}
	return true, nil
}
