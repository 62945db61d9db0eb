package operator

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvlmaze/bfs"
	"github.com/katalvlaran/lvlmaze/dfs"
	"github.com/katalvlaran/lvlmaze/dijkstra"
	"github.com/katalvlaran/lvlmaze/maze"
	"github.com/katalvlaran/lvlmaze/rng"
)

// ChangeOptimalPathConfig parameterizes the ChangeOptimalPath operator.
type ChangeOptimalPathConfig struct {
	// CostPerIncrease is charged per move added to the optimal path (> 0).
	CostPerIncrease int
	// Seed drives the candidate order.
	Seed int64
}

// DefaultChangeOptimalPathConfig returns CostPerIncrease=1, Seed=1.
func DefaultChangeOptimalPathConfig() ChangeOptimalPathConfig {
	return ChangeOptimalPathConfig{CostPerIncrease: 1, Seed: 1}
}

// Validate reports the first out-of-range field.
func (c ChangeOptimalPathConfig) Validate() error {
	if c.CostPerIncrease <= 0 {
		return invalid("ChangeOptimalPath", "CostPerIncrease", c.CostPerIncrease)
	}
	return nil
}

// ChangeOptimalPath walls off one optimal-path cell that also lies on a
// parallel route and has exactly two passable neighbors, forcing the agent
// onto the detour.
type ChangeOptimalPath struct {
	cfg    ChangeOptimalPathConfig
	rand   *rand.Rand
	staged *maze.Position
}

// NewChangeOptimalPath validates cfg and returns the operator.
func NewChangeOptimalPath(cfg ChangeOptimalPathConfig) (*ChangeOptimalPath, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &ChangeOptimalPath{cfg: cfg, rand: rng.New(cfg.Seed)}, nil
}

// Kind implements Operator.
func (o *ChangeOptimalPath) Kind() Kind { return KindChangeOptimalPath }

// EstimateCost blocks each shuffled candidate provisionally, measures the new
// optimal length and stages the first with a positive increase whose cost
// (increase × CostPerIncrease) fits budget.
func (o *ChangeOptimalPath) EstimateCost(m *maze.Maze, budget int) (int, error) {
	o.staged = nil
	a, err := analyze(m, true)
	if err != nil {
		return 0, err
	}
	onLoop := dfs.Members(a.parallel)

	var cands []maze.Position
	for _, p := range a.sp.Path {
		if p == m.Start() || p == m.End() {
			continue
		}
		if _, ok := onLoop[p]; !ok || len(m.PassableNeighbors(p)) != 2 {
			continue
		}
		cands = append(cands, p)
	}
	rng.Shuffle(cands, o.rand)

	base := a.sp.Length()
	for _, c := range cands {
		res, err := dijkstra.ShortestPath(m, dijkstra.WithBlocked(c))
		if errors.Is(err, dijkstra.ErrNoPath) {
			continue
		}
		if err != nil {
			return 0, err
		}
		inc := res.Length() - base
		if inc <= 0 || inc*o.cfg.CostPerIncrease > budget {
			continue
		}
		c := c
		o.staged = &c
		return inc * o.cfg.CostPerIncrease, nil
	}
	return 0, nil
}

// ChangeMaze walls off the staged cell, restoring it if the maze would
// become unsolvable.
func (o *ChangeOptimalPath) ChangeMaze(m *maze.Maze) (bool, error) {
	p := o.staged
	o.staged = nil
	if p == nil {
		return false, nil
	}
	if err := m.SetType(*p, maze.Impassable); err != nil {
		return false, fmt.Errorf("operator: block %v: %w", *p, err)
	}
	if !bfs.Solvable(m) {
		_ = m.SetType(*p, maze.Passable)
		return false, ErrBrokenMaze
	}
	return true, nil
}
