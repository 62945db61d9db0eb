package operator

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvlmaze/bfs"
	"github.com/katalvlaran/lvlmaze/maze"
	"github.com/katalvlaran/lvlmaze/rng"
)

// ResizeConfig parameterizes the Resize operator.
type ResizeConfig struct {
	// CostPerDimension is charged per added row or column (> 0).
	CostPerDimension int
	// MaxStep bounds the growth along each axis (≥ 1).
	MaxStep int
	// Seed drives the choice among affordable growths.
	Seed int64
}

// DefaultResizeConfig returns CostPerDimension=2, MaxStep=2, Seed=1.
func DefaultResizeConfig() ResizeConfig {
	return ResizeConfig{CostPerDimension: 2, MaxStep: 2, Seed: 1}
}

// Validate reports the first out-of-range field.
func (c ResizeConfig) Validate() error {
	switch {
	case c.CostPerDimension <= 0:
		return invalid("Resize", "CostPerDimension", c.CostPerDimension)
	case c.MaxStep < 1:
		return invalid("Resize", "MaxStep", c.MaxStep)
	}
	return nil
}

// Resize grows the grid to the right and bottom and moves the end to the new
// bottom-right interior corner, joined to the old end by an L-shaped corridor
// (along the old end's row, then down the new last interior column).
type Resize struct {
	cfg    ResizeConfig
	rand   *rand.Rand
	staged *growth
}

// growth is a staged (dx, dy).
type growth struct{ dx, dy int }

// NewResize validates cfg and returns a Resize operator.
func NewResize(cfg ResizeConfig) (*Resize, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Resize{cfg: cfg, rand: rng.New(cfg.Seed)}, nil
}

// Kind implements Operator.
func (r *Resize) Kind() Kind { return KindResize }

// EstimateCost picks (dx, dy) uniformly among the affordable pairs with
// dx+dy ≥ 1 and each ≤ MaxStep. Cost = (dx+dy) × CostPerDimension.
func (r *Resize) EstimateCost(m *maze.Maze, budget int) (int, error) {
	r.staged = nil
	if !m.InBounds(m.End()) {
		return 0, nil
	}
	var feasible []growth
	for dx := 0; dx <= r.cfg.MaxStep; dx++ {
		for dy := 0; dy <= r.cfg.MaxStep; dy++ {
			if dx+dy == 0 || (dx+dy)*r.cfg.CostPerDimension > budget {
				continue
			}
			feasible = append(feasible, growth{dx, dy})
		}
	}
	g, ok := rng.Pick(feasible, r.rand)
	if !ok {
		return 0, nil
	}
	r.staged = &g
	return (g.dx + g.dy) * r.cfg.CostPerDimension, nil
}

// ChangeMaze applies the staged growth.
func (r *Resize) ChangeMaze(m *maze.Maze) (bool, error) {
	g := r.staged
	r.staged = nil
	if g == nil {
		return false, nil
	}

	old := m.End()
	if err := m.Resize(g.dx, g.dy); err != nil {
		return false, fmt.Errorf("operator: resize: %w", err)
	}
	corner := maze.Position{X: m.Width() - 2, Y: m.Height() - 2}
	for _, p := range elbow(old, corner) {
		if err := m.SetType(p, maze.Passable); err != nil {
			return false, fmt.Errorf("operator: resize carve %v: %w", p, err)
		}
	}
	if err := m.MoveEnd(corner); err != nil {
		return false, fmt.Errorf("operator: resize: %w", err)
	}
	if !bfs.Solvable(m) {
		return false, ErrBrokenMaze
	}
	return true, nil
}

// elbow lists the cells from `from` (exclusive) along its row to corner.X,
// then down (or up) that column to corner.Y.
func elbow(from, corner maze.Position) []maze.Position {
	var out []maze.Position
	p := from
	for p.X != corner.X {
		p = p.Add(sign(corner.X-p.X), 0)
		out = append(out, p)
	}
	for p.Y != corner.Y {
		p = p.Add(0, sign(corner.Y-p.Y))
		out = append(out, p)
	}
	return out
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
