package operator

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/lvlmaze/dfs"
	"github.com/katalvlaran/lvlmaze/maze"
	"github.com/katalvlaran/lvlmaze/rng"
)

// NewPathConfig parameterizes the NewPath operator.
type NewPathConfig struct {
	// CostPerNode is charged per carved cell (> 0).
	CostPerNode int
	// MinLength and MaxLength bound the carved cells (0 < Min ≤ Max).
	MinLength, MaxLength int
	// Candidates is the number of sampled anchors per estimate (≥ 1).
	Candidates int
	// ExpansionLimit caps each randomized search (≥ 1).
	ExpansionLimit int
	// Seed drives anchor sampling, the searches and the final pick.
	Seed int64
}

// DefaultNewPathConfig returns cost 1 per node, lengths [2,8], 8 candidates.
func DefaultNewPathConfig() NewPathConfig {
	return NewPathConfig{
		CostPerNode:    1,
		MinLength:      2,
		MaxLength:      8,
		Candidates:     8,
		ExpansionLimit: dfs.DefaultExpansionLimit,
		Seed:           1,
	}
}

// Validate reports the first out-of-range field.
func (c NewPathConfig) Validate() error {
	switch {
	case c.CostPerNode <= 0:
		return invalid("NewPath", "CostPerNode", c.CostPerNode)
	case c.MinLength <= 0:
		return invalid("NewPath", "MinLength", c.MinLength)
	case c.MaxLength < c.MinLength:
		return invalid("NewPath", "MaxLength", c.MaxLength)
	case c.Candidates < 1:
		return invalid("NewPath", "Candidates", c.Candidates)
	case c.ExpansionLimit < 1:
		return invalid("NewPath", "ExpansionLimit", c.ExpansionLimit)
	}
	return nil
}

// NewPath carves a corridor from an anchor A on the optimal path to another
// optimal-path cell B. The corridor touches no other passable cell and is
// strictly longer than the optimal segment between A and B, so the optimal
// path never gets shorter.
type NewPath struct {
	cfg    NewPathConfig
	rand   *rand.Rand
	staged []maze.Position
}

// NewNewPath validates cfg and returns a NewPath operator.
func NewNewPath(cfg NewPathConfig) (*NewPath, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &NewPath{cfg: cfg, rand: rng.New(cfg.Seed)}, nil
}

// Kind implements Operator.
func (o *NewPath) Kind() Kind { return KindNewPath }

// EstimateCost samples up to Candidates corridors and stages one of them at
// random. Cost = k × CostPerNode for k carved cells.
func (o *NewPath) EstimateCost(m *maze.Maze, budget int) (int, error) {
	o.staged = nil
	maxLen := min(o.cfg.MaxLength, budget/o.cfg.CostPerNode)
	if maxLen < o.cfg.MinLength {
		return 0, nil
	}
	a, err := analyze(m, false)
	if err != nil {
		return 0, err
	}
	idx := make(map[maze.Position]int, len(a.sp.Path))
	for i, p := range a.sp.Path {
		idx[p] = i
	}

	var found [][]maze.Position
	for i := 0; i < o.cfg.Candidates; i++ {
		anchor := a.sp.Path[o.rand.Intn(len(a.sp.Path))]
		path, err := dfs.RandomPath(m, anchor,
			dfs.WithRand(o.rand),
			dfs.WithLength(o.cfg.MinLength, maxLen),
			dfs.WithExpansionLimit(o.cfg.ExpansionLimit),
			dfs.WithStep(func(path []maze.Position, next maze.Position) bool {
				return o.step(m, idx, anchor, path, next)
			}),
			dfs.WithAccept(func(path []maze.Position) bool {
				return o.accept(m, idx, anchor, path)
			}),
		)
		if errors.Is(err, dfs.ErrNoCandidate) {
			continue
		}
		if err != nil {
			return 0, err
		}
		found = append(found, path)
	}

	pick, ok := rng.Pick(found, o.rand)
	if !ok {
		return 0, nil
	}
	o.staged = pick
	return len(pick) * o.cfg.CostPerNode, nil
}

// step admits next when its passable neighbors are the anchor (first cell
// only) or at most one other optimal-path cell. A tip that already reached
// the optimal path ends the corridor.
func (o *NewPath) step(m *maze.Maze, idx map[maze.Position]int, anchor maze.Position, path []maze.Position, next maze.Position) bool {
	if n := len(path); n > 0 && len(landings(m, idx, anchor, path[n-1])) > 0 {
		return false
	}
	hits := 0
	for _, q := range m.PassableNeighbors(next) {
		if q == anchor {
			if len(path) > 0 {
				return false
			}
			continue
		}
		if _, on := idx[q]; !on {
			return false
		}
		hits++
	}
	return hits <= 1
}

// accept requires the last cell to land on exactly one optimal-path cell B
// and the corridor (k cells, k+1 moves) to be longer than the A..B segment.
func (o *NewPath) accept(m *maze.Maze, idx map[maze.Position]int, anchor maze.Position, path []maze.Position) bool {
	l := landings(m, idx, anchor, path[len(path)-1])
	if len(l) != 1 {
		return false
	}
	d := idx[anchor] - idx[l[0]]
	if d < 0 {
		d = -d
	}
	return len(path)+1 > d
}

// landings lists the optimal-path cells other than anchor next to p.
func landings(m *maze.Maze, idx map[maze.Position]int, anchor, p maze.Position) []maze.Position {
	var out []maze.Position
	for _, q := range m.PassableNeighbors(p) {
		if _, on := idx[q]; on && q != anchor {
			out = append(out, q)
		}
	}
	return out
}

// ChangeMaze carves the staged corridor.
func (o *NewPath) ChangeMaze(m *maze.Maze) (bool, error) {
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
