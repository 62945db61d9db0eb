package operator

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlmaze/bfs"
	"github.com/katalvlaran/lvlmaze/dfs"
	"github.com/katalvlaran/lvlmaze/dijkstra"
	"github.com/katalvlaran/lvlmaze/maze"
)

// analysis is the structural snapshot an estimate works from. It is
// recomputed on every estimate; mazes change between calls.
type analysis struct {
	sp       *dijkstra.Result
	parallel []dfs.Loop
}

// analyze runs the shortest-path search, and loop detection when loops is set.
func analyze(m *maze.Maze, loops bool) (*analysis, error) {
	sp, err := dijkstra.ShortestPath(m)
	if err != nil {
		return nil, fmt.Errorf("operator: optimal path: %w", err)
	}
	a := &analysis{sp: sp}
	if !loops {
		return a, nil
	}
	all, err := dfs.DetectLoops(m)
	if err != nil {
		return nil, fmt.Errorf("operator: loops: %w", err)
	}
	a.parallel = dfs.ParallelRoutes(m, all, sp.Path)
	return a, nil
}

// route returns the optimal-path cells followed by the remaining
// parallel-route members, each group in row-major order.
func (a *analysis) route() []maze.Position {
	set := a.sp.Set()
	out := append([]maze.Position(nil), a.sp.Path...)
	for _, p := range sortedSet(dfs.Members(a.parallel)) {
		if _, dup := set[p]; !dup {
			out = append(out, p)
		}
	}
	return out
}

// sortedSet lists a position set in row-major order.
func sortedSet(s map[maze.Position]struct{}) []maze.Position {
	out := make([]maze.Position, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sortPositions(out)
	return out
}

func sortPositions(ps []maze.Position) {
	sort.Slice(ps, func(i, j int) bool { return dfs.Less(ps[i], ps[j]) })
}

// carve makes cells passable and verifies solvability, rolling back on failure.
func carve(m *maze.Maze, cells []maze.Position) error {
	for i, p := range cells {
		if err := m.SetType(p, maze.Passable); err != nil {
			rollback(m, cells[:i])
			return fmt.Errorf("operator: carve %v: %w", p, err)
		}
	}
	if !bfs.Solvable(m) {
		rollback(m, cells)
		return ErrBrokenMaze
	}
	return nil
}

// rollback walls cells off again.
func rollback(m *maze.Maze, cells []maze.Position) {
	for _, p := range cells {
		_ = m.SetType(p, maze.Impassable)
	}
}
