package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvlmaze/maze"
	"github.com/katalvlaran/lvlmaze/rng"
)

// frame is one level of the explicit RandomPath stack.
type frame struct {
	cands []maze.Position
	next  int
}

// RandomPath runs a randomized depth-first search that carves a corridor of
// wall cells starting next to root. Candidate cells are:
//
//   - impassable and not on the grid border,
//   - not yet on the path and orthogonally adjacent to no path cell other
//     than the current tip (the corridor stays one cell wide),
//   - allowed by the Step option.
//
// Neighbor order is shuffled with the configured generator at every level.
// The first path whose length lies in [MinLength, MaxLength] and satisfies
// Accept is returned; the root itself is not part of the result.
// Returns ErrNoCandidate when the search space or ExpansionLimit is exhausted.
//
// Complexity: O(ExpansionLimit) time, O(MaxLength) space.
func RandomPath(m *maze.Maze, root maze.Position, opts ...Option) ([]maze.Position, error) {
	if m == nil {
		return nil, ErrMazeNil
	}
	if !m.InBounds(root) {
		return nil, fmt.Errorf("%w: %v", ErrRootOutOfBounds, root)
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	path := make([]maze.Position, 0, o.MaxLength)
	stack := []frame{{cands: candidates(m, root, path, o)}}
	pushed := 0

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next >= len(top.cands) {
			// exhausted: pop the frame and the cell that opened it
			stack = stack[:len(stack)-1]
			if len(path) > 0 {
				path = path[:len(path)-1]
			}
			continue
		}
		q := top.cands[top.next]
		top.next++

		if pushed >= o.ExpansionLimit {
			break
		}
		pushed++
		path = append(path, q)

		if len(path) >= o.MinLength && o.Accept(path) {
			return append([]maze.Position(nil), path...), nil
		}
		if len(path) >= o.MaxLength {
			path = path[:len(path)-1]
			continue
		}
		stack = append(stack, frame{cands: candidates(m, q, path, o)})
	}

	return nil, fmt.Errorf("%w: root %v after %d expansions", ErrNoCandidate, root, pushed)
}

// candidates lists the shuffled cells that may follow tip.
func candidates(m *maze.Maze, tip maze.Position, path []maze.Position, o PathOptions) []maze.Position {
	out := make([]maze.Position, 0, 4)
	for _, q := range m.Neighbors4(tip) {
		if m.Passable(q) || m.OnBorder(q) || IndexOf(path, q) >= 0 {
			continue
		}
		if touchesBody(q, path) {
			continue
		}
		if !o.Step(path, q) {
			continue
		}
		out = append(out, q)
	}
	rng.Shuffle(out, o.Rand)
	return out
}

// touchesBody reports whether q is adjacent to a path cell other than the tip.
func touchesBody(q maze.Position, path []maze.Position) bool {
	for i := 0; i < len(path)-1; i++ {
		if adjacent(q, path[i]) {
			return true
		}
	}
	return false
}
