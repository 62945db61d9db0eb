// Package dfs implements loop detection over the passable cells of a maze.
// DetectLoops runs a depth-first search from the start with three-color
// marking; a move onto a Gray cell other than the parent closes a loop.
// Loops are deduplicated by member-set equality and returned in discovery
// order.
//
// Complexity:
//
//   - Time:   O(C + L·ℓ log ℓ)   (C=#cells, L=#loops, ℓ=avg loop length)
//   - Memory: O(C)
package dfs

import (
	"github.com/katalvlaran/lvlmaze/maze"
)

// DetectLoops enumerates the loops reachable from the maze start.
// An unplaced or walled start yields no loops.
func DetectLoops(m *maze.Maze) ([]Loop, error) {
	if m == nil {
		return nil, ErrMazeNil
	}
	if !m.Passable(m.Start()) {
		return nil, nil
	}

	w := &loopWalker{
		m:     m,
		state: make(map[maze.Position]int),
		seen:  make(map[string]struct{}),
	}
	w.visit(m.Start(), maze.Position{X: -1, Y: -1})

	return w.loops, nil
}

// loopWalker holds the mutable DFS state.
type loopWalker struct {
	m     *maze.Maze
	state map[maze.Position]int
	path  []maze.Position
	seen  map[string]struct{}
	loops []Loop
}

// visit performs recursive DFS from p, skipping the trivial move back to parent.
func (w *loopWalker) visit(p, parent maze.Position) {
	// 1) Mark Gray and push onto the path stack.
	w.state[p] = Gray
	w.path = append(w.path, p)

	// 2) Explore passable neighbors in Up, Right, Down, Left order.
	for _, q := range w.m.PassableNeighbors(p) {
		if q == parent {
			continue
		}
		switch w.state[q] {
		case White:
			w.visit(q, p)
		case Gray:
			w.record(q)
		}
	}

	// 3) Backtrack.
	w.path = w.path[:len(w.path)-1]
	w.state[p] = Black
}

// record extracts the loop from the stack segment starting at head and keeps
// it if its member set is new.
func (w *loopWalker) record(head maze.Position) {
	idx := IndexOf(w.path, head)
	seg := w.path[idx:]
	sig := SetSig(seg)
	if _, dup := w.seen[sig]; dup {
		return
	}
	w.seen[sig] = struct{}{}
	w.loops = append(w.loops, canonical(seg))
}

// ParallelRoutes keeps the loops that reconnect to path at two separate
// points: at least two distinct members have a passable neighbor on path.
// Complexity: O(Σ|loop| + |path|).
func ParallelRoutes(m *maze.Maze, loops []Loop, path []maze.Position) []Loop {
	if m == nil || len(path) == 0 {
		return nil
	}
	onPath := make(map[maze.Position]struct{}, len(path))
	for _, p := range path {
		onPath[p] = struct{}{}
	}

	var out []Loop
	for _, l := range loops {
		touching := 0
		for _, member := range l {
			for _, q := range m.PassableNeighbors(member) {
				if _, ok := onPath[q]; ok {
					touching++
					break
				}
			}
			if touching >= 2 {
				out = append(out, l)
				break
			}
		}
	}
	return out
}

// Members returns the union of all loop members as a set.
func Members(loops []Loop) map[maze.Position]struct{} {
	s := make(map[maze.Position]struct{})
	for _, l := range loops {
		for _, p := range l {
			s[p] = struct{}{}
		}
	}
	return s
}
