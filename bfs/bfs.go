// Package bfs provides breadth-first search over the passable cells of a
// maze.Maze, returning hop distances, parent links, and visit order.
//
// Operators use it to confirm that start and end are still connected before
// declaring a mutation successful.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/lvlmaze/maze"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	pos   maze.Position
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	m       *maze.Maze
	opts    BFSOptions
	queue   []queueItem
	visited map[maze.Position]bool
	res     *BFSResult
}

// BFS runs breadth-first search on m starting from start,
// applying any number of functional Options.
// Returns ErrMazeNil or ErrStartNotPassable for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS(m *maze.Maze, start maze.Position, opts ...Option) (*BFSResult, error) {
	if m == nil {
		return nil, ErrMazeNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !m.Passable(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartNotPassable, start)
	}

	n := m.Width() * m.Height()
	w := &walker{
		m:       m,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[maze.Position]bool, n),
		res: &BFSResult{
			Order:  make([]maze.Position, 0, n),
			Depth:  make(map[maze.Position]int, n),
			Parent: make(map[maze.Position]maze.Position, n),
		},
	}

	// Seed queue with the start cell (no parent)
	w.visited[start] = true
	w.res.Depth[start] = 0
	w.queue = append(w.queue, queueItem{pos: start})

	return w.res, w.loop()
}

// loop processes the queue until empty or a hook error.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.pos)
		if err := w.opts.OnVisit(item.pos, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.pos, err)
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each unseen
// passable neighbor in Up, Right, Down, Left order.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.m.PassableNeighbors(item.pos) {
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.pos, nbr) {
			continue
		}
		w.visited[nbr] = true
		w.res.Depth[nbr] = nextDepth
		w.res.Parent[nbr] = item.pos
		w.queue = append(w.queue, queueItem{pos: nbr, depth: nextDepth})
	}
}

// Reachable reports whether a passable route leads from `from` to `to`.
// Off-grid or impassable endpoints are unreachable.
// Complexity: O(W×H).
func Reachable(m *maze.Maze, from, to maze.Position, opts ...Option) bool {
	if m == nil || !m.Passable(to) {
		return false
	}
	res, err := BFS(m, from, opts...)
	if err != nil {
		return false
	}
	_, ok := res.Depth[to]
	return ok
}

// Distances returns the hop distance from `from` to every reachable cell.
func Distances(m *maze.Maze, from maze.Position, opts ...Option) (map[maze.Position]int, error) {
	res, err := BFS(m, from, opts...)
	if err != nil {
		return nil, err
	}
	return res.Depth, nil
}

// Solvable reports whether the maze's end is reachable from its start.
func Solvable(m *maze.Maze) bool {
	return m != nil && Reachable(m, m.Start(), m.End())
}
