// Package bfs provides tunable options and error definitions
// for breadth-first search over the passable cells of a maze.Maze.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlmaze/maze"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartNotPassable is returned when the start position is a wall or off-grid.
	ErrStartNotPassable = errors.New("bfs: start position is not passable")

	// ErrMazeNil is returned if a nil maze pointer is passed.
	ErrMazeNil = errors.New("bfs: maze is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrUnreached is returned by PathTo for a position the search never reached.
	ErrUnreached = errors.New("bfs: position not reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// OnVisit is called when visiting a cell. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(p maze.Position, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip moves by returning false.
	// Called for each passable move curr→neighbor.
	FilterNeighbor func(curr, neighbor maze.Position) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all passable neighbors allowed)
//   - no-op OnVisit hook.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		OnVisit:        func(maze.Position, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ maze.Position) bool { return true },
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(p maze.Position, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor maze.Position) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithAvoid is a filter shortcut that treats the given positions as walls.
func WithAvoid(blocked ...maze.Position) Option {
	set := make(map[maze.Position]struct{}, len(blocked))
	for _, p := range blocked {
		set[p] = struct{}{}
	}
	return WithFilterNeighbor(func(_, nbr maze.Position) bool {
		_, skip := set[nbr]
		return !skip
	})
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: cells visited, in visit sequence.
//   - Depth: map from cell to its distance (in moves) from the start.
//   - Parent: map from cell to its predecessor in the BFS tree.
type BFSResult struct {
	Order  []maze.Position
	Depth  map[maze.Position]int
	Parent map[maze.Position]maze.Position
}

// PathTo reconstructs the path from the start cell to dest.
// Returns ErrUnreached if dest was not reached.
func (r *BFSResult) PathTo(dest maze.Position) ([]maze.Position, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnreached, dest)
	}
	// build reversed path
	path := []maze.Position{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
