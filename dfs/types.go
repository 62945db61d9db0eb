// Package dfs defines types and options for depth-first analysis of a
// maze.Maze: loop detection, the parallel-route filter, and randomized
// bounded path search through walls.
package dfs

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvlmaze/maze"
	"github.com/katalvlaran/lvlmaze/rng"
)

// Cell visitation states.
const (
	White = iota // White: the cell has not been visited yet.
	Gray         // Gray: the cell is on the current DFS stack.
	Black        // Black: the cell and all its descendants are fully explored.
)

var (
	// ErrMazeNil is returned when a nil *maze.Maze is passed.
	ErrMazeNil = errors.New("dfs: maze is nil")

	// ErrRootOutOfBounds indicates a RandomPath root outside the grid.
	ErrRootOutOfBounds = errors.New("dfs: root out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")

	// ErrNoCandidate indicates that RandomPath found no acceptable path
	// within its expansion limit.
	ErrNoCandidate = errors.New("dfs: no acceptable path")
)

// Loop is a simple cycle of passable cells. Members are listed in cycle
// order, rotated to begin at the row-major smallest cell.
type Loop []maze.Position

// Contains reports whether p is a member of l.
func (l Loop) Contains(p maze.Position) bool {
	return IndexOf(l, p) >= 0
}

// DefaultExpansionLimit bounds the number of cells RandomPath pushes.
const DefaultExpansionLimit = 10_000

// Option configures RandomPath.
type Option func(*PathOptions)

// PathOptions holds the parameters of a randomized bounded path search.
type PathOptions struct {
	// Rand drives the neighbor shuffles; defaults to rng.New(rng.DefaultSeed).
	Rand *rand.Rand

	// MinLength and MaxLength bound the number of new cells (1 ≤ Min ≤ Max).
	MinLength, MaxLength int

	// Step reports whether next may extend path (path excludes the root).
	Step func(path []maze.Position, next maze.Position) bool

	// Accept reports whether path is a finished result. It is consulted only
	// when MinLength ≤ len(path) ≤ MaxLength.
	Accept func(path []maze.Position) bool

	// ExpansionLimit caps the number of pushed cells over the whole search.
	ExpansionLimit int

	// internal error recorded during option parsing
	err error
}

// DefaultPathOptions returns PathOptions with:
//   - a generator seeded with rng.DefaultSeed
//   - lengths [1, 1]
//   - no step or accept constraints
//   - ExpansionLimit = DefaultExpansionLimit
func DefaultPathOptions() PathOptions {
	return PathOptions{
		Rand:           nil,
		MinLength:      1,
		MaxLength:      1,
		Step:           func([]maze.Position, maze.Position) bool { return true },
		Accept:         func([]maze.Position) bool { return true },
		ExpansionLimit: DefaultExpansionLimit,
	}
}

// WithRand sets the generator used for neighbor shuffles. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("dfs: WithRand(nil)")
	}
	return func(o *PathOptions) {
		o.Rand = r
	}
}

// WithLength bounds the number of new cells to [min, max].
// min < 1 or max < min is recorded as ErrOptionViolation.
func WithLength(min, max int) Option {
	return func(o *PathOptions) {
		if min < 1 || max < min {
			o.err = fmt.Errorf("%w: length bounds [%d,%d]", ErrOptionViolation, min, max)
			return
		}
		o.MinLength, o.MaxLength = min, max
	}
}

// WithStep installs a per-cell constraint.
func WithStep(fn func(path []maze.Position, next maze.Position) bool) Option {
	return func(o *PathOptions) {
		if fn != nil {
			o.Step = fn
		}
	}
}

// WithAccept installs the completion predicate.
func WithAccept(fn func(path []maze.Position) bool) Option {
	return func(o *PathOptions) {
		if fn != nil {
			o.Accept = fn
		}
	}
}

// WithExpansionLimit caps the total number of pushed cells.
// n < 1 is recorded as ErrOptionViolation.
func WithExpansionLimit(n int) Option {
	return func(o *PathOptions) {
		if n < 1 {
			o.err = fmt.Errorf("%w: expansion limit %d", ErrOptionViolation, n)
			return
		}
		o.ExpansionLimit = n
	}
}

// resolve applies opts over the defaults.
func resolve(opts []Option) (PathOptions, error) {
	o := DefaultPathOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if o.Rand == nil {
		o.Rand = rng.New(rng.DefaultSeed)
	}
	return o, nil
}
