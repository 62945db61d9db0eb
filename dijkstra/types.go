// Package dijkstra defines core types and configuration options
// for shortest-path search over the passable cells of a maze.Maze.
//
// Edge cost is the negated reward of the destination cell, so every move
// onto an ordinary way cell costs -ActionReward > 0. Only the target may carry
// a negative cost (the end reward), and it is never expanded.
//
// Options:
//
//	– Source(p):       starting cell (default: maze start).
//	– Target(p):       destination cell (default: maze end).
//	– WithBlocked(ps): cells treated as walls for this query only.
//
// Errors (sentinel):
//
//	– ErrNilMaze           if the provided maze pointer is nil.
//	– ErrSourceNotPassable if the source cell is a wall or off-grid.
//	– ErrTargetNotPassable if the target cell is a wall or off-grid.
//	– ErrNegativeCost      if a non-target cell has a positive reward.
//	– ErrNoPath            if the target cannot be reached.
package dijkstra

import (
	"errors"

	"github.com/katalvlaran/lvlmaze/maze"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilMaze indicates that a nil *maze.Maze was passed.
	ErrNilMaze = errors.New("dijkstra: maze is nil")

	// ErrSourceNotPassable indicates a source on a wall or outside the grid.
	ErrSourceNotPassable = errors.New("dijkstra: source is not passable")

	// ErrTargetNotPassable indicates a target on a wall or outside the grid.
	ErrTargetNotPassable = errors.New("dijkstra: target is not passable")

	// ErrNegativeCost indicates a positive reward on an intermediate cell.
	ErrNegativeCost = errors.New("dijkstra: negative move cost on an intermediate cell")

	// ErrNoPath indicates that the target is unreachable from the source.
	ErrNoPath = errors.New("dijkstra: no path from source to target")
)

// Options configures the behavior of ShortestPath.
//
// Source, Target – endpoints; DefaultOptions uses the maze's start/end.
// Blocked        – cells treated as impassable for this query.
type Options struct {
	Source  maze.Position
	Target  maze.Position
	Blocked map[maze.Position]struct{}
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// Source sets the starting cell of the search.
func Source(p maze.Position) Option {
	return func(o *Options) {
		o.Source = p
	}
}

// Target sets the destination cell of the search.
func Target(p maze.Position) Option {
	return func(o *Options) {
		o.Target = p
	}
}

// WithBlocked treats ps as walls without touching the maze.
// Blocking the source or target makes them not passable.
func WithBlocked(ps ...maze.Position) Option {
	return func(o *Options) {
		if o.Blocked == nil {
			o.Blocked = make(map[maze.Position]struct{}, len(ps))
		}
		for _, p := range ps {
			o.Blocked[p] = struct{}{}
		}
	}
}

// DefaultOptions returns an Options struct whose endpoints are the maze's
// start and end.
func DefaultOptions(m *maze.Maze) Options {
	return Options{Source: m.Start(), Target: m.End()}
}

// Result is an optimal route from source to target.
type Result struct {
	// Path lists every cell from source to target inclusive.
	Path []maze.Position
	// Cost is the sum of move costs along Path.
	Cost float64
}

// Length returns the number of moves on the path: len(Path) − 1.
func (r *Result) Length() int {
	if r == nil || len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// Index returns the position of p on the path, or -1.
func (r *Result) Index(p maze.Position) int {
	for i, q := range r.Path {
		if q == p {
			return i
		}
	}
	return -1
}

// Contains reports whether p lies on the path.
func (r *Result) Contains(p maze.Position) bool {
	return r.Index(p) >= 0
}

// Set returns the path cells as a set.
func (r *Result) Set() map[maze.Position]struct{} {
	s := make(map[maze.Position]struct{}, len(r.Path))
	for _, p := range r.Path {
		s[p] = struct{}{}
	}
	return s
}
