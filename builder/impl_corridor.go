// SPDX-License-Identifier: MIT
// Package: lvlmaze/builder
//
// impl_corridor.go - implementation of Corridor(length, orientation).
//
// Contract:
//   - length ≥ 2 (else ErrTooFewNodes).
//   - Grid: (length + 2·margin) × (1 + 2·margin) for Horizontal, transposed for Vertical.
//   - Corridor cells are carved in increasing index order; start is the first, end the last.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(W×H) for the wall fill + O(length) carving.
//   - Space: O(W×H).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlmaze/maze"
)

// File-local constants for method tagging and parameter minima.
const (
	methodCorridor   = "Corridor"
	minCorridorNodes = 2
)

// Orientation selects the axis of the initial corridor.
type Orientation int

const (
	// Horizontal corridors run left to right.
	Horizontal Orientation = iota
	// Vertical corridors run top to bottom.
	Vertical
)

// String implements fmt.Stringer.
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// ParseOrientation maps "horizontal"/"vertical" (or "h"/"v") to an Orientation.
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "horizontal", "h":
		return Horizontal, nil
	case "vertical", "v":
		return Vertical, nil
	}
	return 0, fmt.Errorf("%q: %w", s, ErrBadOrientation)
}

// Corridor returns a Constructor that builds a straight corridor of length
// passable nodes surrounded by cfg.margin rings of walls.
func Corridor(length int, o Orientation) Constructor {
	return func(f *maze.Factory, cfg builderConfig) (*maze.Maze, error) {
		if length < minCorridorNodes {
			return nil, fmt.Errorf("%s: length=%d < min=%d: %w", methodCorridor, length, minCorridorNodes, ErrTooFewNodes)
		}
		if o != Horizontal && o != Vertical {
			return nil, fmt.Errorf("%s: %w", methodCorridor, ErrBadOrientation)
		}

		long, short := length+2*cfg.margin, 1+2*cfg.margin
		w, h, dx, dy := long, short, 1, 0
		if o == Vertical {
			w, h, dx, dy = short, long, 0, 1
		}
		m, err := maze.New(w, h, f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodCorridor, err)
		}

		first := maze.Position{X: cfg.margin, Y: cfg.margin}
		var p maze.Position
		for i := 0; i < length; i++ {
			p = first.Add(i*dx, i*dy)
			if err = m.SetType(p, maze.Passable); err != nil {
				return nil, fmt.Errorf("%s: SetType(%v): %w", methodCorridor, p, err)
			}
		}
		if err = m.SetStart(first); err != nil {
			return nil, fmt.Errorf("%s: %w", methodCorridor, err)
		}
		// p holds the last carved cell.
		if err = m.MoveEnd(p); err != nil {
			return nil, fmt.Errorf("%s: %w", methodCorridor, err)
		}

		return m, nil
	}
}
