// SPDX-License-Identifier: MIT
// Package: lvlmaze/builder
//
// impl_layout.go - implementation of Layout(rows...).
//
// Contract:
//   - All rows share one width; at least 2 rows of width ≥ 2 (maze.ErrTooSmall otherwise).
//   - Glyphs: '#' wall, '.' way, 'S' start, 'E' end; exactly one S and one E.
//   - Nodes are carved in row-major order so the usage generator is consumed
//     deterministically.
//
// Complexity: O(W×H).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlmaze/maze"
)

const methodLayout = "Layout"

// Layout returns a Constructor that builds the maze drawn by rows.
func Layout(rows ...string) Constructor {
	return func(f *maze.Factory, _ builderConfig) (*maze.Maze, error) {
		if len(rows) == 0 {
			return nil, fmt.Errorf("%s: no rows: %w", methodLayout, maze.ErrTooSmall)
		}
		w := len(rows[0])
		for y, r := range rows {
			if len(r) != w {
				return nil, fmt.Errorf("%s: row %d has width %d, want %d: %w", methodLayout, y, len(r), w, ErrBadLayout)
			}
		}
		m, err := maze.New(w, len(rows), f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodLayout, err)
		}

		var start, end []maze.Position
		for y, r := range rows {
			for x := 0; x < w; x++ {
				p := maze.Position{X: x, Y: y}
				switch r[x] {
				case '#':
					continue
				case 'S':
					start = append(start, p)
				case 'E':
					end = append(end, p)
				case '.':
				default:
					return nil, fmt.Errorf("%s: glyph %q at %v: %w", methodLayout, r[x], p, ErrBadLayout)
				}
				if err = m.SetType(p, maze.Passable); err != nil {
					return nil, fmt.Errorf("%s: %w", methodLayout, err)
				}
			}
		}
		if len(start) != 1 || len(end) != 1 {
			return nil, fmt.Errorf("%s: %d start and %d end glyphs: %w", methodLayout, len(start), len(end), ErrBadLayout)
		}
		if err = m.SetStart(start[0]); err != nil {
			return nil, fmt.Errorf("%s: %w", methodLayout, err)
		}
		if err = m.MoveEnd(end[0]); err != nil {
			return nil, fmt.Errorf("%s: %w", methodLayout, err)
		}

		return m, nil
	}
}
