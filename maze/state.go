package maze

import (
	"fmt"
	"strings"
)

// stateCap is the upper bound of one encoded neighbor: letter + "[r=255,g=255,b=255]".
const stateCap = 8 * 20

// State returns the perceptual state of the node at p: its 8 Moore neighbors
// clockwise from Up, each encoded as "{letter}[r=..,g=..,b=..]" or as
// BorderMarker when outside the grid.
//
// Two nodes with identical neighborhoods share a state regardless of
// their coordinates.
// Complexity: O(1).
func (m *Maze) State(p Position) (string, error) {
	if !m.InBounds(p) {
		return "", fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	var sb strings.Builder
	sb.Grow(stateCap)
	for _, d := range Offsets8 {
		q := p.Add(d[0], d[1])
		if !m.InBounds(q) {
			sb.WriteString(BorderMarker)
			continue
		}
		n := m.nodes[m.index(q)]
		sb.WriteByte(n.Type.Letter())
		sb.WriteString(n.Color.String())
	}
	return sb.String(), nil
}

// MustState is like State but panics on an out-of-bounds position.
func (m *Maze) MustState(p Position) string {
	s, err := m.State(p)
	if err != nil {
		panic(err)
	}
	return s
}
