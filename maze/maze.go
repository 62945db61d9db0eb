package maze

import (
	"fmt"
	"strings"
)

// Maze is a rectangular grid of nodes with a distinguished start and end.
type Maze struct {
	width, height int
	nodes         []Node
	start, end    Position
	factory       *Factory
}

// New constructs a width×height maze filled with wall nodes built by f.
// Start and end are unplaced (-1,-1) until SetStart / MoveEnd place them.
// Returns ErrNilFactory or ErrTooSmall for invalid input.
// Complexity: O(W×H).
func New(width, height int, f *Factory) (*Maze, error) {
	if f == nil {
		return nil, ErrNilFactory
	}
	if width < MinSide || height < MinSide {
		return nil, fmt.Errorf("%w: got %d×%d", ErrTooSmall, width, height)
	}
	m := &Maze{
		width:   width,
		height:  height,
		nodes:   make([]Node, width*height),
		start:   Position{X: -1, Y: -1},
		end:     Position{X: -1, Y: -1},
		factory: f,
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := Position{X: x, Y: y}
			m.nodes[m.index(p)] = f.NewNode(p, Impassable, false)
		}
	}

	return m, nil
}

// Width returns the number of columns.
func (m *Maze) Width() int { return m.width }

// Height returns the number of rows.
func (m *Maze) Height() int { return m.height }

// Start returns the start position.
func (m *Maze) Start() Position { return m.start }

// End returns the end position.
func (m *Maze) End() Position { return m.end }

// Factory returns the NodeFactory that builds this maze's nodes.
func (m *Maze) Factory() *Factory { return m.factory }

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (m *Maze) InBounds(p Position) bool {
	return p.X >= 0 && p.X < m.width && p.Y >= 0 && p.Y < m.height
}

// OnBorder reports whether p lies on the outermost ring of the grid.
func (m *Maze) OnBorder(p Position) bool {
	return p.X == 0 || p.Y == 0 || p.X == m.width-1 || p.Y == m.height-1
}

// index maps p to its row-major arena index: y*Width + x.
func (m *Maze) index(p Position) int {
	return p.Y*m.width + p.X
}

// Node returns a copy of the node at p and whether p is in bounds.
func (m *Maze) Node(p Position) (Node, bool) {
	if !m.InBounds(p) {
		return Node{}, false
	}
	return m.nodes[m.index(p)], true
}

// Passable reports whether p is in bounds and passable.
func (m *Maze) Passable(p Position) bool {
	return m.InBounds(p) && m.nodes[m.index(p)].Type == Passable
}

// Reward returns the reward of the node at p (−∞ outside the grid).
func (m *Maze) Reward(p Position) float64 {
	if !m.InBounds(p) {
		return m.factory.RewardFor(Impassable, false)
	}
	return m.nodes[m.index(p)].Reward
}

// SetType changes the type of the node at p, updating its reward and,
// when the current color does not already look like t, its color.
// Start and end cannot be made impassable.
func (m *Maze) SetType(p Position, t NodeType) error {
	if !m.InBounds(p) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	if t == Impassable && (p == m.start || p == m.end) {
		return fmt.Errorf("%w: %v", ErrProtectedNode, p)
	}
	n := &m.nodes[m.index(p)]
	n.Type = t
	n.Reward = m.factory.RewardFor(t, p == m.end)
	if !m.factory.LooksLike(n.Color, t) {
		n.Color = m.factory.ColorFor(t)
	}
	return nil
}

// SetReward overrides the reward of the node at p.
func (m *Maze) SetReward(p Position, reward float64) error {
	if !m.InBounds(p) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	m.nodes[m.index(p)].Reward = reward
	return nil
}

// SetStart places the start on the passable node p.
func (m *Maze) SetStart(p Position) error {
	if !m.InBounds(p) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	if m.nodes[m.index(p)].Type != Passable {
		return fmt.Errorf("%w: start %v", ErrNotPassable, p)
	}
	m.start = p
	return nil
}

// MoveEnd relocates the end to the passable node p. The previous end becomes
// an ordinary way node; p receives the end reward.
func (m *Maze) MoveEnd(p Position) error {
	if !m.InBounds(p) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	if m.nodes[m.index(p)].Type != Passable {
		return fmt.Errorf("%w: end %v", ErrNotPassable, p)
	}
	old := m.end
	m.end = p
	if m.InBounds(old) && m.nodes[m.index(old)].Type == Passable {
		m.nodes[m.index(old)].Reward = m.factory.RewardFor(Passable, false)
	}
	m.nodes[m.index(p)].Reward = m.factory.RewardFor(Passable, true)
	return nil
}

// Neighbors4 returns the in-bounds orthogonal neighbors of p in
// Up, Right, Down, Left order.
func (m *Maze) Neighbors4(p Position) []Position {
	out := make([]Position, 0, 4)
	for _, d := range Offsets4 {
		q := p.Add(d[0], d[1])
		if m.InBounds(q) {
			out = append(out, q)
		}
	}
	return out
}

// PassableNeighbors returns the passable orthogonal neighbors of p in
// Up, Right, Down, Left order.
func (m *Maze) PassableNeighbors(p Position) []Position {
	out := make([]Position, 0, 4)
	for _, d := range Offsets4 {
		q := p.Add(d[0], d[1])
		if m.Passable(q) {
			out = append(out, q)
		}
	}
	return out
}

// Passables returns every passable position in row-major order.
func (m *Maze) Passables() []Position {
	out := make([]Position, 0)
	for i := range m.nodes {
		if m.nodes[i].Type == Passable {
			out = append(out, m.nodes[i].Pos)
		}
	}
	return out
}

// Resize grows the grid by dw columns on the right and dh rows at the bottom.
// New cells are walls built by the factory. Start and end keep their positions.
// Complexity: O(W'×H').
func (m *Maze) Resize(dw, dh int) error {
	if dw < 0 || dh < 0 || dw+dh == 0 {
		return fmt.Errorf("%w: dw=%d dh=%d", ErrBadResize, dw, dh)
	}
	w, h := m.width+dw, m.height+dh
	nodes := make([]Node, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := Position{X: x, Y: y}
			if m.InBounds(p) {
				nodes[y*w+x] = m.nodes[m.index(p)]
				continue
			}
			nodes[y*w+x] = m.factory.NewNode(p, Impassable, false)
		}
	}
	m.width, m.height, m.nodes = w, h, nodes
	return nil
}

// Clone returns a deep copy of the maze sharing the same factory.
func (m *Maze) Clone() *Maze {
	c := *m
	c.nodes = append([]Node(nil), m.nodes...)
	return &c
}

// Equal reports whether two mazes have identical dimensions, endpoints and nodes.
func (m *Maze) Equal(o *Maze) bool {
	if m.width != o.width || m.height != o.height || m.start != o.start || m.end != o.end {
		return false
	}
	for i := range m.nodes {
		if m.nodes[i] != o.nodes[i] {
			return false
		}
	}
	return true
}

// String renders the maze as ASCII: '#' wall, '.' way, 'S' start, 'E' end.
func (m *Maze) String() string {
	var sb strings.Builder
	sb.Grow((m.width + 1) * m.height)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			sb.WriteByte(m.Glyph(Position{X: x, Y: y}))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Glyph returns the ASCII glyph of the node at p used by String.
func (m *Maze) Glyph(p Position) byte {
	switch {
	case p == m.start:
		return 'S'
	case p == m.end:
		return 'E'
	case m.Passable(p):
		return '.'
	default:
		return '#'
	}
}
