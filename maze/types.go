package maze

import (
	"fmt"
	"math"
	"strconv"
)

// NodeType classifies a maze cell as walkable or not.
type NodeType int

const (
	// Impassable cells are walls; their reward is −∞.
	Impassable NodeType = iota
	// Passable cells are ways (including start and end).
	Passable
)

// Letter returns the single-letter code used by the state encoding.
func (t NodeType) Letter() byte {
	if t == Passable {
		return 'P'
	}
	return 'I'
}

// String implements fmt.Stringer.
func (t NodeType) String() string {
	if t == Passable {
		return "Passable"
	}
	return "Impassable"
}

// Position is an integer grid coordinate. X grows rightward, Y downward.
type Position struct {
	X, Y int
}

// Add returns p shifted by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// String implements fmt.Stringer.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Color is an RGB triple drawn from one of the factory palettes.
type Color struct {
	R, G, B uint8
}

// Brightness returns the HSP perceived brightness of c in [0, 255]:
// sqrt(0.299·R² + 0.587·G² + 0.114·B²).
func (c Color) Brightness() float64 {
	r, g, b := float64(c.R), float64(c.G), float64(c.B)
	return math.Sqrt(0.299*r*r + 0.587*g*g + 0.114*b*b)
}

// String renders the color as "[r=..,g=..,b=..]".
func (c Color) String() string {
	buf := make([]byte, 0, 20)
	buf = append(buf, "[r="...)
	buf = strconv.AppendUint(buf, uint64(c.R), 10)
	buf = append(buf, ",g="...)
	buf = strconv.AppendUint(buf, uint64(c.G), 10)
	buf = append(buf, ",b="...)
	buf = strconv.AppendUint(buf, uint64(c.B), 10)
	buf = append(buf, ']')
	return string(buf)
}

// Node is a single maze cell. Nodes are stored by value inside the Maze
// arena and never reference their maze.
type Node struct {
	Pos    Position // grid coordinate
	Type   NodeType // Passable or Impassable
	Reward float64  // reward for entering the node; −∞ for walls
	Color  Color    // perceptual color from the matching palette
}

// Offsets4 lists the orthogonal neighbor offsets in action order:
// Up, Right, Down, Left.
var Offsets4 = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Offsets8 lists the Moore neighbor offsets clockwise starting at Up:
// Up, UpRight, Right, DownRight, Down, DownLeft, Left, UpLeft.
var Offsets8 = [8][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}

// BorderMarker encodes a Moore neighbor that lies outside the grid.
const BorderMarker = "B[r=-,g=-,b=-]"

// MinSide is the smallest allowed width or height of a maze.
const MinSide = 2
