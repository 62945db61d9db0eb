package agent

import (
	"fmt"

	"github.com/katalvlaran/lvlmaze/maze"
)

// Action is a move to one of the four orthogonal neighbors.
type Action int

// Canonical action order. Every ordered view of actions uses it.
const (
	Up Action = iota
	Right
	Down
	Left
)

// AllActions lists the actions in canonical order.
var AllActions = [4]Action{Up, Right, Down, Left}

var actionNames = [...]string{"UP", "RIGHT", "DOWN", "LEFT"}

// String implements fmt.Stringer.
func (a Action) String() string {
	if a.Valid() {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Valid reports whether a is one of the four actions.
func (a Action) Valid() bool { return a >= Up && a <= Left }

// Apply returns the position reached from p by a.
func (a Action) Apply(p maze.Position) maze.Position {
	d := maze.Offsets4[a]
	return p.Add(d[0], d[1])
}

// Actions returns the legal actions at p in canonical order: those whose
// target exists and is passable.
func Actions(m *maze.Maze, p maze.Position) []Action {
	out := make([]Action, 0, 4)
	for _, a := range AllActions {
		if m.Passable(a.Apply(p)) {
			out = append(out, a)
		}
	}
	return out
}
