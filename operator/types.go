// Package operator defines the budgeted maze mutations that build the
// curriculum: Resize, NewPath, DeadEnd and ChangeOptimalPath, plus the
// driver that spends a level's budget across them.
package operator

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlmaze/maze"
)

// Sentinel errors for operator construction and application.
var (
	// ErrInvalidParameter indicates an out-of-range construction parameter.
	ErrInvalidParameter = errors.New("operator: invalid parameter")

	// ErrUnknownOperator is returned by New for an unregistered name.
	ErrUnknownOperator = errors.New("operator: unknown operator")

	// ErrBrokenMaze indicates that an applied change disconnected start and
	// end; the change has been rolled back.
	ErrBrokenMaze = errors.New("operator: change would disconnect start and end")
)

// Kind tags the operator variant.
type Kind int

const (
	// KindResize grows the grid and moves the end.
	KindResize Kind = iota
	// KindNewPath adds a corridor parallel to the optimal path.
	KindNewPath
	// KindDeadEnd adds a branch that leads nowhere.
	KindDeadEnd
	// KindChangeOptimalPath walls off an optimal-path cell to force a detour.
	KindChangeOptimalPath
)

// kindNames are the registry names, indexed by Kind.
var kindNames = [...]string{"resize", "new-path", "dead-end", "change-optimal-path"}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Operator is the two-phase mutation protocol.
//
// EstimateCost inspects m, stages one change whose cost fits budget and
// returns that cost, or 0 when no legal change fits. It discards any change
// staged earlier.
//
// ChangeMaze applies the staged change to m and clears it. It returns false
// when nothing is staged.
type Operator interface {
	Kind() Kind
	EstimateCost(m *maze.Maze, budget int) (int, error)
	ChangeMaze(m *maze.Maze) (bool, error)
}

// invalid wraps ErrInvalidParameter with the offending field.
func invalid(op, field string, v any) error {
	return fmt.Errorf("%w: %s.%s=%v", ErrInvalidParameter, op, field, v)
}
