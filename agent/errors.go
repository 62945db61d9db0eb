package agent

import "errors"

var (
	// ErrUnknownState indicates a Q-table lookup for a state never added.
	ErrUnknownState = errors.New("agent: unknown state")
	// ErrUnknownAction indicates a Q-table lookup for an action absent from a known state.
	ErrUnknownAction = errors.New("agent: unknown action for state")
	// ErrInvalidParameter indicates an out-of-range learning rate or discount.
	ErrInvalidParameter = errors.New("agent: invalid parameter")
	// ErrNoAction indicates that the agent stands on a node without passable neighbors.
	ErrNoAction = errors.New("agent: no legal action")
	// ErrNilDependency indicates a nil maze, Q-table or policy.
	ErrNilDependency = errors.New("agent: nil maze, q-table or policy")
)
