package agent

// Policy chooses the next action for a state given the Q-values of its
// legal actions. values is never empty and is owned by the caller.
type Policy interface {
	Select(state string, values map[Action]float64) (Action, error)
}

// Transition describes a completed Q-update.
type Transition struct {
	State     string  // state the action was taken from
	Neighbors int     // passable neighbors of the node left behind
	Action    Action  // action taken
	OldQ      float64 // Q(State, Action) before the update
	NewQ      float64 // Q(State, Action) after the update
}

// PostProcessor is implemented by policies that adapt after every update.
type PostProcessor interface {
	PostProcess(t Transition) error
}
