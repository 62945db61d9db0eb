package agent

import (
	"fmt"
	"math"
	"sort"
)

// QTable maps a perceptual state to the estimated value of each legal action.
//
// Rows are created in bulk by Add the first time a state is seen. Reading a
// state or action that was never added is a programmer error and reported as
// ErrUnknownState or ErrUnknownAction.
//
// A QTable is not safe for concurrent use.
type QTable struct {
	initial float64
	rows    map[string]map[Action]float64
}

// NewQTable returns an empty table whose new entries start at initial.
func NewQTable(initial float64) *QTable {
	return &QTable{initial: initial, rows: make(map[string]map[Action]float64)}
}

// Initial returns the value assigned to new entries.
func (q *QTable) Initial() float64 { return q.initial }

// Add creates the missing entries of state for actions. Existing values are kept.
func (q *QTable) Add(state string, actions []Action) {
	row, ok := q.rows[state]
	if !ok {
		row = make(map[Action]float64, len(actions))
		q.rows[state] = row
	}
	for _, a := range actions {
		if _, seen := row[a]; !seen {
			row[a] = q.initial
		}
	}
}

// Has reports whether state has been added.
func (q *QTable) Has(state string) bool {
	_, ok := q.rows[state]
	return ok
}

// Value returns Q(state, a).
func (q *QTable) Value(state string, a Action) (float64, error) {
	row, ok := q.rows[state]
	if !ok {
		return 0, fmt.Errorf("%w: %.40q", ErrUnknownState, state)
	}
	v, ok := row[a]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownAction, a)
	}
	return v, nil
}

// MustValue is like Value but panics on an unknown state or action.
func (q *QTable) MustValue(state string, a Action) float64 {
	v, err := q.Value(state, a)
	if err != nil {
		panic(err)
	}
	return v
}

// Values returns a copy of the row of state.
func (q *QTable) Values(state string) (map[Action]float64, error) {
	row, ok := q.rows[state]
	if !ok {
		return nil, fmt.Errorf("%w: %.40q", ErrUnknownState, state)
	}
	out := make(map[Action]float64, len(row))
	for a, v := range row {
		out[a] = v
	}
	return out, nil
}

// Set stores Q(state, a) = v. The entry must exist.
func (q *QTable) Set(state string, a Action, v float64) error {
	row, ok := q.rows[state]
	if !ok {
		return fmt.Errorf("%w: %.40q", ErrUnknownState, state)
	}
	if _, ok = row[a]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAction, a)
	}
	row[a] = v
	return nil
}

// Max returns the largest value in the row of state, or 0 for an empty row.
func (q *QTable) Max(state string) (float64, error) {
	row, ok := q.rows[state]
	if !ok {
		return 0, fmt.Errorf("%w: %.40q", ErrUnknownState, state)
	}
	if len(row) == 0 {
		return 0, nil
	}
	best := math.Inf(-1)
	for _, v := range row {
		if v > best {
			best = v
		}
	}
	return best, nil
}

// Len returns the number of known states.
func (q *QTable) Len() int { return len(q.rows) }

// States returns the known states in lexical order.
func (q *QTable) States() []string {
	out := make([]string, 0, len(q.rows))
	for s := range q.rows {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Reset forgets every state.
func (q *QTable) Reset() { q.rows = make(map[string]map[Action]float64) }

// SortedActions returns the keys of values in canonical order.
func SortedActions(values map[Action]float64) []Action {
	out := make([]Action, 0, len(values))
	for _, a := range AllActions {
		if _, ok := values[a]; ok {
			out = append(out, a)
		}
	}
	return out
}
