package criterion

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlmaze/maze"
)

var (
	// ErrInvalidParameter indicates an out-of-range criterion argument.
	ErrInvalidParameter = errors.New("criterion: invalid parameter")
	// ErrUnknownCriterion is returned by Parse for an unregistered name.
	ErrUnknownCriterion = errors.New("criterion: unknown criterion")
	// ErrExpression indicates an expression that does not compile to a boolean.
	ErrExpression = errors.New("criterion: invalid expression")
)

// Snapshot is the training state a criterion inspects. Field tags name the
// variables visible to Expr.
type Snapshot struct {
	Level         int           `expr:"level"`          // 1-based
	Episode       int           `expr:"episode"`        // 1-based within the level
	Actions       int           `expr:"actions"`        // this episode
	Reward        float64       `expr:"reward"`         // this episode
	TotalActions  int           `expr:"total_actions"`  // whole run
	Position      maze.Position `expr:"position"`       // agent cell
	AtEnd         bool          `expr:"at_end"`         // agent stands on the end node
	OptimalLength int           `expr:"optimal_length"` // moves on the current optimal path
}

// Criterion is a stop condition.
type Criterion interface {
	IsMet(s Snapshot) bool
	Reset()
	Label() string
}

// EndReached is met when the agent stands on the end node.
type EndReached struct{}

func (EndReached) IsMet(s Snapshot) bool { return s.AtEnd }
func (EndReached) Reset()                {}
func (EndReached) Label() string         { return "end-reached" }

// MaxActions is met once an episode has taken N actions.
type MaxActions struct{ N int }

// NewMaxActions validates n ≥ 1.
func NewMaxActions(n int) (*MaxActions, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: max-actions=%d", ErrInvalidParameter, n)
	}
	return &MaxActions{N: n}, nil
}

func (c *MaxActions) IsMet(s Snapshot) bool { return s.Actions >= c.N }
func (c *MaxActions) Reset()                {}
func (c *MaxActions) Label() string         { return fmt.Sprintf("max-actions:%d", c.N) }

// Episodes is met once the level has run N episodes.
type Episodes struct{ N int }

// NewEpisodes validates n ≥ 1.
func NewEpisodes(n int) (*Episodes, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: episodes=%d", ErrInvalidParameter, n)
	}
	return &Episodes{N: n}, nil
}

func (c *Episodes) IsMet(s Snapshot) bool { return s.Episode >= c.N }
func (c *Episodes) Reset()                {}
func (c *Episodes) Label() string         { return fmt.Sprintf("episodes:%d", c.N) }

// streak counts consecutive observations that satisfy ok.
type streak struct {
	name string
	k    int
	run  int
	ok   func(Snapshot) bool
}

func newStreak(name string, k int, ok func(Snapshot) bool) (*streak, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: %s=%d", ErrInvalidParameter, name, k)
	}
	return &streak{name: name, k: k, ok: ok}, nil
}

func (c *streak) IsMet(s Snapshot) bool {
	if c.ok(s) {
		c.run++
	} else {
		c.run = 0
	}
	return c.run >= c.k
}

func (c *streak) Reset()        { c.run = 0 }
func (c *streak) Label() string { return fmt.Sprintf("%s:%d", c.name, c.k) }

// NewConsecutiveOptimal is met after k consecutive episodes that reached
// the end in exactly the optimal number of actions.
func NewConsecutiveOptimal(k int) (Criterion, error) {
	return newStreak("consecutive-optimal", k, func(s Snapshot) bool {
		return s.AtEnd && s.Actions == s.OptimalLength
	})
}

// NewConsecutiveSuccess is met after k consecutive episodes that reached the end.
func NewConsecutiveSuccess(k int) (Criterion, error) {
	return newStreak("consecutive-success", k, func(s Snapshot) bool { return s.AtEnd })
}
