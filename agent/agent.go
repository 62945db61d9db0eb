package agent

import (
	"fmt"

	"github.com/katalvlaran/lvlmaze/maze"
)

// Config holds the Q-learning hyper-parameters.
type Config struct {
	// LearningRate α ∈ (0, 1].
	LearningRate float64
	// Discount γ ∈ [0, 1].
	Discount float64
}

// DefaultConfig returns α = 0.1, γ = 0.9.
func DefaultConfig() Config {
	return Config{LearningRate: 0.1, Discount: 0.9}
}

// Validate reports the first out-of-range field. NaN is out of range.
func (c Config) Validate() error {
	if !(c.LearningRate > 0 && c.LearningRate <= 1) {
		return fmt.Errorf("%w: LearningRate=%v", ErrInvalidParameter, c.LearningRate)
	}
	if !(c.Discount >= 0 && c.Discount <= 1) {
		return fmt.Errorf("%w: Discount=%v", ErrInvalidParameter, c.Discount)
	}
	return nil
}

// Step reports one DoAction.
type Step struct {
	From, To  maze.Position
	Action    Action
	Reward    float64
	OldQ      float64
	NewQ      float64
	State     string
	NextState string
}

// Agent is a tabular Q-learner walking a maze.
type Agent struct {
	cfg    Config
	m      *maze.Maze
	q      *QTable
	policy Policy
	pos    maze.Position

	actions      int     // this episode
	reward       float64 // this episode
	totalActions int
}

// New places an agent on the start of m.
func New(m *maze.Maze, q *QTable, p Policy, cfg Config) (*Agent, error) {
	if m == nil || q == nil || p == nil {
		return nil, ErrNilDependency
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !m.Passable(m.Start()) {
		return nil, fmt.Errorf("agent: start %v: %w", m.Start(), maze.ErrNotPassable)
	}
	return &Agent{cfg: cfg, m: m, q: q, policy: p, pos: m.Start()}, nil
}

// Position returns the current cell.
func (a *Agent) Position() maze.Position { return a.pos }

// Maze returns the maze the agent walks.
func (a *Agent) Maze() *maze.Maze { return a.m }

// QTable returns the shared Q-table.
func (a *Agent) QTable() *QTable { return a.q }

// Policy returns the exploration policy.
func (a *Agent) Policy() Policy { return a.policy }

// Config returns the hyper-parameters.
func (a *Agent) Config() Config { return a.cfg }

// Actions returns the actions taken this episode.
func (a *Agent) Actions() int { return a.actions }

// Reward returns the reward accumulated this episode.
func (a *Agent) Reward() float64 { return a.reward }

// TotalActions returns the actions taken over the agent's lifetime.
func (a *Agent) TotalActions() int { return a.totalActions }

// AtEnd reports whether the agent stands on the end node.
func (a *Agent) AtEnd() bool { return a.pos == a.m.End() }

// Reset moves the agent to p and clears the episode counters.
func (a *Agent) Reset(p maze.Position) error {
	if !a.m.Passable(p) {
		return fmt.Errorf("agent: reset to %v: %w", p, maze.ErrNotPassable)
	}
	a.pos = p
	a.actions = 0
	a.reward = 0
	return nil
}

// DoAction selects an action with the policy, moves, and applies
//
//	Q(s,a) ← Q(s,a) + α·(r + γ·max Q(s',·) − Q(s,a))
//
// where r is the reward of the node entered. Both states are added to the
// Q-table first. A policy implementing PostProcessor is notified last.
func (a *Agent) DoAction() (Step, error) {
	from := a.pos
	s, err := a.m.State(from)
	if err != nil {
		return Step{}, err
	}
	legal := Actions(a.m, from)
	if len(legal) == 0 {
		return Step{}, fmt.Errorf("%w at %v", ErrNoAction, from)
	}
	a.q.Add(s, legal)

	values, err := a.q.Values(s)
	if err != nil {
		return Step{}, err
	}
	act, err := a.policy.Select(s, values)
	if err != nil {
		return Step{}, fmt.Errorf("agent: select: %w", err)
	}
	old, err := a.q.Value(s, act)
	if err != nil {
		return Step{}, fmt.Errorf("agent: policy chose %s: %w", act, err)
	}

	to := act.Apply(from)
	reward := a.m.Reward(to)
	next, err := a.m.State(to)
	if err != nil {
		return Step{}, err
	}
	a.q.Add(next, Actions(a.m, to))
	best, err := a.q.Max(next)
	if err != nil {
		return Step{}, err
	}

	updated := old + a.cfg.LearningRate*(reward+a.cfg.Discount*best-old)
	if err = a.q.Set(s, act, updated); err != nil {
		return Step{}, err
	}

	a.pos = to
	a.actions++
	a.totalActions++
	a.reward += reward

	if pp, ok := a.policy.(PostProcessor); ok {
		err = pp.PostProcess(Transition{State: s, Neighbors: len(legal), Action: act, OldQ: old, NewQ: updated})
		if err != nil {
			return Step{}, fmt.Errorf("agent: post-process: %w", err)
		}
	}

	return Step{
		From: from, To: to, Action: act, Reward: reward,
		OldQ: old, NewQ: updated, State: s, NextState: next,
	}, nil
}
