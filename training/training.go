package training

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvlmaze/agent"
	"github.com/katalvlaran/lvlmaze/builder"
	"github.com/katalvlaran/lvlmaze/criterion"
	"github.com/katalvlaran/lvlmaze/dijkstra"
	"github.com/katalvlaran/lvlmaze/maze"
	"github.com/katalvlaran/lvlmaze/operator"
	"github.com/katalvlaran/lvlmaze/rng"
)

// state of the run.
type state int

const (
	idle state = iota
	running
	closed // terminal result returned; DoStep answers ErrFinished
)

// Option customizes a Training.
type Option func(*Training)

// WithSink sets the event sink. Panics on nil.
func WithSink(s Sink) Option {
	if s == nil {
		panic("training: WithSink(nil)")
	}
	return func(t *Training) { t.sink = s }
}

// WithRunID fixes the run identifier instead of a random one.
func WithRunID(id uuid.UUID) Option {
	return func(t *Training) { t.runID = id }
}

// Training is the level/episode state machine.
//
//	Idle ──InitSimulation──▶ Running(1,1)
//	Running(l,e) ──episode stops, no level criterion──▶ Running(l,e+1)
//	Running(l,e) ──level criterion, l < Levels──▶ Running(l+1,1)
//	Running(Levels,e) ──level criterion──▶ Finished
//	any ──error──▶ Finished (Fatal)
//
// A Training is not safe for concurrent use.
type Training struct {
	cfg   Config
	sink  Sink
	runID uuid.UUID

	st        state
	fatal     error
	factory   *maze.Factory
	maze      *maze.Maze
	agent     *agent.Agent
	q         *agent.QTable
	levelRand *rand.Rand
	level     int
	episode   int
	optimal   int
}

// New validates cfg and returns an idle Training.
func New(cfg Config, opts ...Option) (*Training, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	t := &Training{cfg: cfg, sink: NopSink{}}
	for _, opt := range opts {
		opt(t)
	}
	if t.runID == uuid.Nil {
		t.runID = uuid.New()
	}
	return t, nil
}

// InitSimulation builds the first corridor, an empty Q-table and the agent,
// resets every criterion and enters Running(1,1). Calling it again restarts
// the run with the same identifier.
func (t *Training) InitSimulation() error {
	f, err := maze.NewFactory(t.cfg.Factory)
	if err != nil {
		return fmt.Errorf("training: factory: %w", err)
	}
	m, err := builder.Build(f, builder.Corridor(t.cfg.CorridorLength, t.cfg.Orientation))
	if err != nil {
		return fmt.Errorf("training: first level: %w", err)
	}
	optimal, err := dijkstra.Length(m)
	if err != nil {
		return fmt.Errorf("training: first level: %w", err)
	}
	q := agent.NewQTable(t.cfg.InitialQ)
	a, err := agent.New(m, q, t.cfg.Policy, t.cfg.Agent)
	if err != nil {
		return fmt.Errorf("training: agent: %w", err)
	}

	t.factory, t.maze, t.q, t.agent = f, m, q, a
	t.optimal = optimal
	t.levelRand = rng.New(t.cfg.LevelSeed)
	t.level, t.episode = 1, 1
	t.fatal = nil
	t.st = running
	resetAll(t.cfg.EpisodeStop)
	resetAll(t.cfg.LevelChange)

	t.emit(Event{Kind: RunStarted, OptimalLength: optimal, Maze: m})
	return nil
}

// DoStep performs one agent action and the transitions it triggers. It
// returns true while the run continues. The end of the run is reported
// once, as (false, nil) after the last level or (false, err) after a fatal
// error; every later call returns (false, ErrFinished).
func (t *Training) DoStep() (bool, error) {
	switch t.st {
	case idle:
		return false, ErrNotInitialized
	case closed:
		return false, ErrFinished
	}

	if _, err := t.agent.DoAction(); err != nil {
		return t.fail(fmt.Errorf("training: action: %w", err), "")
	}

	snap := t.Snapshot()
	stop := firstMet(t.cfg.EpisodeStop, snap)
	if stop == nil {
		return true, nil
	}
	t.emit(t.episodeEvent(EpisodeFinished, snap, stop.Label()))

	if lc := firstMet(t.cfg.LevelChange, snap); lc != nil {
		if t.level >= t.cfg.Levels {
			t.st = closed
			t.emit(t.episodeEvent(TrainingFinished, snap, lc.Label()))
			return false, nil
		}
		if err := t.nextLevel(lc.Label()); err != nil {
			return t.fail(err, lc.Label())
		}
	} else {
		t.episode++
	}

	resetAll(t.cfg.EpisodeStop)
	if err := t.agent.Reset(t.maze.Start()); err != nil {
		return t.fail(fmt.Errorf("training: reset agent: %w", err), "")
	}
	return true, nil
}

// nextLevel runs the curriculum driver on a copy of the maze and replaces
// maze and agent on success.
func (t *Training) nextLevel(label string) error {
	resetAll(t.cfg.LevelChange)
	if t.cfg.ResetQTable {
		t.q.Reset()
	}

	next := t.maze.Clone()
	spent, err := operator.Mutate(next, t.cfg.Operators, t.cfg.Delta, t.levelRand)
	if err != nil {
		return fmt.Errorf("training: level %d: %w", t.level+1, err)
	}
	if spent == 0 {
		return fmt.Errorf("%w: level %d, budget %d", ErrCurriculumExhausted, t.level+1, t.cfg.Delta)
	}
	optimal, err := dijkstra.Length(next)
	if err != nil {
		return fmt.Errorf("training: level %d: %w", t.level+1, err)
	}
	a, err := agent.New(next, t.q, t.cfg.Policy, t.cfg.Agent)
	if err != nil {
		return fmt.Errorf("training: level %d agent: %w", t.level+1, err)
	}

	t.maze, t.agent, t.optimal = next, a, optimal
	t.level++
	t.episode = 1
	t.emit(Event{Kind: LevelChanged, Criterion: label, Spent: spent, OptimalLength: optimal, Maze: next})
	return nil
}

// fail closes the run with err and reports it once.
func (t *Training) fail(err error, label string) (bool, error) {
	t.st = closed
	t.fatal = err
	e := t.episodeEvent(Fatal, t.Snapshot(), label)
	e.Err = err
	t.emit(e)
	return false, err
}

// Run calls DoStep until the run ends or ctx is done. It returns nil after
// the last level, the fatal error, or ctx.Err().
func (t *Training) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		ok, err := t.DoStep()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}

// Snapshot describes the current state for criteria.
func (t *Training) Snapshot() criterion.Snapshot {
	if t.agent == nil {
		return criterion.Snapshot{}
	}
	return criterion.Snapshot{
		Level:         t.level,
		Episode:       t.episode,
		Actions:       t.agent.Actions(),
		Reward:        t.agent.Reward(),
		TotalActions:  t.agent.TotalActions(),
		Position:      t.agent.Position(),
		AtEnd:         t.agent.AtEnd(),
		OptimalLength: t.optimal,
	}
}

// Maze returns the live maze. Callers must not modify it.
func (t *Training) Maze() *maze.Maze { return t.maze }

// Agent returns the live agent.
func (t *Training) Agent() *agent.Agent { return t.agent }

// QTable returns the Q-table shared across levels.
func (t *Training) QTable() *agent.QTable { return t.q }

// Level returns the 1-based level, 0 before InitSimulation.
func (t *Training) Level() int { return t.level }

// Episode returns the 1-based episode within the level.
func (t *Training) Episode() int { return t.episode }

// OptimalLength returns the moves on the current optimal path.
func (t *Training) OptimalLength() int { return t.optimal }

// Finished reports whether the last level was completed. A run ended by a
// fatal error is closed but not finished.
func (t *Training) Finished() bool { return t.st == closed && t.fatal == nil }

// Err returns the fatal error that ended the run, if any.
func (t *Training) Err() error { return t.fatal }

// RunID identifies the run in every event.
func (t *Training) RunID() uuid.UUID { return t.runID }

func (t *Training) episodeEvent(k EventKind, s criterion.Snapshot, label string) Event {
	return Event{
		Kind:          k,
		Criterion:     label,
		Actions:       s.Actions,
		Reward:        s.Reward,
		TotalActions:  s.TotalActions,
		OptimalLength: s.OptimalLength,
	}
}

func (t *Training) emit(e Event) {
	e.RunID = t.runID
	e.Time = time.Now()
	e.Level, e.Episode = t.level, t.episode
	t.sink.Notify(e)
}

func firstMet(cs []criterion.Criterion, s criterion.Snapshot) criterion.Criterion {
	for _, c := range cs {
		if c.IsMet(s) {
			return c
		}
	}
	return nil
}

func resetAll(cs []criterion.Criterion) {
	for _, c := range cs {
		c.Reset()
	}
}
