package training_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmaze/agent"
	"github.com/katalvlaran/lvlmaze/builder"
	"github.com/katalvlaran/lvlmaze/criterion"
	"github.com/katalvlaran/lvlmaze/maze"
	"github.com/katalvlaran/lvlmaze/operator"
	"github.com/katalvlaran/lvlmaze/policy"
	"github.com/katalvlaran/lvlmaze/training"
)

// recorder keeps every event.
type recorder struct{ events []training.Event }

func (r *recorder) Notify(e training.Event) { r.events = append(r.events, e) }

func (r *recorder) kinds() []training.EventKind {
	out := make([]training.EventKind, len(r.events))
	for i, e := range r.events {
		out[i] = e.Kind
	}
	return out
}

func (r *recorder) count(k training.EventKind) int {
	n := 0
	for _, e := range r.events {
		if e.Kind == k {
			n++
		}
	}
	return n
}

func mustCriteria(t testing.TB, specs ...string) []criterion.Criterion {
	t.Helper()
	cs, err := criterion.ParseList(specs)
	require.NoError(t, err)
	return cs
}

func mustOperators(t testing.TB, specs ...string) []operator.Operator {
	t.Helper()
	out := make([]operator.Operator, 0, len(specs))
	for _, s := range specs {
		op, err := operator.Parse(s)
		require.NoError(t, err)
		out = append(out, op)
	}
	return out
}

// config returns a fresh, fully seeded configuration; every call builds new
// stateful components.
func config(t testing.TB, levels int) training.Config {
	t.Helper()
	p, err := policy.NewEpsilonGreedy(0.2, 7)
	require.NoError(t, err)
	return training.Config{
		Factory:        maze.DefaultFactoryConfig(),
		CorridorLength: 4,
		Orientation:    builder.Horizontal,
		Agent:          agent.Config{LearningRate: 0.5, Discount: 0.9},
		Policy:         p,
		EpisodeStop:    mustCriteria(t, "end-reached", "max-actions:200"),
		LevelChange:    mustCriteria(t, "episodes:2"),
		Operators:      mustOperators(t, "resize", "new-path", "dead-end", "change-optimal-path"),
		Delta:          6,
		Levels:         levels,
		LevelSeed:      42,
	}
}

func TestConfig_Validate(t *testing.T) {
	mutate := map[string]func(c *training.Config){
		"corridor":     func(c *training.Config) { c.CorridorLength = 1 },
		"orientation":  func(c *training.Config) { c.Orientation = builder.Orientation(9) },
		"policy":       func(c *training.Config) { c.Policy = nil },
		"episode stop": func(c *training.Config) { c.EpisodeStop = nil },
		"level change": func(c *training.Config) { c.LevelChange = nil },
		"levels":       func(c *training.Config) { c.Levels = 0 },
		"operators":    func(c *training.Config) { c.Operators = nil },
		"delta":        func(c *training.Config) { c.Delta = 0 },
		"alpha":        func(c *training.Config) { c.Agent.LearningRate = 0 },
		"factory":      func(c *training.Config) { c.Factory.WayColors = 0 },
		"nil criterion": func(c *training.Config) {
			c.LevelChange = []criterion.Criterion{nil}
		},
	}
	require.NoError(t, config(t, 2).Validate())
	for name, f := range mutate {
		t.Run(name, func(t *testing.T) {
			c := config(t, 2)
			f(&c)
			_, err := training.New(c)
			require.ErrorIs(t, err, training.ErrInvalidConfig)
		})
	}

	// a single level needs no operators
	c := config(t, 1)
	c.Operators = nil
	require.NoError(t, c.Validate())
}

func TestDoStep_NotInitialized(t *testing.T) {
	tr, err := training.New(config(t, 1))
	require.NoError(t, err)
	_, err = tr.DoStep()
	require.ErrorIs(t, err, training.ErrNotInitialized)
	assert.Zero(t, tr.Level())
}

func TestRun_SingleLevel(t *testing.T) {
	rec := &recorder{}
	id := uuid.MustParse("6f1c1a4e-8d5e-4c1b-9a63-0f1f2d3e4a5b")
	tr, err := training.New(config(t, 1), training.WithSink(rec), training.WithRunID(id))
	require.NoError(t, err)
	require.NoError(t, tr.InitSimulation())
	assert.Equal(t, 1, tr.Level())
	assert.Equal(t, 1, tr.Episode())
	assert.Equal(t, 3, tr.OptimalLength())

	require.NoError(t, tr.Run(context.Background()))
	assert.True(t, tr.Finished())
	assert.NoError(t, tr.Err())

	assert.Equal(t, []training.EventKind{
		training.RunStarted,
		training.EpisodeFinished,
		training.EpisodeFinished,
		training.TrainingFinished,
	}, rec.kinds())
	for _, e := range rec.events {
		assert.Equal(t, id, e.RunID)
		assert.Equal(t, 1, e.Level)
	}
	assert.Equal(t, 1, rec.events[1].Episode)
	assert.Equal(t, 2, rec.events[2].Episode)
	assert.Equal(t, "episodes:2", rec.events[3].Criterion)

	ok, err := tr.DoStep()
	assert.False(t, ok)
	require.ErrorIs(t, err, training.ErrFinished)
}

func TestRun_Levels(t *testing.T) {
	rec := &recorder{}
	tr, err := training.New(config(t, 3), training.WithSink(rec))
	require.NoError(t, err)
	require.NoError(t, tr.InitSimulation())
	first := tr.Maze()

	require.NoError(t, tr.Run(context.Background()))
	assert.Equal(t, 3, tr.Level())
	assert.Equal(t, 2, rec.count(training.LevelChanged))
	assert.Equal(t, 6, rec.count(training.EpisodeFinished))
	assert.Equal(t, 1, rec.count(training.TrainingFinished))

	for _, e := range rec.events {
		if e.Kind != training.LevelChanged {
			continue
		}
		assert.Positive(t, e.Spent)
		assert.LessOrEqual(t, e.Spent, 6)
		assert.Equal(t, 1, e.Episode)
		require.NotNil(t, e.Maze)
	}
	assert.NotSame(t, first, tr.Maze())
	assert.False(t, first.Equal(tr.Maze()))
	assert.Same(t, tr.Maze(), tr.Agent().Maze())
}

func TestDoStep_FinishedOnlyAtEnd(t *testing.T) {
	rec := &recorder{}
	tr, err := training.New(config(t, 3), training.WithSink(rec))
	require.NoError(t, err)
	require.NoError(t, tr.InitSimulation())
	assert.False(t, tr.Finished())

	// 3 levels × 2 episodes × at most 200 actions, with headroom
	const limit = 2000
	steps, levelSteps := 0, 0
	for ; steps < limit; steps++ {
		level := tr.Level()
		ok, err := tr.DoStep()
		require.NoError(t, err)
		if !ok {
			break
		}
		assert.False(t, tr.Finished(), "step %d", steps)
		if tr.Level() != level {
			levelSteps++
		}
	}
	require.Less(t, steps, limit)
	assert.Equal(t, 2, levelSteps)
	assert.True(t, tr.Finished())
	assert.Equal(t, 3, tr.Level())
	assert.Equal(t, training.TrainingFinished, rec.events[len(rec.events)-1].Kind)

	ok, err := tr.DoStep()
	assert.False(t, ok)
	require.ErrorIs(t, err, training.ErrFinished)
	assert.True(t, tr.Finished())
}

func TestRun_CurriculumExhausted(t *testing.T) {
	rec := &recorder{}
	c := config(t, 2)
	// a plain corridor has no parallel route to reroute
	c.Operators = mustOperators(t, "change-optimal-path")
	tr, err := training.New(c, training.WithSink(rec))
	require.NoError(t, err)
	require.NoError(t, tr.InitSimulation())

	err = tr.Run(context.Background())
	require.ErrorIs(t, err, training.ErrCurriculumExhausted)
	assert.False(t, tr.Finished())
	require.ErrorIs(t, tr.Err(), training.ErrCurriculumExhausted)
	assert.Equal(t, 1, tr.Level())

	last := rec.events[len(rec.events)-1]
	assert.Equal(t, training.Fatal, last.Kind)
	require.ErrorIs(t, last.Err, training.ErrCurriculumExhausted)
	assert.Equal(t, "episodes:2", last.Criterion)

	ok, err := tr.DoStep()
	assert.False(t, ok)
	require.ErrorIs(t, err, training.ErrFinished)
}

func TestRun_Deterministic(t *testing.T) {
	type trace struct {
		kind          training.EventKind
		level         int
		episode       int
		actions       int
		reward        float64
		spent         int
		optimalLength int
		maze          string
	}
	run := func() ([]trace, *agent.QTable) {
		rec := &recorder{}
		tr, err := training.New(config(t, 3), training.WithSink(rec))
		require.NoError(t, err)
		require.NoError(t, tr.InitSimulation())
		require.NoError(t, tr.Run(context.Background()))
		out := make([]trace, len(rec.events))
		for i, e := range rec.events {
			out[i] = trace{e.Kind, e.Level, e.Episode, e.Actions, e.Reward, e.Spent, e.OptimalLength, ""}
			if e.Maze != nil {
				out[i].maze = e.Maze.String()
			}
		}
		return out, tr.QTable()
	}

	a, qa := run()
	b, qb := run()
	assert.Equal(t, a, b)
	require.Equal(t, qa.States(), qb.States())
	for _, s := range qa.States() {
		va, err := qa.Values(s)
		require.NoError(t, err)
		vb, err := qb.Values(s)
		require.NoError(t, err)
		assert.Equal(t, va, vb)
	}
}

func TestRun_ResetQTable(t *testing.T) {
	c := config(t, 2)
	c.ResetQTable = true
	var tr *training.Training
	sizes := map[training.EventKind]int{}
	sink := training.SinkFunc(func(e training.Event) {
		sizes[e.Kind] = tr.QTable().Len()
	})
	tr, err := training.New(c, training.WithSink(sink))
	require.NoError(t, err)
	require.NoError(t, tr.InitSimulation())
	require.NoError(t, tr.Run(context.Background()))

	assert.Zero(t, sizes[training.LevelChanged])
	assert.Positive(t, sizes[training.TrainingFinished])
}

func TestRun_Cancelled(t *testing.T) {
	tr, err := training.New(config(t, 1))
	require.NoError(t, err)
	require.NoError(t, tr.InitSimulation())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, tr.Run(ctx), context.Canceled)
	assert.False(t, tr.Finished())
}

func TestSnapshot(t *testing.T) {
	tr, err := training.New(config(t, 1))
	require.NoError(t, err)
	assert.Equal(t, criterion.Snapshot{}, tr.Snapshot())
	require.NoError(t, tr.InitSimulation())

	ok, err := tr.DoStep()
	require.NoError(t, err)
	require.True(t, ok)
	s := tr.Snapshot()
	assert.Equal(t, 1, s.Level)
	assert.Equal(t, 1, s.Actions)
	assert.Equal(t, 1, s.TotalActions)
	assert.Equal(t, 3, s.OptimalLength)
	assert.Equal(t, maze.Position{X: 2, Y: 1}, s.Position)
}

func TestWithSink_NilPanics(t *testing.T) {
	assert.Panics(t, func() { training.WithSink(nil) })
}
