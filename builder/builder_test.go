// Package builder_test contains functional tests for the maze constructors,
// verifying geometry, endpoint placement, overrides and sentinel errors.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmaze/builder"
	"github.com/katalvlaran/lvlmaze/maze"
)

// newFactory returns a factory built from the default configuration.
func newFactory(t *testing.T) *maze.Factory {
	t.Helper()
	f, err := maze.NewFactory(maze.DefaultFactoryConfig())
	require.NoError(t, err)
	return f
}

// TestCorridor_Geometry runs table-driven checks for both orientations.
func TestCorridor_Geometry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		length     int
		o          builder.Orientation
		opts       []builder.BuilderOption
		wantW      int
		wantH      int
		wantStart  maze.Position
		wantEnd    maze.Position
		wantRender string
	}{
		{
			name: "horizontal(3)", length: 3, o: builder.Horizontal,
			wantW: 5, wantH: 3,
			wantStart: maze.Position{X: 1, Y: 1}, wantEnd: maze.Position{X: 3, Y: 1},
			wantRender: "#####\n#S.E#\n#####\n",
		},
		{
			name: "vertical(2)", length: 2, o: builder.Vertical,
			wantW: 3, wantH: 4,
			wantStart: maze.Position{X: 1, Y: 1}, wantEnd: maze.Position{X: 1, Y: 2},
			wantRender: "###\n#S#\n#E#\n###\n",
		},
		{
			name: "horizontal(2)+margin2", length: 2, o: builder.Horizontal,
			opts:  []builder.BuilderOption{builder.WithMargin(2)},
			wantW: 6, wantH: 5,
			wantStart: maze.Position{X: 2, Y: 2}, wantEnd: maze.Position{X: 3, Y: 2},
			wantRender: "######\n######\n##SE##\n######\n######\n",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := builder.Build(newFactory(t), builder.Corridor(tc.length, tc.o), tc.opts...)
			require.NoError(t, err)
			assert.Equal(t, tc.wantW, m.Width())
			assert.Equal(t, tc.wantH, m.Height())
			assert.Equal(t, tc.wantStart, m.Start())
			assert.Equal(t, tc.wantEnd, m.End())
			assert.Equal(t, tc.wantRender, m.String())
			assert.Len(t, m.Passables(), tc.length)
		})
	}
}

func TestCorridor_Rewards(t *testing.T) {
	t.Parallel()
	f := newFactory(t)
	m, err := builder.Build(f, builder.Corridor(3, builder.Horizontal))
	require.NoError(t, err)

	cfg := f.Config()
	assert.Equal(t, cfg.ActionReward, m.Reward(m.Start()))
	assert.Equal(t, cfg.ActionReward, m.Reward(maze.Position{X: 2, Y: 1}))
	assert.Equal(t, cfg.EndReward, m.Reward(m.End()))
	assert.True(t, m.Reward(maze.Position{X: 0, Y: 0}) < -1e300)
}

func TestCorridor_TooShort(t *testing.T) {
	t.Parallel()
	_, err := builder.Build(newFactory(t), builder.Corridor(1, builder.Horizontal))
	require.ErrorIs(t, err, builder.ErrTooFewNodes)

	_, err = builder.Build(newFactory(t), builder.Corridor(4, builder.Orientation(7)))
	require.ErrorIs(t, err, builder.ErrBadOrientation)
}

func TestLayout(t *testing.T) {
	t.Parallel()
	m, err := builder.Build(newFactory(t), builder.Layout(
		"#####",
		"#S..#",
		"#.#E#",
		"#####",
	))
	require.NoError(t, err)
	assert.Equal(t, maze.Position{X: 1, Y: 1}, m.Start())
	assert.Equal(t, maze.Position{X: 3, Y: 2}, m.End())
	assert.Len(t, m.Passables(), 5)
	assert.Equal(t, "#####\n#S..#\n#.#E#\n#####\n", m.String())
}

func TestLayout_Errors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		rows []string
		want error
	}{
		{"empty", nil, maze.ErrTooSmall},
		{"one row", []string{"SE"}, maze.ErrTooSmall},
		{"ragged", []string{"###", "#S"}, builder.ErrBadLayout},
		{"unknown glyph", []string{"#S#", "#x#", "#E#"}, builder.ErrBadLayout},
		{"no end", []string{"#S#", "#.#"}, builder.ErrBadLayout},
		{"two starts", []string{"SSE", "###"}, builder.ErrBadLayout},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := builder.Build(newFactory(t), builder.Layout(tc.rows...))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBuild_WithReward(t *testing.T) {
	t.Parallel()
	center, right := maze.Position{X: 1, Y: 1}, maze.Position{X: 2, Y: 1}
	m, err := builder.Build(newFactory(t), builder.Layout("####", "#SE#", "####"),
		builder.WithReward(center, -4),
		builder.WithReward(right, -5),
	)
	require.NoError(t, err)
	assert.Equal(t, -4.0, m.Reward(center))
	assert.Equal(t, -5.0, m.Reward(right))

	_, err = builder.Build(newFactory(t), builder.Layout("SE", ".."),
		builder.WithReward(maze.Position{X: 9, Y: 9}, 1))
	require.ErrorIs(t, err, maze.ErrOutOfBounds)
}

func TestBuild_NilInputs(t *testing.T) {
	t.Parallel()
	_, err := builder.Build(nil, builder.Corridor(2, builder.Horizontal))
	require.ErrorIs(t, err, maze.ErrNilFactory)
	_, err = builder.Build(newFactory(t), nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestOptions_PanicOnMeaninglessInput(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { builder.WithMargin(0) })
	assert.NotPanics(t, func() { builder.WithMargin(1) })
}

func TestParseOrientation(t *testing.T) {
	t.Parallel()
	o, err := builder.ParseOrientation("v")
	require.NoError(t, err)
	assert.Equal(t, builder.Vertical, o)
	assert.Equal(t, "vertical", o.String())
	_, err = builder.ParseOrientation("diagonal")
	require.ErrorIs(t, err, builder.ErrBadOrientation)
}

// TestBuild_Deterministic verifies that equal factory seeds give equal mazes.
func TestBuild_Deterministic(t *testing.T) {
	t.Parallel()
	a, err := builder.Build(newFactory(t), builder.Corridor(5, builder.Vertical))
	require.NoError(t, err)
	b, err := builder.Build(newFactory(t), builder.Corridor(5, builder.Vertical))
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}
