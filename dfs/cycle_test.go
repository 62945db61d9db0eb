package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmaze/builder"
	"github.com/katalvlaran/lvlmaze/dfs"
	"github.com/katalvlaran/lvlmaze/dijkstra"
	"github.com/katalvlaran/lvlmaze/maze"
)

// build constructs a maze from ASCII rows with the default factory.
func build(t testing.TB, rows ...string) *maze.Maze {
	t.Helper()
	f, err := maze.NewFactory(maze.DefaultFactoryConfig())
	require.NoError(t, err)
	m, err := builder.Build(f, builder.Layout(rows...))
	require.NoError(t, err)
	return m
}

func pos(x, y int) maze.Position { return maze.Position{X: x, Y: y} }

// TestDetectLoops_NilMaze verifies the nil guard.
func TestDetectLoops_NilMaze(t *testing.T) {
	_, err := dfs.DetectLoops(nil)
	require.ErrorIs(t, err, dfs.ErrMazeNil)
}

// TestDetectLoops_Corridor ensures no loops in a straight corridor.
func TestDetectLoops_Corridor(t *testing.T) {
	loops, err := dfs.DetectLoops(build(t, "######", "#S..E#", "######"))
	require.NoError(t, err)
	assert.Empty(t, loops)
}

// TestDetectLoops_Ring finds the single ring around a pillar.
func TestDetectLoops_Ring(t *testing.T) {
	m := build(t,
		"#####",
		"#S..#",
		"#.#.#",
		"#..E#",
		"#####",
	)
	loops, err := dfs.DetectLoops(m)
	require.NoError(t, err)
	require.Len(t, loops, 1)
	assert.Equal(t, dfs.Loop{
		pos(1, 1), pos(2, 1), pos(3, 1), pos(3, 2),
		pos(3, 3), pos(2, 3), pos(1, 3), pos(1, 2),
	}, loops[0])
	assert.True(t, loops[0].Contains(m.End()))
}

// TestDetectLoops_OpenRoom checks deduplication in a 2×3 open room: the DFS
// sees two fundamental loops, each recorded once.
func TestDetectLoops_OpenRoom(t *testing.T) {
	m := build(t,
		"#####",
		"#S..#",
		"#..E#",
		"#####",
	)
	loops, err := dfs.DetectLoops(m)
	require.NoError(t, err)
	require.Len(t, loops, 2)
	sigs := map[string]bool{}
	for _, l := range loops {
		sig := dfs.SetSig(l)
		assert.False(t, sigs[sig], "duplicate loop %v", l)
		sigs[sig] = true
	}

	again, err := dfs.DetectLoops(m)
	require.NoError(t, err)
	assert.Equal(t, loops, again)
}

// TestParallelRoutes separates a genuine alternate corridor from a side loop
// that touches the optimal path at a single cell.
func TestParallelRoutes(t *testing.T) {
	m := build(t,
		"#########",
		"#S.....E#",
		"#.#####.#",
		"#.......#",
		"####.####",
		"###...###",
		"###.#.###",
		"###...###",
		"#########",
	)
	sp, err := dijkstra.ShortestPath(m)
	require.NoError(t, err)
	require.Equal(t, 6, sp.Length())

	loops, err := dfs.DetectLoops(m)
	require.NoError(t, err)
	require.Len(t, loops, 2)

	par := dfs.ParallelRoutes(m, loops, sp.Path)
	require.Len(t, par, 1)
	assert.True(t, par[0].Contains(pos(4, 3)))
	assert.False(t, par[0].Contains(pos(4, 6)))

	members := dfs.Members(par)
	assert.Contains(t, members, m.Start())
	assert.NotContains(t, members, pos(3, 6))

	assert.Nil(t, dfs.ParallelRoutes(m, loops, nil))
}

func TestSetSig_OrderIndependent(t *testing.T) {
	a := []maze.Position{pos(2, 1), pos(1, 1), pos(1, 2)}
	b := []maze.Position{pos(1, 2), pos(2, 1), pos(1, 1)}
	assert.Equal(t, dfs.SetSig(a), dfs.SetSig(b))
	assert.Equal(t, "1,1;2,1;1,2", dfs.SetSig(a))
	assert.Equal(t, 2, dfs.IndexOf(a, pos(1, 2)))
	assert.Equal(t, -1, dfs.IndexOf(a, pos(9, 9)))
	assert.True(t, dfs.Less(pos(5, 0), pos(0, 1)))
}
