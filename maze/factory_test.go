package maze_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmaze/maze"
)

func TestFactoryConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*maze.FactoryConfig)
	}{
		{"zero action reward", func(c *maze.FactoryConfig) { c.ActionReward = 0 }},
		{"positive action reward", func(c *maze.FactoryConfig) { c.ActionReward = 1 }},
		{"NaN action reward", func(c *maze.FactoryConfig) { c.ActionReward = math.NaN() }},
		{"infinite end reward", func(c *maze.FactoryConfig) { c.EndReward = math.Inf(1) }},
		{"no way colors", func(c *maze.FactoryConfig) { c.WayColors = 0 }},
		{"no wall colors", func(c *maze.FactoryConfig) { c.WallColors = 0 }},
		{"negative gap", func(c *maze.FactoryConfig) { c.BrightnessGap = -1 }},
		{"gap too wide", func(c *maze.FactoryConfig) { c.BrightnessGap = 300 }},
		{"threshold too high", func(c *maze.FactoryConfig) { c.BrightnessThreshold = 250 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := maze.DefaultFactoryConfig()
			tc.mutate(&cfg)
			_, err := maze.NewFactory(cfg)
			require.ErrorIs(t, err, maze.ErrInvalidFactory)
		})
	}
	require.NoError(t, maze.DefaultFactoryConfig().Validate())
}

func TestNewFactory_Palettes(t *testing.T) {
	cfg := maze.DefaultFactoryConfig()
	cfg.WayColors, cfg.WallColors = 16, 12
	f, err := maze.NewFactory(cfg)
	require.NoError(t, err)

	way, wall := f.WayPalette(), f.WallPalette()
	require.Len(t, way, 16)
	require.Len(t, wall, 12)

	half := cfg.BrightnessGap / 2
	seen := make(map[maze.Color]bool)
	for _, c := range way {
		assert.Greater(t, c.Brightness(), cfg.BrightnessThreshold+half)
		assert.False(t, seen[c], "duplicate way color %v", c)
		seen[c] = true
		assert.True(t, f.LooksLike(c, maze.Passable))
		assert.False(t, f.LooksLike(c, maze.Impassable))
	}
	for _, c := range wall {
		assert.Less(t, c.Brightness(), cfg.BrightnessThreshold-half)
		assert.False(t, seen[c], "duplicate wall color %v", c)
		seen[c] = true
	}
}

func TestNewFactory_GenerationSeed(t *testing.T) {
	a, err := maze.NewFactory(maze.DefaultFactoryConfig())
	require.NoError(t, err)
	b, err := maze.NewFactory(maze.DefaultFactoryConfig())
	require.NoError(t, err)
	assert.Equal(t, a.WayPalette(), b.WayPalette())

	cfg := maze.DefaultFactoryConfig()
	cfg.GenerationSeed = 99
	c, err := maze.NewFactory(cfg)
	require.NoError(t, err)
	assert.NotEqual(t, a.WayPalette(), c.WayPalette())
}

func TestNewFactory_PaletteExhausted(t *testing.T) {
	if testing.Short() {
		t.Skip("rejection sampling runs to its try limit")
	}
	cfg := maze.DefaultFactoryConfig()
	cfg.WayColors = 1_500_000
	_, err := maze.NewFactory(cfg)
	require.ErrorIs(t, err, maze.ErrPaletteExhausted)
}

func TestFactory_NewNode(t *testing.T) {
	f, err := maze.NewFactory(maze.DefaultFactoryConfig())
	require.NoError(t, err)
	p := maze.Position{X: 3, Y: 4}

	way := f.NewNode(p, maze.Passable, false)
	assert.Equal(t, p, way.Pos)
	assert.Equal(t, -1.0, way.Reward)
	assert.True(t, f.LooksLike(way.Color, maze.Passable))

	end := f.NewNode(p, maze.Passable, true)
	assert.Equal(t, 10.0, end.Reward)

	wall := f.NewNode(p, maze.Impassable, true)
	assert.True(t, math.IsInf(wall.Reward, -1))
	assert.True(t, f.LooksLike(wall.Color, maze.Impassable))
}

func TestColor(t *testing.T) {
	assert.Equal(t, "[r=255,g=0,b=7]", maze.Color{R: 255, B: 7}.String())
	assert.InDelta(t, 255.0, maze.Color{R: 255, G: 255, B: 255}.Brightness(), 1e-9)
	assert.Zero(t, maze.Color{}.Brightness())
	assert.Equal(t, "(2,-1)", maze.Position{X: 1, Y: 1}.Add(1, -2).String())
	assert.Equal(t, byte('P'), maze.Passable.Letter())
	assert.Equal(t, "Impassable", maze.Impassable.String())
}
