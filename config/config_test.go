package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmaze/builder"
	"github.com/katalvlaran/lvlmaze/config"
	"github.com/katalvlaran/lvlmaze/params"
	"github.com/katalvlaran/lvlmaze/policy"
	"github.com/katalvlaran/lvlmaze/training"
)

func TestFromMap_Defaults(t *testing.T) {
	s, err := config.FromMap(nil)
	require.NoError(t, err)

	c := s.Training
	assert.Equal(t, -1.0, c.Factory.ActionReward)
	assert.Equal(t, 10.0, c.Factory.EndReward)
	assert.Equal(t, 5, c.CorridorLength)
	assert.Equal(t, builder.Horizontal, c.Orientation)
	assert.Equal(t, 0.1, c.Agent.LearningRate)
	assert.IsType(t, &policy.EpsilonGreedy{}, c.Policy)
	assert.Len(t, c.EpisodeStop, 2)
	assert.Equal(t, "consecutive-optimal:3", c.LevelChange[0].Label())
	assert.Len(t, c.Operators, 4)
	assert.Equal(t, 6, c.Delta)
	assert.Equal(t, 5, c.Levels)
	assert.False(t, c.ResetQTable)

	assert.Equal(t, slog.LevelInfo, s.LogLevel)
	assert.Zero(t, s.MaxSteps)
	assert.Empty(t, s.Report)
	assert.True(t, s.Color)
	assert.Empty(t, s.Warnings)
}

func TestFromMap_Overrides(t *testing.T) {
	s, err := config.FromMap(map[string]string{
		"LVLMAZE_LEVELS":       "2",
		"LVLMAZE_ORIENTATION":  "v",
		"LVLMAZE_POLICY":       "vdbe:epsilon=0.5,sigma=3",
		"LVLMAZE_LEVEL_CHANGE": " expr:episode >= 3 && reward > 0 ; episodes:10 ;",
		"LVLMAZE_OPERATORS":    "resize:cost=1",
		"LVLMAZE_RESET_QTABLE": "true",
		"LVLMAZE_LOG_LEVEL":    "debug",
		"LVLMAZE_REPORT":       "out.html",
		"LVLMAZE_MAX_STEPS":    "1000",
	})
	require.NoError(t, err)

	c := s.Training
	assert.Equal(t, 2, c.Levels)
	assert.Equal(t, builder.Vertical, c.Orientation)
	assert.IsType(t, &policy.VDBE{}, c.Policy)
	require.Len(t, c.LevelChange, 2)
	assert.Equal(t, "expr:episode >= 3 && reward > 0", c.LevelChange[0].Label())
	assert.Len(t, c.Operators, 1)
	assert.True(t, c.ResetQTable)
	assert.Equal(t, slog.LevelDebug, s.LogLevel)
	assert.Equal(t, "out.html", s.Report)
	assert.Equal(t, 1000, s.MaxSteps)
}

func TestFromMap_Errors(t *testing.T) {
	tests := []struct {
		key, value string
		err        error
	}{
		{"LVLMAZE_LEVLES", "3", params.ErrUnknownKey},
		{"LVLMAZE_DELTA", "lots", params.ErrMalformed},
		{"LVLMAZE_DELTA", "0", training.ErrInvalidConfig},
		{"LVLMAZE_WAY_COLORS", "0", training.ErrInvalidConfig},
		{"LVLMAZE_ORIENTATION", "diagonal", builder.ErrBadOrientation},
		{"LVLMAZE_POLICY", "softmax:temperature=0", policy.ErrInvalidParameter},
		{"LVLMAZE_EPISODE_STOP", "", training.ErrInvalidConfig},
		{"LVLMAZE_MAX_STEPS", "-1", config.ErrInvalid},
		{"LVLMAZE_LOG_LEVEL", "loud", config.ErrInvalid},
	}
	for _, tc := range tests {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			_, err := config.FromMap(map[string]string{tc.key: tc.value})
			require.ErrorIs(t, err, config.ErrInvalid)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("LVLMAZE_LEVELS=3\nLVLMAZE_DELTA=4\nUNRELATED=1\n"), 0o600))
	t.Setenv("LVLMAZE_DELTA", "9")

	s, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Training.Levels)
	assert.Equal(t, 9, s.Training.Delta, "environment wins over the file")
	assert.Empty(t, s.Warnings)

	s, err = config.Load(filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	assert.Len(t, s.Warnings, 1)
	assert.Equal(t, 5, s.Training.Levels)
}
