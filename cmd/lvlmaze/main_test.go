package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnv(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.env")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600))
	return path
}

func TestRun(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.html")
	env := writeEnv(t,
		"LVLMAZE_CORRIDOR_LENGTH=3",
		"LVLMAZE_LEVELS=2",
		"LVLMAZE_LEVEL_CHANGE=episodes:2",
		"LVLMAZE_OPERATORS=resize",
		"LVLMAZE_COLOR=false",
		"LVLMAZE_REPORT="+out,
	)
	var stdout, stderr bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-env", env}, &stdout, &stderr))

	assert.Contains(t, stdout.String(), "level 2 after episodes:2")
	assert.Contains(t, stdout.String(), "finished at level 2")
	assert.Contains(t, stderr.String(), "msg=level-changed")
	assert.Contains(t, stderr.String(), "report written")

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestRun_StepLimit(t *testing.T) {
	env := writeEnv(t, "LVLMAZE_MAX_STEPS=1", "LVLMAZE_COLOR=false")
	var stdout, stderr bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-env", env}, &stdout, &stderr))
	assert.NotContains(t, stdout.String(), "finished")
	assert.Contains(t, stderr.String(), "step limit reached")
}

func TestRun_Cancelled(t *testing.T) {
	env := writeEnv(t, "LVLMAZE_COLOR=false")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var stdout, stderr bytes.Buffer
	require.NoError(t, run(ctx, []string{"-env", env}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "interrupted")
}

func TestRun_BadConfig(t *testing.T) {
	env := writeEnv(t, "LVLMAZE_POLICY=telepathy")
	var stdout, stderr bytes.Buffer
	require.Error(t, run(context.Background(), []string{"-env", env}, &stdout, &stderr))
}

func TestRun_List(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-list"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "vdbe")
	assert.Contains(t, stdout.String(), "change-optimal-path")
	assert.Contains(t, stdout.String(), "LVLMAZE_DELTA=6")
}
