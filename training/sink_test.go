package training_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlmaze/training"
)

func TestSlogSink(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	sink := training.NewSlogSink(log)
	id := uuid.MustParse("00000000-0000-4000-8000-000000000001")

	// below the handler level
	sink.Notify(training.Event{Kind: training.EpisodeFinished, RunID: id})
	assert.Empty(t, buf.String())

	sink.Notify(training.Event{Kind: training.LevelChanged, RunID: id, Level: 2, Episode: 1, Criterion: "episodes:2", Spent: 4, OptimalLength: 7})
	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "msg=level-changed")
	assert.Contains(t, out, "run=00000000-0000-4000-8000-000000000001")
	assert.Contains(t, out, "criterion=episodes:2")
	assert.Contains(t, out, "spent=4")
	assert.Contains(t, out, "optimal=7")

	buf.Reset()
	sink.Notify(training.Event{Kind: training.Fatal, RunID: id, Actions: 3, Err: errors.New("boom")})
	out = buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "actions=3")
	assert.Contains(t, out, "err=boom")
}

func TestMultiSink(t *testing.T) {
	var got []string
	s := training.MultiSink{
		training.SinkFunc(func(e training.Event) { got = append(got, "a:"+e.Kind.String()) }),
		training.NopSink{},
		training.SinkFunc(func(e training.Event) { got = append(got, "b:"+e.Kind.String()) }),
	}
	s.Notify(training.Event{Kind: training.RunStarted})
	assert.Equal(t, []string{"a:run-started", "b:run-started"}, got)
	assert.Equal(t, "EventKind(9)", training.EventKind(9).String())
}
