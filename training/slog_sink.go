package training

import (
	"context"
	"log/slog"
)

// SlogSink writes events as structured log records: episodes at Debug,
// failures at Error, everything else at Info.
type SlogSink struct {
	log *slog.Logger
}

// NewSlogSink returns a sink writing to l, or to slog.Default when l is nil.
func NewSlogSink(l *slog.Logger) *SlogSink {
	if l == nil {
		l = slog.Default()
	}
	return &SlogSink{log: l}
}

// Notify implements Sink.
func (s *SlogSink) Notify(e Event) {
	level := slog.LevelInfo
	switch e.Kind {
	case EpisodeFinished:
		level = slog.LevelDebug
	case Fatal:
		level = slog.LevelError
	}
	ctx := context.Background()
	if !s.log.Enabled(ctx, level) {
		return
	}

	attrs := []slog.Attr{
		slog.String("run", e.RunID.String()),
		slog.Int("level", e.Level),
		slog.Int("episode", e.Episode),
	}
	if e.Criterion != "" {
		attrs = append(attrs, slog.String("criterion", e.Criterion))
	}
	switch e.Kind {
	case EpisodeFinished, TrainingFinished, Fatal:
		attrs = append(attrs,
			slog.Int("actions", e.Actions),
			slog.Float64("reward", e.Reward),
			slog.Int("total_actions", e.TotalActions),
		)
	}
	if e.OptimalLength > 0 {
		attrs = append(attrs, slog.Int("optimal", e.OptimalLength))
	}
	if e.Kind == LevelChanged {
		attrs = append(attrs, slog.Int("spent", e.Spent))
	}
	if e.Maze != nil {
		attrs = append(attrs, slog.Int("width", e.Maze.Width()), slog.Int("height", e.Maze.Height()))
	}
	if e.Err != nil {
		attrs = append(attrs, slog.Any("err", e.Err))
	}
	s.log.LogAttrs(ctx, level, e.Kind.String(), attrs...)
}
