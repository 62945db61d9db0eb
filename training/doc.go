// Package training drives curriculum Q-learning.
//
// A Training owns the live maze and agent. Each DoStep takes one agent
// action and evaluates the episode-stop criteria; when an episode stops, the
// level-change criteria decide between the next episode and the next level.
// A level change copies the maze, spends Config.Delta through the operator
// curriculum and swaps in a fresh agent that shares the Q-table (unless
// ResetQTable is set). A curriculum that cannot spend anything ends the run
// with ErrCurriculumExhausted.
//
// Progress is reported to a Sink; NewSlogSink maps events to log/slog
// records. Every event carries the run's uuid.
package training
