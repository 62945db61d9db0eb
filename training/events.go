package training

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvlmaze/maze"
)

// EventKind tags an Event.
type EventKind int

const (
	// RunStarted follows InitSimulation.
	RunStarted EventKind = iota
	// EpisodeFinished follows an episode-stop criterion.
	EpisodeFinished
	// LevelChanged follows a successful curriculum step.
	LevelChanged
	// TrainingFinished follows a level-change criterion on the last level.
	TrainingFinished
	// Fatal reports an error that ended the run.
	Fatal
)

var eventNames = [...]string{"run-started", "episode-finished", "level-changed", "training-finished", "fatal"}

// String implements fmt.Stringer.
func (k EventKind) String() string {
	if k >= 0 && int(k) < len(eventNames) {
		return eventNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is a training notification. Counters describe the episode that just
// ended (EpisodeFinished, TrainingFinished, Fatal) or are zero.
type Event struct {
	Kind  EventKind
	RunID uuid.UUID
	Time  time.Time

	Level   int
	Episode int
	// Criterion is the label of the criterion that fired, if any.
	Criterion string

	Actions       int
	Reward        float64
	TotalActions  int
	OptimalLength int
	// Spent is the curriculum budget used by a LevelChanged.
	Spent int
	// Maze is the current maze for RunStarted and LevelChanged. Sinks must
	// not modify it.
	Maze *maze.Maze
	Err  error
}

// Sink receives events synchronously, in order.
type Sink interface {
	Notify(e Event)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(e Event)

// Notify implements Sink.
func (f SinkFunc) Notify(e Event) { f(e) }

// NopSink discards events.
type NopSink struct{}

// Notify implements Sink.
func (NopSink) Notify(Event) {}

// MultiSink forwards each event to every sink in order.
type MultiSink []Sink

// Notify implements Sink.
func (m MultiSink) Notify(e Event) {
	for _, s := range m {
		s.Notify(e)
	}
}
