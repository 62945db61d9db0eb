package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/katalvlaran/lvlmaze/maze"
	"github.com/katalvlaran/lvlmaze/training"
)

// Console is a training.Sink that prints run milestones and each new maze.
// Episodes are printed only when Verbose is set.
type Console struct {
	w       io.Writer
	au      aurora.Aurora
	Verbose bool
}

// NewConsole writes to w, with ANSI colors when colors is true.
func NewConsole(w io.Writer, colors bool) *Console {
	return &Console{w: w, au: aurora.NewAurora(colors)}
}

// Notify implements training.Sink.
func (c *Console) Notify(e training.Event) {
	switch e.Kind {
	case training.RunStarted:
		fmt.Fprintf(c.w, "%s run %s, optimal path %d\n", c.au.Bold("▶"), e.RunID, e.OptimalLength)
		c.printMaze(e.Maze)
	case training.EpisodeFinished:
		if c.Verbose {
			fmt.Fprintf(c.w, "  level %d episode %d: %d actions, reward %.2f (%s)\n",
				e.Level, e.Episode, e.Actions, e.Reward, e.Criterion)
		}
	case training.LevelChanged:
		fmt.Fprintf(c.w, "%s level %d after %s, spent %d, optimal path %d\n",
			c.au.Cyan("▲"), e.Level, e.Criterion, e.Spent, e.OptimalLength)
		c.printMaze(e.Maze)
	case training.TrainingFinished:
		fmt.Fprintf(c.w, "%s finished at level %d episode %d, %d actions in total\n",
			c.au.Green("■"), e.Level, e.Episode, e.TotalActions)
	case training.Fatal:
		fmt.Fprintf(c.w, "%s level %d episode %d: %v\n", c.au.Red("✗"), e.Level, e.Episode, e.Err)
	}
}

func (c *Console) printMaze(m *maze.Maze) {
	if m == nil {
		return
	}
	var sb strings.Builder
	for _, row := range strings.Split(strings.TrimRight(m.String(), "\n"), "\n") {
		for _, g := range row {
			s := string(g)
			switch g {
			case '#':
				sb.WriteString(c.au.Gray(8, s).String())
			case 'S':
				sb.WriteString(c.au.Yellow(s).String())
			case 'E':
				sb.WriteString(c.au.Green(s).String())
			default:
				sb.WriteString(s)
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Fprint(c.w, sb.String())
}
