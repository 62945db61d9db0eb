package report

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/katalvlaran/lvlmaze/training"
)

// Episode is one finished episode.
type Episode struct {
	Level         int
	Episode       int
	Actions       int
	Reward        float64
	OptimalLength int
	Criterion     string
}

// Collector is a training.Sink that records every finished episode.
type Collector struct {
	episodes []Episode
	levels   []int // index into episodes where each level change happened
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector { return &Collector{} }

// Notify implements training.Sink.
func (c *Collector) Notify(e training.Event) {
	switch e.Kind {
	case training.EpisodeFinished:
		c.episodes = append(c.episodes, Episode{
			Level:         e.Level,
			Episode:       e.Episode,
			Actions:       e.Actions,
			Reward:        e.Reward,
			OptimalLength: e.OptimalLength,
			Criterion:     e.Criterion,
		})
	case training.LevelChanged:
		c.levels = append(c.levels, len(c.episodes))
	}
}

// Episodes returns the recorded episodes in order.
func (c *Collector) Episodes() []Episode { return append([]Episode(nil), c.episodes...) }

// LevelChanges returns, for every level change, the number of episodes
// recorded before it.
func (c *Collector) LevelChanges() []int { return append([]int(nil), c.levels...) }

// Render writes an HTML page with two line charts over the episode index:
// actions against the optimal length, and the episode reward.
func (c *Collector) Render(w io.Writer) error {
	x := make([]string, len(c.episodes))
	actions := make([]opts.LineData, len(c.episodes))
	optimal := make([]opts.LineData, len(c.episodes))
	rewards := make([]opts.LineData, len(c.episodes))
	for i, e := range c.episodes {
		x[i] = strconv.Itoa(i + 1)
		actions[i] = opts.LineData{Value: e.Actions}
		optimal[i] = opts.LineData{Value: e.OptimalLength}
		rewards[i] = opts.LineData{Value: e.Reward}
	}

	steps := charts.NewLine()
	steps.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Actions per episode",
			Subtitle: fmt.Sprintf("%d episodes, %d level changes", len(c.episodes), len(c.levels)),
		}),
	)
	steps.SetXAxis(x).
		AddSeries("actions", actions).
		AddSeries("optimal", optimal)

	reward := charts.NewLine()
	reward.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Reward per episode"}))
	reward.SetXAxis(x).AddSeries("reward", rewards)

	page := components.NewPage()
	page.AddCharts(steps, reward)
	return page.Render(w)
}

// WriteFile renders the page to path.
func (c *Collector) WriteFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("report: %w", cerr)
		}
	}()
	if err = c.Render(f); err != nil {
		return fmt.Errorf("report: render %s: %w", path, err)
	}
	return nil
}
