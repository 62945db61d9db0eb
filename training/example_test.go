package training_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvlmaze/agent"
	"github.com/katalvlaran/lvlmaze/builder"
	"github.com/katalvlaran/lvlmaze/criterion"
	"github.com/katalvlaran/lvlmaze/maze"
	"github.com/katalvlaran/lvlmaze/operator"
	"github.com/katalvlaran/lvlmaze/policy"
	"github.com/katalvlaran/lvlmaze/training"
)

func Example() {
	pol, _ := policy.Parse("epsilon-greedy:epsilon=0.1,seed=3")
	stop, _ := criterion.ParseList([]string{"end-reached", "max-actions:500"})
	level, _ := criterion.ParseList([]string{"consecutive-success:2"})
	resize, _ := operator.Parse("resize:cost=1,max-step=1")

	levels := 0
	sink := training.SinkFunc(func(e training.Event) {
		if e.Kind == training.LevelChanged {
			levels++
		}
	})

	tr, err := training.New(training.Config{
		Factory:        maze.DefaultFactoryConfig(),
		CorridorLength: 3,
		Orientation:    builder.Horizontal,
		Agent:          agent.Config{LearningRate: 0.5, Discount: 0.9},
		Policy:         pol,
		EpisodeStop:    stop,
		LevelChange:    level,
		Operators:      []operator.Operator{resize},
		Delta:          1,
		Levels:         4,
		LevelSeed:      1,
	}, training.WithSink(sink))
	if err != nil {
		fmt.Println(err)
		return
	}
	if err = tr.InitSimulation(); err != nil {
		fmt.Println(err)
		return
	}
	if err = tr.Run(context.Background()); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("level:", tr.Level(), "level changes:", levels, "finished:", tr.Finished())
	// Output: level: 4 level changes: 3 finished: true
}
