package training

import (
	"fmt"

	"github.com/katalvlaran/lvlmaze/agent"
	"github.com/katalvlaran/lvlmaze/builder"
	"github.com/katalvlaran/lvlmaze/criterion"
	"github.com/katalvlaran/lvlmaze/maze"
	"github.com/katalvlaran/lvlmaze/operator"
)

// Config is the validated input of a training run. Policy, criteria and
// operators arrive constructed; Training never parses.
type Config struct {
	// Factory configures rewards and palettes.
	Factory maze.FactoryConfig
	// CorridorLength and Orientation shape the first level.
	CorridorLength int
	Orientation    builder.Orientation
	// Agent holds α and γ.
	Agent agent.Config
	// InitialQ is the value of new Q-table entries.
	InitialQ float64
	// Policy is shared by every level's agent.
	Policy agent.Policy
	// EpisodeStop criteria are checked after every action, in order.
	EpisodeStop []criterion.Criterion
	// LevelChange criteria are checked after every finished episode, in order.
	LevelChange []criterion.Criterion
	// Operators feed the curriculum driver on level change.
	Operators []operator.Operator
	// Delta is the budget of each level change (> 0).
	Delta int
	// Levels is the number of levels to train (≥ 1).
	Levels int
	// ResetQTable clears the Q-table on every level change.
	ResetQTable bool
	// LevelSeed drives operator sampling in the curriculum driver.
	LevelSeed int64
}

// Validate reports the first invalid field, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	if err := c.Factory.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Agent.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	switch {
	case c.CorridorLength < 2:
		return fmt.Errorf("%w: CorridorLength=%d", ErrInvalidConfig, c.CorridorLength)
	case c.Orientation != builder.Horizontal && c.Orientation != builder.Vertical:
		return fmt.Errorf("%w: Orientation=%d", ErrInvalidConfig, int(c.Orientation))
	case c.Policy == nil:
		return fmt.Errorf("%w: nil Policy", ErrInvalidConfig)
	case len(c.EpisodeStop) == 0:
		return fmt.Errorf("%w: no episode-stop criteria", ErrInvalidConfig)
	case len(c.LevelChange) == 0:
		return fmt.Errorf("%w: no level-change criteria", ErrInvalidConfig)
	case c.Levels < 1:
		return fmt.Errorf("%w: Levels=%d", ErrInvalidConfig, c.Levels)
	case c.Levels > 1 && len(c.Operators) == 0:
		return fmt.Errorf("%w: no operators for %d levels", ErrInvalidConfig, c.Levels)
	case c.Delta <= 0:
		return fmt.Errorf("%w: Delta=%d", ErrInvalidConfig, c.Delta)
	}
	for i, cr := range c.EpisodeStop {
		if cr == nil {
			return fmt.Errorf("%w: EpisodeStop[%d] is nil", ErrInvalidConfig, i)
		}
	}
	for i, cr := range c.LevelChange {
		if cr == nil {
			return fmt.Errorf("%w: LevelChange[%d] is nil", ErrInvalidConfig, i)
		}
	}
	for i, op := range c.Operators {
		if op == nil {
			return fmt.Errorf("%w: Operators[%d] is nil", ErrInvalidConfig, i)
		}
	}
	return nil
}
