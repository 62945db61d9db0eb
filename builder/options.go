// SPDX-License-Identifier: MIT
// Package: lvlmaze/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.

package builder

import (
	"math"

	"github.com/katalvlaran/lvlmaze/maze"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before construction begins.
type BuilderOption func(*builderConfig)

// WithMargin sets the number of wall rings around a corridor.
// Panics when n < 1: a corridor must not touch the grid edge.
func WithMargin(n int) BuilderOption {
	if n < 1 {
		panic("builder: WithMargin(n<1)")
	}
	return func(c *builderConfig) {
		c.margin = n
	}
}

// WithReward overrides the reward of the node at p after construction.
// Panics on NaN.
func WithReward(p maze.Position, reward float64) BuilderOption {
	if math.IsNaN(reward) {
		panic("builder: WithReward(NaN)")
	}
	return func(c *builderConfig) {
		c.overrides = append(c.overrides, rewardOverride{pos: p, reward: reward})
	}
}
