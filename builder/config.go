// SPDX-License-Identifier: MIT
// Package: lvlmaze/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • margin    = 1   (one wall ring around a corridor)
//   • overrides = nil (factory rewards everywhere)

package builder

import "github.com/katalvlaran/lvlmaze/maze"

// defaultMargin is the wall thickness around a corridor.
const defaultMargin = 1

// rewardOverride replaces the factory reward of a single node after construction.
type rewardOverride struct {
	pos    maze.Position
	reward float64
}

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// margin is the number of wall rings around a corridor.
	margin int
	// overrides are applied in order after the constructor returns.
	overrides []rewardOverride
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		margin: defaultMargin,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
