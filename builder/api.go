// SPDX-License-Identifier: MIT
// Package: lvlmaze/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: Build(f, con, bopts...). Resolves cfg, runs con, applies overrides.
//   - Constructors are declared in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same factory seeds, options and constructor ⇒ identical mazes.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlmaze/maze"
)

// Constructor builds a maze with the given factory and resolved builderConfig.
// Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Place start and end on passable nodes.
//   - Preserve determinism for the same factory state and config.
type Constructor func(f *maze.Factory, cfg builderConfig) (*maze.Maze, error)

// Build resolves the builder configuration from bopts, runs con, and applies
// reward overrides in option order. Any error is wrapped with "Build: %w".
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Constructor: O(W×H) for the shipped constructors.
func Build(f *maze.Factory, con Constructor, bopts ...BuilderOption) (*maze.Maze, error) {
	if f == nil {
		return nil, fmt.Errorf("Build: %w", maze.ErrNilFactory)
	}
	if con == nil {
		return nil, fmt.Errorf("Build: nil constructor: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)

	m, err := con(f, cfg)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	for _, o := range cfg.overrides {
		if err = m.SetReward(o.pos, o.reward); err != nil {
			return nil, fmt.Errorf("Build: reward override %v: %w", o.pos, err)
		}
	}

	return m, nil
}
