// Package builder provides functional-options constructors for lvlmaze mazes.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – Build(f, con, opts...): resolves options, runs the Constructor, applies overrides.
//   - Constructors:
//     – Corridor(length, orientation): the level-1 maze of every training run.
//     – Layout(rows...):               ASCII drawings ('#', '.', 'S', 'E').
//   - Options:
//     – WithMargin(n):   wall rings around a corridor (default 1).
//     – WithReward(p,r): per-node reward override, applied after construction.
//
// Guarantees:
//
//   - Deterministic: the same factory seeds and constructor give equal mazes.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors return sentinel errors (ErrTooFewNodes, ErrBadLayout, ...)
//     wrapped with the method name; they never panic.
package builder
