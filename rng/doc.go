// Package rng centralizes deterministic random generation for every
// stochastic component of lvlmaze (palettes, policies, operators, level
// selection).
//
// Goals:
//   - Determinism: same seed ⇒ identical trajectories across runs.
//   - Encapsulation: one factory; no time-based sources anywhere.
//   - Independence: components own their streams and never share them.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use Derive to create independent streams for sub-components.
package rng
