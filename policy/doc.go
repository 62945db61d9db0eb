// Package policy provides the exploration policies of the Q-learning agent.
//
// What:
//
//   - Greedy, Random: the two base choices.
//   - EpsilonGreedy and its schedules DecreasingEpsilon and EpsilonFirst.
//   - Softmax: Boltzmann selection with decimal weights.
//   - VDBE: per-state ε adapted from Q-value changes (agent.PostProcessor).
//
// Determinism:
//
//   - Every policy owns generators derived from its seed; candidates are
//     always visited in the canonical action order, so a seed fixes the
//     sequence of choices regardless of map iteration order.
//
// Errors:
//
//   - ErrInvalidParameter from constructors (ε, factor, temperature, σ,
//     digits, N out of range). Values are never clamped.
//   - ErrArithmetic when a decimal exponential traps (overflow, underflow).
//
// New and Parse form the closed registry used by configuration loading.
package policy
