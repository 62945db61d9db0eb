// SPDX-License-Identifier: MIT
// Package: lvlmaze/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w.
//   • Validation panics are confined to option constructors (WithX...).

package builder

import "errors"

// ErrTooFewNodes indicates a corridor shorter than the allowed minimum.
// Usage: if errors.Is(err, ErrTooFewNodes) { /* report invalid length */ }.
var ErrTooFewNodes = errors.New("builder: corridor too short")

// ErrBadOrientation indicates an orientation other than Horizontal or Vertical.
var ErrBadOrientation = errors.New("builder: unknown orientation")

// ErrBadLayout indicates malformed ASCII rows: ragged rows, unknown glyphs,
// or a missing / duplicated start or end.
var ErrBadLayout = errors.New("builder: malformed layout")

// ErrConstructFailed indicates that the builder could not construct a maze
// without breaking its invariants (e.g., nil constructor).
var ErrConstructFailed = errors.New("builder: construction failed")
