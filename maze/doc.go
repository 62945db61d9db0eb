// Package maze is the graph layer of lvlmaze.
//
// What:
//
//   - Maze: a W×H arena of Node values (row-major), a start and an end.
//   - Factory: builds nodes with rewards and palette colors; recolors nodes
//     only when their color does not already look like the target type.
//   - State: the 8-neighbor perceptual encoding used as the Q-table key.
//
// Why:
//
//   - Visually identical neighborhoods alias to one state, so learned values
//     generalize across cells that look the same.
//   - Two seeded generators keep palette composition and per-node appearance
//     independently reproducible.
//
// Complexity:
//
//   - New, Resize, Clone: O(W×H)
//   - State, SetType:     O(1) + O(palette) for the color lookup
//
// Errors:
//
//   - ErrTooSmall, ErrOutOfBounds, ErrNotPassable, ErrProtectedNode,
//     ErrBadResize, ErrNilFactory, ErrInvalidFactory, ErrPaletteExhausted
package maze
