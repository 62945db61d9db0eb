// Package dijkstra finds optimal routes through a maze.Maze.
//
// Overview:
//
//   - ShortestPath returns the minimum-cost path between two passable cells,
//     where entering a cell costs the negation of its reward.
//   - The search stops as soon as the target is relaxed. Mutation operators
//     call it on every cost estimate, so the frontier is never drained
//     needlessly.
//   - WithBlocked answers "what if this cell were a wall" without mutating the
//     maze (no recoloring, no generator draws).
//
// Performance and complexity:
//
//   - Time:  O(C log C) for C = W×H cells.
//   - Space: O(C).
//
// Error handling (sentinel errors):
//
//   - ErrNilMaze, ErrSourceNotPassable, ErrTargetNotPassable, ErrNegativeCost, ErrNoPath.
//
// API reference:
//
//	func ShortestPath(m *maze.Maze, opts ...Option) (*Result, error)
//	func Length(m *maze.Maze, opts ...Option) (int, error)
package dijkstra
