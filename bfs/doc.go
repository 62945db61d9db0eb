// Package bfs provides breadth-first search over the passable cells of a
// maze.Maze, returning unweighted distances, parent links, and visit order.
//
// What
//
//   - Explore cells in non-decreasing hop distance from a start cell.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from cell → distance (moves) from start
//   - Parent: map from cell → its predecessor in the BFS tree
//   - OnVisit hook (may abort with an error), neighbor filtering via
//     WithFilterNeighbor / WithAvoid, and a MaxDepth limit.
//   - Shortcuts: Reachable, Distances, Solvable.
//
// Determinism
//
//	Neighbors are enqueued in Up, Right, Down, Left order, so the visit
//	sequence is fully reproducible.
//
// Complexity (C = W×H cells)
//
//   - Time:   O(C)
//   - Memory: O(C)
//
// Errors
//
//   - ErrMazeNil            if the maze pointer is nil.
//   - ErrStartNotPassable   if the start cell is a wall or off-grid.
//   - ErrOptionViolation    if invalid Option (e.g. negative MaxDepth).
//   - ErrUnreached          from PathTo for cells never reached.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
