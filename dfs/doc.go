// Package dfs implements the depth-first structural analysis of lvlmaze.
//
// What:
//
//   - DetectLoops: three-color DFS (White, Gray, Black) from the maze start;
//     a move onto a Gray cell other than the parent closes a loop. Loops are
//     deduplicated by member-set equality.
//   - ParallelRoutes: keeps the loops with at least two distinct members next
//     to the optimal path. Such a loop is a genuine alternate corridor rather
//     than an incidental branch.
//   - RandomPath: randomized bounded DFS that carves one-cell-wide corridors
//     through walls under caller constraints (Step, Accept, length bounds,
//     expansion limit). Mutation operators build new paths and dead ends on it.
//
// Determinism:
//
//	DetectLoops follows Up, Right, Down, Left order. RandomPath shuffles with
//	the injected generator only, so equal seeds give equal corridors.
//
// Complexity:
//
//   - DetectLoops:    Time O(C + L·ℓ log ℓ), Memory O(C)
//   - ParallelRoutes: Time O(Σ|loop| + |path|)
//   - RandomPath:     Time O(ExpansionLimit), Memory O(MaxLength)
//
// Errors:
//
//   - ErrMazeNil          maze pointer is nil
//   - ErrRootOutOfBounds  RandomPath root outside the grid
//   - ErrOptionViolation  invalid length bounds or expansion limit
//   - ErrNoCandidate      no acceptable path found
package dfs
