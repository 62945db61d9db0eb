// Package operator implements the budgeted maze mutations of the curriculum.
//
// Every operator follows a two-phase protocol: EstimateCost stages a change
// that fits the remaining budget and prices it, ChangeMaze applies exactly
// that change. Estimates recompute the optimal path (dijkstra) and, where
// needed, loop detection (dfs) from scratch; operators keep no structural
// cache between calls.
//
//   - Resize:            grow right/down, move the end to the new corner.
//   - NewPath:           add a corridor between two optimal-path cells that is
//     longer than the segment it bypasses.
//   - DeadEnd:           add a branch touching no other passable cell.
//   - ChangeOptimalPath: wall off an optimal-path cell on a parallel route.
//
// Mutate is the curriculum driver; New and Parse form the closed registry
// used by configuration loading.
//
// All randomness comes from each operator's own seeded generator and the
// generator passed to Mutate.
package operator
