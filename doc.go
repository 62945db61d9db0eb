// Package lvlmaze is a curriculum Q-learning playground: an agent learns to
// cross a maze that keeps getting harder, one level at a time.
//
// 🚀 What is lvlmaze?
//
//	A deterministic, seed-driven toolkit that brings together:
//		• Maze graph: colored nodes, rewards, 8-neighbor perceptual states
//		• Structural analysis: BFS reachability, early-exit Dijkstra,
//		  loop detection and parallel routes (DFS)
//		• Curriculum: four budgeted mutation operators and their driver
//		• Learning: tabular Q-learning with seven exploration policies
//		• Training: a level/episode state machine with pluggable criteria
//
// ✨ Why lvlmaze?
//
//   - Reproducible – every random choice comes from an owned, seeded generator
//   - Perceptual states – visually identical cells share what they learn
//   - Budgeted curricula – each level costs exactly what its operators spend
//   - Configurable – registries turn "name:key=value" strings into components
//
// Packages:
//
//	maze/      - Maze, Node, Factory and the perceptual State encoding
//	builder/   - first-level constructors (Corridor, Layout)
//	bfs/       - reachability, distances, solvability
//	dijkstra/  - shortest path with early exit and provisional blocking
//	dfs/       - loop detection, parallel routes, randomized path search
//	operator/  - Resize, NewPath, DeadEnd, ChangeOptimalPath, Mutate
//	agent/     - Action, QTable, Agent (Bellman update)
//	policy/    - Greedy … VDBE
//	criterion/ - episode-stop and level-change conditions, expr-lang filters
//	training/  - the training state machine and its event sinks
//	report/    - HTML learning curves and colored console output
//	config/    - .env and LVLMAZE_* loading
//	cmd/lvlmaze - the command-line runner
//
// Quick ASCII example (level 1, a corridor):
//
//	######
//	#S..E#
//	######
//
//	go install github.com/katalvlaran/lvlmaze/cmd/lvlmaze@latest
package lvlmaze
