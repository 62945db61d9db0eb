// Package dijkstra implements Dijkstra's shortest-path algorithm over the
// passable cells of a maze.Maze.
//
// Complexity (C = W×H cells):
//
//   - Time:  O(C log C)
//   - Each cell is extracted at most once; each of its ≤4 moves may push one
//     heap entry (lazy decrease-key).
//   - Space: O(C)
//
// Notes on implementation choices:
//
//   - Move cost depends only on the destination cell, so every move into the
//     target costs the same. The first relaxation of the target is therefore
//     final and the search stops there instead of draining the frontier.
//   - Heap ties are broken by insertion order; neighbors are relaxed in
//     Up, Right, Down, Left order. Equal inputs give equal paths.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlmaze/maze"
)

// ShortestPath computes the optimal route from Options.Source to
// Options.Target (defaults: maze start and end).
//
// Preconditions and validation (in order):
//  1. m must be non-nil (ErrNilMaze).
//  2. Source must be passable and not blocked (ErrSourceNotPassable).
//  3. Target must be passable and not blocked (ErrTargetNotPassable).
//
// Returns ErrNoPath if the frontier drains before the target is relaxed.
func ShortestPath(m *maze.Maze, opts ...Option) (*Result, error) {
	// 1) Validate maze and build options.
	if m == nil {
		return nil, ErrNilMaze
	}
	cfg := DefaultOptions(m)
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate endpoints.
	r := &runner{m: m, options: cfg}
	if !r.open(cfg.Source) {
		return nil, fmt.Errorf("%w: %v", ErrSourceNotPassable, cfg.Source)
	}
	if !r.open(cfg.Target) {
		return nil, fmt.Errorf("%w: %v", ErrTargetNotPassable, cfg.Target)
	}
	if cfg.Source == cfg.Target {
		return &Result{Path: []maze.Position{cfg.Source}}, nil
	}

	// 3) Run.
	r.init()
	found, err := r.process()
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %v → %v", ErrNoPath, cfg.Source, cfg.Target)
	}

	return r.result(), nil
}

// Length returns the hop length of the optimal start→end path.
func Length(m *maze.Maze, opts ...Option) (int, error) {
	res, err := ShortestPath(m, opts...)
	if err != nil {
		return 0, err
	}
	return res.Length(), nil
}

// runner holds the mutable state for a single Dijkstra execution.
// Cells are addressed by their row-major index.
type runner struct {
	m       *maze.Maze
	options Options
	dist    []float64 // best-known cost from source
	prev    []int     // predecessor index, -1 for none
	visited []bool    // finalized cells
	pq      nodePQ
	seq     int // insertion counter for heap tie-breaks
}

// open reports whether p is passable and not blocked for this query.
func (r *runner) open(p maze.Position) bool {
	if !r.m.Passable(p) {
		return false
	}
	_, blocked := r.options.Blocked[p]
	return !blocked
}

func (r *runner) idx(p maze.Position) int { return p.Y*r.m.Width() + p.X }

func (r *runner) pos(i int) maze.Position {
	w := r.m.Width()
	return maze.Position{X: i % w, Y: i / w}
}

// init sets every distance to +∞ except the source and seeds the heap.
func (r *runner) init() {
	n := r.m.Width() * r.m.Height()
	r.dist = make([]float64, n)
	r.prev = make([]int, n)
	r.visited = make([]bool, n)
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
		r.prev[i] = -1
	}
	r.pq = make(nodePQ, 0, n)
	s := r.idx(r.options.Source)
	r.dist[s] = 0
	heap.Init(&r.pq)
	r.push(s, 0)
}

func (r *runner) push(i int, d float64) {
	heap.Push(&r.pq, &nodeItem{idx: i, dist: d, seq: r.seq})
	r.seq++
}

// process extracts cells in non-decreasing distance and relaxes their moves
// until the target is relaxed (true) or the heap drains (false).
func (r *runner) process() (bool, error) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.idx] {
			continue // stale entry
		}
		r.visited[item.idx] = true

		done, err := r.relax(item.idx)
		if err != nil || done {
			return done, err
		}
	}
	return false, nil
}

// relax improves the distances of u's open neighbors. It reports true as
// soon as the target has been relaxed.
func (r *runner) relax(u int) (bool, error) {
	target := r.idx(r.options.Target)
	for _, q := range r.m.PassableNeighbors(r.pos(u)) {
		if !r.open(q) {
			continue
		}
		v := r.idx(q)
		if r.visited[v] {
			continue
		}
		w := -r.m.Reward(q)
		if w < 0 && v != target {
			return false, fmt.Errorf("%w: %v cost=%g", ErrNegativeCost, q, w)
		}
		nd := r.dist[u] + w
		if nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		if v == target {
			return true, nil
		}
		r.push(v, nd)
	}
	return false, nil
}

// result walks predecessors back from the target.
func (r *runner) result() *Result {
	t := r.idx(r.options.Target)
	var rev []maze.Position
	for i := t; i != -1; i = r.prev[i] {
		rev = append(rev, r.pos(i))
	}
	path := make([]maze.Position, len(rev))
	for i := range rev {
		path[i] = rev[len(rev)-1-i]
	}
	return &Result{Path: path, Cost: r.dist[t]}
}

// nodeItem represents a cell and its current distance from the source.
type nodeItem struct {
	idx  int
	dist float64
	seq  int
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then by insertion seq.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
