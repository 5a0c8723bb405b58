// SPDX-License-Identifier: MIT

// Package astar implements A* shortest-path search on a core.Graph using
// Edge.Weight as the traversal cost.
//
// Complexity:
//
//   - Time:  O((V + E) log V) in the worst case (Zero heuristic).
//   - Space: O(V + E) for the score maps and the lazy priority queue.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - The search stops as soon as the goal is popped, so the returned cost is
//     exact for any admissible heuristic.
//   - No state is cached across calls; the reward evaluator recomputes from scratch.
package astar

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/routesim/core"
)

// Search finds the cheapest path from source to goal.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must contain source and goal (ErrVertexNotFound).
//  3. No edge in g can have negative weight (ErrNegativeWeight).
//
// Returns ErrNoPath if goal is unreachable.
func Search(g *core.Graph, source, goal int, opts ...Option) (Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return Result{}, ErrNilGraph
	}
	goalPos, err := g.Position(goal)
	if err != nil {
		return Result{}, fmt.Errorf("%w: goal %d", ErrVertexNotFound, goal)
	}
	if !g.HasVertex(source) {
		return Result{}, fmt.Errorf("%w: source %d", ErrVertexNotFound, source)
	}

	// 3) Pre-scan all edges to detect negative weights.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return Result{}, fmt.Errorf("%w: edge %d-%d weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	r := &runner{
		g:       g,
		options: cfg,
		goal:    goal,
		goalPos: goalPos,
		gScore:  make(map[int]float64),
		prev:    make(map[int]int),
		closed:  make(map[int]bool),
	}

	return r.run(source)
}

// PathLength returns only the cost of the cheapest path from source to goal.
func PathLength(g *core.Graph, source, goal int, opts ...Option) (float64, error) {
	res, err := Search(g, source, goal, opts...)
	if err != nil {
		return 0, err
	}

	return res.Cost, nil
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	g       *core.Graph
	options Options
	goal    int
	goalPos core.Position
	gScore  map[int]float64 // best known cost from source
	prev    map[int]int     // predecessor on the best known path
	closed  map[int]bool    // finalized vertices
	pq      nodePQ
}

func (r *runner) run(source int) (Result, error) {
	h, err := r.estimate(source)
	if err != nil {
		return Result{}, err
	}
	r.gScore[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, g: 0, f: h})

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.closed[u] {
			continue // stale entry
		}
		if u == r.goal {
			return r.result(source, item.g), nil
		}
		r.closed[u] = true

		if err = r.relax(u, item.g); err != nil {
			return Result{}, err
		}
	}

	return Result{Cost: math.Inf(1)}, fmt.Errorf("%w: %d→%d", ErrNoPath, source, r.goal)
}

// relax examines every edge incident to u and pushes improved neighbors.
func (r *runner) relax(u int, du float64) error {
	nbrs, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("astar: failed to get neighbors of %d: %w", u, err)
	}
	for _, v := range nbrs {
		if r.closed[v] {
			continue
		}
		e, err := r.g.Edge(u, v)
		if err != nil {
			return fmt.Errorf("astar: %w", err)
		}
		newG := du + e.Weight
		if old, seen := r.gScore[v]; seen && newG >= old {
			continue
		}
		r.gScore[v] = newG
		r.prev[v] = u

		h, err := r.estimate(v)
		if err != nil {
			return err
		}
		heap.Push(&r.pq, &nodeItem{id: v, g: newG, f: newG + h})
	}

	return nil
}

func (r *runner) estimate(id int) (float64, error) {
	pos, err := r.g.Position(id)
	if err != nil {
		return 0, fmt.Errorf("astar: %w", err)
	}

	return r.options.Heuristic(pos, r.goalPos), nil
}

func (r *runner) result(source int, cost float64) Result {
	res := Result{Cost: cost}
	if !r.options.ReturnPath {
		return res
	}
	for cur := r.goal; ; cur = r.prev[cur] {
		res.Path = append(res.Path, cur)
		if cur == source {
			break
		}
	}
	for i, j := 0, len(res.Path)-1; i < j; i, j = i+1, j-1 {
		res.Path[i], res.Path[j] = res.Path[j], res.Path[i]
	}

	return res
}

// nodeItem is a queue entry: g is the cost so far, f = g + heuristic.
type nodeItem struct {
	id int
	g  float64
	f  float64
}

// nodePQ is a min-heap of *nodeItem ordered by f, ties broken by lower g
// then lower ID for deterministic expansion order.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	if pq[i].g != pq[j].g {
		return pq[i].g < pq[j].g
	}
	return pq[i].id < pq[j].id
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
