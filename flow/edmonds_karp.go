// SPDX-License-Identifier: MIT

package flow

import (
	"context"
	"math"

	"github.com/katalvlaran/routesim/core"
)

// EdmondsKarp computes the maximum flow from source→sink
// using the Edmonds–Karp algorithm (BFS for shortest augmenting paths).
//
// It returns:
//   - maxFlow: total flow value (0 when source == sink)
//   - err: non-nil on missing vertices, negative capacities or cancellation.
//
// Options (nil uses defaults):
//   - Epsilon: capacities ≤ Epsilon treated as zero (default 1e-9)
//   - Logger:  log each augmentation at Debug level
//
// Complexity: O(V · E²)
// Memory:     O(V + E)
func EdmondsKarp(
	ctx context.Context,
	g *core.Graph,
	source, sink int,
	opts *FlowOptions,
) (maxFlow float64, err error) {
	// 1) Resolve options
	cfg := DefaultOptions()
	if opts != nil {
		if opts.Epsilon > 0 {
			cfg.Epsilon = opts.Epsilon
		}
		cfg.Logger = opts.Logger
	}
	if ctx == nil {
		ctx = context.Background()
	}

	// 2) Validate presence of source/sink
	if !g.HasVertex(source) {
		return 0, ErrSourceNotFound
	}
	if !g.HasVertex(sink) {
		return 0, ErrSinkNotFound
	}
	if source == sink {
		return 0, nil
	}

	// 3) Build residual capacities; undirected edges open both directions.
	residual, err := buildCapMap(g, cfg.Epsilon)
	if err != nil {
		return 0, err
	}

	// 4) Main loop: find BFS augmenting paths until none remain
	for {
		if err = ctx.Err(); err != nil {
			return maxFlow, err
		}
		path, bottle := bfsAugmentingPath(residual, source, sink, cfg.Epsilon)
		if len(path) == 0 || bottle <= cfg.Epsilon {
			break
		}
		if cfg.Logger != nil {
			cfg.Logger.Debugf("augmenting path %v with flow %.3g", path, bottle)
		}
		maxFlow += bottle

		// 5) Augment along the path
		for i := 0; i < len(path)-1; i++ {
			u, v := path[i], path[i+1]
			residual[u][v] = math.Max(0, residual[u][v]-bottle)
			residual[v][u] += bottle
		}
	}

	return maxFlow, nil
}

// buildCapMap returns capMap[u][v] = capacity of {u,v}, in both orientations,
// dropping capacities ≤ eps.
func buildCapMap(g *core.Graph, eps float64) (map[int]map[int]float64, error) {
	capMap := make(map[int]map[int]float64, g.VertexCount())
	for _, v := range g.Vertices() {
		capMap[v] = make(map[int]float64)
	}
	for _, e := range g.Edges() {
		if e.Capacity < -eps {
			return nil, EdgeError{From: e.From, To: e.To, Cap: e.Capacity}
		}
		if e.Capacity <= eps {
			continue
		}
		capMap[e.From][e.To] = e.Capacity
		capMap[e.To][e.From] = e.Capacity
	}

	return capMap, nil
}

// bfsAugmentingPath finds the shortest (fewest-edges) path in residual
// from source→sink with positive capacity > eps, and returns that path
// plus its bottleneck capacity. Returns nil if no path found.
func bfsAugmentingPath(residual map[int]map[int]float64, source, sink int, eps float64) ([]int, float64) {
	parent := make(map[int]int, len(residual))
	bottleneck := map[int]float64{source: math.Inf(1)}
	visited := map[int]bool{source: true}

	queue := []int{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for v, c := range residual[u] {
			if visited[v] || c <= eps {
				continue
			}
			visited[v] = true
			parent[v] = u
			bottleneck[v] = math.Min(bottleneck[u], c)
			if v == sink {
				// reconstruct path
				path := []int{sink}
				for cur := sink; cur != source; {
					cur = parent[cur]
					path = append(path, cur)
				}
				for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
					path[i], path[j] = path[j], path[i]
				}
				return path, bottleneck[sink]
			}
			queue = append(queue, v)
		}
	}

	return nil, 0
}
