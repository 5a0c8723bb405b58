// SPDX-License-Identifier: MIT

// Package pathmetric measures walks through a core.Graph.
//
//   - Length:    sum of Edge.Weight over consecutive vertex pairs.
//   - FlowValue: bottleneck (minimum) Edge.Capacity over consecutive pairs.
//   - BestFlow:  maximum flow between two vertices over the whole network.
//
// A path of fewer than two vertices traverses no edge: Length and FlowValue
// are both 0. Walks may revisit vertices; every traversal of an edge counts
// towards Length.
package pathmetric

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/routesim/core"
	"github.com/katalvlaran/routesim/flow"
)

// ErrMissingEdge is returned when two consecutive path vertices are not adjacent.
var ErrMissingEdge = errors.New("pathmetric: consecutive vertices are not adjacent")

// Length returns the total latency weight along path.
func Length(g *core.Graph, path []int) (float64, error) {
	var total float64
	err := walk(g, path, func(e core.Edge) { total += e.Weight })
	if err != nil {
		return 0, err
	}

	return total, nil
}

// FlowValue returns the smallest capacity along path, i.e. the throughput a
// single flow pinned to that path could sustain.
func FlowValue(g *core.Graph, path []int) (float64, error) {
	if len(path) < 2 {
		return 0, nil
	}
	minCap := math.Inf(1)
	err := walk(g, path, func(e core.Edge) { minCap = math.Min(minCap, e.Capacity) })
	if err != nil {
		return 0, err
	}

	return minCap, nil
}

// BestFlow returns the maximum flow value from source to target using every
// link of the network.
func BestFlow(ctx context.Context, g *core.Graph, source, target int) (float64, error) {
	return flow.EdmondsKarp(ctx, g, source, target, nil)
}

// walk calls fn for the edge behind every consecutive pair of path.
func walk(g *core.Graph, path []int, fn func(core.Edge)) error {
	for i := 0; i+1 < len(path); i++ {
		e, err := g.Edge(path[i], path[i+1])
		if err != nil {
			return fmt.Errorf("%w: step %d (%d→%d): %v", ErrMissingEdge, i, path[i], path[i+1], err)
		}
		fn(e)
	}

	return nil
}
