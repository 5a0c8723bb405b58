// SPDX-License-Identifier: MIT

// Package topology reports aggregate statistics of a core.Graph, used to size
// the agent's observation space and to describe a loaded network.
package topology

import (
	"github.com/katalvlaran/routesim/bfs"
	"github.com/katalvlaran/routesim/core"
)

// MaxDegree returns the largest neighbor count of any vertex, 0 for an empty
// graph. Recomputed on every call.
// Complexity: O(V).
func MaxDegree(g *core.Graph) int {
	best := 0
	for _, v := range g.Vertices() {
		d, err := g.Degree(v)
		if err != nil {
			// vertex removed concurrently
			continue
		}
		if d > best {
			best = d
		}
	}

	return best
}

// Summary describes the shape of a topology.
type Summary struct {
	Vertices   int
	Edges      int
	MaxDegree  int
	Components int
}

// Summarize computes a Summary of g.
// Complexity: O(V + E).
func Summarize(g *core.Graph) (Summary, error) {
	comps, err := bfs.Components(g)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Vertices:   g.VertexCount(),
		Edges:      g.EdgeCount(),
		MaxDegree:  MaxDegree(g),
		Components: len(comps),
	}, nil
}
