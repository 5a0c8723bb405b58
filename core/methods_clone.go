// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clone carries over nextEdgeID so future AddEdge calls on the clone
//     continue the same ID sequence.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.

package core

// Clone returns a deep copy of the Graph: vertices, edges (with their current
// Weight and Capacity) and adjacency. Mutating the clone never affects g.
//
// The environment clones the pristine topology at every episode reset, so
// congestion applied during one episode does not leak into the next.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph()
	clone.nextEdgeID = g.nextEdgeID
	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Pos: v.Pos}
		clone.adjacency[id] = make(map[int]*Edge, len(g.adjacency[id]))
	}
	for eid, e := range g.edges {
		ne := &Edge{ID: e.ID, From: e.From, To: e.To, Weight: e.Weight, Capacity: e.Capacity}
		clone.edges[eid] = ne
		clone.adjacency[e.From][e.To] = ne
		clone.adjacency[e.To][e.From] = ne
	}

	return clone
}
