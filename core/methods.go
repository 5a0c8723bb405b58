// SPDX-License-Identifier: MIT
//
// Package core: vertex and edge lifecycle.
//
// This file provides O(1) (amortized) operations for vertex and edge
// management on the Graph type defined in types.go. Adjacency is stored as a
// nested map adjacency[u][v] = *Edge, mirrored for both orientations, allowing
// constant-time existence checks, insertion, deletion and attribute updates.

package core

import (
	"fmt"
	"math"
	"sort"
)

// AddVertex inserts a new vertex with the given ID and position.
// Returns ErrBadVertexID if id is negative.
// If the vertex already exists, this is a no-op (idempotent) and its
// position is left untouched.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id int, pos Position) error {
	if id < 0 {
		return ErrBadVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(id, pos)

	return nil
}

// addVertexLocked inserts id if absent. Caller holds the write lock.
func (g *Graph) addVertexLocked(id int, pos Position) {
	if _, exists := g.vertices[id]; exists {
		return
	}
	g.vertices[id] = &Vertex{ID: id, Pos: pos}
	g.adjacency[id] = make(map[int]*Edge)
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// Vertex returns a copy of the vertex with the given ID.
// Returns ErrVertexNotFound if it does not exist.
// Complexity: O(1).
func (g *Graph) Vertex(id int) (Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}

	return *v, nil
}

// RemoveVertex deletes the vertex and all incident edges from the graph.
// Routes sampled before the removal may no longer be connected afterwards.
// Returns ErrVertexNotFound if the vertex does not exist.
// Complexity: O(deg(v)).
func (g *Graph) RemoveVertex(id int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.vertices[id]; !exists {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}
	for nbr, e := range g.adjacency[id] {
		delete(g.edges, e.ID)
		delete(g.adjacency[nbr], id)
	}
	delete(g.adjacency, id)
	delete(g.vertices, id)

	return nil
}

// AddEdge creates an undirected edge between from and to with the given
// latency weight and capacity. Missing endpoints are created at the origin,
// mirroring how the topology file is allowed to reference nodes.
//
// Returns ErrBadVertexID, ErrLoopNotAllowed, ErrBadWeight, ErrBadCapacity or
// ErrMultiEdgeNotAllowed.
// Complexity: O(1).
func (g *Graph) AddEdge(from, to int, weight, capacity float64) error {
	// 1) Input validation
	if from < 0 || to < 0 {
		return ErrBadVertexID
	}
	if from == to {
		return fmt.Errorf("%w: %d", ErrLoopNotAllowed, from)
	}
	if weight < 0 || math.IsNaN(weight) {
		return fmt.Errorf("%w: %d-%d weight=%g", ErrBadWeight, from, to, weight)
	}
	if capacity < 0 || math.IsNaN(capacity) {
		return fmt.Errorf("%w: %d-%d capacity=%g", ErrBadCapacity, from, to, capacity)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Ensure both endpoints exist (idempotent)
	g.addVertexLocked(from, Position{})
	g.addVertexLocked(to, Position{})

	// 3) Simple graph: one edge per unordered pair
	if _, exists := g.adjacency[from][to]; exists {
		return fmt.Errorf("%w: %d-%d", ErrMultiEdgeNotAllowed, from, to)
	}

	// 4) Store and mirror
	g.nextEdgeID++
	e := &Edge{ID: g.nextEdgeID, From: from, To: to, Weight: weight, Capacity: capacity}
	g.edges[e.ID] = e
	g.adjacency[from][to] = e
	g.adjacency[to][from] = e

	return nil
}

// HasEdge reports whether u and v are adjacent (orientation-free).
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[u][v]

	return ok
}

// Edge returns a copy of the edge joining u and v.
// Returns ErrEdgeNotFound if they are not adjacent.
// Complexity: O(1).
func (g *Graph) Edge(u, v int) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.adjacency[u][v]
	if !ok {
		return Edge{}, fmt.Errorf("%w: %d-%d", ErrEdgeNotFound, u, v)
	}

	return *e, nil
}

// UpdateEdge runs fn on the live edge joining u and v while holding the
// write lock. fn may change Weight and Capacity; changes to ID, From or To
// are discarded. fn must not call back into g.
//
// Returns ErrEdgeNotFound if u and v are not adjacent.
// Complexity: O(1) plus the cost of fn.
func (g *Graph) UpdateEdge(u, v int, fn func(*Edge)) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	e, ok := g.adjacency[u][v]
	if !ok {
		return fmt.Errorf("%w: %d-%d", ErrEdgeNotFound, u, v)
	}
	id, from, to := e.ID, e.From, e.To
	fn(e)
	e.ID, e.From, e.To = id, from, to

	return nil
}

// VertexCount returns |V|.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns |E|.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]int, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// Edges returns copies of all edges sorted by Edge.ID ascending.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}
