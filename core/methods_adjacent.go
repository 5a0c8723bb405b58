// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, Degree, Position).
// Determinism:
//   - Neighbors() returns unique IDs sorted ascending.
// Concurrency:
//   - Read operations hold the read lock for a consistent snapshot.

package core

import (
	"fmt"
	"sort"
)

// Neighbors returns the IDs of all vertices adjacent to id, sorted ascending.
//
// Returns:
//   - []int: adjacent vertex IDs (fresh slice, safe to modify).
//   - error: ErrVertexNotFound if id does not exist.
//
// Complexity:
//   - Time O(d log d), Space O(d), where d = deg(id).
func (g *Graph) Neighbors(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}
	out := make([]int, 0, len(g.adjacency[id]))
	for nbr := range g.adjacency[id] {
		out = append(out, nbr)
	}
	sort.Ints(out)

	return out, nil
}

// Degree returns the number of neighbors of id.
// Returns ErrVertexNotFound if id does not exist.
// Complexity: O(1).
func (g *Graph) Degree(id int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}

	return len(g.adjacency[id]), nil
}

// Position returns the coordinates of id.
// Returns ErrVertexNotFound if id does not exist.
// Complexity: O(1).
func (g *Graph) Position(id int) (Position, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return Position{}, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}

	return v.Pos, nil
}
