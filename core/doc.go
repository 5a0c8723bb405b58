// SPDX-License-Identifier: MIT
//
// Package core provides the in-memory network topology used by the routing
// environment: an undirected, simple graph whose vertices are integer indices
// carrying a 2D position and whose edges carry two mutable attributes.
//
// The Graph G = (V,E) models a packet network:
//
//   - Vertex.ID  — non-negative int, the node index of the topology file.
//   - Vertex.Pos — (X, Y) coordinates, used by A* heuristics.
//   - Edge.Weight   — latency-like cost, domain (0, 1].
//   - Edge.Capacity — bandwidth-like value, ≥ 0.
//
// Storage layout:
//
//	adjacency[u][v] = *Edge   (mirrored: adjacency[v][u] is the same pointer)
//
// so existence checks, lookups and attribute updates of an undirected edge
// are O(1) regardless of the orientation the caller names it in.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id int, pos Position) error   // O(1), idempotent
//	HasVertex(id int) bool                  // O(1)
//	RemoveVertex(id int) error              // O(deg(v))
//
//	// Edge lifecycle
//	AddEdge(from, to int, weight, capacity float64) error // O(1)
//	HasEdge(u, v int) bool                  // O(1)
//	Edge(u, v int) (Edge, error)            // O(1), value copy
//	UpdateEdge(u, v int, fn func(*Edge)) error // O(1), under write lock
//
//	// Query
//	Neighbors(id int) ([]int, error)        // O(d log d), sorted
//	Degree(id int) (int, error)             // O(1)
//	Vertices() []int                        // O(V log V), sorted
//	Edges() []Edge                          // O(E log E), sorted by ID
//	VertexCount(), EdgeCount() int          // O(1)
//
//	// Cloning
//	Clone() *Graph                          // O(V+E) deep copy
//
// Concurrency:
//
//	A single sync.RWMutex guards vertices, edges and adjacency. Read methods
//	take the read lock; mutators take the write lock. UpdateEdge runs the
//	caller's function while holding the write lock, so the function must not
//	call back into the Graph.
//
// Errors:
//
//	ErrBadVertexID        – negative vertex ID
//	ErrVertexNotFound     – missing vertex
//	ErrEdgeNotFound       – missing edge
//	ErrBadWeight          – negative or NaN weight
//	ErrBadCapacity        – negative or NaN capacity
//	ErrLoopNotAllowed     – from == to
//	ErrMultiEdgeNotAllowed – edge already present between the endpoints
package core
