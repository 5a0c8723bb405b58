// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Position and Graph declarations plus sentinel errors.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrBadVertexID indicates a negative vertex ID.
	ErrBadVertexID = errors.New("core: vertex ID must be non-negative")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a negative or NaN edge weight.
	ErrBadWeight = errors.New("core: bad edge weight")

	// ErrBadCapacity indicates a negative or NaN edge capacity.
	ErrBadCapacity = errors.New("core: bad edge capacity")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Position is a point in the plane of the topology.
type Position struct {
	X, Y float64
}

// Vertex represents a network node.
type Vertex struct {
	// ID is the node index, unique within its Graph.
	ID int

	// Pos is the node's coordinates as read from the topology file.
	Pos Position
}

// Edge represents an undirected link between two vertices.
//
// From/To keep the orientation the edge was created with; lookups through the
// Graph are orientation-free.
type Edge struct {
	// ID is a monotonically increasing identifier (1, 2, …) in insertion order.
	ID int

	// From and To are the endpoint vertex IDs.
	From, To int

	// Weight is the latency-like traversal cost.
	Weight float64

	// Capacity is the bandwidth-like throughput of the link.
	Capacity float64
}

// Other returns the endpoint opposite to id.
// If id is not an endpoint, From is returned.
func (e Edge) Other(id int) int {
	if e.From == id {
		return e.To
	}

	return e.From
}

// Graph is the undirected, capacitated topology.
//
// mu guards every field below it. nextEdgeID is only touched under mu.
type Graph struct {
	mu sync.RWMutex

	nextEdgeID int
	vertices   map[int]*Vertex
	edges      map[int]*Edge

	// adjacency[u][v] and adjacency[v][u] point at the same *Edge.
	adjacency map[int]map[int]*Edge
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[int]*Vertex),
		edges:     make(map[int]*Edge),
		adjacency: make(map[int]map[int]*Edge),
	}
}
