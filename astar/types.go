// SPDX-License-Identifier: MIT

// Package astar defines sentinel errors, heuristics and configuration options
// for A* shortest-path search on latency-weighted graphs.
//
// Options:
//
//	– WithHeuristic: admissible estimate of the remaining cost to the goal.
//	  Default is Zero, which makes A* behave exactly like Dijkstra.
//	– WithReturnPath: also reconstruct the vertex sequence of the best path.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source or goal vertex does not exist.
//	– ErrNegativeWeight  if a negative edge weight is detected in the graph.
//	– ErrNoPath          if the goal is unreachable from the source.
package astar

import (
	"errors"
	"math"

	"github.com/katalvlaran/routesim/core"
)

// Sentinel errors returned by the A* implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrVertexNotFound indicates that the source or goal is missing.
	ErrVertexNotFound = errors.New("astar: vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("astar: negative edge weight encountered")

	// ErrNoPath indicates that the goal cannot be reached from the source.
	ErrNoPath = errors.New("astar: no path between vertices")
)

// Heuristic estimates the remaining cost from a vertex at position from to
// the goal at position goal. It must never overestimate the true cost.
type Heuristic func(from, goal core.Position) float64

// Zero is the trivial admissible heuristic.
func Zero(core.Position, core.Position) float64 { return 0 }

// Euclidean returns a straight-line heuristic scaled by scale.
// It is admissible when every edge weight is at least scale times the
// distance between its endpoints.
func Euclidean(scale float64) Heuristic {
	return func(from, goal core.Position) float64 {
		return scale * math.Hypot(goal.X-from.X, goal.Y-from.Y)
	}
}

// Options configures the behavior of the A* search.
type Options struct {
	Heuristic  Heuristic // remaining-cost estimate; never nil after defaults
	ReturnPath bool      // whether to reconstruct the best path
}

// Option represents a functional option for configuring A*.
type Option func(*Options)

// WithHeuristic sets the heuristic. A nil h keeps the default.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithReturnPath enables reconstruction of the best path in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// DefaultOptions returns Zero heuristic and no path reconstruction.
func DefaultOptions() Options {
	return Options{Heuristic: Zero}
}

// Result holds the cost of the best path and, if requested, its vertices.
type Result struct {
	Cost float64
	Path []int
}
