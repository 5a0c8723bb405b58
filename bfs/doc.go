// SPDX-License-Identifier: MIT
//
// Package bfs provides breadth-first search over a core.Graph, returning
// hop-count distances, parent links, and visit order.
//
// The route sampler uses it for two things:
//
//   - Reachability: is there any walk from source to target?
//   - Hop-count shortest paths: the flows that congest the network follow
//     the path with the fewest links, ignoring latency weights.
//
// Determinism
//
//	core.Graph.Neighbors returns IDs sorted ascending and BFS enqueues them
//	in that order, so the visit sequence and the returned paths are fully
//	reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(3))
//	path, err := bfs.ShortestPath(g, 0, 7)
//	comps, err := bfs.Components(g)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNoPath               if ShortestPath finds the target unreachable.
//   - ctx.Err()               if the context is cancelled mid-search.
package bfs
