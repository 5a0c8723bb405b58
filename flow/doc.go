// SPDX-License-Identifier: MIT
//
// Package flow computes the maximum feasible flow between two vertices of a
// *core.Graph, reading Edge.Capacity as the link bandwidth.
//
// The network is undirected, so every edge {u,v} contributes its capacity in
// both directions of the residual network. Self-loops cannot exist in a
// core.Graph and parallel edges are rejected at insertion, so no aggregation
// is required.
//
// Algorithm: Edmonds–Karp
//
//   - Method: breadth-first search for shortest (fewest-edge) augmenting paths.
//   - Time:   O(V · E²).
//   - Memory: O(V + E) for the residual map and BFS queue.
//
// The routing environment uses the max-flow value as the "best achievable
// flow" between a route's endpoints, against which the bottleneck capacity
// of the agent's actual path is compared.
//
// Options:
//
//	– Epsilon: residual capacities ≤ Epsilon are treated as saturated (default 1e-9).
//	– Logger:  if set, each augmentation is logged at Debug level.
//
// Errors:
//
//	– ErrSourceNotFound / ErrSinkNotFound for missing endpoints.
//	– EdgeError for a negative capacity.
//	– ctx.Err() if the context is cancelled between augmentations.
package flow
