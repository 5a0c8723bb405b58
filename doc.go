// Package routesim is a congestion-aware routing playground: it loads a
// network topology, loads it with background traffic and lets an agent walk
// from a random source to a random target while a reward policy scores each
// hop.
//
// 🚀 What is inside?
//
//	core/       — thread-safe undirected Graph with positions, weights, capacities
//	brite/      — loader for BRITE topology exports
//	bfs/        — hop-count traversal, shortest path, connected components
//	astar/      — weighted cost-to-go (A*, zero heuristic by default)
//	flow/       — Edmonds–Karp max flow over link capacities
//	pathmetric/ — path latency, bottleneck capacity, best achievable flow
//	route/      — seeded, bounded sampling of connected routes and flows
//	congestion/ — latency/capacity degradation of the links flows use
//	reward/     — Shaped and Simple reward policies
//	topology/   — maximum degree and topology summaries
//	env/        — Reset/Step episode driver tying everything together
//	config/     — TOML/YAML configuration with validation
//	logging/    — logrus setup with rotated log files
//	telemetry/  — Prometheus collectors
//
// Quick ASCII example of one episode:
//
//	    S───1───2
//	    │   ╎   │      ╎ congested by a background flow
//	    3───4───T
//
//	Reset picks S and T, congests 1-4, and the agent steps S→3→4→T.
//
// The cmd/routesim binary runs random-walk episodes from a config file:
//
//	go run ./cmd/routesim -config routesim.toml
package routesim
