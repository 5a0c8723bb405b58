// SPDX-License-Identifier: MIT
//
// Package reward scores an agent's walk toward a target vertex.
//
// The state consumed by every policy is (graph, target, path), where the last
// element of path is the agent's current position. The result is a Record:
// Values[0] is the scalar reward, optionally followed by the path length and
// flow value of the full walk, plus a Done flag.
//
// Two interchangeable policies form a closed set:
//
// Shaped — progress-shaped and horizon-limited (path needs ≥ 2 vertices):
//
//	c2 = A*(path[-2] → target)
//	at target:           [+1.01 if c2 == weight(path[-2], path[-1]) else −1.51, length, flow], done
//	len(path) > 10·|V|:  [c2 − c1 if c1 < c2 else −1, 0, 0], done      (c1 = A*(path[-1] → target))
//	otherwise:           [c2 − c1 if c1 < c2 else −1], not done
//
// Simple — arrival bonus, oscillation penalty, latency cost:
//
//	at target:                       [1, length, flow], done
//	len ≥ 3 and path[-1] == path[-3]: [−1], not done
//	otherwise:                       [−weight(path[-2], path[-1])], not done
//
// The oscillation case of Simple does not end the episode while the timeout
// case of Shaped does. Callers driving Simple must bound episode length
// themselves.
//
// Shaped runs two A* searches per call and caches nothing between calls.
package reward
