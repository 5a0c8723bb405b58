// SPDX-License-Identifier: MIT

// Package builder synthesizes network topologies as *core.Graph values, for
// tests and for runs without a BRITE export at hand.
//
// The package offers:
//
//   - BuildGraph:   one orchestrator applying Constructors in order.
//   - Constructors:
//     – Ring(n):             n vertices on a circle, i—(i+1) mod n.
//     – Grid(rows, cols):    4-neighborhood lattice, IDs r*cols+c.
//     – Waxman(n, m, α, β):  BRITE-style incremental Waxman router topology.
//   - Options:
//     – WithSeed / WithRand: RNG for Waxman placement, link choice and capacity.
//     – WithSide:            side length of the square plane.
//     – WithLinkFn:          (distance → weight, capacity) policy.
//
// Every vertex gets a Position; link weights default to distance over the
// plane diagonal (clamped to [0.001, 1]) and capacities to BRITE's uniform
// bandwidth in [10, 1024] divided by 100.
//
// Determinism: the same constructors, options and seed give identical graphs.
// Constructors never panic; they return the sentinels in errors.go wrapped
// with the constructor name.
package builder
