// SPDX-License-Identifier: MIT
// Package: routesim/builder
//
// impl_ring.go — Ring(n): n vertices evenly spaced on the circle inscribed in
// the plane, edges i—(i+1) mod n in ascending i.

package builder

import (
	"math"

	"github.com/katalvlaran/routesim/core"
)

const (
	methodRing   = "Ring"
	minRingNodes = 3
)

// Ring returns a Constructor for the cycle C_n.
// Complexity: O(n).
func Ring(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRingNodes {
			return builderErrorf(methodRing, "n=%d < min=%d: %w", n, minRingNodes, ErrTooFewVertices)
		}

		base := nextID(g)
		r := cfg.side / 2
		for i := 0; i < n; i++ {
			theta := 2 * math.Pi * float64(i) / float64(n)
			pos := core.Position{X: r + r*math.Cos(theta), Y: r + r*math.Sin(theta)}
			if err := g.AddVertex(base+i, pos); err != nil {
				return builderErrorf(methodRing, "AddVertex(%d): %w", base+i, err)
			}
		}
		for i := 0; i < n; i++ {
			if err := link(g, cfg, methodRing, base+i, base+(i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
