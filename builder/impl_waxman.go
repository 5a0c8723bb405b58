// SPDX-License-Identifier: MIT
// Package: routesim/builder
//
// impl_waxman.go — Waxman(n, m, alpha, beta): router-level topology grown the
// way BRITE's RTWaxman model does it.
//
// Model:
//   - Vertices are placed uniformly at random on the side×side plane.
//   - Vertices join one at a time; vertex i links to min(m, i) distinct
//     earlier vertices. A candidate j is drawn uniformly and accepted with
//     probability P(u,v) = alpha · exp(−d / (beta · L)), where d is the
//     Euclidean distance and L the plane diagonal.
//   - Incremental growth keeps the graph connected.
//
// Contract:
//   - n ≥ 2, m ≥ 1 (else ErrTooFewVertices).
//   - alpha, beta ∈ (0, 1] (else ErrInvalidProbability).
//   - cfg.rng must be set (else ErrNeedRandSource).
//   - A vertex that cannot place its links within waxmanAttemptsPerLink
//     draws per link fails with ErrConstructFailed.
//
// Complexity: O(n·m) expected draws, bounded by O(n·m·waxmanAttemptsPerLink).

package builder

import (
	"math"

	"github.com/katalvlaran/routesim/core"
)

const (
	methodWaxman          = "Waxman"
	minWaxmanNodes        = 2
	minWaxmanLinks        = 1
	waxmanAttemptsPerLink = 10000
)

// Waxman returns a Constructor for a connected Waxman topology.
func Waxman(n, m int, alpha, beta float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWaxmanNodes || m < minWaxmanLinks {
			return builderErrorf(methodWaxman, "n=%d (min %d), m=%d (min %d): %w",
				n, minWaxmanNodes, m, minWaxmanLinks, ErrTooFewVertices)
		}
		if !(alpha > 0 && alpha <= 1) || !(beta > 0 && beta <= 1) {
			return builderErrorf(methodWaxman, "alpha=%g, beta=%g not in (0,1]: %w",
				alpha, beta, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return builderErrorf(methodWaxman, "rng is required: %w", ErrNeedRandSource)
		}

		rng := cfg.rng
		base := nextID(g)
		pos := make([]core.Position, n)
		for i := range pos {
			pos[i] = core.Position{X: rng.Float64() * cfg.side, Y: rng.Float64() * cfg.side}
			if err := g.AddVertex(base+i, pos[i]); err != nil {
				return builderErrorf(methodWaxman, "AddVertex(%d): %w", base+i, err)
			}
		}

		diag := cfg.side * math.Sqrt2
		accept := func(i, j int) bool {
			d := math.Hypot(pos[i].X-pos[j].X, pos[i].Y-pos[j].Y)
			return rng.Float64() < alpha*math.Exp(-d/(beta*diag))
		}

		for i := 1; i < n; i++ {
			want := min(m, i)
			linked := make(map[int]struct{}, want)
			for attempts := 0; len(linked) < want; attempts++ {
				if attempts >= want*waxmanAttemptsPerLink {
					return builderErrorf(methodWaxman, "vertex %d placed %d/%d links: %w",
						base+i, len(linked), want, ErrConstructFailed)
				}
				j := rng.Intn(i)
				if _, dup := linked[j]; dup || !accept(i, j) {
					continue
				}
				if err := link(g, cfg, methodWaxman, base+i, base+j); err != nil {
					return err
				}
				linked[j] = struct{}{}
			}
		}

		return nil
	}
}
