// SPDX-License-Identifier: MIT
// Package: routesim/builder
//
// api.go — BuildGraph orchestrator and shared link helper.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/routesim/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate early and return sentinel errors.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves opts and applies cons in
// order. The first constructor error is wrapped as "BuildGraph: %w"; no
// partial cleanup is attempted.
func BuildGraph(opts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// link adds u—v with weight and capacity from cfg.linkFn applied to the
// distance between their positions.
func link(g *core.Graph, cfg builderConfig, method string, u, v int) error {
	pu, err := g.Position(u)
	if err != nil {
		return builderErrorf(method, "Position(%d): %w", u, err)
	}
	pv, err := g.Position(v)
	if err != nil {
		return builderErrorf(method, "Position(%d): %w", v, err)
	}

	d := math.Hypot(pu.X-pv.X, pu.Y-pv.Y)
	w, c := cfg.linkFn(cfg.rng, d, cfg.side*math.Sqrt2)
	if err = g.AddEdge(u, v, w, c); err != nil {
		return builderErrorf(method, "AddEdge(%d, %d): %w", u, v, err)
	}

	return nil
}

// nextID returns one past the largest vertex ID of g, so constructors can be
// composed without ID collisions.
func nextID(g *core.Graph) int {
	vs := g.Vertices()
	if len(vs) == 0 {
		return 0
	}

	return vs[len(vs)-1] + 1
}
