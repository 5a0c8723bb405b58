// SPDX-License-Identifier: MIT

// Package congestion degrades the links used by background flows.
//
// Every unique edge traversed by at least one flow is updated exactly once
// per Apply call:
//
//	weight   ← min(weight^0.3,   0.999)   latency climbs toward a ceiling
//	capacity ← max(capacity^1.2, 0.001)   bandwidth decays toward a floor
//
// An edge named by several flows, or twice by the same flow, is still updated
// once: applying the exponent twice would compound the degradation.
//
// Edges are updated in first-seen order. If a consecutive pair is not an edge
// of the graph, Apply stops with ErrMissingEdge; edges updated before that
// point keep their new values.
package congestion

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/routesim/core"
)

// Default transform parameters.
const (
	DefaultLatencyExponent  = 0.3
	DefaultCapacityExponent = 1.2
	DefaultMaxWeight        = 0.999
	DefaultMinCapacity      = 0.001
)

// Sentinel errors.
var (
	ErrNilGraph    = errors.New("congestion: graph is nil")
	ErrMissingEdge = errors.New("congestion: path step is not an edge")
)

// Options holds the exponents and clamps of the congestion transform.
type Options struct {
	LatencyExponent  float64
	CapacityExponent float64
	MaxWeight        float64
	MinCapacity      float64
}

// Option configures Apply.
type Option func(*Options)

// DefaultOptions returns the standard saturation curve.
func DefaultOptions() Options {
	return Options{
		LatencyExponent:  DefaultLatencyExponent,
		CapacityExponent: DefaultCapacityExponent,
		MaxWeight:        DefaultMaxWeight,
		MinCapacity:      DefaultMinCapacity,
	}
}

// WithLatencyExponent overrides the weight exponent. Non-positive values are ignored.
func WithLatencyExponent(p float64) Option {
	return func(o *Options) {
		if p > 0 {
			o.LatencyExponent = p
		}
	}
}

// WithCapacityExponent overrides the capacity exponent. Non-positive values are ignored.
func WithCapacityExponent(p float64) Option {
	return func(o *Options) {
		if p > 0 {
			o.CapacityExponent = p
		}
	}
}

// WithBounds overrides the weight ceiling and capacity floor.
// Non-positive values leave the corresponding default.
func WithBounds(maxWeight, minCapacity float64) Option {
	return func(o *Options) {
		if maxWeight > 0 {
			o.MaxWeight = maxWeight
		}
		if minCapacity > 0 {
			o.MinCapacity = minCapacity
		}
	}
}

// Report summarizes one Apply call.
type Report struct {
	// Edges is the number of unique edges that were degraded.
	Edges int
}

// edgeKey identifies an undirected edge independent of orientation.
type edgeKey struct{ lo, hi int }

func keyOf(u, v int) edgeKey {
	if u > v {
		u, v = v, u
	}
	return edgeKey{lo: u, hi: v}
}

// Apply degrades every edge traversed by paths and returns the same graph.
func Apply(g *core.Graph, paths [][]int, opts ...Option) (*core.Graph, error) {
	if _, err := ApplyReport(g, paths, opts...); err != nil {
		return g, err
	}

	return g, nil
}

// ApplyReport is Apply returning how many unique edges were degraded.
func ApplyReport(g *core.Graph, paths [][]int, opts ...Option) (Report, error) {
	if g == nil {
		return Report{}, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	adjusted := make(map[edgeKey]struct{})
	transform := func(e *core.Edge) {
		e.Weight = math.Min(math.Pow(e.Weight, cfg.LatencyExponent), cfg.MaxWeight)
		e.Capacity = math.Max(math.Pow(e.Capacity, cfg.CapacityExponent), cfg.MinCapacity)
	}

	for pi, path := range paths {
		for i := 0; i+1 < len(path); i++ {
			u, v := path[i], path[i+1]
			k := keyOf(u, v)
			if _, done := adjusted[k]; done {
				continue
			}
			if err := g.UpdateEdge(u, v, transform); err != nil {
				return Report{Edges: len(adjusted)},
					fmt.Errorf("%w: path %d step %d (%d→%d): %w", ErrMissingEdge, pi, i, u, v, err)
			}
			adjusted[k] = struct{}{}
		}
	}

	return Report{Edges: len(adjusted)}, nil
}
