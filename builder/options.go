// SPDX-License-Identifier: MIT
// Package: routesim/builder
//
// options.go — functional options and the resolved builderConfig.
//
// Option constructors panic on meaningless input (nil RNG, non-positive side);
// constructors themselves never panic.

package builder

import (
	"math"
	"math/rand"
)

// Defaults of the BRITE router-level model.
const (
	DefaultSide        = 1000.0 // HS: side of the plane
	DefaultMinWeight   = 0.001
	DefaultMinBW       = 10.0
	DefaultMaxBW       = 1024.0
	DefaultBWScale     = 100.0
	defaultCapacityNil = 1.0 // capacity when no RNG is configured
)

// LinkFn maps a link of Euclidean length dist on a plane whose diagonal is
// maxDist to its (weight, capacity). rng may be nil for deterministic builders.
type LinkFn func(rng *rand.Rand, dist, maxDist float64) (weight, capacity float64)

// DefaultLinkFn returns weight = dist/maxDist clamped to [DefaultMinWeight, 1]
// and capacity ~ U[DefaultMinBW, DefaultMaxBW] / DefaultBWScale.
func DefaultLinkFn(rng *rand.Rand, dist, maxDist float64) (float64, float64) {
	w := 1.0
	if maxDist > 0 {
		w = math.Min(1, math.Max(DefaultMinWeight, dist/maxDist))
	}
	if rng == nil {
		return w, defaultCapacityNil
	}
	bw := DefaultMinBW + rng.Float64()*(DefaultMaxBW-DefaultMinBW)

	return w, bw / DefaultBWScale
}

// builderConfig aggregates all knobs used by constructors; passed by value.
type builderConfig struct {
	rng    *rand.Rand
	side   float64
	linkFn LinkFn
}

// Option customizes builderConfig before construction begins.
type Option func(*builderConfig)

func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		side:   DefaultSide,
		linkFn: DefaultLinkFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed creates a seeded *rand.Rand for reproducible graphs.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSide sets the side of the square plane vertices are placed on.
// Panics on side ≤ 0.
func WithSide(side float64) Option {
	if !(side > 0) {
		panic("builder: WithSide must be > 0")
	}
	return func(c *builderConfig) {
		c.side = side
	}
}

// WithLinkFn overrides the link weight/capacity policy. Panics on nil.
func WithLinkFn(fn LinkFn) Option {
	if fn == nil {
		panic("builder: WithLinkFn(nil)")
	}
	return func(c *builderConfig) {
		c.linkFn = fn
	}
}
