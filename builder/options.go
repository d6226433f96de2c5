// SPDX-License-Identifier: MIT
// Package: spanforest/builder
//
// options.go: functional options for builderConfig.
//
// Policy:
//   • Option constructors panic on meaningless input (nil RNG, non-positive
//     spacing): that is a programmer error, caught at configuration time.
//   • Constructors themselves never panic; they return sentinel errors.

package builder

import (
	"math/rand" // RNG source for stochastic builders

	"gonum.org/v1/gonum/spatial/r2"
)

// BuilderOption mutates builderConfig before constructors run.
type BuilderOption func(*builderConfig)

// WithRand installs a caller-owned RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed installs a fresh RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn sets the edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithSpacing sets the distance between adjacent vertices in the layout.
// Panics if d <= 0.
func WithSpacing(d float64) BuilderOption {
	if d <= 0 {
		panic("builder: WithSpacing(d<=0)")
	}

	return func(c *builderConfig) {
		c.spacing = d
	}
}

// WithOrigin anchors the layout at (x, y).
func WithOrigin(x, y float64) BuilderOption {
	return func(c *builderConfig) {
		c.origin = r2.Vec{X: x, Y: y}
	}
}
