// SPDX-License-Identifier: MIT
// Package: spanforest/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng         = nil                 (pure/deterministic unless seeded)
//   • weightFn    = DefaultWeightFn     (core.DefaultWeight)
//   • spacing     = 50                  (distance between neighbouring vertices)
//   • origin      = (0,0)

package builder

import (
	"math/rand" // RNG for stochastic builders

	"gonum.org/v1/gonum/spatial/r2"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for edges.
	weightFn WeightFn
	// Layout: distance between adjacent vertices, and the anchor point.
	spacing float64
	origin  r2.Vec
}

// defaultSpacing matches the vertex spacing of the canonical A(0,0) B(50,0) C(0,50) fixture.
const defaultSpacing = 50.0

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: DefaultWeightFn,
		spacing:  defaultSpacing,
		origin:   r2.Vec{},
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next edge weight.
func (c builderConfig) weight() float64 {
	return c.weightFn(c.rng)
}
