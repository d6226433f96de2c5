// SPDX-License-Identifier: MIT
// Package: spanforest/builder
//
// impl_wheel.go: implementation of Wheel(n) constructor.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices): one center plus a rim cycle of n-1.
//   • Adds the center first (at the origin), then the rim on a circle.
//   • Emits rim edges (as Cycle) first, then spokes center-rim[i] ascending.
//
// Complexity: O(n) vertices + O(2n-2) edges.

package builder

import (
	"github.com/katalvlaran/spanforest/core"
)

// Wheel returns a Constructor that builds W_n = C_{n-1} + center.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodWheel, "n", n, MinWheelNodes); err != nil {
			return err
		}
		center := g.AddVertexAt(cfg.origin)
		rim := addVertices(g, spokeLayout(cfg, n-1))
		if err := addRing(g, cfg, MethodWheel, rim); err != nil {
			return err
		}

		return addSpokes(g, cfg, MethodWheel, center, rim)
	}
}
