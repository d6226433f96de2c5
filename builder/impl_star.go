// SPDX-License-Identifier: MIT
// Package: spanforest/builder
//
// impl_star.go: implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Adds the center first (at the origin), then n-1 leaves on a circle.
//   • Emits spokes center-leaf in ascending leaf order.
//
// Complexity: O(n) vertices + O(n-1) edges.

package builder

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/spanforest/core"
)

// Star returns a Constructor that builds a star with n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodStar, "n", n, MinStarNodes); err != nil {
			return err
		}
		center := g.AddVertexAt(cfg.origin)
		leaves := addVertices(g, spokeLayout(cfg, n-1))

		return addSpokes(g, cfg, MethodStar, center, leaves)
	}
}

// spokeLayout places k points on a circle of radius cfg.spacing around the origin.
func spokeLayout(cfg builderConfig, k int) []r2.Vec {
	ring := cfg
	// circleLayout sizes its radius from the circumference; rescale so the
	// radius itself equals the configured spacing.
	if k > 1 {
		ring.spacing = cfg.spacing * 2 * math.Pi / float64(k)
	}
	pos := circleLayout(ring, k)
	if k == 1 {
		pos[0].X += cfg.spacing
	}

	return pos
}

// addSpokes connects center to every leaf in order.
func addSpokes(g *core.Graph, cfg builderConfig, method string, center core.VertexID, leaves []core.VertexID) error {
	for _, leaf := range leaves {
		if err := addEdge(g, cfg, method, center, leaf); err != nil {
			return err
		}
	}

	return nil
}
