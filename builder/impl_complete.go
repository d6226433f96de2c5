// SPDX-License-Identifier: MIT
// Package: spanforest/builder
//
// impl_complete.go: implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Adds n vertices on a circle; emits every pair (i<j), i asc then j asc.
//
// Complexity: O(n) vertices + O(n²) edges.

package builder

import (
	"github.com/katalvlaran/spanforest/core"
)

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodComplete, "n", n, MinCompleteNodes); err != nil {
			return err
		}
		ids := addVertices(g, circleLayout(cfg, n))

		return addCompleteEdges(g, cfg, MethodComplete, ids)
	}
}
