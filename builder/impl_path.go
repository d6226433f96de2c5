// SPDX-License-Identifier: MIT
// Package: spanforest/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds n vertices on a horizontal line, ascending local index.
//   - Emits edges (i-1)-i for i=1..n-1 in stable increasing order.
//   - Weight policy: cfg.weightFn(cfg.rng) per edge, in emission order.
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges.
//   - Space: O(n) for the handle slice.

package builder

import (
	"github.com/katalvlaran/spanforest/core"
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodPath, "n", n, MinPathNodes); err != nil {
			return err
		}
		ids := addVertices(g, lineLayout(cfg, n))
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, MethodPath, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
