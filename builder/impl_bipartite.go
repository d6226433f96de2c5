// SPDX-License-Identifier: MIT
// Package: spanforest/builder
//
// impl_bipartite.go: implementation of CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   • n1, n2 ≥ 1 (else ErrTooFewVertices).
//   • Adds the left part (x = origin.X) then the right part (x = origin.X + spacing),
//     each as a vertical column.
//   • Emits edges left[i]-right[j], i asc then j asc.
//
// Complexity: O(n1+n2) vertices + O(n1·n2) edges.

package builder

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/spanforest/core"
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodCompleteBipartite, "n1", n1, MinPartition); err != nil {
			return err
		}
		if err := validateMin(MethodCompleteBipartite, "n2", n2, MinPartition); err != nil {
			return err
		}
		left := addVertices(g, columnLayout(cfg, n1, 0))
		right := addVertices(g, columnLayout(cfg, n2, cfg.spacing))
		for _, u := range left {
			for _, v := range right {
				if err := addEdge(g, cfg, MethodCompleteBipartite, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// columnLayout places n points on a vertical line offset dx from the origin.
func columnLayout(cfg builderConfig, n int, dx float64) []r2.Vec {
	pos := make([]r2.Vec, n)
	for i := range pos {
		pos[i] = r2.Add(cfg.origin, r2.Vec{X: dx, Y: float64(i) * cfg.spacing})
	}

	return pos
}
