// SPDX-License-Identifier: MIT
// Package: spanforest/builder
//
// impl_cycle.go: implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Adds n vertices evenly on a circle, ascending local index.
//   • Emits edges in stable order i-(i+1)%n for i=0..n-1.
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges.

package builder

import (
	"github.com/katalvlaran/spanforest/core"
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}
		ids := addVertices(g, circleLayout(cfg, n))

		return addRing(g, cfg, MethodCycle, ids)
	}
}

// addRing emits ids[i]-ids[(i+1)%len] for every i.
func addRing(g *core.Graph, cfg builderConfig, method string, ids []core.VertexID) error {
	n := len(ids)
	for i := 0; i < n; i++ {
		if err := addEdge(g, cfg, method, ids[i], ids[(i+1)%n]); err != nil {
			return err
		}
	}

	return nil
}
