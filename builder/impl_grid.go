// SPDX-License-Identifier: MIT
// Package: spanforest/builder
//
// impl_grid.go: implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows, cols ≥ 1 (else ErrTooFewVertices).
//   • Adds rows×cols vertices row-major; local index r*cols+c sits at (c, r)·spacing.
//   • For each cell in row-major order emits the right edge, then the down edge.
//
// Complexity: O(R·C) vertices + O(2·R·C) edges.

package builder

import (
	"github.com/katalvlaran/spanforest/core"
)

// Grid returns a Constructor that builds a 4-neighborhood grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodGrid, "rows", rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(MethodGrid, "cols", cols, MinGridDim); err != nil {
			return err
		}
		ids := addVertices(g, gridLayout(cfg, rows, cols))
		at := func(r, c int) core.VertexID { return ids[r*cols+c] }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := addEdge(g, cfg, MethodGrid, at(r, c), at(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, cfg, MethodGrid, at(r, c), at(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
