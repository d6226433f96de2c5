// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summaries and spatial lookups on top of the core types.
// Policy:
//   - No mutation here.
//   - Every exported function documents complexity and locking strategy.

package core

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	// VertexCount is the number of present vertices.
	VertexCount int
	// EdgeCount is the number of present edges.
	EdgeCount int
	// IsolatedCount is the number of vertices without incident edges.
	IsolatedCount int
	// TotalWeight is the sum of all edge weights.
	TotalWeight float64
}

// Stats produces a read-only snapshot of catalog sizes and weight totals.
//
// Implementation:
//   - Stage 1: Acquire the read lock.
//   - Stage 2: Count vertices, isolated vertices, edges; sum weights in insertion order.
//
// Returns:
//   - *GraphStats: immutable-by-convention summary.
//
// Determinism:
//   - Weights are summed in edge insertion order, so the float total is reproducible.
//
// Complexity:
//   - Time O(V+E), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		VertexCount: len(g.vertexOrder),
		EdgeCount:   len(g.edgeOrder),
	}
	for _, id := range g.vertexOrder {
		if len(g.vertices[id].Incident) == 0 {
			stats.IsolatedCount++
		}
	}
	for _, id := range g.edgeOrder {
		stats.TotalWeight += g.edges[id].Weight
	}

	return &stats
}

// VertexAt returns the vertex whose position is closest to p, provided it lies
// within radius. On equal distances the lowest index wins.
//
// Implementation:
//   - Stage 1: Acquire the read lock.
//   - Stage 2: Scan vertices in creation order keeping the strictly closest one.
//
// Returns:
//   - VertexID, true: the closest vertex within radius.
//   - NoVertex, false: no vertex within radius (or radius < 0).
//
// Complexity:
//   - Time O(V), Space O(1).
func (g *Graph) VertexAt(p r2.Vec, radius float64) (VertexID, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if radius < 0 {
		return NoVertex, false
	}

	best, bestDist := NoVertex, math.Inf(1)
	for _, id := range g.vertexOrder {
		d := r2.Norm(r2.Sub(g.vertices[id].Position, p))
		if d <= radius && d < bestDist {
			best, bestDist = id, d
		}
	}

	return best, best != NoVertex
}
