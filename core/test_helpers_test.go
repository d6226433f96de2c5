// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for spanforest/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Centralize the structural invariant check so every mutating test can call it.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spanforest/core"
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight1 = 1.0
	Weight2 = 2.0
	Weight3 = 3.0
	Weight5 = 5.0
)

// Common concurrency sizes used across core tests.
const (
	NConcurrentAdds   = 200
	NConcurrentRounds = 100
	NReaders          = 50
)

// triangle holds the handles of the canonical A(0,0) B(50,0) C(0,50) fixture.
type triangle struct {
	g       *core.Graph
	a, b, c core.VertexID
	ab, bc  core.EdgeID
	ac      core.EdgeID
}

// newTriangle BUILDS the triangle A–B(1), B–C(2), A–C(3).
//
// Implementation:
//   - Stage 1: Add A, B, C in that order (indices 0, 1, 2).
//   - Stage 2: Add the three edges and fail the test if any is refused.
func newTriangle(t testing.TB) triangle {
	t.Helper()

	g := core.NewGraph()
	tr := triangle{g: g}
	tr.a = g.AddVertex(0, 0)
	tr.b = g.AddVertex(50, 0)
	tr.c = g.AddVertex(0, 50)

	var ok bool
	tr.ab, ok = g.AddEdge(tr.a, tr.b, Weight1)
	require.True(t, ok, "AddEdge(A,B)")
	tr.bc, ok = g.AddEdge(tr.b, tr.c, Weight2)
	require.True(t, ok, "AddEdge(B,C)")
	tr.ac, ok = g.AddEdge(tr.a, tr.c, Weight3)
	require.True(t, ok, "AddEdge(A,C)")

	return tr
}

// MustHoldInvariants FAILS the test if g violates any structural invariant.
//
// Checked:
//   - every edge is listed on both endpoints, and exactly once on each;
//   - every incident entry names a present edge touching that vertex;
//   - no unordered pair is connected twice and there are no self-loops;
//   - vertex indices are unique.
func MustHoldInvariants(t *testing.T, g *core.Graph) {
	t.Helper()

	s := g.Snapshot()
	require.Equal(t, len(s.Vertices), g.VertexCount(), "VertexCount vs snapshot")
	require.Equal(t, len(s.Edges), g.EdgeCount(), "EdgeCount vs snapshot")

	seenIdx := make(map[core.VertexID]bool, len(s.Vertices))
	incident := make(map[core.VertexID]map[core.EdgeID]int, len(s.Vertices))
	for _, v := range s.Vertices {
		require.False(t, seenIdx[v.Index], "duplicate vertex index %d", v.Index)
		seenIdx[v.Index] = true
		incident[v.Index] = make(map[core.EdgeID]int, len(v.Incident))
		for _, eid := range v.Incident {
			e, ok := s.Edge(eid)
			require.True(t, ok, "vertex %d lists missing edge %d", v.Index, eid)
			require.True(t, e.Source == v.Index || e.Dest == v.Index,
				"vertex %d lists foreign edge %v", v.Index, e)
			incident[v.Index][eid]++
		}
	}

	type pair struct{ lo, hi core.VertexID }
	pairs := make(map[pair]bool, len(s.Edges))
	for _, e := range s.Edges {
		require.NotEqual(t, e.Source, e.Dest, "self-loop %v", e)
		require.True(t, seenIdx[e.Source] && seenIdx[e.Dest], "edge %v has a missing endpoint", e)
		require.Equal(t, 1, incident[e.Source][e.ID], "edge %v on source", e)
		require.Equal(t, 1, incident[e.Dest][e.ID], "edge %v on dest", e)
		p := pair{e.Source, e.Dest}
		if p.lo > p.hi {
			p.lo, p.hi = p.hi, p.lo
		}
		require.False(t, pairs[p], "duplicate pair %v", e)
		pairs[p] = true
	}
}

// edgeIDs extracts handles preserving order.
func edgeIDs(edges []core.Edge) []core.EdgeID {
	out := make([]core.EdgeID, 0, len(edges))
	for _, e := range edges {
		out = append(out, e.ID)
	}

	return out
}

// vertexIDs extracts indices preserving order.
func vertexIDs(vs []core.Vertex) []core.VertexID {
	out := make([]core.VertexID, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.Index)
	}

	return out
}
