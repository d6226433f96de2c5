package prim_kruskal

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/spanforest/core"
)

// Kruskal computes a minimum spanning forest of g. The result has exactly
// |V| − (number of connected components) edges.
//
// Error Conditions:
//   - ErrNilGraph : if g is nil.
//
// Steps:
//  1. Take a consistent Snapshot of g.
//  2. Stable-sort all edges ascending by weight; equal weights keep insertion order.
//  3. Create one disjoint set per vertex.
//  4. For each edge in sorted order: if its endpoints are in different sets,
//     union them and keep the edge; otherwise discard it (it would close a cycle).
//  5. Stop early once |V|-1 edges are kept (the forest is a single tree).
//
// Determinism: identical graphs yield byte-for-byte identical results.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(g *core.Graph) ([]core.Edge, float64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	edges, total := kruskalForest(g.Snapshot())

	return edges, total, nil
}

// kruskalForest runs the sort + union-find pass over a snapshot.
func kruskalForest(s *core.Snapshot) ([]core.Edge, float64) {
	n := len(s.Vertices)
	if n == 0 || len(s.Edges) == 0 {
		return []core.Edge{}, 0
	}

	// Snapshot edges are already in insertion order; a stable sort preserves it on ties.
	sorted := slices.Clone(s.Edges)
	slices.SortStableFunc(sorted, func(a, b core.Edge) int {
		return cmp.Compare(a.Weight, b.Weight)
	})

	ds := newDisjointSet(s.Vertices)
	var (
		mst         = make([]core.Edge, 0, n-1)
		totalWeight float64
	)
	for _, e := range sorted {
		if !ds.union(e.Source, e.Dest) {
			continue
		}
		mst = append(mst, e)
		totalWeight += e.Weight
		// A spanning tree over all vertices can not grow further.
		if len(mst) == n-1 {
			break
		}
	}

	return mst, totalWeight
}
