package prim_kruskal

import (
	"cmp"

	"github.com/tidwall/btree"

	"github.com/katalvlaran/spanforest/core"
)

// Prim computes a minimum spanning forest of g, one tree per connected component.
//
// Error Conditions:
//   - ErrNilGraph : if g is nil.
//
// Steps:
//  1. Take a consistent Snapshot of g.
//  2. Visit vertices in creation order, skipping those already visited.
//  3. For each unvisited root: mark it visited and push its boundary edges.
//  4. Repeatedly pop the minimum boundary edge; skip it if both endpoints are
//     visited by now; otherwise keep it, mark the new endpoint and push its
//     boundary edges. An empty frontier means the component is exhausted.
//
// Tie-break: boundary edges are ordered by (weight, lower endpoint index,
// higher endpoint index). In a simple graph that key is unique, so the chosen
// edge never depends on map or heap iteration order.
//
// Empty graph → empty result. Isolated vertex → contributes no edges.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(g *core.Graph) ([]core.Edge, float64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	edges, total := primForest(g.Snapshot())

	return edges, total, nil
}

// frontierItem is one boundary edge keyed for deterministic ordering.
type frontierItem struct {
	weight float64
	lo, hi core.VertexID
	edge   core.EdgeID
}

// frontierLess orders by weight, then by the endpoint index pair.
// cmp.Compare keeps the order total even for NaN weights.
func frontierLess(a, b frontierItem) bool {
	if c := cmp.Compare(a.weight, b.weight); c != 0 {
		return c < 0
	}
	if a.lo != b.lo {
		return a.lo < b.lo
	}

	return a.hi < b.hi
}

// primForest runs the component-wise expansion over a snapshot.
func primForest(s *core.Snapshot) ([]core.Edge, float64) {
	n := len(s.Vertices)
	if n == 0 {
		return []core.Edge{}, 0
	}

	visited := make(map[core.VertexID]bool, n)
	frontier := btree.NewBTreeGOptions(frontierLess, btree.Options{NoLocks: true})
	mst := make([]core.Edge, 0, n-1)
	var totalWeight float64

	// push adds every edge from v to a not-yet-visited neighbor.
	push := func(v core.VertexID) {
		vx, _ := s.Vertex(v)
		for _, eid := range vx.Incident {
			e, ok := s.Edge(eid)
			if !ok || visited[e.Other(v)] {
				continue
			}
			lo, hi := e.Source, e.Dest
			if lo > hi {
				lo, hi = hi, lo
			}
			frontier.Set(frontierItem{weight: e.Weight, lo: lo, hi: hi, edge: e.ID})
		}
	}

	for _, root := range s.Vertices {
		if visited[root.Index] {
			continue
		}
		visited[root.Index] = true
		push(root.Index)

		// Expand this component until no boundary edge remains.
		for {
			item, ok := frontier.PopMin()
			if !ok {
				break
			}
			var next core.VertexID
			switch {
			case !visited[item.lo]:
				next = item.lo
			case !visited[item.hi]:
				next = item.hi
			default:
				// Both endpoints joined the tree after this edge was pushed.
				continue
			}
			e, _ := s.Edge(item.edge)
			mst = append(mst, e)
			totalWeight += e.Weight
			visited[next] = true
			push(next)
		}
	}

	return mst, totalWeight
}
