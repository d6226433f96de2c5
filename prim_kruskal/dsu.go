package prim_kruskal

import "github.com/katalvlaran/spanforest/core"

// disjointSet is a union-find structure over vertex handles.
// find compresses paths fully; union attaches the lower-rank root under the
// higher-rank one.
type disjointSet struct {
	parent map[core.VertexID]core.VertexID
	rank   map[core.VertexID]int
}

// newDisjointSet creates one singleton set per vertex.
func newDisjointSet(vertices []core.Vertex) *disjointSet {
	ds := &disjointSet{
		parent: make(map[core.VertexID]core.VertexID, len(vertices)),
		rank:   make(map[core.VertexID]int, len(vertices)),
	}
	for _, v := range vertices {
		ds.parent[v.Index] = v.Index
	}

	return ds
}

// find returns the representative of x's set.
// Iterative to avoid deep recursion: first walk to the root, then point every
// node on the path straight at it.
func (ds *disjointSet) find(x core.VertexID) core.VertexID {
	root := x
	for ds.parent[root] != root {
		root = ds.parent[root]
	}
	for x != root {
		next := ds.parent[x]
		ds.parent[x] = root
		x = next
	}

	return root
}

// union merges the sets of x and y. It reports false when they already share a
// set, i.e. when an edge x–y would close a cycle.
func (ds *disjointSet) union(x, y core.VertexID) bool {
	rx, ry := ds.find(x), ds.find(y)
	if rx == ry {
		return false
	}
	switch {
	case ds.rank[rx] < ds.rank[ry]:
		ds.parent[rx] = ry
	case ds.rank[rx] > ds.rank[ry]:
		ds.parent[ry] = rx
	default:
		ds.parent[ry] = rx
		ds.rank[rx]++
	}

	return true
}
