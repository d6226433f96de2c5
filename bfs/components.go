package bfs

import (
	"github.com/katalvlaran/spanforest/core"
)

// Components partitions g into connected components.
//
// Components are listed in the creation order of their first vertex; inside a
// component, vertices appear in BFS order from that vertex. An isolated vertex
// forms a singleton component. A nil or empty graph yields no components.
//
// Complexity: O(V + E).
func Components(g *core.Graph) [][]core.VertexID {
	if g == nil {
		return nil
	}
	s := g.Snapshot()
	w := newWalker(s, DefaultOptions())

	var out [][]core.VertexID
	for _, v := range s.Vertices {
		if w.visited[v.Index] {
			continue
		}
		from := len(w.res.Order)
		w.enqueue(v.Index, 0, core.NoVertex)
		// Background context and a no-op OnVisit: loop can not fail.
		_ = w.loop()
		out = append(out, w.res.Order[from:len(w.res.Order):len(w.res.Order)])
	}

	return out
}

// ComponentCount returns the number of connected components of g,
// counting every isolated vertex as one.
func ComponentCount(g *core.Graph) int {
	return len(Components(g))
}
