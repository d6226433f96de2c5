// File: snapshot.go
// Role: Consistent read views for algorithms.
// Determinism:
//   - Vertices and Edges keep creation/insertion order.
// Concurrency:
//   - One read lock for the whole capture; the result shares nothing with the Graph.

package core

// Snapshot is a detached copy of a Graph's vertices and edges taken under a
// single read lock. Algorithms run on a Snapshot so that they never observe a
// half-applied mutation.
type Snapshot struct {
	// Vertices in creation order.
	Vertices []Vertex
	// Edges in insertion order.
	Edges []Edge

	vertexAt map[VertexID]int
	edgeAt   map[EdgeID]int
}

// Snapshot captures the current state of g.
// Complexity: O(V + E).
func (g *Graph) Snapshot() *Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := &Snapshot{
		Vertices: make([]Vertex, 0, len(g.vertexOrder)),
		Edges:    make([]Edge, 0, len(g.edgeOrder)),
		vertexAt: make(map[VertexID]int, len(g.vertexOrder)),
		edgeAt:   make(map[EdgeID]int, len(g.edgeOrder)),
	}
	for i, id := range g.vertexOrder {
		s.Vertices = append(s.Vertices, copyVertex(g.vertices[id]))
		s.vertexAt[id] = i
	}
	for i, id := range g.edgeOrder {
		s.Edges = append(s.Edges, *g.edges[id])
		s.edgeAt[id] = i
	}

	return s
}

// Edge looks an edge up by handle.
func (s *Snapshot) Edge(id EdgeID) (Edge, bool) {
	i, ok := s.edgeAt[id]
	if !ok {
		return Edge{}, false
	}

	return s.Edges[i], true
}

// Vertex looks a vertex up by handle.
func (s *Snapshot) Vertex(id VertexID) (Vertex, bool) {
	i, ok := s.vertexAt[id]
	if !ok {
		return Vertex{}, false
	}

	return s.Vertices[i], true
}

// Neighbors returns the vertices adjacent to id, following its incident list
// order. Unknown handles yield nil.
func (s *Snapshot) Neighbors(id VertexID) []VertexID {
	v, ok := s.Vertex(id)
	if !ok {
		return nil
	}
	out := make([]VertexID, 0, len(v.Incident))
	for _, eid := range v.Incident {
		if e, ok := s.Edge(eid); ok {
			out = append(out, e.Other(id))
		}
	}

	return out
}
