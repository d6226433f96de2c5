// File: methods_adjacent.go
// Role: Incident-list bookkeeping and neighborhood queries.
// Determinism:
//   - Incident() and Neighbors() follow edge insertion order at the vertex.
// Concurrency:
//   - Queries under the read lock; detachIncident runs under the caller's write lock.

package core

import "slices"

// Incident returns the handles of all edges touching id, in insertion order.
//
// Errors: ErrVertexNotFound.
// Complexity: O(deg(v)).
func (g *Graph) Incident(id VertexID) ([]EdgeID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v := g.vertexLocked(id)
	if v == nil {
		return nil, ErrVertexNotFound
	}

	return slices.Clone(v.Incident), nil
}

// Neighbors returns the vertices adjacent to id, one per incident edge, in the
// same order as Incident.
//
// Errors: ErrVertexNotFound.
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(id VertexID) ([]VertexID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v := g.vertexLocked(id)
	if v == nil {
		return nil, ErrVertexNotFound
	}

	out := make([]VertexID, 0, len(v.Incident))
	for _, eid := range v.Incident {
		out = append(out, g.edges[eid].Other(id))
	}

	return out, nil
}

// detachIncident removes eid from v's incident list, keeping the order of the rest.
func detachIncident(v *Vertex, eid EdgeID) {
	if i := slices.Index(v.Incident, eid); i >= 0 {
		v.Incident = slices.Delete(v.Incident, i, i+1)
	}
}
