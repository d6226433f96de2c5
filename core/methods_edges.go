// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/Connect/RemoveEdge/SetEdgeWeight/HasEdge/Edge/EdgeBetween/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges in insertion order.
//   - Edge handles are the arena length at creation time, monotonic until Clear().
// Concurrency:
//   - Mutations under the write lock.
//   - Read queries under the read lock.

package core

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Other returns the endpoint of e opposite to v.
// If v is not an endpoint, Other returns NoVertex.
func (e Edge) Other(v VertexID) VertexID {
	switch v {
	case e.Source:
		return e.Dest
	case e.Dest:
		return e.Source
	default:
		return NoVertex
	}
}

// Connects reports whether e joins u and v, in either orientation.
func (e Edge) Connects(u, v VertexID) bool {
	return (e.Source == u && e.Dest == v) || (e.Source == v && e.Dest == u)
}

// String renders the edge as "Edge(source -> dest, weight=W)".
func (e Edge) String() string {
	return fmt.Sprintf("Edge(%d -> %d, weight=%s)", e.Source, e.Dest, formatFloat(e.Weight))
}

// AddEdge connects u and v with the given weight and returns the new handle.
//
// The graph is simple: if u and v are already connected, in either orientation
// and with any weight, AddEdge returns (NoEdge, false) and leaves the graph
// untouched. Self-loops and unknown endpoints are refused the same way.
//
// Steps:
//  1. Lock; reject unknown endpoints and u == v.
//  2. Look the unordered pair up in the pair index; reject duplicates.
//  3. Append to the edge arena and the insertion-ordered sequence.
//  4. Register the handle in the incident lists of both endpoints.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v VertexID, weight float64) (EdgeID, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	// 1) Endpoint validation
	su, sv := g.vertexLocked(u), g.vertexLocked(v)
	if su == nil || sv == nil || u == v {
		return NoEdge, false
	}

	// 2) Simple-graph constraint, orientation independent
	key := makePair(u, v)
	if _, dup := g.pairs[key]; dup {
		return NoEdge, false
	}

	// 3) Store
	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, &Edge{ID: id, Source: u, Dest: v, Weight: weight})
	g.edgeOrder = append(g.edgeOrder, id)
	g.pairs[key] = id

	// 4) Link adjacency on both endpoints
	su.Incident = append(su.Incident, id)
	sv.Incident = append(sv.Incident, id)

	return id, true
}

// Connect is AddEdge with DefaultWeight.
func (g *Graph) Connect(u, v VertexID) (EdgeID, bool) {
	return g.AddEdge(u, v, DefaultWeight)
}

// RemoveEdge deletes one edge from both incident lists and from the edge sequence.
//
// Errors: ErrEdgeNotFound.
// Complexity: O(deg(u) + deg(v) + E).
func (g *Graph) RemoveEdge(id EdgeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.edgeLocked(id) == nil {
		return ErrEdgeNotFound
	}
	g.removeEdgeLocked(id)

	return nil
}

// SetEdgeWeight changes the weight of an existing edge in place. The handle,
// the endpoints and the position in the insertion order are kept, so
// Kruskal's tie order for the edge is unchanged.
//
// Errors: ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) SetEdgeWeight(id EdgeID, weight float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	e := g.edgeLocked(id)
	if e == nil {
		return ErrEdgeNotFound
	}
	e.Weight = weight

	return nil
}

// HasEdge reports whether the edge handle is present.
func (g *Graph) HasEdge(id EdgeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeLocked(id) != nil
}

// Edge returns a copy of the edge with the given handle.
//
// Errors: ErrEdgeNotFound.
func (g *Graph) Edge(id EdgeID) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e := g.edgeLocked(id)
	if e == nil {
		return Edge{}, ErrEdgeNotFound
	}

	return *e, nil
}

// EdgeBetween returns the edge joining u and v in either orientation.
// Complexity: O(1).
func (g *Graph) EdgeBetween(u, v VertexID) (EdgeID, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	id, ok := g.pairs[makePair(u, v)]
	if !ok {
		return NoEdge, false
	}

	return id, true
}

// Edges returns copies of all present edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, len(g.edgeOrder))
	for _, id := range g.edgeOrder {
		out = append(out, *g.edges[id])
	}

	return out
}

// EdgeCount returns the number of present edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edgeOrder)
}

// edgeLocked returns the live edge for id or nil. Caller holds g.mu.
func (g *Graph) edgeLocked(id EdgeID) *Edge {
	if id < 0 || int(id) >= len(g.edges) {
		return nil
	}

	return g.edges[id]
}

// removeEdgeLocked unlinks a present edge everywhere. Caller holds the write lock
// and has checked presence.
func (g *Graph) removeEdgeLocked(id EdgeID) {
	e := g.edges[id]
	detachIncident(g.vertices[e.Source], id)
	detachIncident(g.vertices[e.Dest], id)
	delete(g.pairs, makePair(e.Source, e.Dest))
	if i := slices.Index(g.edgeOrder, id); i >= 0 {
		g.edgeOrder = slices.Delete(g.edgeOrder, i, i+1)
	}
	g.edges[id] = nil
}

// formatFloat prints a float the short way but always with a fractional part,
// so 1 renders as "1.0" and 0.25 as "0.25".
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}

	return s
}
