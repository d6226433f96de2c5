// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns vertices in creation order.
//   - Indices come from the arena length, so they grow monotonically until Clear().
//
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.
package core

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/spatial/r2"
)

// String renders the vertex as "Vertex(index, x=X, y=Y)".
func (v Vertex) String() string {
	return fmt.Sprintf("Vertex(%d, x=%s, y=%s)", v.Index, formatFloat(v.Position.X), formatFloat(v.Position.Y))
}

// Degree returns the number of incident edges.
func (v Vertex) Degree() int { return len(v.Incident) }

// AddVertex inserts a new vertex at (x, y) and returns its handle.
// It always succeeds.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(x, y float64) VertexID {
	return g.AddVertexAt(r2.Vec{X: x, Y: y})
}

// AddVertexAt inserts a new vertex at p and returns its handle.
//
// The index is the arena length at creation time: it equals the current vertex
// count as long as nothing was removed since the last Clear, and it is never
// handed out twice, so indices stay unique among present vertices.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertexAt(p r2.Vec) VertexID {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := VertexID(len(g.vertices))
	g.vertices = append(g.vertices, &Vertex{Index: id, Position: p})
	g.vertexOrder = append(g.vertexOrder, id)

	return id
}

// HasVertex reports whether the vertex handle is present.
// Complexity: O(1).
func (g *Graph) HasVertex(id VertexID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.vertexLocked(id) != nil
}

// Vertex returns a copy of the vertex with the given handle.
// The Incident slice of the copy is owned by the caller.
//
// Errors: ErrVertexNotFound.
// Complexity: O(deg(v)).
func (g *Graph) Vertex(id VertexID) (Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v := g.vertexLocked(id)
	if v == nil {
		return Vertex{}, ErrVertexNotFound
	}

	return copyVertex(v), nil
}

// RemoveVertex deletes a vertex after removing every edge incident to it.
//
// Steps:
//  1. Lock, verify presence (ErrVertexNotFound).
//  2. Remove each incident edge through the same path RemoveEdge uses.
//  3. Drop the vertex from the creation-ordered sequence and free its arena slot.
//
// Complexity: O(deg(v)·(deg + E) + V).
func (g *Graph) RemoveVertex(id VertexID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	v := g.vertexLocked(id)
	if v == nil {
		return ErrVertexNotFound
	}

	// Cascade: iterate over a copy because removeEdgeLocked shrinks v.Incident.
	for _, eid := range slices.Clone(v.Incident) {
		g.removeEdgeLocked(eid)
	}

	if i := slices.Index(g.vertexOrder, id); i >= 0 {
		g.vertexOrder = slices.Delete(g.vertexOrder, i, i+1)
	}
	g.vertices[id] = nil

	return nil
}

// MoveVertex sets the position of an existing vertex. Handle, creation order
// and incident edges are untouched.
//
// Errors: ErrVertexNotFound.
// Complexity: O(1).
func (g *Graph) MoveVertex(id VertexID, p r2.Vec) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	v := g.vertexLocked(id)
	if v == nil {
		return ErrVertexNotFound
	}
	v.Position = p

	return nil
}

// Vertices returns copies of all present vertices in creation order.
// Complexity: O(V + E).
func (g *Graph) Vertices() []Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Vertex, 0, len(g.vertexOrder))
	for _, id := range g.vertexOrder {
		out = append(out, copyVertex(g.vertices[id]))
	}

	return out
}

// VertexIDs returns the handles of all present vertices in creation order.
// Complexity: O(V).
func (g *Graph) VertexIDs() []VertexID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return slices.Clone(g.vertexOrder)
}

// VertexCount returns the number of present vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertexOrder)
}

// Degree returns the number of edges incident to id.
//
// Errors: ErrVertexNotFound.
// Complexity: O(1).
func (g *Graph) Degree(id VertexID) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v := g.vertexLocked(id)
	if v == nil {
		return 0, ErrVertexNotFound
	}

	return len(v.Incident), nil
}

// vertexLocked returns the live vertex for id or nil. Caller holds g.mu.
func (g *Graph) vertexLocked(id VertexID) *Vertex {
	if id < 0 || int(id) >= len(g.vertices) {
		return nil
	}

	return g.vertices[id]
}

// copyVertex detaches a vertex value from the arena.
func copyVertex(v *Vertex) Vertex {
	return Vertex{Index: v.Index, Position: v.Position, Incident: slices.Clone(v.Incident)}
}
