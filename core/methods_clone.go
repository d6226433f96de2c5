// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone preserves every handle and both insertion orders, and keeps the arena
//     lengths so future handles on the clone continue the source sequence.
// Concurrency:
//   - Read lock for snapshotting the source; write lock for Clear.

package core

import "maps"

// Clone returns a deep copy of the Graph: vertices, edges, incident lists and
// the pair index. Removed arena slots stay empty on the clone.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		vertices:    make([]*Vertex, len(g.vertices)),
		edges:       make([]*Edge, len(g.edges)),
		vertexOrder: append([]VertexID(nil), g.vertexOrder...),
		edgeOrder:   append([]EdgeID(nil), g.edgeOrder...),
		pairs:       maps.Clone(g.pairs),
	}
	for _, id := range g.vertexOrder {
		v := copyVertex(g.vertices[id])
		clone.vertices[id] = &v
	}
	for _, id := range g.edgeOrder {
		e := *g.edges[id]
		clone.edges[id] = &e
	}

	return clone
}

// Clear removes all vertices and edges in one step and restarts handle
// assignment from zero.
// Complexity: O(1) (old storage is left to the GC).
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices = nil
	g.edges = nil
	g.vertexOrder = nil
	g.edgeOrder = nil
	g.pairs = make(map[pairKey]EdgeID)
}
