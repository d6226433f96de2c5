// Package core provides an in-memory weighted undirected simple graph with a
// minimal, composable API surface.
//
// The Graph G = (V,E) stores:
//
//   - Vertices with a stable graph-assigned index and a 2D position payload
//     (gonum spatial/r2 vectors; no algorithm looks at them).
//   - Undirected edges with a real-valued weight that remember the orientation
//     they were created with, for display and serialization only.
//   - An incident-edge list per vertex for O(degree) local traversal.
//
// Storage model:
//
//	vertices []*Vertex   arena indexed by VertexID, nil once removed
//	edges    []*Edge     arena indexed by EdgeID, nil once removed
//	pairs    map[{lo,hi}]EdgeID  orientation-free simple-graph index
//
// Adjacency lists hold handles into the arenas, never pointers, so removing an
// element can not leave dangling references.
//
// Invariants:
//
//   - Every present edge appears in the incident list of both endpoints, and every
//     incident entry references a present edge.
//   - No two edges join the same unordered pair; self-loops are refused.
//   - Vertex indices are unique among present vertices and never reassigned.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(x, y float64) VertexID          // O(1)
//	AddVertexAt(p r2.Vec) VertexID            // O(1)
//	RemoveVertex(id VertexID) error           // cascades incident edges
//
//	// Edge lifecycle
//	AddEdge(u, v VertexID, w float64) (EdgeID, bool) // false on duplicate pair
//	Connect(u, v VertexID) (EdgeID, bool)            // weight DefaultWeight
//	RemoveEdge(id EdgeID) error
//
//	// Query
//	Vertices() []Vertex, Edges() []Edge       // creation / insertion order
//	Incident(id), Neighbors(id), EdgeBetween(u, v)
//	VertexCount(), EdgeCount(), Stats()
//	VertexAt(p, radius)                       // nearest vertex hit-test
//	Snapshot()                                // consistent copy for algorithms
//
//	// Maintenance
//	Clear(), Clone()
//
// Duplicate edges are not an error: AddEdge answers with ok == false and leaves
// the graph untouched, and callers are expected to check it.
//
// Concurrency: one sync.RWMutex per Graph serializes mutations against reads.
package core
