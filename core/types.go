// Package core defines the central Graph, Vertex, and Edge types,
// and provides the primitives for building, querying, and cloning graphs.
//
// Vertices and edges live in arenas owned by the Graph. Every cross reference
// (edge endpoints, incident lists) is a handle into those arenas, never a pointer,
// so removing an element can not leave a dangling reference behind.
//
// Errors:
//
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
package core

import (
	"errors"
	"sync"

	"gonum.org/v1/gonum/spatial/r2"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// DefaultWeight is the weight given to edges created through Connect.
const DefaultWeight = 1.0

// VertexID is the stable handle of a vertex. It doubles as the vertex index:
// it is assigned at creation time and never reassigned or compacted while the
// vertex exists.
type VertexID int

// EdgeID is the stable handle of an edge.
type EdgeID int

// NoVertex and NoEdge are returned alongside a false "ok" value.
const (
	NoVertex VertexID = -1
	NoEdge   EdgeID   = -1
)

// Vertex represents a node in the graph.
//
// Index uniquely identifies this Vertex within its Graph.
// Position is an opaque 2D payload; no algorithm in this module reads it.
// Incident lists the handles of all edges touching the vertex, in insertion order.
type Vertex struct {
	// Index is the graph-assigned identity of the vertex.
	Index VertexID

	// Position is the planar location of the vertex.
	Position r2.Vec

	// Incident holds the edges touching this vertex.
	Incident []EdgeID
}

// Edge represents an undirected, weighted connection between two vertices.
//
// Source and Dest keep the orientation the edge was created with; it matters only
// for display and serialization. Two edges joining the same unordered pair are
// duplicates regardless of orientation or weight.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID EdgeID

	// Source is the first endpoint as given to AddEdge.
	Source VertexID

	// Dest is the second endpoint as given to AddEdge.
	Dest VertexID

	// Weight is the cost of the edge.
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity preallocates the vertex and edge arenas.
// Negative values are ignored.
func WithCapacity(vertices, edges int) GraphOption {
	return func(g *Graph) {
		if vertices > 0 {
			g.vertices = make([]*Vertex, 0, vertices)
			g.vertexOrder = make([]VertexID, 0, vertices)
		}
		if edges > 0 {
			g.edges = make([]*Edge, 0, edges)
			g.edgeOrder = make([]EdgeID, 0, edges)
			g.pairs = make(map[pairKey]EdgeID, edges)
		}
	}
}

// pairKey is the orientation-free identity of an edge: lo <= hi always.
type pairKey struct {
	lo, hi VertexID
}

// makePair normalizes (u,v) into a pairKey.
func makePair(u, v VertexID) pairKey {
	if u > v {
		u, v = v, u
	}

	return pairKey{lo: u, hi: v}
}

// Graph is the in-memory weighted undirected simple graph.
//
// A single RWMutex guards all state: mutations hold the write lock and every
// accessor holds the read lock, so one Graph may be shared between goroutines.
// Algorithms should read through Snapshot to see one consistent state for the
// whole run.
type Graph struct {
	mu sync.RWMutex

	// Arenas: slot i holds the element with handle i, or nil once removed.
	vertices []*Vertex
	edges    []*Edge

	// Insertion-ordered sequences of present handles.
	vertexOrder []VertexID
	edgeOrder   []EdgeID

	// pairs maps an unordered endpoint pair to its edge (simple-graph index).
	pairs map[pairKey]EdgeID
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		pairs: make(map[pairKey]EdgeID),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}
