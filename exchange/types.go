// Package exchange defines the persisted document contract for spanforest
// graphs and forests, and converts between documents and *core.Graph.
package exchange

import (
	"errors"

	"github.com/katalvlaran/spanforest/core"
)

// Sentinel errors for document conversion and codecs.
var (
	// ErrNilDocument indicates Import received a nil document.
	ErrNilDocument = errors.New("exchange: document is nil")

	// ErrDuplicateIndex indicates two vertex records share an index.
	ErrDuplicateIndex = errors.New("exchange: duplicate vertex index")

	// ErrUnknownFormat indicates an unsupported codec name or file extension.
	ErrUnknownFormat = errors.New("exchange: unknown format")
)

// VertexRecord is the persisted form of one vertex.
type VertexRecord struct {
	Index int     `json:"index" yaml:"index"`
	X     float64 `json:"x" yaml:"x"`
	Y     float64 `json:"y" yaml:"y"`
}

// EdgeRecord is the persisted form of one edge. Endpoints refer to
// VertexRecord.Index values of the same document, never to live handles.
type EdgeRecord struct {
	SourceIndex int     `json:"source_index" yaml:"source_index"`
	DestIndex   int     `json:"dest_index" yaml:"dest_index"`
	Weight      float64 `json:"weight" yaml:"weight"`
}

// Document is a serializable graph: a vertex list and an edge list.
// ID is informational; Import ignores it.
type Document struct {
	ID       string         `json:"id,omitempty" yaml:"id,omitempty"`
	Vertices []VertexRecord `json:"vertices" yaml:"vertices"`
	Edges    []EdgeRecord   `json:"edges" yaml:"edges"`
}

// ForestDocument is the serializable result of one algorithm run.
type ForestDocument struct {
	GraphID     string       `json:"graph_id,omitempty" yaml:"graph_id,omitempty"`
	Strategy    string       `json:"strategy" yaml:"strategy"`
	Edges       []EdgeRecord `json:"edges" yaml:"edges"`
	TotalWeight float64      `json:"total_weight" yaml:"total_weight"`
	Components  int          `json:"components" yaml:"components"`
}

// Report describes what Import did with the document's edges.
//
//	Vertices  : vertex records imported.
//	Edges     : edges added to the graph.
//	Dropped   : edges naming an index absent from the vertex list.
//	Duplicates: edges refused because their unordered pair already exists.
//	SelfLoops : edges whose two endpoints are the same index.
//	Mapping   : original index → freshly assigned handle.
type Report struct {
	Vertices   int
	Edges      int
	Dropped    int
	Duplicates int
	SelfLoops  int
	Mapping    map[int]core.VertexID
}
