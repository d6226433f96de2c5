package exchange

import (
	"fmt"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r2"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/spanforest/core"
	"github.com/katalvlaran/spanforest/prim_kruskal"
)

// Export captures g as a Document with a fresh random ID.
// Vertices and edges keep graph order; indices are the live vertex handles.
// A nil graph exports as an empty document.
//
// Complexity: O(V + E).
func Export(g *core.Graph) *Document {
	doc := &Document{
		ID:       uuid.NewString(),
		Vertices: []VertexRecord{},
		Edges:    []EdgeRecord{},
	}
	if g == nil {
		return doc
	}
	s := g.Snapshot()
	doc.Vertices = make([]VertexRecord, 0, len(s.Vertices))
	for _, v := range s.Vertices {
		doc.Vertices = append(doc.Vertices, VertexRecord{Index: int(v.Index), X: v.Position.X, Y: v.Position.Y})
	}
	doc.Edges = edgeRecords(s.Edges)

	return doc
}

// ExportForest captures a forest result. graphID links it to the Document the
// forest was computed from and may be empty.
func ExportForest(graphID string, f *prim_kruskal.Forest) *ForestDocument {
	if f == nil {
		return &ForestDocument{GraphID: graphID, Edges: []EdgeRecord{}}
	}

	return &ForestDocument{
		GraphID:     graphID,
		Strategy:    f.Strategy.String(),
		Edges:       edgeRecords(f.Edges),
		TotalWeight: f.TotalWeight,
		Components:  f.Components(),
	}
}

// edgeRecords converts edges to records, preserving order and orientation.
func edgeRecords(edges []core.Edge) []EdgeRecord {
	out := make([]EdgeRecord, 0, len(edges))
	for _, e := range edges {
		out = append(out, EdgeRecord{SourceIndex: int(e.Source), DestIndex: int(e.Dest), Weight: e.Weight})
	}

	return out
}

// Import rebuilds a graph from doc.
//
// Steps:
//  1. Add every vertex record in document order; remember original index →
//     new handle in a lookup table. A repeated index aborts with ErrDuplicateIndex.
//  2. Replay AddEdge for every edge record through the lookup table.
//     Records naming an unknown index are dropped; self-loops and duplicate
//     pairs are refused by the graph. None of these is an error; the Report
//     counts each kind.
//
// The new graph's handles are freshly assigned and need not equal the
// original indices; Report.Mapping relates the two.
//
// Complexity: O(V + E).
func Import(doc *Document, opts ...core.GraphOption) (*core.Graph, *Report, error) {
	if doc == nil {
		return nil, nil, ErrNilDocument
	}

	g := core.NewGraph(append([]core.GraphOption{core.WithCapacity(len(doc.Vertices), len(doc.Edges))}, opts...)...)
	rep := &Report{Mapping: make(map[int]core.VertexID, len(doc.Vertices))}

	// 1) Vertices and lookup table.
	for _, vr := range doc.Vertices {
		if _, dup := rep.Mapping[vr.Index]; dup {
			return nil, nil, fmt.Errorf("%w: %d", ErrDuplicateIndex, vr.Index)
		}
		rep.Mapping[vr.Index] = g.AddVertexAt(r2.Vec{X: vr.X, Y: vr.Y})
	}
	rep.Vertices = len(doc.Vertices)

	// 2) Edges.
	for i, er := range doc.Edges {
		u, okU := rep.Mapping[er.SourceIndex]
		v, okV := rep.Mapping[er.DestIndex]
		switch {
		case !okU || !okV:
			rep.Dropped++
			klog.V(2).InfoS("Dropped edge with unknown endpoint",
				"record", i, "sourceIndex", er.SourceIndex, "destIndex", er.DestIndex)
		case u == v:
			rep.SelfLoops++
			klog.V(2).InfoS("Dropped self-loop edge", "record", i, "index", er.SourceIndex)
		default:
			if _, ok := g.AddEdge(u, v, er.Weight); !ok {
				rep.Duplicates++
				klog.V(4).InfoS("Skipped duplicate edge",
					"record", i, "sourceIndex", er.SourceIndex, "destIndex", er.DestIndex)
				continue
			}
			rep.Edges++
		}
	}

	return g, rep, nil
}

// RestoreIndices rewrites the endpoints of doc from the handles of an
// imported graph back to the document indices recorded in r.Mapping, so a
// forest computed on an imported graph refers to its source document.
// Endpoints without a mapping are left unchanged.
func RestoreIndices(doc *ForestDocument, r *Report) {
	if doc == nil || r == nil {
		return
	}
	original := make(map[int]int, len(r.Mapping))
	for idx, id := range r.Mapping {
		original[int(id)] = idx
	}
	for i, er := range doc.Edges {
		if idx, ok := original[er.SourceIndex]; ok {
			doc.Edges[i].SourceIndex = idx
		}
		if idx, ok := original[er.DestIndex]; ok {
			doc.Edges[i].DestIndex = idx
		}
	}
}
