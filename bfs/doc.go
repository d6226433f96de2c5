// Package bfs provides breadth-first search and connected-component discovery
// over a core.Graph, returning hop distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Supports functional hooks at two stages:
//   - OnEnqueue (when a vertex is first discovered)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Components / ComponentCount partition the whole graph.
//
// Edge weights are ignored: BFS counts hops.
//
// Why
//
//   - A minimum spanning forest has exactly |V| − components edges, so the
//     component count is the reference figure for checking forest results.
//   - Discover reachable subgraphs and level layering in O(V + E).
//
// Determinism
//
//	Neighbors are enqueued in incident-list order (edge insertion order), and
//	components are discovered in vertex creation order, so results are fully
//	reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, start,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithOnVisit(func(id core.VertexID, depth int) error { return nil }),
//	)
//
//	groups := bfs.Components(g)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit, or ctx.Err().
package bfs
