// Package prim_kruskal computes minimum spanning forests of an undirected,
// weighted *core.Graph with Prim's and Kruskal's algorithms.
//
// What & Why
//
//   - A minimum spanning forest (MSF) picks, for every connected component, a
//     spanning tree of minimum total weight. A connected graph yields a single
//     MST; an isolated vertex contributes no edges.
//   - For any graph: len(forest) == |V| − (number of connected components).
//
// Algorithms Provided
//
//   - Kruskal(g *core.Graph) ([]core.Edge, float64, error)
//
//   - Strategy: stable-sort all edges by weight, then walk them from the
//     lightest, keeping an edge when its endpoints are in different
//     disjoint sets (union by rank, full path compression).
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
//   - Determinism: ties keep insertion order, so repeated runs on an unchanged
//     graph are byte-for-byte identical.
//
//   - Prim(g *core.Graph) ([]core.Edge, float64, error)
//
//   - Strategy: visit vertices in creation order; each unvisited vertex roots a
//     new tree that grows from an ordered frontier (a B-tree) of boundary
//     edges until the component is exhausted.
//
//   - Tie-break: (weight, lower endpoint index, higher endpoint index).
//
//   - Complexity: O(E log E) time, O(V + E) space.
//
//   - Run(g *core.Graph, s Strategy, opts ...Option) (*Forest, error)
//
//   - Dispatches on an explicit Strategy value and reports to an optional
//     Observer (see package metrics). There is no process-wide "current
//     algorithm".
//
// When edge weights tie, Prim and Kruskal may select different edges, but the
// edge count and total weight always match.
//
// Error Conditions
//
//   - ErrNilGraph        – g is nil.
//   - ErrUnknownStrategy – Run or ParseStrategy received an unsupported name.
//
// # Concurrency
//
// Both algorithms read one consistent core.Snapshot, so a run never observes a
// half-applied mutation. Runs on the same graph may proceed in parallel.
package prim_kruskal
