// Package spanforest computes minimum spanning forests of in-memory,
// weighted, undirected graphs.
//
// 🚀 What is spanforest?
//
//	A small, thread-safe library and CLI that brings together:
//		• Core primitives: vertices with 2-D positions, weighted edges, stable handles
//		• Minimum spanning forests: Prim (per component) and Kruskal (union-find)
//		• Traversals: BFS and connected components
//		• Builders: paths, cycles, stars, wheels, grids, complete and random graphs
//		• Exchange: JSON and YAML documents for graphs and forests
//		• Metrics: Prometheus collectors for algorithm runs
//
// Packages:
//
//	core/         : Graph, Vertex, Edge, Snapshot; one RWMutex per graph
//	prim_kruskal/ : Prim, Kruskal, Run(graph, strategy)
//	bfs/          : breadth-first search, Components, ComponentCount
//	builder/      : deterministic graph constructors and weight distributions
//	exchange/     : Document, ForestDocument, Import, Export, codecs
//	metrics/      : prim_kruskal.Observer backed by Prometheus
//	cmd/spanforest: run, generate and inspect subcommands
//
// Quick ASCII example:
//
//	A──1──B
//	│    ╱
//	3   2
//	│ ╱
//	C
//
// has the forest {A–B, B–C} of total weight 3 under either algorithm.
//
//	go install github.com/katalvlaran/spanforest/cmd/spanforest@latest
package spanforest
