// Package builder provides deterministic “functional‐options”‐style graph
// generators for spanforest: fixtures for tests, benchmarks and the CLI.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(gopts, bopts, cons...): create a graph and apply constructors in order.
//     – Apply(g, bopts, cons...): the same against an existing graph.
//   - Topologies (Constructor factories):
//     – Path, Cycle, Star, Wheel, Complete, CompleteBipartite, Grid, RandomSparse.
//   - Configuration primitives:
//     – BuilderOption: WithSeed, WithRand, WithWeightFn, WithSpacing, WithOrigin,
//     WithConstantWeight, WithUniformWeight, WithIntWeight, WithNormalWeight.
//   - Edge‐weight distributions (WeightFn implementations):
//     – DefaultWeightFn, ConstantWeightFn, UniformWeightFn, IntWeightFn, NormalWeightFn.
//
// Layout:
//
// Every vertex gets a planar position: paths on a line, rings on a circle,
// stars and wheels around a center, grids row-major. Positions do not affect
// any algorithm; they exist so exported documents can be drawn.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical graph,
//     including handles, positions and weights.
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed) for invalid build parameters,
//     wrapped with the constructor name.
package builder
