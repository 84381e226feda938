// Package builder assembles deterministic graph fixtures over core.Graph[string].
//
// It provides:
//
//   - Topology constructors: Path, Cycle, Star, Wheel, Complete,
//     CompleteBipartite, Grid and RandomSparse.
//   - Node-ID schemes (IDFn): decimal, single letters, Excel columns, prefixed.
//   - Edge-weight distributions (WeightFn): constant and uniform.
//   - BuildGraph, which composes constructors in order on a fresh graph.
//
// Guarantees:
//
//   - Determinism: equal options, seed and constructor order give identical
//     graphs, node order and edge order included.
//   - Option constructors panic on programmer errors (nil functions); build
//     constructors never panic and return sentinel errors instead.
//   - Edges are UndirectedEdge by default and DirectedEdge under WithDirected.
//     Every edge carries a weight drawn from the configured WeightFn.
package builder
