// Package prim_kruskal finds minimum spanning forests of undirected weighted
// core.Graph values.
//
// Two finders implement the Finder contract:
//
//   - KruskalFinder: stable sort by weight (ties keep edge insertion order)
//     then union-find; deterministic for a fixed edge order.
//   - PrimFinder: min-heap growth from each component root.
//
// Both return a spanning forest on disconnected input. Use Compute with
// WithRequireConnected when a single tree is mandatory.
package prim_kruskal
