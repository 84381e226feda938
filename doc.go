// Package hypermap is a toolkit for generic graphs, the classic algorithms
// over them, and a concurrent force-directed layout engine.
//
// What is inside:
//
//	core/          generic Graph[N] with hyperedges, undirected and directed edges
//	hyperpoint/    fixed-dimension points with gonum-backed arithmetic
//	unionfind/     disjoint-set forest (union by size, path compression)
//	dfs/           traversal, three-color cycle detection, topological sort
//	bfs/           traversal, shortest hop paths, weak components
//	prim_kruskal/  minimum spanning forests (Kruskal and Prim)
//	workpool/      bounded worker pool with futures and idle teardown
//	hypermap/      hyperassociative map: BSP layout rounds over a worker pool
//	metrics/       Prometheus collectors for layout rounds
//	config/        YAML/TOML layout configuration
//	builder/       deterministic topology fixtures
//	cmd/hyperlayout  CLI over all of the above
//
// Guarantees:
//
//   - Every Graph method is safe for concurrent use; iteration follows
//     insertion order, so algorithms are deterministic.
//   - Libraries never log unless handed a logger.
//   - A layout round either commits for every node or for none, and leaves
//     the map's centroid at the origin.
package hypermap
