// Package core is the graph model shared by every other package in hypermap.
//
// A Graph[N] owns a node set of comparable identities and an edge set of
// Edge[N] values. Three edge variants are provided:
//
//	Hyperedge       two or more endpoints, traversable between any pair
//	UndirectedEdge  exactly two endpoints, traversable both ways
//	DirectedEdge    exactly two endpoints, traversable source → target only
//
// Any variant can carry a weight via WithWeight. Adjacency queries come in
// three flavors: plain adjacency (AdjacentEdges, AdjacentNodes), outbound
// traversal (TraversableAdjacent*From) and inbound traversal
// (TraversableAdjacent*To).
//
// Iteration is deterministic: nodes and edges are kept in btree indexes keyed
// by insertion sequence, so Nodes(), Edges(), and every adjacency result
// follow insertion order.
//
// Example:
//
//	g := core.NewGraph[string](core.WithLoops())
//	_ = g.AddEdge(core.NewUndirectedEdge("a", "b", core.WithWeight(2)))
//	_ = g.AddEdge(core.NewDirectedEdge("b", "c"))
//	from, _ := g.TraversableAdjacentNodesFrom("b") // [a c]
//	to, _ := g.TraversableAdjacentNodesTo("b")     // [a]
package core
