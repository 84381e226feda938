package core_test

import (
	"fmt"

	"github.com/katalvlaran/hypermap/core"
)

// ExampleGraph shows directionality: b reaches both neighbors, but only a can
// reach b.
func ExampleGraph() {
	g := core.NewGraph[string]()
	_ = g.AddEdge(core.NewUndirectedEdge("a", "b"))
	_ = g.AddEdge(core.NewDirectedEdge("b", "c"))

	from, _ := g.TraversableAdjacentNodesFrom("b")
	to, _ := g.TraversableAdjacentNodesTo("b")
	fmt.Println("from b:", from)
	fmt.Println("to b:", to)
	// Output:
	// from b: [a c]
	// to b: [a]
}

// ExampleGraph_hyperedge shows that a hyperedge links every endpoint pair.
func ExampleGraph_hyperedge() {
	g := core.NewGraph[int]()
	h, _ := core.NewHyperedge([]int{1, 2, 3})
	_ = g.AddEdge(h)

	nbrs, _ := g.AdjacentNodes(2)
	fmt.Println(nbrs)
	// Output:
	// [1 3]
}

// ExampleGraph_loops shows that loops must be enabled explicitly.
func ExampleGraph_loops() {
	strict := core.NewGraph[string]()
	fmt.Println(strict.AddEdge(core.NewUndirectedEdge("x", "x")) != nil)

	looped := core.NewGraph[string](core.WithLoops())
	fmt.Println(looped.AddEdge(core.NewUndirectedEdge("x", "x")) == nil)
	// Output:
	// true
	// true
}
