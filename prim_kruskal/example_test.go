package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/hypermap/core"
	"github.com/katalvlaran/hypermap/prim_kruskal"
)

// ExampleKruskal demonstrates Kruskal's algorithm on a weighted triangle.
// The MST is {A–B, B–C} with total weight 3.
func ExampleKruskal() {
	g := core.NewGraph[string]()
	_ = g.AddEdge(core.NewUndirectedEdge("A", "B", core.WithWeight(1)))
	_ = g.AddEdge(core.NewUndirectedEdge("B", "C", core.WithWeight(2)))
	_ = g.AddEdge(core.NewUndirectedEdge("A", "C", core.WithWeight(4)))

	edges, total, err := prim_kruskal.Kruskal(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("Total: %g, Edges:", total)
	for _, e := range edges {
		ns := e.Nodes()
		fmt.Printf(" %s-%s", ns[0], ns[1])
	}
	fmt.Println()
	// Output: Total: 3, Edges: A-B B-C
}

// ExamplePrim demonstrates Prim's algorithm on a pentagon whose heaviest
// edge is left out.
func ExamplePrim() {
	g := core.NewGraph[string]()
	_ = g.AddEdge(core.NewUndirectedEdge("A", "B", core.WithWeight(1)))
	_ = g.AddEdge(core.NewUndirectedEdge("A", "E", core.WithWeight(12)))
	_ = g.AddEdge(core.NewUndirectedEdge("B", "C", core.WithWeight(2)))
	_ = g.AddEdge(core.NewUndirectedEdge("C", "D", core.WithWeight(3)))
	_ = g.AddEdge(core.NewUndirectedEdge("D", "E", core.WithWeight(5)))

	edges, total, _ := prim_kruskal.Prim(g)
	fmt.Println(len(edges), total)
	// Output: 4 11
}
