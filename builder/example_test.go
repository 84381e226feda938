package builder_test

import (
	"fmt"

	"github.com/katalvlaran/hypermap/builder"
	"github.com/katalvlaran/hypermap/core"
)

func ExampleBuildGraph() {
	g, err := builder.BuildGraph(
		[]core.GraphOption{},
		[]builder.BuilderOption{builder.WithSymbolIDs(), builder.WithConstantWeight(2)},
		builder.Cycle(4),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.Nodes())
	for _, e := range g.Edges() {
		fmt.Print(e.Nodes(), " w=", core.WeightOf(e), " ")
	}
	fmt.Println()
	// Output:
	// [A B C D]
	// [A B] w=2 [B C] w=2 [C D] w=2 [D A] w=2
}
