package builder

import (
	"fmt"

	"github.com/katalvlaran/hypermap/core"
)

// addNodes inserts cfg.idFn(0..n-1) in index order.
func addNodes(g *core.Graph[string], cfg builderConfig, n int) []string {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		g.AddNode(ids[i])
	}

	return ids
}

// link emits u—v (or u→v when directed) with a weight from cfg.weightFn.
// When both is set on a directed build the reverse arc is emitted too,
// sharing the weight.
func link(g *core.Graph[string], cfg builderConfig, method, u, v string, both bool) error {
	w := cfg.weightFn(cfg.rng)
	if !cfg.directed {
		if err := g.AddEdge(core.NewUndirectedEdge(u, v, core.WithWeight(w))); err != nil {
			return fmt.Errorf("%s: AddEdge(%s—%s, w=%g): %w", method, u, v, w, err)
		}

		return nil
	}
	if err := g.AddEdge(core.NewDirectedEdge(u, v, core.WithWeight(w))); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, u, v, w, err)
	}
	if both {
		if err := g.AddEdge(core.NewDirectedEdge(v, u, core.WithWeight(w))); err != nil {
			return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, v, u, w, err)
		}
	}

	return nil
}
