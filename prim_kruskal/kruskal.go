// Package prim_kruskal provides an implementation of Kruskal's minimum spanning
// forest algorithm over core.Graph, backed by unionfind.DisjointSet.
package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/hypermap/core"
	"github.com/katalvlaran/hypermap/unionfind"
)

// Kruskal computes a minimum spanning forest of g.
//
// Error Conditions:
//   - ErrInvalidGraph: g is nil, or holds a directed edge or an edge whose
//     arity is not 2.
//
// Steps:
//  1. Validate and collect edges in insertion order.
//  2. Stable-sort ascending by weight, so equal weights keep insertion order.
//  3. Seed a disjoint-set forest with one singleton per node.
//  4. Accept an edge iff its endpoints lie in different sets, then union them.
//     Self-loops and cycle-closing edges are discarded.
//  5. Stop early once |V|-1 edges are accepted.
//
// A disconnected input is not an error: the result spans each component.
// Unweighted edges count as weight 0.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal[N comparable](g *core.Graph[N]) ([]core.Edge[N], float64, error) {
	edges, err := validate(g)
	if err != nil {
		return nil, 0, err
	}

	nodes := g.Nodes()
	if len(nodes) <= 1 {
		return []core.Edge[N]{}, 0, nil
	}

	sorted := make([]core.Edge[N], len(edges))
	copy(sorted, edges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return core.WeightOf(sorted[i]) < core.WeightOf(sorted[j])
	})

	dsu := unionfind.New(nodes...)
	forest := make([]core.Edge[N], 0, len(nodes)-1)
	var total float64
	for _, e := range sorted {
		ends := e.Nodes()
		merged, uerr := dsu.Union(ends[0], ends[1])
		if uerr != nil {
			return nil, 0, fmt.Errorf("prim_kruskal: Kruskal: %w", uerr)
		}
		if !merged {
			continue
		}
		forest = append(forest, e)
		total += core.WeightOf(e)
		if len(forest) == len(nodes)-1 {
			break
		}
	}

	return forest, total, nil
}
