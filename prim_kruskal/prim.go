// Package prim_kruskal provides an implementation of Prim's minimum spanning
// forest algorithm. It grows a tree from every not-yet-reached node in
// insertion order using a min-heap keyed by (weight, edge insertion index).
package prim_kruskal

import (
	"container/heap"

	"github.com/katalvlaran/hypermap/core"
)

// Prim computes a minimum spanning forest of g.
//
// Error Conditions:
//   - ErrInvalidGraph: same rules as Kruskal.
//
// Steps:
//  1. Validate; index every edge by insertion position for tie-breaking.
//  2. For each unvisited node r (insertion order): mark r, push its edges.
//  3. Pop the lightest edge; if its far endpoint is visited, drop it,
//     otherwise accept it, mark the endpoint, push that node's edges.
//  4. Continue until the heap is empty, then move to the next root.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim[N comparable](g *core.Graph[N]) ([]core.Edge[N], float64, error) {
	edges, err := validate(g)
	if err != nil {
		return nil, 0, err
	}
	index := make(map[core.Edge[N]]int, len(edges))
	for i, e := range edges {
		index[e] = i
	}

	nodes := g.Nodes()
	visited := make(map[N]bool, len(nodes))
	forest := make([]core.Edge[N], 0, len(nodes))
	var total float64
	pq := &edgePQ[N]{}

	push := func(u N) error {
		incident, aerr := g.AdjacentEdges(u)
		if aerr != nil {
			return aerr
		}
		for _, e := range incident {
			ends := e.Nodes()
			far := ends[0]
			if far == u {
				far = ends[1]
			}
			if visited[far] {
				continue
			}
			heap.Push(pq, pqItem[N]{edge: e, to: far, weight: core.WeightOf(e), order: index[e]})
		}

		return nil
	}

	for _, root := range nodes {
		if visited[root] {
			continue
		}
		visited[root] = true
		if err = push(root); err != nil {
			return nil, 0, err
		}
		for pq.Len() > 0 {
			item := heap.Pop(pq).(pqItem[N])
			if visited[item.to] {
				continue
			}
			visited[item.to] = true
			forest = append(forest, item.edge)
			total += item.weight
			if err = push(item.to); err != nil {
				return nil, 0, err
			}
		}
	}

	return forest, total, nil
}

// pqItem is a candidate edge leading to a not-yet-visited node.
type pqItem[N comparable] struct {
	edge   core.Edge[N]
	to     N
	weight float64
	order  int // insertion index, breaks weight ties
}

// edgePQ implements heap.Interface as a min-heap of candidate edges.
type edgePQ[N comparable] []pqItem[N]

func (pq edgePQ[N]) Len() int { return len(pq) }

func (pq edgePQ[N]) Less(i, j int) bool {
	if pq[i].weight != pq[j].weight {
		return pq[i].weight < pq[j].weight
	}

	return pq[i].order < pq[j].order
}

func (pq edgePQ[N]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ[N]) Push(x any) { *pq = append(*pq, x.(pqItem[N])) }

func (pq *edgePQ[N]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
