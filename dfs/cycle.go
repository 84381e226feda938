// Package dfs implements cycle detection over core.Graph using three-color
// depth-first search. Each node moves White → Gray (on the DFS stack) →
// Black (fully explored); reaching a Gray node signals a back-edge.
//
// The edge a node was entered through is skipped by identity rather than by
// parent node. A single undirected edge a—b is therefore not a cycle, while
// two parallel edges between a and b are, and a self-loop always is.
//
// Complexity:
//
//   - Time:   O(V + E·k)   (k = max edge arity)
//   - Memory: O(V)         (recursion stack + color map)
package dfs

import (
	"fmt"

	"github.com/katalvlaran/hypermap/core"
)

// cycleWalker carries the coloring state of one detection run.
type cycleWalker[N comparable] struct {
	graph *core.Graph[N]
	state map[N]int // White/Gray/Black per node (missing = White)
	path  []N       // current DFS stack, for witness reconstruction
}

// HasCycle reports whether g contains a cycle reachable by following
// traversable edges. The verdict does not depend on node or edge order.
// g is never mutated, so repeated calls agree.
func HasCycle[N comparable](g *core.Graph[N]) (bool, error) {
	_, found, err := FindCycle(g)

	return found, err
}

// FindCycle returns a witness closed walk [v, …, v] when g has a cycle.
// Which cycle is reported depends on insertion order; existence does not.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - Any adjacency error from the graph, wrapped.
func FindCycle[N comparable](g *core.Graph[N]) ([]N, bool, error) {
	if g == nil {
		return nil, false, ErrGraphNil
	}

	nodes := g.Nodes()
	w := &cycleWalker[N]{
		graph: g,
		state: make(map[N]int, len(nodes)),
		path:  make([]N, 0, len(nodes)),
	}
	for _, n := range nodes {
		if w.state[n] != White {
			continue
		}
		cycle, err := w.visit(n, nil)
		if err != nil {
			return nil, false, fmt.Errorf("dfs: FindCycle: %w", err)
		}
		if cycle != nil {
			return cycle, true, nil
		}
	}

	return nil, false, nil
}

// visit explores u, entered through arrival (nil for roots). It returns the
// first cycle found, or nil.
func (w *cycleWalker[N]) visit(u N, arrival core.Edge[N]) ([]N, error) {
	w.state[u] = Gray
	w.path = append(w.path, u)

	edges, err := w.graph.TraversableAdjacentEdgesFrom(u)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if arrival != nil && e == arrival {
			continue
		}
		targets, terr := e.TraversableNodes(u)
		if terr != nil {
			return nil, terr
		}
		for _, v := range targets {
			switch w.state[v] {
			case Gray:
				return w.witness(v), nil
			case White:
				cycle, verr := w.visit(v, e)
				if verr != nil || cycle != nil {
					return cycle, verr
				}
			}
		}
	}

	w.path = w.path[:len(w.path)-1]
	w.state[u] = Black

	return nil, nil
}

// witness closes the current stack from v back to v.
func (w *cycleWalker[N]) witness(v N) []N {
	start := IndexOf(w.path, v)
	out := make([]N, 0, len(w.path)-start+1)
	out = append(out, w.path[start:]...)

	return append(out, v)
}
