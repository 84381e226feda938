// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, parent links, and visit order, plus weak
// connectivity helpers (Components, IsConnected).
//
// BFS explores nodes in increasing distance from a start node, following
// traversable edges unless WithUndirected is given.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/hypermap/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem[N comparable] struct {
	node  N
	depth int
}

// walker encapsulates mutable BFS state.
type walker[N comparable] struct {
	graph   *core.Graph[N]
	opts    BFSOptions[N]
	ctx     context.Context
	queue   []queueItem[N]
	visited map[N]bool
	res     *BFSResult[N]
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil or ErrStartNodeNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// or any user-supplied hook error.
func BFS[N comparable](g *core.Graph[N], start N, opts ...Option[N]) (*BFSResult[N], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("bfs: BFS(%v): %w", start, ErrStartNodeNotFound)
	}

	n := g.NodeCount()
	w := &walker[N]{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem[N], 0, n),
		visited: make(map[N]bool, n),
		res: &BFSResult[N]{
			Order:  make([]N, 0, n),
			Depth:  make(map[N]int, n),
			Parent: make(map[N]N, n),
		},
	}
	w.visited[start] = true
	w.res.Depth[start] = 0
	w.queue = append(w.queue, queueItem[N]{node: start})

	return w.res, w.loop()
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[N]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.node)
		if err := w.opts.OnVisit(item.node, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.node, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors enqueues each unseen neighbor of item within MaxDepth.
func (w *walker[N]) enqueueNeighbors(item queueItem[N]) error {
	if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
		return nil
	}
	var (
		nbrs []N
		err  error
	)
	if w.opts.Undirected {
		nbrs, err = w.graph.AdjacentNodes(item.node)
	} else {
		nbrs, err = w.graph.TraversableAdjacentNodesFrom(item.node)
	}
	if err != nil {
		return fmt.Errorf("%w: neighbors of %v: %v", ErrNeighbors, item.node, err)
	}
	for _, nb := range nbrs {
		if w.visited[nb] {
			continue
		}
		w.visited[nb] = true
		w.res.Depth[nb] = item.depth + 1
		w.res.Parent[nb] = item.node
		w.queue = append(w.queue, queueItem[N]{node: nb, depth: item.depth + 1})
	}

	return nil
}

// Components partitions the nodes of g into weakly connected components
// (edge direction ignored). Components and their members follow node
// insertion order of each component's first node, then BFS order.
func Components[N comparable](g *core.Graph[N]) ([][]N, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seen := make(map[N]bool, g.NodeCount())
	var comps [][]N
	for _, n := range g.Nodes() {
		if seen[n] {
			continue
		}
		res, err := BFS(g, n, WithUndirected[N]())
		if err != nil {
			return nil, err
		}
		for _, m := range res.Order {
			seen[m] = true
		}
		comps = append(comps, res.Order)
	}

	return comps, nil
}

// IsConnected reports whether g is weakly connected. The empty graph counts
// as connected.
func IsConnected[N comparable](g *core.Graph[N]) (bool, error) {
	comps, err := Components(g)
	if err != nil {
		return false, err
	}

	return len(comps) <= 1, nil
}
