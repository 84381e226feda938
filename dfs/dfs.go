// Package dfs implements depth-first search (single-source and forest) on core.Graph.
// Neighbors are the graph's traversable adjacent nodes, so directed edges are
// followed source → target only and hyperedges fan out to every co-endpoint.
//
// Complexity:
//
//   - Time:   O(V + E·k) for traversal, plus the cost of hooks and filters.
//   - Memory: O(V) for recursion stack and metadata maps.
//
// Errors:
//
//   - ErrGraphNil              if g is nil.
//   - ErrStartNodeNotFound     if start is missing (single-source mode).
//   - context.Canceled         if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/hypermap/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker[N comparable] struct {
	graph *core.Graph[N] // underlying graph
	opts  DFSOptions[N]  // traversal options
	res   *DFSResult[N]  // result collector
}

// DFS performs depth-first search on g. With WithFullTraversal it covers all
// components in node insertion order; otherwise it starts only from start.
// On error the partial result is returned alongside it.
func DFS[N comparable](g *core.Graph[N], start N, opts ...Option[N]) (*DFSResult[N], error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions[N]()
	for _, fn := range opts {
		fn(&dopts)
	}

	if !dopts.FullTraversal && !g.HasNode(start) {
		return nil, fmt.Errorf("dfs: DFS(%v): %w", start, ErrStartNodeNotFound)
	}

	nodes := g.Nodes()
	res := &DFSResult[N]{
		Order:   make([]N, 0, len(nodes)),
		Depth:   make(map[N]int, len(nodes)),
		Parent:  make(map[N]N, len(nodes)),
		Visited: make(map[N]bool, len(nodes)),
	}
	w := &dfsWalker[N]{graph: g, opts: dopts, res: res}

	if dopts.FullTraversal {
		for _, n := range nodes {
			if res.Visited[n] {
				continue
			}
			if err := w.traverse(n, 0); err != nil {
				return res, err
			}
		}

		return res, nil
	}

	if err := w.traverse(start, 0); err != nil {
		return res, err
	}

	return res, nil
}

// traverse visits id at the given depth, recursing into unvisited neighbors.
func (w *dfsWalker[N]) traverse(id N, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	w.res.Visited[id] = true
	w.res.Depth[id] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %v: %w", id, err)
		}
	}

	nbrs, err := w.graph.TraversableAdjacentNodesFrom(id)
	if err != nil {
		w.res.Order = nil

		return fmt.Errorf("dfs: neighbors of %v: %w", id, err)
	}

	for _, nid := range nbrs {
		if nid == id {
			continue // loops never lead anywhere new
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
			w.res.SkippedNeighbors++
			continue
		}
		if w.res.Visited[nid] {
			continue
		}
		if w.opts.MaxDepth >= 0 && depth+1 > w.opts.MaxDepth {
			continue
		}
		w.res.Parent[nid] = id
		if err = w.traverse(nid, depth+1); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %v: %w", id, err)
		}
	}

	w.res.Order = append(w.res.Order, id)

	return nil
}
