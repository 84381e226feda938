// Package dfs provides topological sort on directed graphs.
//
// TopologicalSort computes a linear ordering of nodes such that for every
// directed edge u→v, u appears before v. If the graph contains a cycle,
// ErrCycleDetected is returned.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/hypermap/core"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context
}

// WithCancelContext sets the cancellation context. A nil context is ignored.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// TopologicalSort orders all nodes of g so that every edge points forward.
// Roots are tried in insertion order, which makes the output deterministic.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - ErrNotDirected if any edge does not implement core.Oriented.
//   - ErrCycleDetected (wrapped, with a witness) if g is cyclic.
//   - ctx.Err() on cancellation.
func TopologicalSort[N comparable](g *core.Graph[N], opts ...TopoOption) ([]N, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := topoOptions{ctx: context.Background()}
	for _, fn := range opts {
		fn(&o)
	}
	for _, e := range g.Edges() {
		if !core.IsDirected(e) {
			return nil, fmt.Errorf("dfs: TopologicalSort: %w", ErrNotDirected)
		}
	}
	if cycle, found, err := FindCycle(g); err != nil {
		return nil, err
	} else if found {
		return nil, fmt.Errorf("dfs: TopologicalSort: %w: %v", ErrCycleDetected, cycle)
	}

	res, err := DFS(g, *new(N), WithFullTraversal[N](), WithContext[N](o.ctx))
	if err != nil {
		return nil, fmt.Errorf("dfs: TopologicalSort: %w", err)
	}
	order := res.Order
	Reverse(order)

	return order, nil
}
