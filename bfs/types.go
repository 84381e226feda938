// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartNodeNotFound is returned when the start node is absent.
	ErrStartNodeNotFound = errors.New("bfs: start node not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option (e.g. negative depth) is recorded and surfaced as
// ErrOptionViolation when BFS is invoked.
type Option[N comparable] func(*BFSOptions[N])

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions[N comparable] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a node. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(n N, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables any depth limit.
	MaxDepth int

	// Undirected, when set, follows plain adjacency instead of traversability,
	// so directed edges are walked both ways.
	Undirected bool

	err error
}

// DefaultOptions returns a BFSOptions with a background context, no depth
// limit, and a no-op OnVisit hook.
func DefaultOptions[N comparable]() BFSOptions[N] {
	return BFSOptions[N]{
		Ctx:     context.Background(),
		OnVisit: func(N, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[N comparable](ctx context.Context) Option[N] {
	return func(o *BFSOptions[N]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits exploration to nodes at most d steps away.
// A negative d is an option violation.
func WithMaxDepth[N comparable](d int) Option[N] {
	return func(o *BFSOptions[N]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth must be >= 0, got %d", ErrOptionViolation, d)

			return
		}
		o.MaxDepth = d
	}
}

// WithOnVisit registers a hook invoked for every visited node.
func WithOnVisit[N comparable](fn func(n N, depth int) error) Option[N] {
	return func(o *BFSOptions[N]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithUndirected makes BFS ignore edge direction.
func WithUndirected[N comparable]() Option[N] {
	return func(o *BFSOptions[N]) { o.Undirected = true }
}

// BFSResult holds the outcome of a breadth-first traversal.
type BFSResult[N comparable] struct {
	// Order lists nodes in visit order.
	Order []N

	// Depth maps each reached node to its hop distance from the start.
	Depth map[N]int

	// Parent maps each reached node (except the start) to its BFS-tree parent.
	Parent map[N]N
}

// PathTo reconstructs the start → dest path from parent links.
// Returns false if dest was not reached.
func (r *BFSResult[N]) PathTo(dest N) ([]N, bool) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, false
	}
	path := []N{dest}
	for cur := dest; ; {
		p, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}
