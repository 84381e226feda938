// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-/post-order hooks, depth limiting, neighbor filtering,
// and full-graph (forest) traversal.
package dfs

import (
	"context"
	"errors"
)

// Visitation colors used by cycle detection and topological sort.
const (
	White = iota // White: the node has not been visited yet.
	Gray         // Gray: the node is on the current DFS stack.
	Black        // Black: the node and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil graph is passed to DFS,
	// TopologicalSort, HasCycle, or FindCycle.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNodeNotFound indicates that the start node does not exist in the graph.
	ErrStartNodeNotFound = errors.New("dfs: start node not found")

	// ErrCycleDetected indicates that a cycle was encountered during TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrNotDirected indicates TopologicalSort met an edge without orientation.
	ErrNotDirected = errors.New("dfs: graph has non-directed edges")
)

// Option configures optional behavior of DFS traversal.
// Options that carry no node-typed argument need an explicit type
// argument, e.g. dfs.WithFullTraversal[string]().
type Option[N comparable] func(*DFSOptions[N])

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions[N comparable] struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a node is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(n N) error

	// OnExit, if non-nil, is invoked after all descendants of a node have been
	// explored (post-order), before appending to the result order.
	OnExit func(n N) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start node. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor before recursing.
	// Return false to skip that neighbor.
	FilterNeighbor func(n N) bool

	// FullTraversal runs DFS from every unvisited node in insertion order,
	// covering disconnected components. Default is false.
	FullTraversal bool
}

// DefaultOptions returns DFSOptions with a background context, no hooks,
// no depth limit, no filter, and single-source traversal.
func DefaultOptions[N comparable]() DFSOptions[N] {
	return DFSOptions[N]{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for DFS traversal. A nil context is ignored.
func WithContext[N comparable](ctx context.Context) Option[N] {
	return func(o *DFSOptions[N]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit[N comparable](fn func(n N) error) Option[N] {
	return func(o *DFSOptions[N]) { o.OnVisit = fn }
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit[N comparable](fn func(n N) error) Option[N] {
	return func(o *DFSOptions[N]) { o.OnExit = fn }
}

// WithMaxDepth limits traversal depth. A limit of 0 visits only the start node.
func WithMaxDepth[N comparable](limit int) Option[N] {
	return func(o *DFSOptions[N]) { o.MaxDepth = limit }
}

// WithFilterNeighbor skips neighbors for which fn returns false.
func WithFilterNeighbor[N comparable](fn func(n N) bool) Option[N] {
	return func(o *DFSOptions[N]) { o.FilterNeighbor = fn }
}

// WithFullTraversal restarts DFS from every unvisited node.
func WithFullTraversal[N comparable]() Option[N] {
	return func(o *DFSOptions[N]) { o.FullTraversal = true }
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult[N comparable] struct {
	// Order records nodes in the sequence they finished (post-order).
	Order []N

	// Depth maps each node to its distance (#edges) from its tree root.
	Depth map[N]int

	// Parent maps each node to the node from which it was first discovered.
	// Roots do not appear.
	Parent map[N]N

	// Visited flags which nodes were reached.
	Visited map[N]bool

	// SkippedNeighbors counts neighbors rejected by FilterNeighbor.
	SkippedNeighbors int
}
