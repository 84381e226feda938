// Package prim_kruskal defines configuration options, the Finder contract,
// and sentinel errors for minimum spanning tree computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hypermap/bfs"
	"github.com/katalvlaran/hypermap/core"
)

// ErrInvalidGraph indicates that MST algorithms require undirected two-endpoint
// edges. Returned when the graph is nil, or any edge is directed or a hyperedge
// of arity other than 2.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires undirected two-endpoint edges")

// ErrDisconnected indicates a spanning tree was required but the input has
// more than one component, so only a spanning forest exists.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod indicates an unsupported MSTOptions.Method.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow from each root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Finder computes a minimum spanning forest of g.
// The result is acyclic, spans every component of g, and has minimal total
// weight among all spanning forests with the same components.
type Finder[N comparable] interface {
	FindMinimumSpanningTree(g *core.Graph[N]) ([]core.Edge[N], error)
}

// KruskalFinder is the Finder backed by Kruskal.
type KruskalFinder[N comparable] struct{}

// FindMinimumSpanningTree implements Finder.
func (KruskalFinder[N]) FindMinimumSpanningTree(g *core.Graph[N]) ([]core.Edge[N], error) {
	edges, _, err := Kruskal(g)

	return edges, err
}

// PrimFinder is the Finder backed by Prim.
type PrimFinder[N comparable] struct{}

// FindMinimumSpanningTree implements Finder.
func (PrimFinder[N]) FindMinimumSpanningTree(g *core.Graph[N]) ([]core.Edge[N], error) {
	edges, _, err := Prim(g)

	return edges, err
}

// MSTOptions configures which MST algorithm to run.
// Use DefaultOptions() to get a default setup (Kruskal, forest allowed).
//
// Complexity: O(E log V) for Prim, O(E log E + α(V)·E) for Kruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// RequireConnected turns a spanning forest with more than one tree into
	// ErrDisconnected.
	RequireConnected bool
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) { opts.Method = m }
}

// WithRequireConnected demands a single spanning tree.
func WithRequireConnected() Option {
	return func(opts *MSTOptions) { opts.RequireConnected = true }
}

// DefaultOptions returns MSTOptions{Method: MethodKruskal}.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}

// NewOptions applies opts over DefaultOptions.
func NewOptions(opts ...Option) MSTOptions {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// NewFinder returns the Finder for method, or ErrUnknownMethod.
func NewFinder[N comparable](method string) (Finder[N], error) {
	switch method {
	case MethodKruskal:
		return KruskalFinder[N]{}, nil
	case MethodPrim:
		return PrimFinder[N]{}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
// Returns the edges of the spanning forest and their total weight.
//
// Errors:
//   - ErrInvalidGraph, ErrUnknownMethod, or ErrDisconnected.
func Compute[N comparable](g *core.Graph[N], opts MSTOptions) ([]core.Edge[N], float64, error) {
	finder, err := NewFinder[N](opts.Method)
	if err != nil {
		return nil, 0, err
	}
	edges, err := finder.FindMinimumSpanningTree(g)
	if err != nil {
		return nil, 0, err
	}
	if opts.RequireConnected {
		connected, cerr := bfs.IsConnected(g)
		if cerr != nil {
			return nil, 0, fmt.Errorf("prim_kruskal: Compute: %w", cerr)
		}
		if !connected {
			return nil, 0, ErrDisconnected
		}
	}

	return edges, TotalWeight(edges), nil
}

// TotalWeight sums core.WeightOf over edges.
func TotalWeight[N comparable](edges []core.Edge[N]) float64 {
	var total float64
	for _, e := range edges {
		total += core.WeightOf(e)
	}

	return total
}

// validate checks g and returns its edges in insertion order.
func validate[N comparable](g *core.Graph[N]) ([]core.Edge[N], error) {
	if g == nil {
		return nil, ErrInvalidGraph
	}
	edges := g.Edges()
	for i, e := range edges {
		if core.IsDirected(e) {
			return nil, fmt.Errorf("%w: edge %d is directed", ErrInvalidGraph, i)
		}
		if n := len(e.Nodes()); n != 2 {
			return nil, fmt.Errorf("%w: edge %d has %d endpoints", ErrInvalidGraph, i, n)
		}
	}

	return edges, nil
}
