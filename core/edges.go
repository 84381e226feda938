// File: edges.go
// Role: Edge contract and the three concrete variants (hyper, undirected, directed).
// Policy:
//   - Endpoint lists are immutable after construction; accessors return copies.
//   - Concrete edges are pointer types and compare by identity, which is what
//     Graph uses as the edge key. Custom Edge implementations must be
//     comparable as well (use pointer receivers).

package core

import (
	"fmt"
)

// Edge is the polymorphic contract shared by every edge variant.
//
// IsTraversable(n) must be true iff TraversableNodes(n) returns a non-empty
// slice. TraversableNodes returns ErrNotEndpoint (wrapped) if n is not an
// endpoint of the edge.
type Edge[N comparable] interface {
	// Nodes returns the endpoint list, duplicates included (a loop lists its node twice).
	Nodes() []N

	// IsTraversable reports whether the edge can be left from n toward another endpoint.
	IsTraversable(n N) bool

	// TraversableNodes returns the endpoints reachable from n along this edge.
	TraversableNodes(n N) ([]N, error)
}

// Weighted is implemented by edges that carry a scalar weight.
type Weighted interface {
	Weight() float64
}

// Oriented is implemented by edges with a single source → target direction.
type Oriented[N comparable] interface {
	Source() N
	Target() N
}

// WeightOf returns e's weight, or 0 when e does not implement Weighted.
func WeightOf[N comparable](e Edge[N]) float64 {
	if w, ok := e.(Weighted); ok {
		return w.Weight()
	}

	return 0
}

// IsDirected reports whether e implements Oriented.
func IsDirected[N comparable](e Edge[N]) bool {
	_, ok := e.(Oriented[N])

	return ok
}

// EdgeOption configures properties of individual edges at construction.
type EdgeOption func(*edgeProps)

type edgeProps struct {
	weight float64
}

// WithWeight sets the edge weight. Edges built without it weigh 0.
func WithWeight(w float64) EdgeOption {
	return func(p *edgeProps) { p.weight = w }
}

func resolveEdgeProps(opts []EdgeOption) edgeProps {
	var p edgeProps
	for _, opt := range opts {
		opt(&p)
	}

	return p
}

// Hyperedge is an undirected edge over two or more endpoints.
// Any endpoint can reach every other endpoint.
type Hyperedge[N comparable] struct {
	nodes  []N
	weight float64
}

// NewHyperedge builds a hyperedge over nodes (copied).
// Fewer than two endpoints is ErrEdgeArity.
func NewHyperedge[N comparable](nodes []N, opts ...EdgeOption) (*Hyperedge[N], error) {
	if len(nodes) < 2 {
		return nil, fmt.Errorf("core: NewHyperedge: %d endpoints: %w", len(nodes), ErrEdgeArity)
	}
	p := resolveEdgeProps(opts)
	cp := make([]N, len(nodes))
	copy(cp, nodes)

	return &Hyperedge[N]{nodes: cp, weight: p.weight}, nil
}

// Nodes returns a copy of the endpoint list.
func (e *Hyperedge[N]) Nodes() []N { return cloneNodes(e.nodes) }

// Weight returns the edge weight.
func (e *Hyperedge[N]) Weight() float64 { return e.weight }

// TraversableNodes removes exactly one occurrence of n from the endpoint list
// and returns the rest.
func (e *Hyperedge[N]) TraversableNodes(n N) ([]N, error) {
	rest, ok := withoutOne(e.nodes, n)
	if !ok {
		return nil, fmt.Errorf("core: Hyperedge.TraversableNodes(%v): %w", n, ErrNotEndpoint)
	}

	return rest, nil
}

// IsTraversable reports whether n is an endpoint (arity ≥ 2 guarantees a target).
func (e *Hyperedge[N]) IsTraversable(n N) bool {
	return indexOf(e.nodes, n) >= 0
}

// UndirectedEdge is a bidirected two-endpoint edge, traversable both ways.
type UndirectedEdge[N comparable] struct {
	a, b   N
	weight float64
}

// NewUndirectedEdge builds the bidirected edge a—b.
func NewUndirectedEdge[N comparable](a, b N, opts ...EdgeOption) *UndirectedEdge[N] {
	p := resolveEdgeProps(opts)

	return &UndirectedEdge[N]{a: a, b: b, weight: p.weight}
}

// Nodes returns [a, b].
func (e *UndirectedEdge[N]) Nodes() []N { return []N{e.a, e.b} }

// Weight returns the edge weight.
func (e *UndirectedEdge[N]) Weight() float64 { return e.weight }

// TraversableNodes returns the opposite endpoint of n.
// For a loop a—a the node itself is returned.
func (e *UndirectedEdge[N]) TraversableNodes(n N) ([]N, error) {
	if n == e.a {
		return []N{e.b}, nil
	}
	if n == e.b {
		return []N{e.a}, nil
	}

	return nil, fmt.Errorf("core: UndirectedEdge.TraversableNodes(%v): %w", n, ErrNotEndpoint)
}

// IsTraversable reports whether n is an endpoint.
func (e *UndirectedEdge[N]) IsTraversable(n N) bool {
	return n == e.a || n == e.b
}

// DirectedEdge is a two-endpoint edge traversable only source → target.
type DirectedEdge[N comparable] struct {
	src, dst N
	weight   float64
}

// NewDirectedEdge builds the directed edge src → dst.
func NewDirectedEdge[N comparable](src, dst N, opts ...EdgeOption) *DirectedEdge[N] {
	p := resolveEdgeProps(opts)

	return &DirectedEdge[N]{src: src, dst: dst, weight: p.weight}
}

// Nodes returns [source, target].
func (e *DirectedEdge[N]) Nodes() []N { return []N{e.src, e.dst} }

// Source returns the tail of the edge.
func (e *DirectedEdge[N]) Source() N { return e.src }

// Target returns the head of the edge.
func (e *DirectedEdge[N]) Target() N { return e.dst }

// Weight returns the edge weight.
func (e *DirectedEdge[N]) Weight() float64 { return e.weight }

// TraversableNodes returns [target] from the source, and an empty slice from
// the target. A directed loop returns the node itself.
func (e *DirectedEdge[N]) TraversableNodes(n N) ([]N, error) {
	if n == e.src {
		return []N{e.dst}, nil
	}
	if n == e.dst {
		return []N{}, nil
	}

	return nil, fmt.Errorf("core: DirectedEdge.TraversableNodes(%v): %w", n, ErrNotEndpoint)
}

// IsTraversable reports whether n is the source.
func (e *DirectedEdge[N]) IsTraversable(n N) bool { return n == e.src }

// Compile-time contract checks.
var (
	_ Edge[string]     = (*Hyperedge[string])(nil)
	_ Edge[string]     = (*UndirectedEdge[string])(nil)
	_ Edge[string]     = (*DirectedEdge[string])(nil)
	_ Weighted         = (*DirectedEdge[string])(nil)
	_ Oriented[string] = (*DirectedEdge[string])(nil)
)

func cloneNodes[N comparable](ns []N) []N {
	out := make([]N, len(ns))
	copy(out, ns)

	return out
}

func indexOf[N comparable](ns []N, n N) int {
	for i := range ns {
		if ns[i] == n {
			return i
		}
	}

	return -1
}

// withoutOne returns ns with the first occurrence of n removed, and whether
// n was present. The input is never modified.
func withoutOne[N comparable](ns []N, n N) ([]N, bool) {
	i := indexOf(ns, n)
	if i < 0 {
		return nil, false
	}
	out := make([]N, 0, len(ns)-1)
	out = append(out, ns[:i]...)
	out = append(out, ns[i+1:]...)

	return out, true
}
