// Package core defines the generic Graph, the Edge contract and its variants,
// and thread-safe primitives for building and querying graphs.
//
// All Graph methods take a single sync.RWMutex internally, so a graph may be
// queried from many goroutines while a single writer mutates it.
//
// This file declares Graph, GraphOption, the btree entry types, sentinel
// errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrInvalidArgument      - base sentinel for every bad node/edge reference.
//	ErrNodeNotFound         - requested node does not exist (wraps ErrInvalidArgument).
//	ErrEdgeNotFound         - requested edge does not exist (wraps ErrInvalidArgument).
//	ErrNotEndpoint          - node is not an endpoint of the edge (wraps ErrInvalidArgument).
//	ErrNilEdge              - edge is nil.
//	ErrEdgeArity            - edge has fewer than two endpoints.
//	ErrEdgeExists           - the same edge value was added twice.
//	ErrLoopNotAllowed       - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed  - parallel edge when multi-edges are disabled.
package core

import (
	"errors"
	"fmt"
	"sync"

	"github.com/tidwall/btree"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidArgument is the root of every "operation referenced something
	// that is not there" failure. Test with errors.Is.
	ErrInvalidArgument = errors.New("core: invalid argument")

	// ErrNodeNotFound indicates an operation referenced a node absent from the graph.
	ErrNodeNotFound = fmt.Errorf("%w: node not found", ErrInvalidArgument)

	// ErrEdgeNotFound indicates an operation referenced an edge absent from the graph.
	ErrEdgeNotFound = fmt.Errorf("%w: edge not found", ErrInvalidArgument)

	// ErrNotEndpoint indicates a node is not an endpoint of the queried edge.
	ErrNotEndpoint = fmt.Errorf("%w: node is not an endpoint", ErrInvalidArgument)

	// ErrNilEdge indicates a nil Edge was passed.
	ErrNilEdge = fmt.Errorf("%w: edge is nil", ErrInvalidArgument)

	// ErrEdgeArity indicates an edge with fewer than two endpoints.
	ErrEdgeArity = fmt.Errorf("%w: edge needs at least two endpoints", ErrInvalidArgument)

	// ErrEdgeExists indicates the very same edge value is already in the graph.
	ErrEdgeExists = errors.New("core: edge already present")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// btreeDegree is the fan-out of the ordered node/edge indexes.
const btreeDegree = 32

// GraphOption configures behavior of a Graph before creation.
// Options are not generic so callers can write core.WithLoops() for any N.
type GraphOption func(cfg *graphConfig)

type graphConfig struct {
	allowLoops bool
	allowMulti bool
}

// WithLoops permits self-loops (an edge listing the same node twice).
func WithLoops() GraphOption {
	return func(cfg *graphConfig) { cfg.allowLoops = true }
}

// WithMultiEdges permits parallel edges: distinct edges whose endpoint
// multisets (and orientation, for directed edges) coincide.
func WithMultiEdges() GraphOption {
	return func(cfg *graphConfig) { cfg.allowMulti = true }
}

// nodeEntry orders nodes by insertion sequence inside the btree.
type nodeEntry[N comparable] struct {
	seq  uint64
	node N
}

// edgeEntry orders edges by insertion sequence inside the btree.
type edgeEntry[N comparable] struct {
	seq  uint64
	edge Edge[N]
}

// Graph is a node set plus an edge set over node identities of type N.
//
// Invariants:
//   - every endpoint of every stored edge is in the node set;
//   - nodes and edges iterate in insertion order (ReplaceEdge keeps the slot);
//   - adjacency[n] holds exactly the sequence numbers of edges that list n.
//
// The zero value is not usable; construct with NewGraph.
type Graph[N comparable] struct {
	mu sync.RWMutex

	allowLoops bool
	allowMulti bool

	nodeSeq uint64 // last issued node sequence number
	edgeSeq uint64 // last issued edge sequence number

	nodeIndex map[N]uint64                // node -> seq
	nodes     *btree.BTreeG[nodeEntry[N]] // seq-ordered nodes
	edgeIndex map[Edge[N]]uint64          // edge -> seq (identity)
	edges     *btree.BTreeG[edgeEntry[N]] // seq-ordered edges
	adjacency map[N]map[uint64]struct{}   // node -> incident edge seqs
}

// NewGraph creates an empty graph and applies opts in order.
//
// Complexity: O(len(opts)).
func NewGraph[N comparable](opts ...GraphOption) *Graph[N] {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[N]{
		allowLoops: cfg.allowLoops,
		allowMulti: cfg.allowMulti,
		nodeIndex:  make(map[N]uint64),
		nodes: btree.NewBTreeGOptions(func(a, b nodeEntry[N]) bool {
			return a.seq < b.seq
		}, btree.Options{Degree: btreeDegree, NoLocks: true}),
		edgeIndex: make(map[Edge[N]]uint64),
		edges: btree.NewBTreeGOptions(func(a, b edgeEntry[N]) bool {
			return a.seq < b.seq
		}, btree.Options{Degree: btreeDegree, NoLocks: true}),
		adjacency: make(map[N]map[uint64]struct{}),
	}
}

// Looped reports whether self-loops are permitted.
func (g *Graph[N]) Looped() bool { return g.allowLoops }

// Multigraph reports whether parallel edges are permitted.
func (g *Graph[N]) Multigraph() bool { return g.allowMulti }
