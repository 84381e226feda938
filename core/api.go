//
// File: api.go
// Role: Whole-graph helpers: Clone, Stats, and FromEdges.
// Policy:
//   - Edges are immutable values and are shared, never deep-copied.
//   - Every exported function documents complexity.

package core

import "fmt"

// GraphStats is a point-in-time summary of a graph.
type GraphStats struct {
	Nodes        int  // |V|
	Edges        int  // |E|
	Directed     int  // edges implementing Oriented
	Hyperedges   int  // edges with arity > 2
	Loops        int  // edges listing some node more than once
	AllowsLoops  bool // WithLoops was set
	AllowsMulti  bool // WithMultiEdges was set
	IsolatedNode int  // nodes with no incident edge
}

// Stats returns a consistent snapshot of counts under one read lock.
//
// Complexity: O(V + E·k).
func (g *Graph[N]) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	st := GraphStats{
		Nodes:       len(g.nodeIndex),
		Edges:       len(g.edgeIndex),
		AllowsLoops: g.allowLoops,
		AllowsMulti: g.allowMulti,
	}
	g.edges.Scan(func(item edgeEntry[N]) bool {
		nodes := item.edge.Nodes()
		if IsDirected(item.edge) {
			st.Directed++
		}
		if len(nodes) > 2 {
			st.Hyperedges++
		}
		if hasRepeat(nodes) {
			st.Loops++
		}

		return true
	})
	for _, bucket := range g.adjacency {
		if len(bucket) == 0 {
			st.IsolatedNode++
		}
	}

	return st
}

// Clone returns an independent graph with the same options, nodes, and edges,
// in the same order. Edge values are shared.
//
// Complexity: O(V + E·k).
func (g *Graph[N]) Clone() *Graph[N] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := g.emptyLocked()
	g.nodes.Scan(func(item nodeEntry[N]) bool {
		c.addNodeLocked(item.node)

		return true
	})
	g.edges.Scan(func(item edgeEntry[N]) bool {
		c.edgeSeq++
		c.attachEdgeLocked(edgeEntry[N]{seq: c.edgeSeq, edge: item.edge})

		return true
	})

	return c
}

// CloneEmpty returns a graph with the same nodes and options but no edges.
func (g *Graph[N]) CloneEmpty() *Graph[N] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := g.emptyLocked()
	g.nodes.Scan(func(item nodeEntry[N]) bool {
		c.addNodeLocked(item.node)

		return true
	})

	return c
}

// FromEdges builds a graph over nodes plus every endpoint of edges.
// Nodes are inserted first (in order), then edges.
//
// Errors:
//   - Any AddEdge error, wrapped with the offending index.
func FromEdges[N comparable](nodes []N, edges []Edge[N], opts ...GraphOption) (*Graph[N], error) {
	g := NewGraph[N](opts...)
	for _, n := range nodes {
		g.AddNode(n)
	}
	for i, e := range edges {
		if err := g.AddEdge(e); err != nil {
			return nil, fmt.Errorf("core: FromEdges: edge %d: %w", i, err)
		}
	}

	return g, nil
}

func (g *Graph[N]) emptyLocked() *Graph[N] {
	var opts []GraphOption
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}

	return NewGraph[N](opts...)
}
