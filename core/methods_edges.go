// File: methods_edges.go
// Role: Edge-level mutations and queries (AddEdge, RemoveEdge, ReplaceEdge, Edges).
// Determinism:
//   - Edges() returns edges in insertion order; ReplaceEdge keeps the old slot.
// Concurrency:
//   - Mutations hold g.mu for writing; queries hold it for reading.

package core

import (
	"fmt"
	"slices"
)

// AddEdge inserts e and auto-adds any endpoint not yet in the node set.
//
// Implementation:
//   - Stage 1: Validate e under the graph policy (validateEdgeLocked).
//   - Stage 2: Add missing endpoints, then attach e to each endpoint's adjacency.
//
// Errors:
//   - ErrNilEdge, ErrEdgeArity: malformed edge.
//   - ErrEdgeExists: the same edge value is already present.
//   - ErrLoopNotAllowed: an endpoint repeats and loops are disabled.
//   - ErrMultiEdgeNotAllowed: a parallel edge exists and multi-edges are disabled.
//
// Complexity: O(k + d·k) where k is the arity and d the degree of the first endpoint.
func (g *Graph[N]) AddEdge(e Edge[N]) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.validateEdgeLocked(e, nil); err != nil {
		return fmt.Errorf("core: AddEdge: %w", err)
	}

	g.edgeSeq++
	g.attachEdgeLocked(edgeEntry[N]{seq: g.edgeSeq, edge: e})

	return nil
}

// HasEdge reports whether this exact edge value is stored in the graph.
func (g *Graph[N]) HasEdge(e Edge[N]) bool {
	if e == nil {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.edgeIndex[e]

	return ok
}

// RemoveEdge deletes e. Endpoints stay in the node set.
//
// Errors:
//   - ErrEdgeNotFound if e is not stored.
//
// Complexity: O(k + log E).
func (g *Graph[N]) RemoveEdge(e Edge[N]) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if e == nil {
		return fmt.Errorf("core: RemoveEdge: %w", ErrNilEdge)
	}
	seq, ok := g.edgeIndex[e]
	if !ok {
		return fmt.Errorf("core: RemoveEdge: %w", ErrEdgeNotFound)
	}
	g.detachEdgeLocked(edgeEntry[N]{seq: seq, edge: e})

	return nil
}

// ReplaceEdge atomically swaps old for replacement, the graph-level
// "reconfigure" of an edge's endpoint set. The replacement inherits the old
// edge's position in the insertion order. New endpoints are auto-added.
//
// Behavior highlights:
//   - All-or-nothing: on any error the graph is unchanged.
//   - Parallel-edge checks ignore old, so reconfiguring an edge onto the
//     same endpoints is always allowed.
//
// Errors:
//   - ErrEdgeNotFound if old is not stored.
//   - Every AddEdge validation error for replacement.
func (g *Graph[N]) ReplaceEdge(old, replacement Edge[N]) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if old == nil {
		return fmt.Errorf("core: ReplaceEdge: %w", ErrNilEdge)
	}
	seq, ok := g.edgeIndex[old]
	if !ok {
		return fmt.Errorf("core: ReplaceEdge: %w", ErrEdgeNotFound)
	}
	if err := g.validateEdgeLocked(replacement, old); err != nil {
		return fmt.Errorf("core: ReplaceEdge: %w", err)
	}

	g.detachEdgeLocked(edgeEntry[N]{seq: seq, edge: old})
	g.attachEdgeLocked(edgeEntry[N]{seq: seq, edge: replacement})

	return nil
}

// Edges returns every edge in insertion order.
//
// Complexity: O(E).
func (g *Graph[N]) Edges() []Edge[N] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge[N], 0, g.edges.Len())
	g.edges.Scan(func(item edgeEntry[N]) bool {
		out = append(out, item.edge)

		return true
	})

	return out
}

// EdgeCount returns |E|.
func (g *Graph[N]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edgeIndex)
}

// validateEdgeLocked checks e against the graph policy. ignore, if non-nil,
// is excluded from duplicate and parallel-edge checks.
func (g *Graph[N]) validateEdgeLocked(e, ignore Edge[N]) error {
	if e == nil {
		return ErrNilEdge
	}
	nodes := e.Nodes()
	if len(nodes) < 2 {
		return ErrEdgeArity
	}
	if e != ignore {
		if _, dup := g.edgeIndex[e]; dup {
			return ErrEdgeExists
		}
	}
	if !g.allowLoops && hasRepeat(nodes) {
		return fmt.Errorf("%w: %v", ErrLoopNotAllowed, nodes)
	}
	if !g.allowMulti && g.hasParallelLocked(e, nodes, ignore) {
		return fmt.Errorf("%w: %v", ErrMultiEdgeNotAllowed, nodes)
	}

	return nil
}

// hasParallelLocked scans edges incident to e's first endpoint for one with
// the same endpoint multiset and orientation.
func (g *Graph[N]) hasParallelLocked(e Edge[N], nodes []N, ignore Edge[N]) bool {
	bucket, ok := g.adjacency[nodes[0]]
	if !ok {
		return false
	}
	for seq := range bucket {
		other, found := g.edges.Get(edgeEntry[N]{seq: seq})
		if !found || other.edge == ignore {
			continue
		}
		if parallel(e, other.edge) {
			return true
		}
	}

	return false
}

// attachEdgeLocked stores entry and wires it into adjacency, auto-adding endpoints.
func (g *Graph[N]) attachEdgeLocked(entry edgeEntry[N]) {
	for _, n := range entry.edge.Nodes() {
		g.addNodeLocked(n)
		g.adjacency[n][entry.seq] = struct{}{}
	}
	g.edgeIndex[entry.edge] = entry.seq
	g.edges.Set(entry)
}

// detachEdgeLocked removes entry from storage and from every endpoint's adjacency.
func (g *Graph[N]) detachEdgeLocked(entry edgeEntry[N]) {
	for _, n := range entry.edge.Nodes() {
		if bucket, ok := g.adjacency[n]; ok {
			delete(bucket, entry.seq)
		}
	}
	delete(g.edgeIndex, entry.edge)
	g.edges.Delete(edgeEntry[N]{seq: entry.seq})
}

// parallel reports whether a and b connect the same endpoint multiset with
// the same orientation.
func parallel[N comparable](a, b Edge[N]) bool {
	oa, aDirected := a.(Oriented[N])
	ob, bDirected := b.(Oriented[N])
	if aDirected != bDirected {
		return false
	}
	if aDirected {
		return oa.Source() == ob.Source() && oa.Target() == ob.Target()
	}

	return sameMultiset(a.Nodes(), b.Nodes())
}

func sameMultiset[N comparable](x, y []N) bool {
	if len(x) != len(y) {
		return false
	}
	counts := make(map[N]int, len(x))
	for _, n := range x {
		counts[n]++
	}
	for _, n := range y {
		counts[n]--
		if counts[n] < 0 {
			return false
		}
	}

	return true
}

func hasRepeat[N comparable](ns []N) bool {
	seen := make(map[N]struct{}, len(ns))
	for _, n := range ns {
		if _, ok := seen[n]; ok {
			return true
		}
		seen[n] = struct{}{}
	}

	return false
}

// sortedSeqs returns the keys of bucket ascending, so per-node edge lists
// follow insertion order.
func sortedSeqs(bucket map[uint64]struct{}) []uint64 {
	out := make([]uint64, 0, len(bucket))
	for seq := range bucket {
		out = append(out, seq)
	}
	slices.Sort(out)

	return out
}
