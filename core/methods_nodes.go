// File: methods_nodes.go
// Role: Node-level mutations and queries (AddNode, RemoveNode, HasNode, Nodes).
// Determinism:
//   - Nodes() returns nodes in insertion order.
// Concurrency:
//   - Mutations hold g.mu for writing; queries hold it for reading.

package core

import "fmt"

// AddNode inserts n into the node set.
//
// Behavior highlights:
//   - Idempotent: adding a present node is a no-op and returns false.
//   - The node is appended to the insertion order.
//
// Returns:
//   - bool: true if n was newly added.
//
// Complexity: O(log V).
func (g *Graph[N]) AddNode(n N) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addNodeLocked(n)
}

// HasNode reports whether n is in the node set.
//
// Complexity: O(1).
func (g *Graph[N]) HasNode(n N) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodeIndex[n]

	return ok
}

// RemoveNode deletes n together with every edge that lists it as an endpoint,
// so no stored edge ever references a missing node.
//
// Implementation:
//   - Stage 1: Validate presence (ErrNodeNotFound).
//   - Stage 2: Detach each incident edge from all of its endpoints.
//   - Stage 3: Drop n from the index, the ordered tree, and adjacency.
//
// Errors:
//   - ErrNodeNotFound if n is absent.
//
// Complexity: O(d·k + log V + d log E), d = incident edges, k = max arity.
func (g *Graph[N]) RemoveNode(n N) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	seq, ok := g.nodeIndex[n]
	if !ok {
		return fmt.Errorf("core: RemoveNode(%v): %w", n, ErrNodeNotFound)
	}

	for _, eseq := range sortedSeqs(g.adjacency[n]) {
		entry, found := g.edges.Get(edgeEntry[N]{seq: eseq})
		if found {
			g.detachEdgeLocked(entry)
		}
	}

	delete(g.nodeIndex, n)
	delete(g.adjacency, n)
	g.nodes.Delete(nodeEntry[N]{seq: seq})

	return nil
}

// Nodes returns every node in insertion order. The slice is a fresh copy.
//
// Complexity: O(V).
func (g *Graph[N]) Nodes() []N {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]N, 0, g.nodes.Len())
	g.nodes.Scan(func(item nodeEntry[N]) bool {
		out = append(out, item.node)

		return true
	})

	return out
}

// NodeCount returns |V|.
func (g *Graph[N]) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodeIndex)
}

// addNodeLocked inserts n if absent. Caller must hold g.mu for writing.
func (g *Graph[N]) addNodeLocked(n N) bool {
	if _, ok := g.nodeIndex[n]; ok {
		return false
	}
	g.nodeSeq++
	g.nodeIndex[n] = g.nodeSeq
	g.nodes.Set(nodeEntry[N]{seq: g.nodeSeq, node: n})
	g.adjacency[n] = make(map[uint64]struct{})

	return true
}
