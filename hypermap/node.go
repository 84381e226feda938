package hypermap

import (
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/hypermap/core"
	"github.com/katalvlaran/hypermap/hyperpoint"
)

// ErrNonFinite marks a candidate position with a NaN or infinite coordinate.
var ErrNonFinite = errors.New("hypermap: non-finite position")

// Node is a graph node placed in the map's D-dimensional space.
//
// The committed position changes only through Recenter (during a round's
// commit) or Map.SetPosition (between rounds). Align stores its candidate as
// pending state local to the node.
type Node[N comparable] struct {
	id    N
	owner *Map[N]

	mu         sync.Mutex
	position   hyperpoint.Point
	pending    hyperpoint.Point
	hasPending bool
}

func newNode[N comparable](owner *Map[N], id N, pos hyperpoint.Point) *Node[N] {
	return &Node[N]{id: id, owner: owner, position: pos}
}

// ID returns the node identity in the underlying graph.
func (n *Node[N]) ID() N { return n.id }

// Map returns the owning map.
func (n *Node[N]) Map() *Map[N] { return n.owner }

// Position returns a copy of the committed position.
func (n *Node[N]) Position() hyperpoint.Point {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.position.Clone()
}

// Align computes this node's candidate position from snap and the owner's
// force law, stores it as pending and returns it.
//
// Neighbors are TraversableAdjacentNodesFrom(id) minus the node itself and
// minus nodes absent from snap. Strangers are every other placed node.
//
// Errors:
//   - core.ErrNodeNotFound if the node is missing from snap or the graph.
//   - hyperpoint.ErrDimensionMismatch if the law returns the wrong dimensionality.
//   - ErrNonFinite for NaN or ±Inf coordinates.
//   - Any error returned by the force law.
func (n *Node[N]) Align(snap *Snapshot[N]) (hyperpoint.Point, error) {
	self, ok := snap.Position(n.id)
	if !ok {
		return hyperpoint.Point{}, fmt.Errorf("hypermap: node %v not in snapshot: %w", n.id, core.ErrNodeNotFound)
	}

	adj, err := n.owner.graph.TraversableAdjacentNodesFrom(n.id)
	if err != nil {
		return hyperpoint.Point{}, fmt.Errorf("hypermap: neighbors of %v: %w", n.id, err)
	}

	linked := make(map[N]struct{}, len(adj))
	neighbors := make([]hyperpoint.Point, 0, len(adj))
	for _, m := range adj {
		if m == n.id {
			continue
		}
		p, placed := snap.Position(m)
		if !placed {
			continue
		}
		linked[m] = struct{}{}
		neighbors = append(neighbors, p)
	}

	var strangers []hyperpoint.Point
	for _, m := range snap.order {
		if m == n.id {
			continue
		}
		if _, isNeighbor := linked[m]; isNeighbor {
			continue
		}
		strangers = append(strangers, snap.positions[m].Clone())
	}

	cand, err := n.owner.law.Align(self, neighbors, strangers)
	if err != nil {
		return hyperpoint.Point{}, fmt.Errorf("hypermap: force law at %v: %w", n.id, err)
	}
	if cand.Dimensions() != self.Dimensions() {
		return hyperpoint.Point{}, fmt.Errorf("hypermap: candidate for %v has %d dims, want %d: %w",
			n.id, cand.Dimensions(), self.Dimensions(), hyperpoint.ErrDimensionMismatch)
	}
	if !cand.IsFinite() {
		return hyperpoint.Point{}, fmt.Errorf("hypermap: candidate for %v is %v: %w", n.id, cand, ErrNonFinite)
	}

	n.mu.Lock()
	n.pending, n.hasPending = cand.Clone(), true
	n.mu.Unlock()

	return cand, nil
}

// Recenter commits (pending − offset), or (position − offset) when no
// candidate is pending, and clears the pending state.
func (n *Node[N]) Recenter(offset hyperpoint.Point) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	next, err := n.recenteredLocked(offset)
	if err != nil {
		return err
	}
	n.position = next
	n.pending, n.hasPending = hyperpoint.Point{}, false

	return nil
}

// checkRecenter returns the error Recenter(offset) would return, committing nothing.
func (n *Node[N]) checkRecenter(offset hyperpoint.Point) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	_, err := n.recenteredLocked(offset)

	return err
}

func (n *Node[N]) recenteredLocked(offset hyperpoint.Point) (hyperpoint.Point, error) {
	base := n.position
	if n.hasPending {
		base = n.pending
	}
	next, err := base.Sub(offset)
	if err != nil {
		return hyperpoint.Point{}, fmt.Errorf("hypermap: recenter %v: %w", n.id, err)
	}

	return next, nil
}

// pendingCandidate returns the pending candidate, if any.
func (n *Node[N]) pendingCandidate() (hyperpoint.Point, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.pending, n.hasPending
}

func (n *Node[N]) discard() {
	n.mu.Lock()
	n.pending, n.hasPending = hyperpoint.Point{}, false
	n.mu.Unlock()
}

func (n *Node[N]) set(p hyperpoint.Point) {
	n.mu.Lock()
	n.position = p.Clone()
	n.mu.Unlock()
}
