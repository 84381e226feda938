package hypermap

import "github.com/katalvlaran/hypermap/hyperpoint"

// Snapshot is an immutable copy of the committed positions at round start.
// Every task of a round reads the same Snapshot.
type Snapshot[N comparable] struct {
	order     []N
	positions map[N]hyperpoint.Point
}

func newSnapshot[N comparable](order []N, nodes map[N]*Node[N]) *Snapshot[N] {
	s := &Snapshot[N]{
		order:     append([]N(nil), order...),
		positions: make(map[N]hyperpoint.Point, len(order)),
	}
	for _, id := range order {
		s.positions[id] = nodes[id].Position()
	}

	return s
}

// Position returns a copy of n's position, and false if n was not placed.
func (s *Snapshot[N]) Position(n N) (hyperpoint.Point, bool) {
	p, ok := s.positions[n]
	if !ok {
		return hyperpoint.Point{}, false
	}

	return p.Clone(), true
}

// Nodes returns the snapshot's node ids in map order.
func (s *Snapshot[N]) Nodes() []N {
	return append([]N(nil), s.order...)
}

// Len returns the number of placed nodes.
func (s *Snapshot[N]) Len() int { return len(s.order) }
