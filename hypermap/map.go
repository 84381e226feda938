package hypermap

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/katalvlaran/hypermap/core"
	"github.com/katalvlaran/hypermap/hyperpoint"
	"github.com/katalvlaran/hypermap/metrics"
	"github.com/katalvlaran/hypermap/workpool"
)

// Sentinel errors for Map construction and rounds.
var (
	// ErrNilGraph indicates New was called without a graph.
	ErrNilGraph = errors.New("hypermap: graph is nil")

	// ErrClosed is returned by every mutating call after Close.
	ErrClosed = errors.New("hypermap: map closed")

	// ErrRoundFailed wraps every failure of Align. Nothing of the failed
	// round is committed.
	ErrRoundFailed = errors.New("hypermap: round failed")
)

// Map is a hyperassociative map: a force-directed layout of a graph's nodes
// in D-dimensional space, advanced one bulk-synchronous round per Align.
//
// Invariants:
//   - every node position has exactly Dimensions() coordinates;
//   - after New and after every committed round the mean position is the origin;
//   - rounds never overlap, and SetPosition/Sync/Close wait for the running round.
type Map[N comparable] struct {
	mu sync.Mutex // serializes rounds against SetPosition, Sync, Close

	id      string
	graph   *core.Graph[N]
	dims    int
	law     ForceLaw
	rng     *rand.Rand
	logger  *log.Logger
	metrics *metrics.Collector

	pool     *workpool.Pool
	ownsPool bool

	order []N // placement order, graph insertion order
	nodes map[N]*Node[N]

	state  atomic.Int32
	rounds atomic.Uint64
	closed bool
}

// New places every node of g at a uniform random point of [−1, 1]^dims, then
// shifts the placement so its mean is the origin.
//
// Errors:
//   - ErrNilGraph for a nil g.
//   - hyperpoint.ErrInvalidDimensions for dims < 1.
//   - ErrInvalidForceLaw if the force law validates and fails.
//   - workpool.ErrInvalidConfig for a bad owned-pool configuration.
func New[N comparable](g *core.Graph[N], dims int, opts ...Option) (*Map[N], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if dims < 1 {
		return nil, fmt.Errorf("hypermap: New: %w: got %d", hyperpoint.ErrInvalidDimensions, dims)
	}

	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	if v, ok := s.law.(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	m := &Map[N]{
		id:      uuid.NewString(),
		graph:   g,
		dims:    dims,
		law:     s.law,
		rng:     s.rng,
		metrics: s.metrics,
		pool:    s.pool,
		nodes:   make(map[N]*Node[N]),
	}
	m.logger = s.logger.With("map", m.id)

	if m.pool == nil {
		p, err := workpool.New(s.poolCfg, workpool.WithLogger(m.logger))
		if err != nil {
			return nil, fmt.Errorf("hypermap: New: %w", err)
		}
		m.pool, m.ownsPool = p, true
	}

	for _, id := range g.Nodes() {
		m.placeLocked(id)
	}
	if err := m.commitLocked(m.centroidLocked()); err != nil {
		if m.ownsPool {
			m.pool.Close()
		}

		return nil, fmt.Errorf("hypermap: New: %w", err)
	}
	m.metrics.SetNodes(m.id, len(m.order))
	m.logger.Debug("map created", "nodes", len(m.order), "dims", dims)

	return m, nil
}

// ID returns the map's unique identifier.
func (m *Map[N]) ID() string { return m.id }

// Graph returns the graph the map lays out.
func (m *Map[N]) Graph() *core.Graph[N] { return m.graph }

// Dimensions returns D.
func (m *Map[N]) Dimensions() int { return m.dims }

// State returns the current phase. Safe to call during a round.
func (m *Map[N]) State() State { return State(m.state.Load()) }

// Rounds returns the number of committed rounds.
func (m *Map[N]) Rounds() uint64 { return m.rounds.Load() }

// Nodes returns the placed nodes in graph insertion order.
func (m *Map[N]) Nodes() []*Node[N] {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*Node[N], 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.nodes[id])
	}

	return out
}

// Node returns the placed node for id.
func (m *Map[N]) Node(id N) (*Node[N], bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, ok := m.nodes[id]

	return n, ok
}

// Snapshot copies the committed positions. Between rounds only.
func (m *Map[N]) Snapshot() *Snapshot[N] {
	m.mu.Lock()
	defer m.mu.Unlock()

	return newSnapshot(m.order, m.nodes)
}

// Positions returns a copy of every committed position.
func (m *Map[N]) Positions() map[N]hyperpoint.Point {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[N]hyperpoint.Point, len(m.order))
	for _, id := range m.order {
		out[id] = m.nodes[id].Position()
	}

	return out
}

// Centroid returns the mean committed position, or the origin of an empty map.
func (m *Map[N]) Centroid() hyperpoint.Point {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.centroidLocked()
}

func (m *Map[N]) centroidLocked() hyperpoint.Point {
	if len(m.order) == 0 {
		origin, _ := hyperpoint.New(m.dims)

		return origin
	}
	pts := make([]hyperpoint.Point, 0, len(m.order))
	for _, id := range m.order {
		pts = append(pts, m.nodes[id].Position())
	}
	c, _ := hyperpoint.Mean(pts...)

	return c
}

// SetPosition commits p as id's position. Between rounds only: it waits for
// a running round to finish.
//
// Errors:
//   - ErrClosed after Close.
//   - core.ErrNodeNotFound if id is not placed.
//   - hyperpoint.ErrDimensionMismatch if p has the wrong dimensionality.
func (m *Map[N]) SetPosition(id N, p hyperpoint.Point) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	n, ok := m.nodes[id]
	if !ok {
		return fmt.Errorf("hypermap: SetPosition(%v): %w", id, core.ErrNodeNotFound)
	}
	if p.Dimensions() != m.dims {
		return fmt.Errorf("hypermap: SetPosition(%v): %w: %d vs %d",
			id, hyperpoint.ErrDimensionMismatch, p.Dimensions(), m.dims)
	}
	n.set(p)

	return nil
}

// Sync reconciles the placed nodes with the graph after structural changes.
// New graph nodes get random positions; nodes gone from the graph are dropped.
// Placement order follows the graph's insertion order.
func (m *Map[N]) Sync() (added, removed int, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return 0, 0, ErrClosed
	}

	current := m.graph.Nodes()
	present := make(map[N]struct{}, len(current))
	for _, id := range current {
		present[id] = struct{}{}
	}
	for _, id := range m.order {
		if _, ok := present[id]; !ok {
			delete(m.nodes, id)
			removed++
		}
	}

	m.order = m.order[:0]
	for _, id := range current {
		if _, ok := m.nodes[id]; ok {
			m.order = append(m.order, id)

			continue
		}
		m.placeLocked(id)
		added++
	}

	m.metrics.SetNodes(m.id, len(m.order))
	if added > 0 || removed > 0 {
		m.logger.Debug("map synced", "added", added, "removed", removed, "nodes", len(m.order))
	}

	return added, removed, nil
}

// Align runs exactly one round:
//
//  1. Snapshot the committed positions.
//  2. Submit one alignment task per node to the pool.
//  3. Barrier: wait for every submitted task.
//  4. Take the centroid of all candidates.
//  5. Commit candidate − centroid for every node.
//
// Any task error or panic, a non-finite candidate, a submission failure or an
// already-done ctx aborts the round: the error wraps ErrRoundFailed together
// with every cause, and no position changes. ctx only gates submission; once
// submitted, tasks always run to the barrier.
func (m *Map[N]) Align(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	start := time.Now()
	m.state.Store(int32(RoundInProgress))
	defer m.state.Store(int32(Idle))

	if len(m.order) == 0 {
		return nil
	}

	if err := ctx.Err(); err != nil {
		return m.abortLocked(err)
	}

	snap := newSnapshot(m.order, m.nodes)
	futures := make([]*workpool.Future, 0, len(m.order))
	var errs []error
	for _, id := range m.order {
		node := m.nodes[id]
		f, err := m.pool.Submit(ctx, func() error {
			_, aerr := node.Align(snap)

			return aerr
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("hypermap: submit %v: %w", id, err))

			break
		}
		futures = append(futures, f)
	}

	for _, f := range futures {
		<-f.Done()
		if err := f.Err(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return m.abortLocked(errs...)
	}

	m.state.Store(int32(Recentering))
	candidates := make([]hyperpoint.Point, 0, len(m.order))
	for _, id := range m.order {
		c, ok := m.nodes[id].pendingCandidate()
		if !ok {
			return m.abortLocked(fmt.Errorf("hypermap: no candidate for %v", id))
		}
		candidates = append(candidates, c)
	}
	centroid, err := hyperpoint.Mean(candidates...)
	if err != nil {
		return m.abortLocked(err)
	}
	if err := m.commitLocked(centroid); err != nil {
		return m.abortLocked(err)
	}

	m.rounds.Add(1)
	took := time.Since(start)
	drift := centroid.Norm()
	m.metrics.ObserveRound(m.id, took, drift)
	m.logger.Debug("round committed", "round", m.rounds.Load(), "nodes", len(m.order), "drift", drift, "took", took)

	return nil
}

// Run calls Align up to rounds times, stopping at the first failure or when
// ctx is done between rounds.
func (m *Map[N]) Run(ctx context.Context, rounds int) error {
	for i := 0; i < rounds; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := m.Align(ctx); err != nil {
			return fmt.Errorf("hypermap: round %d: %w", i+1, err)
		}
	}

	return nil
}

// Close shuts down an owned pool and forgets the map's metrics.
// Later calls are no-ops.
func (m *Map[N]) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true
	if m.ownsPool {
		m.pool.Close()
	}
	m.metrics.Forget(m.id)
	m.logger.Debug("map closed", "rounds", m.rounds.Load())

	return nil
}

// abortLocked discards every pending candidate and reports the round failure.
func (m *Map[N]) abortLocked(causes ...error) error {
	for _, id := range m.order {
		m.nodes[id].discard()
	}
	m.metrics.ObserveFailure(m.id)
	err := fmt.Errorf("%w: %w", ErrRoundFailed, errors.Join(causes...))
	m.logger.Warn("round aborted", "err", err)

	return err
}

// commitLocked recenters every node on centroid. Every node is checked before
// the first commit, so an error leaves all positions as they were.
func (m *Map[N]) commitLocked(centroid hyperpoint.Point) error {
	for _, id := range m.order {
		if err := m.nodes[id].checkRecenter(centroid); err != nil {
			return err
		}
	}
	for _, id := range m.order {
		if err := m.nodes[id].Recenter(centroid); err != nil {
			return err
		}
	}

	return nil
}

// placeLocked adds id at a random point of [−1, 1]^D.
func (m *Map[N]) placeLocked(id N) {
	coords := make([]float64, m.dims)
	for i := range coords {
		coords[i] = m.rng.Float64()*2 - 1
	}
	// dims >= 1, so FromCoordinates cannot fail.
	p, _ := hyperpoint.FromCoordinates(coords...)
	m.nodes[id] = newNode(m, id, p)
	m.order = append(m.order, id)
}
