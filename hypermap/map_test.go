package hypermap_test

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypermap/core"
	"github.com/katalvlaran/hypermap/hypermap"
	"github.com/katalvlaran/hypermap/hyperpoint"
	"github.com/katalvlaran/hypermap/metrics"
	"github.com/katalvlaran/hypermap/workpool"
)

const tol = 1e-9

func graphOf(t *testing.T, pairs ...[2]string) *core.Graph[string] {
	t.Helper()
	g := core.NewGraph[string]()
	for _, p := range pairs {
		require.NoError(t, g.AddEdge(core.NewUndirectedEdge(p[0], p[1])))
	}

	return g
}

func newMap(t *testing.T, g *core.Graph[string], dims int, opts ...hypermap.Option) *hypermap.Map[string] {
	t.Helper()
	opts = append([]hypermap.Option{hypermap.WithSeed(42), hypermap.WithPoolSize(4), hypermap.WithMaxQueueDepth(8)}, opts...)
	m, err := hypermap.New(g, dims, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })

	return m
}

// assertCentered allows tol relative to the layout's extent.
func assertCentered(t *testing.T, m *hypermap.Map[string]) {
	t.Helper()
	scale := 1.0
	for _, p := range m.Positions() {
		scale = math.Max(scale, p.Norm())
	}
	assert.LessOrEqual(t, m.Centroid().Norm(), tol*scale, "centroid %v", m.Centroid())
}

func TestNewValidation(t *testing.T) {
	g := graphOf(t, [2]string{"A", "B"})

	_, err := hypermap.New[string](nil, 2)
	assert.ErrorIs(t, err, hypermap.ErrNilGraph)

	_, err = hypermap.New(g, 0)
	assert.ErrorIs(t, err, hyperpoint.ErrInvalidDimensions)

	_, err = hypermap.New(g, 2, hypermap.WithForceLaw(hypermap.SpringLaw{}))
	assert.ErrorIs(t, err, hypermap.ErrInvalidForceLaw)

	_, err = hypermap.New(g, 2, hypermap.WithPoolSize(0))
	assert.ErrorIs(t, err, workpool.ErrInvalidConfig)
}

func TestInitialPlacement(t *testing.T) {
	g := graphOf(t, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "D"})
	m1 := newMap(t, g, 3)
	m2 := newMap(t, g, 3)

	assert.Equal(t, 3, m1.Dimensions())
	assert.NotEqual(t, m1.ID(), m2.ID())
	assert.Same(t, g, m1.Graph())
	assert.Equal(t, hypermap.Idle, m1.State())

	ids := make([]string, 0, 4)
	for _, n := range m1.Nodes() {
		ids = append(ids, n.ID())
		assert.Same(t, m1, n.Map())
		p := n.Position()
		require.Equal(t, 3, p.Dimensions())
		// [−1, 1]^D shifted by a mean that lies in [−1, 1]^D too.
		for _, c := range p.Coordinates() {
			assert.GreaterOrEqual(t, c, -2.0)
			assert.LessOrEqual(t, c, 2.0)
		}
	}
	assert.Equal(t, []string{"A", "B", "C", "D"}, ids)
	assertCentered(t, m1)

	// Same seed, same layout.
	p1, p2 := m1.Positions(), m2.Positions()
	for id, p := range p1 {
		assert.True(t, p.Equal(p2[id], 0), "node %s", id)
	}
}

// Three nodes in a line, A–B–C, from hand-picked positions. With a pure
// spring (no repulsion) one round pulls B onto the midpoint of A and C.
func TestAlignLineScenario(t *testing.T) {
	g := graphOf(t, [2]string{"A", "B"}, [2]string{"B", "C"})
	law := hypermap.SpringLaw{LearningRate: 0.5}
	m := newMap(t, g, 2, hypermap.WithForceLaw(law))

	require.NoError(t, m.SetPosition("A", pt(-2, 0)))
	require.NoError(t, m.SetPosition("B", pt(0, 2)))
	require.NoError(t, m.SetPosition("C", pt(2, 0)))
	before := m.Positions()

	require.NoError(t, m.Align(context.Background()))
	after := m.Positions()

	assertCentered(t, m)
	assert.EqualValues(t, 1, m.Rounds())

	// Candidates: A(-1, 1), B(0, 1), C(1, 1); centroid (0, 1).
	assert.True(t, after["A"].Equal(pt(-1, 0), tol), "A %v", after["A"])
	assert.True(t, after["B"].Equal(pt(0, 0), tol), "B %v", after["B"])
	assert.True(t, after["C"].Equal(pt(1, 0), tol), "C %v", after["C"])

	mid, err := hyperpoint.Mean(before["A"], before["C"])
	require.NoError(t, err)
	dBefore, _ := before["B"].Distance(mid)
	dAfter, _ := after["B"].Distance(mid)
	assert.Less(t, dAfter, dBefore)
}

// The same line under the default force law and random placement: B has no
// strangers, so it always ends closer to the midpoint of A's and C's prior
// positions, whatever the seed.
func TestAlignLineScenarioDefaultLaw(t *testing.T) {
	g := graphOf(t, [2]string{"A", "B"}, [2]string{"B", "C"})

	for seed := int64(1); seed <= 200; seed++ {
		m, err := hypermap.New(g, 2, hypermap.WithSeed(seed), hypermap.WithPoolSize(2), hypermap.WithMaxQueueDepth(4))
		require.NoError(t, err)
		before := m.Positions()

		require.NoError(t, m.Align(context.Background()))
		after := m.Positions()
		assertCentered(t, m)
		require.NoError(t, m.Close())

		mid, err := hyperpoint.Mean(before["A"], before["C"])
		require.NoError(t, err)
		dBefore, _ := before["B"].Distance(mid)
		dAfter, _ := after["B"].Distance(mid)
		assert.Less(t, dAfter, dBefore, "seed %d", seed)
	}
}

func TestCentroidStaysAtOriginAcrossRounds(t *testing.T) {
	g := core.NewGraph[string](core.WithLoops(), core.WithMultiEdges())
	names := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	for i := range names {
		require.NoError(t, g.AddEdge(core.NewUndirectedEdge(names[i], names[(i+1)%len(names)])))
	}
	require.NoError(t, g.AddEdge(core.NewUndirectedEdge("a", "e")))
	require.NoError(t, g.AddEdge(core.NewUndirectedEdge("a", "e")))
	require.NoError(t, g.AddEdge(core.NewUndirectedEdge("c", "c")))
	he, err := core.NewHyperedge([]string{"b", "d", "f"})
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(he))
	g.AddNode("lonely")

	m := newMap(t, g, 3)
	for round := 0; round < 25; round++ {
		require.NoError(t, m.Align(context.Background()))
		assertCentered(t, m)
	}
	for id, p := range m.Positions() {
		assert.True(t, p.IsFinite(), "node %s", id)
	}
}

// Every task must read the round-start snapshot: the engine result equals a
// sequential evaluation against the initial positions.
func TestAlignReadsOneSnapshot(t *testing.T) {
	g := graphOf(t,
		[2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "D"},
		[2]string{"D", "A"}, [2]string{"A", "C"}, [2]string{"D", "E"})
	meanOfNeighbors := hypermap.ForceLawFunc(
		func(self hyperpoint.Point, nbrs, _ []hyperpoint.Point) (hyperpoint.Point, error) {
			if len(nbrs) == 0 {
				return self, nil
			}

			return hyperpoint.Mean(nbrs...)
		})
	m := newMap(t, g, 2, hypermap.WithForceLaw(meanOfNeighbors), hypermap.WithPoolSize(3))

	before := m.Positions()
	cands := make(map[string]hyperpoint.Point, len(before))
	var all []hyperpoint.Point
	for id := range before {
		adj, err := g.AdjacentNodes(id)
		require.NoError(t, err)
		pts := make([]hyperpoint.Point, 0, len(adj))
		for _, n := range adj {
			pts = append(pts, before[n])
		}
		c, err := hyperpoint.Mean(pts...)
		require.NoError(t, err)
		cands[id] = c
		all = append(all, c)
	}
	centroid, err := hyperpoint.Mean(all...)
	require.NoError(t, err)

	require.NoError(t, m.Align(context.Background()))
	for id, got := range m.Positions() {
		want, _ := cands[id].Sub(centroid)
		assert.True(t, got.Equal(want, 1e-12), "node %s: got %v want %v", id, got, want)
	}
}

func TestSingleNodeSettlesAtOrigin(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddNode("solo")
	m := newMap(t, g, 4)

	require.NoError(t, m.Align(context.Background()))
	p, ok := m.Node("solo")
	require.True(t, ok)
	assert.LessOrEqual(t, p.Position().Norm(), tol)
}

func TestEmptyMapAlignIsNoop(t *testing.T) {
	m := newMap(t, core.NewGraph[string](), 2)
	require.NoError(t, m.Align(context.Background()))
	assert.Empty(t, m.Nodes())
	assert.Equal(t, 2, m.Centroid().Dimensions())
}

func TestFailedRoundCommitsNothing(t *testing.T) {
	boom := errors.New("boom")
	law := hypermap.ForceLawFunc(func(self hyperpoint.Point, _, _ []hyperpoint.Point) (hyperpoint.Point, error) {
		if x, _ := self.Coordinate(1); x == 42 {
			return hyperpoint.Point{}, boom
		}

		return self.Scale(0.5), nil
	})
	g := graphOf(t, [2]string{"A", "B"}, [2]string{"B", "C"})
	m := newMap(t, g, 2, hypermap.WithForceLaw(law))
	require.NoError(t, m.SetPosition("B", pt(42, 0)))
	before := m.Positions()

	err := m.Align(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, hypermap.ErrRoundFailed)
	assert.ErrorIs(t, err, boom)

	assert.Equal(t, hypermap.Idle, m.State())
	assert.Zero(t, m.Rounds())
	for id, p := range m.Positions() {
		assert.True(t, p.Equal(before[id], 0), "node %s moved", id)
	}

	// The next successful round must not pick up stale candidates.
	require.NoError(t, m.SetPosition("B", pt(1, 1)))
	require.NoError(t, m.Align(context.Background()))
	assertCentered(t, m)
}

func TestRoundFailureCauses(t *testing.T) {
	g := graphOf(t, [2]string{"A", "B"})
	cases := []struct {
		name string
		law  hypermap.ForceLawFunc
		want error
	}{
		{
			name: "panic",
			law: func(hyperpoint.Point, []hyperpoint.Point, []hyperpoint.Point) (hyperpoint.Point, error) {
				panic("law exploded")
			},
			want: workpool.ErrTaskPanic,
		},
		{
			name: "nan",
			law: func(self hyperpoint.Point, _, _ []hyperpoint.Point) (hyperpoint.Point, error) {
				return self.Scale(math.NaN()), nil
			},
			want: hypermap.ErrNonFinite,
		},
		{
			name: "wrong dimensions",
			law: func(hyperpoint.Point, []hyperpoint.Point, []hyperpoint.Point) (hyperpoint.Point, error) {
				return pt(1, 2, 3), nil
			},
			want: hyperpoint.ErrDimensionMismatch,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := newMap(t, g, 2, hypermap.WithForceLaw(tc.law))
			before := m.Positions()

			err := m.Align(context.Background())
			assert.ErrorIs(t, err, hypermap.ErrRoundFailed)
			assert.ErrorIs(t, err, tc.want)
			for id, p := range m.Positions() {
				assert.True(t, p.Equal(before[id], 0), "node %s moved", id)
			}
		})
	}
}

func TestAlignCanceledContext(t *testing.T) {
	m := newMap(t, graphOf(t, [2]string{"A", "B"}), 2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.Align(ctx)
	assert.ErrorIs(t, err, hypermap.ErrRoundFailed)
	assert.ErrorIs(t, err, context.Canceled)

	assert.ErrorIs(t, m.Run(ctx, 3), context.Canceled)
}

func TestRun(t *testing.T) {
	m := newMap(t, graphOf(t, [2]string{"A", "B"}, [2]string{"B", "C"}), 2)
	require.NoError(t, m.Run(context.Background(), 5))
	assert.EqualValues(t, 5, m.Rounds())
	assertCentered(t, m)
}

func TestStateDuringRound(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	law := hypermap.ForceLawFunc(func(self hyperpoint.Point, _, _ []hyperpoint.Point) (hyperpoint.Point, error) {
		once.Do(func() { close(entered) })
		<-release

		return self, nil
	})
	m := newMap(t, graphOf(t, [2]string{"A", "B"}), 2, hypermap.WithForceLaw(law))

	done := make(chan error, 1)
	go func() { done <- m.Align(context.Background()) }()

	<-entered
	assert.Equal(t, hypermap.RoundInProgress, m.State())
	close(release)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("round did not finish")
	}
	assert.Equal(t, hypermap.Idle, m.State())
}

func TestSetPositionErrors(t *testing.T) {
	m := newMap(t, graphOf(t, [2]string{"A", "B"}), 2)

	assert.ErrorIs(t, m.SetPosition("Z", pt(0, 0)), core.ErrNodeNotFound)
	assert.ErrorIs(t, m.SetPosition("A", pt(0, 0, 0)), hyperpoint.ErrDimensionMismatch)

	require.NoError(t, m.SetPosition("A", pt(0.5, 0.5)))
	n, _ := m.Node("A")
	assert.True(t, n.Position().Equal(pt(0.5, 0.5), 0))
}

func TestSyncFollowsGraph(t *testing.T) {
	g := graphOf(t, [2]string{"A", "B"}, [2]string{"B", "C"})
	m := newMap(t, g, 2)

	require.NoError(t, g.RemoveNode("A"))
	require.NoError(t, g.AddEdge(core.NewUndirectedEdge("C", "D")))

	added, removed, err := m.Sync()
	require.NoError(t, err)
	assert.Equal(t, 1, added)
	assert.Equal(t, 1, removed)

	ids := make([]string, 0, 3)
	for _, n := range m.Nodes() {
		ids = append(ids, n.ID())
	}
	assert.Equal(t, []string{"B", "C", "D"}, ids)
	_, ok := m.Node("A")
	assert.False(t, ok)

	require.NoError(t, m.Align(context.Background()))
	assertCentered(t, m)
}

func TestAlignFailsOnUnsyncedRemoval(t *testing.T) {
	g := graphOf(t, [2]string{"A", "B"}, [2]string{"B", "C"})
	m := newMap(t, g, 2)
	require.NoError(t, g.RemoveNode("C"))

	err := m.Align(context.Background())
	assert.ErrorIs(t, err, hypermap.ErrRoundFailed)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestClose(t *testing.T) {
	m, err := hypermap.New(graphOf(t, [2]string{"A", "B"}), 2, hypermap.WithPoolSize(1), hypermap.WithMaxQueueDepth(1))
	require.NoError(t, err)

	require.NoError(t, m.Close())
	require.NoError(t, m.Close())
	assert.ErrorIs(t, m.Align(context.Background()), hypermap.ErrClosed)
	assert.ErrorIs(t, m.SetPosition("A", pt(0, 0)), hypermap.ErrClosed)
	_, _, err = m.Sync()
	assert.ErrorIs(t, err, hypermap.ErrClosed)
}

func TestSharedPoolOutlivesMap(t *testing.T) {
	pool, err := workpool.New(workpool.Config{PoolSize: 2, MaxQueueDepth: 4})
	require.NoError(t, err)
	defer pool.Close()

	g := graphOf(t, [2]string{"A", "B"}, [2]string{"B", "C"})
	m1, err := hypermap.New(g, 2, hypermap.WithPool(pool), hypermap.WithSeed(1))
	require.NoError(t, err)
	m2, err := hypermap.New(g, 3, hypermap.WithPool(pool), hypermap.WithSeed(2))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for _, m := range []*hypermap.Map[string]{m1, m2} {
		m := m
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, m.Run(context.Background(), 10))
		}()
	}
	wg.Wait()

	require.NoError(t, m1.Close())
	require.NoError(t, m2.Align(context.Background()))
	require.NoError(t, m2.Close())

	f, err := pool.Submit(context.Background(), func() error { return nil })
	require.NoError(t, err)
	assert.NoError(t, f.Wait(context.Background()))
}

func TestMetricsRecorded(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.New(reg)
	fail := false
	law := hypermap.ForceLawFunc(func(self hyperpoint.Point, _, _ []hyperpoint.Point) (hyperpoint.Point, error) {
		if fail {
			return hyperpoint.Point{}, errors.New("nope")
		}

		return self, nil
	})
	m := newMap(t, graphOf(t, [2]string{"A", "B"}, [2]string{"B", "C"}), 2,
		hypermap.WithMetrics(c), hypermap.WithForceLaw(law))

	require.NoError(t, m.Align(context.Background()))
	require.NoError(t, m.Align(context.Background()))
	fail = true
	require.Error(t, m.Align(context.Background()))

	assert.Equal(t, 2.0, testutil.ToFloat64(c.RoundsTotal.WithLabelValues(m.ID())))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.RoundFailures.WithLabelValues(m.ID())))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.Nodes.WithLabelValues(m.ID())))
}

func TestNodeAlignAndRecenter(t *testing.T) {
	g := graphOf(t, [2]string{"A", "B"})
	law := hypermap.SpringLaw{LearningRate: 0.5}
	m := newMap(t, g, 2, hypermap.WithForceLaw(law))
	require.NoError(t, m.SetPosition("A", pt(0, 0)))
	require.NoError(t, m.SetPosition("B", pt(4, 0)))

	a, _ := m.Node("A")

	// Align stores a candidate but leaves the committed position alone.
	cand, err := a.Align(m.Snapshot())
	require.NoError(t, err)
	assert.True(t, cand.Equal(pt(2, 0), tol), "candidate %v", cand)
	assert.True(t, a.Position().Equal(pt(0, 0), 0))

	// Recenter commits candidate − offset.
	require.NoError(t, a.Recenter(pt(1, 1)))
	assert.True(t, a.Position().Equal(pt(1, -1), tol))

	// Without a pending candidate it shifts the committed position.
	require.NoError(t, a.Recenter(pt(1, 1)))
	assert.True(t, a.Position().Equal(pt(0, -2), tol))

	assert.ErrorIs(t, a.Recenter(pt(1)), hyperpoint.ErrDimensionMismatch)
}
