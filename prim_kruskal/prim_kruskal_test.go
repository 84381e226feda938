package prim_kruskal_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypermap/bfs"
	"github.com/katalvlaran/hypermap/core"
	"github.com/katalvlaran/hypermap/dfs"
	"github.com/katalvlaran/hypermap/prim_kruskal"
	"github.com/katalvlaran/hypermap/unionfind"
)

type wedge struct {
	u, v string
	w    float64
}

func weighted(t testing.TB, es ...wedge) *core.Graph[string] {
	t.Helper()
	g := core.NewGraph[string](core.WithMultiEdges(), core.WithLoops())
	for _, e := range es {
		require.NoError(t, g.AddEdge(core.NewUndirectedEdge(e.u, e.v, core.WithWeight(e.w))))
	}

	return g
}

// assertSpanningForest checks acyclicity and that the forest joins exactly
// the pairs the input joins.
func assertSpanningForest(t *testing.T, g *core.Graph[string], forest []core.Edge[string]) {
	t.Helper()
	fg, err := core.FromEdges(g.Nodes(), forest)
	require.NoError(t, err)

	has, err := dfs.HasCycle(fg)
	require.NoError(t, err)
	assert.False(t, has, "forest must be acyclic")

	want, err := bfs.Components(g)
	require.NoError(t, err)
	got, err := bfs.Components(fg)
	require.NoError(t, err)
	assert.Equal(t, len(want), len(got), "forest must preserve components")
	assert.Len(t, forest, g.NodeCount()-len(want))
}

var finders = map[string]prim_kruskal.Finder[string]{
	prim_kruskal.MethodKruskal: prim_kruskal.KruskalFinder[string]{},
	prim_kruskal.MethodPrim:    prim_kruskal.PrimFinder[string]{},
}

// TestTwoTrianglesSharingCenter: 4 nodes, 6 unit edges, two triangles through center.
func TestTwoTrianglesSharingCenter(t *testing.T) {
	g := weighted(t,
		wedge{"center", "top", 1}, wedge{"center", "left", 1}, wedge{"center", "right", 1},
		wedge{"top", "left", 1}, wedge{"top", "right", 1}, wedge{"left", "right", 1},
	)
	for name, f := range finders {
		t.Run(name, func(t *testing.T) {
			mst, err := f.FindMinimumSpanningTree(g)
			require.NoError(t, err)
			assert.Len(t, mst, 3)
			assert.Equal(t, 3.0, prim_kruskal.TotalWeight(mst))
			assertSpanningForest(t, g, mst)

			fg, err := core.FromEdges(nil, mst)
			require.NoError(t, err)
			assert.ElementsMatch(t, g.Nodes(), fg.Nodes())
			ok, err := bfs.IsConnected(fg)
			require.NoError(t, err)
			assert.True(t, ok)
		})
	}
}

func TestKruskal_TieBreakIsInsertionOrder(t *testing.T) {
	ab := core.NewUndirectedEdge("a", "b", core.WithWeight(1))
	bc := core.NewUndirectedEdge("b", "c", core.WithWeight(1))
	ca := core.NewUndirectedEdge("c", "a", core.WithWeight(1))
	g := core.NewGraph[string]()
	for _, e := range []core.Edge[string]{ab, bc, ca} {
		require.NoError(t, g.AddEdge(e))
	}

	for i := 0; i < 5; i++ {
		mst, total, err := prim_kruskal.Kruskal(g)
		require.NoError(t, err)
		assert.Equal(t, []core.Edge[string]{ab, bc}, mst)
		assert.Equal(t, 2.0, total)
	}
}

func TestKruskal_SortsByWeight(t *testing.T) {
	heavy := core.NewUndirectedEdge("a", "b", core.WithWeight(10))
	light := core.NewUndirectedEdge("b", "c", core.WithWeight(1))
	mid := core.NewUndirectedEdge("a", "c", core.WithWeight(5))
	g, err := core.FromEdges(nil, []core.Edge[string]{heavy, light, mid})
	require.NoError(t, err)

	mst, total, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge[string]{light, mid}, mst)
	assert.Equal(t, 6.0, total)
}

func TestMST_DisconnectedIsForest(t *testing.T) {
	g := weighted(t, wedge{"a", "b", 2}, wedge{"c", "d", 3}, wedge{"d", "e", 1})
	g.AddNode("lonely")
	for name, f := range finders {
		t.Run(name, func(t *testing.T) {
			forest, err := f.FindMinimumSpanningTree(g)
			require.NoError(t, err)
			assert.Len(t, forest, 3)
			assert.Equal(t, 6.0, prim_kruskal.TotalWeight(forest))
			assertSpanningForest(t, g, forest)
		})
	}

	_, _, err := prim_kruskal.Compute(g, prim_kruskal.NewOptions(prim_kruskal.WithRequireConnected()))
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
}

func TestMST_SelfLoopsAndParallelEdges(t *testing.T) {
	g := weighted(t, wedge{"a", "a", 0}, wedge{"a", "b", 5}, wedge{"a", "b", 2})
	for name, f := range finders {
		t.Run(name, func(t *testing.T) {
			mst, err := f.FindMinimumSpanningTree(g)
			require.NoError(t, err)
			require.Len(t, mst, 1)
			assert.Equal(t, 2.0, core.WeightOf(mst[0]))
		})
	}
}

func TestMST_InvalidGraph(t *testing.T) {
	_, _, err := prim_kruskal.Kruskal[string](nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
	_, _, err = prim_kruskal.Prim[string](nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)

	d := core.NewGraph[string]()
	require.NoError(t, d.AddEdge(core.NewDirectedEdge("a", "b")))
	_, _, err = prim_kruskal.Kruskal(d)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)

	h := core.NewGraph[string]()
	he, err := core.NewHyperedge([]string{"a", "b", "c"})
	require.NoError(t, err)
	require.NoError(t, h.AddEdge(he))
	_, _, err = prim_kruskal.Prim(h)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)

	// a two-endpoint hyperedge behaves like an undirected edge
	h2 := core.NewGraph[string]()
	pair, err := core.NewHyperedge([]string{"x", "y"}, core.WithWeight(3))
	require.NoError(t, err)
	require.NoError(t, h2.AddEdge(pair))
	mst, total, err := prim_kruskal.Kruskal(h2)
	require.NoError(t, err)
	assert.Len(t, mst, 1)
	assert.Equal(t, 3.0, total)
}

func TestMST_TrivialGraphs(t *testing.T) {
	mst, total, err := prim_kruskal.Kruskal(core.NewGraph[string]())
	require.NoError(t, err)
	assert.Empty(t, mst)
	assert.Zero(t, total)

	one := core.NewGraph[string]()
	one.AddNode("a")
	mst, _, err = prim_kruskal.Prim(one)
	require.NoError(t, err)
	assert.Empty(t, mst)
}

func TestCompute_Dispatch(t *testing.T) {
	g := weighted(t, wedge{"a", "b", 1}, wedge{"b", "c", 2}, wedge{"a", "c", 4})

	for _, m := range []string{prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim} {
		edges, total, err := prim_kruskal.Compute(g, prim_kruskal.NewOptions(prim_kruskal.WithMethod(m)))
		require.NoError(t, err)
		assert.Len(t, edges, 2)
		assert.Equal(t, 3.0, total)
	}

	_, _, err := prim_kruskal.Compute(g, prim_kruskal.MSTOptions{Method: "boruvka"})
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}

// TestMST_BruteForceMinimal compares both finders with exhaustive search on
// small random connected graphs.
func TestMST_BruteForceMinimal(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	names := []string{"a", "b", "c", "d", "e"}

	for trial := 0; trial < 25; trial++ {
		g := core.NewGraph[string](core.WithMultiEdges())
		// spanning path first keeps the graph connected
		for i := 1; i < len(names); i++ {
			require.NoError(t, g.AddEdge(core.NewUndirectedEdge(names[i-1], names[i], core.WithWeight(float64(rng.Intn(9)+1)))))
		}
		for k := 0; k < 4; k++ {
			u, v := names[rng.Intn(len(names))], names[rng.Intn(len(names))]
			if u == v {
				continue
			}
			require.NoError(t, g.AddEdge(core.NewUndirectedEdge(u, v, core.WithWeight(float64(rng.Intn(9)+1)))))
		}

		best := bruteForceMST(g)
		for name, f := range finders {
			mst, err := f.FindMinimumSpanningTree(g)
			require.NoError(t, err, name)
			assert.Len(t, mst, len(names)-1, name)
			assert.InDelta(t, best, prim_kruskal.TotalWeight(mst), 1e-9, "%s trial %d", name, trial)
			assertSpanningForest(t, g, mst)
		}
	}
}

func bruteForceMST(g *core.Graph[string]) float64 {
	edges := g.Edges()
	nodes := g.Nodes()
	best := math.Inf(1)
	for mask := 0; mask < 1<<len(edges); mask++ {
		dsu := unionfind.New(nodes...)
		var w float64
		count := 0
		ok := true
		for i, e := range edges {
			if mask&(1<<i) == 0 {
				continue
			}
			ends := e.Nodes()
			merged, _ := dsu.Union(ends[0], ends[1])
			if !merged {
				ok = false
				break
			}
			w += core.WeightOf(e)
			count++
		}
		if ok && count == len(nodes)-1 && w < best {
			best = w
		}
	}

	return best
}
