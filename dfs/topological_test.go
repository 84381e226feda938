package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypermap/dfs"
)

func TestTopologicalSort_DAG(t *testing.T) {
	g := directed(t,
		[2]string{"shirt", "tie"}, [2]string{"tie", "jacket"},
		[2]string{"pants", "shoes"}, [2]string{"pants", "belt"},
		[2]string{"belt", "jacket"}, [2]string{"shirt", "belt"})

	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	require.Len(t, order, g.NodeCount())

	pos := make(map[string]int, len(order))
	for i, n := range order {
		pos[n] = i
	}
	for _, e := range g.Edges() {
		ns := e.Nodes()
		assert.Less(t, pos[ns[0]], pos[ns[1]], "%s before %s", ns[0], ns[1])
	}
}

func TestTopologicalSort_Cycle(t *testing.T) {
	g := directed(t, [2]string{"a", "b"}, [2]string{"b", "a"})
	_, err := dfs.TopologicalSort(g)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}

func TestTopologicalSort_Undirected(t *testing.T) {
	g := undirected(t, nil, [2]string{"a", "b"})
	_, err := dfs.TopologicalSort(g)
	assert.ErrorIs(t, err, dfs.ErrNotDirected)

	_, err = dfs.TopologicalSort[string](nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}
