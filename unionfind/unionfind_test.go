package unionfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypermap/unionfind"
)

func TestNew_Singletons(t *testing.T) {
	d := unionfind.New("a", "b", "c", "a")
	assert.Equal(t, 3, d.Len())
	assert.Equal(t, 3, d.Sets())
	assert.False(t, d.Add("b"))
	assert.True(t, d.Add("d"))
	assert.Equal(t, 4, d.Sets())
}

func TestUnion_MergesAndCounts(t *testing.T) {
	d := unionfind.New(1, 2, 3, 4, 5)

	merged, err := d.Union(1, 2)
	require.NoError(t, err)
	assert.True(t, merged)

	merged, err = d.Union(3, 4)
	require.NoError(t, err)
	assert.True(t, merged)

	merged, err = d.Union(2, 1)
	require.NoError(t, err)
	assert.False(t, merged)

	_, err = d.Union(4, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Sets())

	ok, err := d.Connected(2, 3)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = d.Connected(1, 5)
	require.NoError(t, err)
	assert.False(t, ok)

	size, err := d.SizeOf(3)
	require.NoError(t, err)
	assert.Equal(t, 4, size)
}

func TestFind_Unknown(t *testing.T) {
	d := unionfind.New[string]()
	_, err := d.Find("x")
	assert.ErrorIs(t, err, unionfind.ErrUnknownElement)
	_, err = d.Union("x", "y")
	assert.ErrorIs(t, err, unionfind.ErrUnknownElement)
	_, err = d.Connected("x", "x")
	assert.ErrorIs(t, err, unionfind.ErrUnknownElement)
	_, err = d.SizeOf("x")
	assert.ErrorIs(t, err, unionfind.ErrUnknownElement)
}

func TestFind_LongChainCompresses(t *testing.T) {
	const n = 1000
	d := unionfind.New[int]()
	for i := 0; i < n; i++ {
		d.Add(i)
	}
	for i := 1; i < n; i++ {
		_, err := d.Union(i-1, i)
		require.NoError(t, err)
	}
	root, err := d.Find(0)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		r, err := d.Find(i)
		require.NoError(t, err)
		assert.Equal(t, root, r)
	}
	assert.Equal(t, 1, d.Sets())
}

func BenchmarkUnionFind(b *testing.B) {
	for i := 0; i < b.N; i++ {
		d := unionfind.New[int]()
		for j := 0; j < 1024; j++ {
			d.Add(j)
		}
		for j := 1; j < 1024; j++ {
			_, _ = d.Union(j/2, j)
		}
	}
}
