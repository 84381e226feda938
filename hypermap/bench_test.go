package hypermap_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/hypermap/core"
	"github.com/katalvlaran/hypermap/hypermap"
)

// BenchmarkAlign measures one round over a 200-node ring with chords.
func BenchmarkAlign(b *testing.B) {
	const n = 200
	g := core.NewGraph[int]()
	for i := 0; i < n; i++ {
		_ = g.AddEdge(core.NewUndirectedEdge(i, (i+1)%n))
		if i%10 == 0 {
			_ = g.AddEdge(core.NewUndirectedEdge(i, (i+n/2)%n))
		}
	}

	for _, workers := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			m, err := hypermap.New(g, 3, hypermap.WithSeed(1), hypermap.WithPoolSize(workers))
			if err != nil {
				b.Fatal(err)
			}
			defer m.Close()
			ctx := context.Background()

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err = m.Align(ctx); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
