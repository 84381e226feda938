// Package: hypermap/builder
//
// impl_path.go - Path(n): P_n with nodes idFn(0..n-1) and edges i—(i+1).

package builder

import (
	"fmt"

	"github.com/katalvlaran/hypermap/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path builds the simple path P_n (n ≥ 2). Edges are emitted in index order.
// Directed builds point each edge from i to i+1.
//
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids := addNodes(g, cfg, n)
		for i := 0; i+1 < n; i++ {
			if err := link(g, cfg, methodPath, ids[i], ids[i+1], false); err != nil {
				return err
			}
		}

		return nil
	}
}
