// Package: hypermap/builder
//
// impl_cycle.go - Cycle(n): C_n, a path closed by the edge (n-1)—0.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hypermap/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle builds the simple cycle C_n (n ≥ 3). Directed builds orient the ring
// 0→1→…→(n-1)→0.
//
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids := addNodes(g, cfg, n)
		for i := 0; i < n; i++ {
			if err := link(g, cfg, methodCycle, ids[i], ids[(i+1)%n], false); err != nil {
				return err
			}
		}

		return nil
	}
}
