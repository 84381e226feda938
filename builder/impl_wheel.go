// Package: hypermap/builder
//
// impl_wheel.go - Wheel(n): W_n = C_{n-1} + "Center".
//
// Contract:
//   - n ≥ 4, since the rim must be a valid cycle.
//   - The rim is built by Cycle(n-1) with the same cfg; the hub is added after it.
//   - Spokes run from "Center" to each rim node in index order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hypermap/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel builds W_n (n ≥ 4). Directed builds emit both arcs of each spoke.
//
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: rim C_%d: %w", methodWheel, n-1, err)
		}
		g.AddNode(centerVertexID)
		for i := 0; i < n-1; i++ {
			if err := link(g, cfg, methodWheel, centerVertexID, cfg.idFn(i), true); err != nil {
				return err
			}
		}

		return nil
	}
}
