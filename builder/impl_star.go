package builder

import (
	"fmt"

	"github.com/katalvlaran/hypermap/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star builds a hub "Center" with n-1 leaves idFn(0..n-2) (n ≥ 2).
// The hub is added first. Directed builds emit both arcs of each spoke.
func Star(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		g.AddNode(centerVertexID)
		for _, leaf := range addNodes(g, cfg, n-1) {
			if err := link(g, cfg, methodStar, centerVertexID, leaf, true); err != nil {
				return err
			}
		}

		return nil
	}
}
