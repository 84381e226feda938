package builder

import (
	"fmt"

	"github.com/katalvlaran/hypermap/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete builds K_n (n ≥ 1): one edge per unordered pair i<j, emitted in
// lexicographic (i, j) order. Directed builds emit both arcs.
//
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids := addNodes(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := link(g, cfg, methodComplete, ids[i], ids[j], true); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
