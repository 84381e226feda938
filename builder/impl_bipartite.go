package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/hypermap/core"
)

const methodCompleteBipartite = "CompleteBipartite"

// CompleteBipartite builds K_{n1,n2} with sides leftPrefix+i and
// rightPrefix+j (defaults "L" and "R"). Edges always run left → right.
// Both sides must be non-empty.
//
// Complexity: O(n1·n2).
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n1 < 1 || n2 < 1 {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ 1): %w",
				methodCompleteBipartite, n1, n2, ErrTooFewVertices)
		}
		left := make([]string, n1)
		for i := range left {
			left[i] = cfg.leftPrefix + strconv.Itoa(i)
			g.AddNode(left[i])
		}
		right := make([]string, n2)
		for j := range right {
			right[j] = cfg.rightPrefix + strconv.Itoa(j)
			g.AddNode(right[j])
		}
		for _, u := range left {
			for _, v := range right {
				if err := link(g, cfg, methodCompleteBipartite, u, v, false); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
