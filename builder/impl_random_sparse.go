// Package: hypermap/builder
//
// impl_random_sparse.go - RandomSparse(n, p): Erdős–Rényi G(n, p).
//
// Contract:
//   - n ≥ 1, p ∈ [0, 1].
//   - An rng is required for 0 < p < 1; p = 0 and p = 1 are deterministic.
//   - Undirected: pairs i<j. Directed: ordered pairs i≠j. Loops are never emitted.
//   - One rng draw per candidate pair, in (i asc, j asc) order, so a fixed
//     seed gives a fixed graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hypermap/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
)

// RandomSparse builds G(n, p).
//
// Complexity: O(n²) draws.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRNG)
		}

		ids := addNodes(g, cfg, n)
		keep := func() bool {
			switch {
			case p == 0:
				return false
			case p == 1:
				return true
			default:
				return cfg.rng.Float64() < p
			}
		}

		for i := 0; i < n; i++ {
			start := i + 1
			if cfg.directed {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j || !keep() {
					continue
				}
				if err := link(g, cfg, methodRandomSparse, ids[i], ids[j], false); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
