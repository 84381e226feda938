// Package: hypermap/builder
//
// impl_grid.go - Grid(rows, cols): 4-neighborhood lattice with IDs "r,c".
//
// Determinism:
//   - Nodes are added row-major.
//   - For each cell in row-major order, the right edge precedes the down edge.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/hypermap/core"
)

const methodGrid = "Grid"

func gridID(r, c int) string { return strconv.Itoa(r) + "," + strconv.Itoa(c) }

// Grid builds a rows×cols grid (each ≥ 1). IDs are fixed to "r,c" and ignore
// the ID scheme. Directed builds emit both arcs.
//
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if rows < 1 || cols < 1 {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ 1): %w",
				methodGrid, rows, cols, ErrInvalidDimensions)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				g.AddNode(gridID(r, c))
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := gridID(r, c)
				if c+1 < cols {
					if err := link(g, cfg, methodGrid, u, gridID(r, c+1), true); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(g, cfg, methodGrid, u, gridID(r+1, c), true); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
