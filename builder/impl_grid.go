// SPDX-License-Identifier: MIT
//
// impl_grid.go - Grid(rows, cols).
//
// Contract:
//   - rows ≥ 1, cols ≥ 1, rows·cols ≥ 2.
//   - Vertex (r, c) has block offset r·cols + c.
//   - Edges are emitted row-major: for each cell, first the right neighbor
//     (r, c+1), then the down neighbor (r+1, c). Arcs point right / down.

package builder

import (
	"fmt"

	"github.com/katalvlaran/motif/graph"
)

const (
	methodGrid  = "Grid"
	minGridDim  = 1
	minGridSize = 2
)

// Grid returns a Constructor that appends a rows×cols 4-neighborhood lattice.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g graph.Sink, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim || rows*cols < minGridSize {
			return fmt.Errorf("%s: %dx%d below %d cells: %w", methodGrid, rows, cols, minGridSize, ErrTooFewVertices)
		}
		base := addBlock(g, rows*cols)
		at := func(r, c int) int { return base + r*cols + c }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := link(g, cfg, methodGrid, at(r, c), at(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(g, cfg, methodGrid, at(r, c), at(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
