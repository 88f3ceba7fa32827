// SPDX-License-Identifier: MIT
// File: impl_grid.go
// Role: rows×cols 4-neighbourhood grid in row-major numbering.

package builder

import (
	"fmt"

	"github.com/katalvlaran/dimacsbench/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid builds a rows×cols lattice; cell (r,c) is local index r*cols+c and is
// joined to its right and lower neighbours.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be >= %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		if err := addNodes(g, cfg, methodGrid, rows*cols); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				i := r*cols + c
				if c+1 < cols {
					if err := addEdge(g, cfg, methodGrid, i, i+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, cfg, methodGrid, i, i+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
