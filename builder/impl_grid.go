// SPDX-License-Identifier: MIT
// Package: partlath/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Vertices in row-major order; vertex (r,c) has index base + r*cols + c
//     and coordinates (c, r).
//   • For each (r,c) emit Right then Bottom neighbor if present.
//
// Complexity:
//   • Time: O(rows*cols) vertices + O(rows*cols) edges.

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(a *assembly, _ builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		base := a.addBlock(rows*cols, func(i int) (int, int) {
			return i % cols, i / cols
		})
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := base + r*cols + c
				if c+1 < cols {
					a.addEdge(u, u+1)
				}
				if r+1 < rows {
					a.addEdge(u, u+cols)
				}
			}
		}

		return nil
	}
}
