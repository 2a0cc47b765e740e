// SPDX-License-Identifier: MIT
// Package: partlath/spectral
//
// laplacian.go — dense graph Laplacian.

package spectral

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/partlath/core"
)

// Laplacian returns L = Deg − Adj: L[v][v] = deg(v), L[u][v] = −1 for each edge.
//
// Errors:
//   - n < 2                      → core.ErrNumeric
//   - n > maxDense (when > 0)    → core.ErrAllocation
//
// Complexity: O(n²) memory, O(n + E) fill.
func Laplacian(g *core.Graph, maxDense int) (*mat.SymDense, error) {
	n := g.VertexCount()
	if n < 2 {
		return nil, fmt.Errorf("spectral: Laplacian of n=%d is degenerate: %w", n, core.ErrNumeric)
	}
	if maxDense > 0 && n > maxDense {
		return nil, fmt.Errorf("spectral: n=%d exceeds dense limit %d: %w", n, maxDense, core.ErrAllocation)
	}

	L := mat.NewSymDense(n, nil)
	for v := 0; v < n; v++ {
		L.SetSym(v, v, float64(g.Degree(v)))
		for _, u := range g.Neighbors(v) {
			if u > v {
				L.SetSym(v, u, -1)
			}
		}
	}

	return L, nil
}
