// SPDX-License-Identifier: MIT
// Package: partlath/builder
//
// impl_complete.go — dense constructors: Complete (K_n) and CompleteBipartite (K_{a,b}).
//
// Contract:
//   • Complete: n ≥ 1; edges (i,j) for i<j in lexicographic order.
//   • CompleteBipartite: a,b ≥ 1; left side occupies row 0, right side row 1;
//     edges (l,r) for l asc, r asc.
//
// Complexity:
//   • Complete: O(n²) edges. CompleteBipartite: O(a·b) edges.

package builder

import "fmt"

const (
	methodComplete  = "Complete"
	methodBipartite = "CompleteBipartite"

	minCompleteNodes = 1
	minBipartiteSide = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(a *assembly, _ builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		base := a.addBlock(n, onRow)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				a.addEdge(base+i, base+j)
			}
		}

		return nil
	}
}

// CompleteBipartite returns a Constructor that builds K_{left,right}.
func CompleteBipartite(left, right int) Constructor {
	return func(a *assembly, _ builderConfig) error {
		if left < minBipartiteSide || right < minBipartiteSide {
			return fmt.Errorf("%s: sides=(%d,%d), each must be ≥ %d: %w",
				methodBipartite, left, right, minBipartiteSide, ErrTooFewVertices)
		}
		base := a.addBlock(left+right, func(i int) (int, int) {
			if i < left {
				return i, 0
			}
			return i - left, 1
		})
		for l := 0; l < left; l++ {
			for r := 0; r < right; r++ {
				a.addEdge(base+l, base+left+r)
			}
		}

		return nil
	}
}
