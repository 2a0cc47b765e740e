// SPDX-License-Identifier: MIT
// Package: partlath/builder
//
// impl_cycle.go — ring-shaped constructors: Cycle, Path, Star, Wheel.
//
// Contract:
//   • Vertices are appended as one block, laid out on a single row.
//   • Edges are emitted in ascending ring order.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges for all four shapes.

package builder

import "fmt"

const (
	methodCycle = "Cycle"
	methodPath  = "Path"
	methodStar  = "Star"
	methodWheel = "Wheel"

	minCycleNodes = 3
	minPathNodes  = 2
	minStarNodes  = 2
	minWheelNodes = 4
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(a *assembly, _ builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		base := a.addBlock(n, onRow)
		for i := 0; i < n; i++ {
			a.addEdge(base+i, base+(i+1)%n)
		}

		return nil
	}
}

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(a *assembly, _ builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		base := a.addBlock(n, onRow)
		for i := 0; i+1 < n; i++ {
			a.addEdge(base+i, base+i+1)
		}

		return nil
	}
}

// Star returns a Constructor for a hub (the block's first vertex) with n-1 leaves.
func Star(n int) Constructor {
	return func(a *assembly, _ builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		base := a.addBlock(n, onRow)
		for i := 1; i < n; i++ {
			a.addEdge(base, base+i)
		}

		return nil
	}
}

// Wheel returns a Constructor for W_n = C_{n-1} plus a hub. The hub is the
// block's last vertex; the ring occupies the first n-1 positions.
func Wheel(n int) Constructor {
	return func(a *assembly, _ builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		ring := n - 1
		base := a.addBlock(n, onRow)
		hub := base + ring
		for i := 0; i < ring; i++ {
			a.addEdge(base+i, base+(i+1)%ring)
		}
		for i := 0; i < ring; i++ {
			a.addEdge(hub, base+i)
		}

		return nil
	}
}
