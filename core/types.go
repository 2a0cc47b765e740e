// SPDX-License-Identifier: MIT
// Package: partlath/core
//
// types.go - Vertex, Graph and GraphOption declarations.
//
// Invariants (enforced by Build/FromAdjacency, never relaxed afterwards):
//   - len(vertices) == n, vertices[i].ID == i.
//   - neighbors lists are sorted ascending, contain no duplicates and no i itself.
//   - v ∈ neighbors(u)  ⇔  u ∈ neighbors(v).
//   - edges == Σ deg(v) / 2.

package core

// Vertex is one slot of the arena. Topology fields are private; partition
// state is exported so algorithms in sibling packages can drive it directly
// through the Graph accessors.
type Vertex struct {
	// ID is the dense index of this vertex (0..n-1).
	ID int

	// X, Y are display coordinates. No algorithm reads them.
	X, Y int

	// Group is the current partition label in [0, parts).
	Group int

	// Gain is the Kernighan-Lin D-value: external minus internal edges.
	Gain int

	// Fixed marks a vertex locked for the remainder of a KL round.
	Fixed bool

	// Processed marks a vertex already moved or swapped by connectivity repair.
	Processed bool

	neighbors []int
}

// Graph owns the vertex arena of one partitioning run.
type Graph struct {
	vertices []Vertex
	edges    int
}

// GraphOption configures optional vertex data at construction time.
type GraphOption func(c *buildConfig)

// buildConfig collects GraphOption effects before the arena is allocated.
type buildConfig struct {
	xs, ys []int
	groups []int
}

// WithCoordinates attaches display coordinates. Slices shorter than n leave
// the remaining coordinates at zero; extra entries are ignored.
func WithCoordinates(xs, ys []int) GraphOption {
	return func(c *buildConfig) {
		c.xs, c.ys = xs, ys
	}
}

// WithGroups seeds the initial partition labels (e.g. when re-reading an
// artifact). Labels are validated to be non-negative.
func WithGroups(groups []int) GraphOption {
	return func(c *buildConfig) {
		c.groups = groups
	}
}
