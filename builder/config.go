// SPDX-License-Identifier: MIT
// Package: partlath/builder
//
// config.go — internal configuration and the assembly buffer.
//
// Design:
//   • builderConfig is the single source of truth for builder knobs.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//   • assembly accumulates vertices, coordinates and edges; BuildGraph hands
//     it to core.Build exactly once.

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
}

// newBuilderConfig constructs a config with deterministic defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{rng: nil}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// assembly is the mutable graph under construction.
type assembly struct {
	n      int
	xs, ys []int
	edges  [][2]int
	row    int // first free row for the next block
}

// addBlock appends count vertices placed by coord (relative to the block's
// first row) and returns the index of the first new vertex.
func (a *assembly) addBlock(count int, coord func(i int) (x, y int)) int {
	base := a.n
	maxRow := 0
	for i := 0; i < count; i++ {
		x, y := coord(i)
		a.xs = append(a.xs, x)
		a.ys = append(a.ys, a.row+y)
		if y > maxRow {
			maxRow = y
		}
	}
	a.n += count
	a.row += maxRow + 1

	return base
}

// addEdge records an undirected edge between absolute indices.
func (a *assembly) addEdge(u, v int) {
	a.edges = append(a.edges, [2]int{u, v})
}

// onRow lays block vertices left-to-right on one row.
func onRow(i int) (int, int) { return i, 0 }
