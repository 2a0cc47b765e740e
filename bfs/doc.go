// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph together with
// the connectivity measures built on it.
//
// What
//
//   - BFS explores vertices in non-decreasing distance from a start vertex
//     and returns a Result with the visit Order, per-vertex Depth and Parent
//     (both −1 for unreached vertices).
//   - WithFilterNeighbor restricts the walk to a subgraph; SameGroup keeps it
//     inside the start vertex's partition group.
//   - Components splits the graph into connected components under a filter;
//     GroupFragments counts, per group, the connected pieces of the subgraph
//     induced by that group. A well-repaired partition has few fragments.
//
// Determinism
//
//	Neighbor lists of core.Graph are sorted ascending, so visit order and
//	component membership are reproducible.
//
// Complexity (V = vertices, E = edges)
//
//   - Time:   O(V + E) for BFS, Components and GroupFragments.
//   - Memory: O(V).
//
// Usage
//
//	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2), bfs.WithFilterNeighbor(bfs.SameGroup(g)))
//	frags, err := bfs.GroupFragments(g, parts)
package bfs
