// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: constructors and read-only topology getters.
// Policy:
//   - Constructors validate every index before touching the arena.
//   - Getters never allocate except where documented (Edges).

package core

import (
	"fmt"
	"slices"
)

// Build creates a Graph with n vertices from an undirected edge list.
//
// Implementation:
//   - Stage 1: Validate n and every endpoint (range, self-loop).
//   - Stage 2: Accumulate both directions per edge.
//   - Stage 3: Sort and deduplicate every list; count edges.
//   - Stage 4: Apply GraphOption data (coordinates, groups).
//
// Duplicate edges (u,v)/(v,u) collapse into one. Self-loops fail with ErrFormat.
//
// Complexity: O(V + E log E) time, O(V + E) space.
func Build(n int, edges [][2]int, opts ...GraphOption) (*Graph, error) {
	// Stage 1: validation.
	if n < 0 {
		return nil, fmt.Errorf("core: Build: n=%d: %w", n, ErrFormat)
	}
	var (
		i    int
		u, v int
	)
	for i = range edges {
		u, v = edges[i][0], edges[i][1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf("core: Build: edge %d (%d,%d) with n=%d: %w", i, u, v, n, ErrVertexOutOfRange)
		}
		if u == v {
			return nil, fmt.Errorf("core: Build: edge %d is a self-loop on %d: %w", i, u, ErrFormat)
		}
	}

	// Stage 2: mirror every edge.
	adj := make([][]int, n)
	for i = range edges {
		u, v = edges[i][0], edges[i][1]
		adj[u] = append(adj[u], v)
		adj[v] = append(adj[v], u)
	}

	// Stage 3: canonical order, no duplicates.
	g := &Graph{vertices: make([]Vertex, n)}
	total := 0
	for i = 0; i < n; i++ {
		slices.Sort(adj[i])
		adj[i] = slices.Compact(adj[i])
		g.vertices[i] = Vertex{ID: i, neighbors: adj[i]}
		total += len(adj[i])
	}
	g.edges = total / 2

	// Stage 4: optional data.
	if err := g.apply(opts); err != nil {
		return nil, err
	}

	return g, nil
}

// FromAdjacency creates a Graph from per-vertex neighbor lists and re-validates
// every structural invariant instead of repairing it.
//
// Errors (all wrap ErrFormat):
//   - index outside [0, n)            → ErrVertexOutOfRange
//   - v lists itself                  → self-loop
//   - v lists u twice                 → duplicate
//   - u lists v but v does not list u → asymmetric
//
// Input order is preserved in validation messages only; stored lists are sorted.
//
// Complexity: O(V + E log E) time, O(V + E) space.
func FromAdjacency(adj [][]int, opts ...GraphOption) (*Graph, error) {
	n := len(adj)
	g := &Graph{vertices: make([]Vertex, n)}

	var (
		u, k  int
		list  []int
		total int
	)
	for u = 0; u < n; u++ {
		list = slices.Clone(adj[u])
		for k = range list {
			if list[k] < 0 || list[k] >= n {
				return nil, fmt.Errorf("core: FromAdjacency: vertex %d lists %d with n=%d: %w", u, list[k], n, ErrVertexOutOfRange)
			}
			if list[k] == u {
				return nil, fmt.Errorf("core: FromAdjacency: vertex %d lists itself: %w", u, ErrFormat)
			}
		}
		slices.Sort(list)
		for k = 1; k < len(list); k++ {
			if list[k] == list[k-1] {
				return nil, fmt.Errorf("core: FromAdjacency: vertex %d lists %d twice: %w", u, list[k], ErrFormat)
			}
		}
		g.vertices[u] = Vertex{ID: u, neighbors: list}
		total += len(list)
	}

	// Symmetry: every u→v must have v→u.
	for u = 0; u < n; u++ {
		for _, v := range g.vertices[u].neighbors {
			if _, found := slices.BinarySearch(g.vertices[v].neighbors, u); !found {
				return nil, fmt.Errorf("core: FromAdjacency: %d lists %d but not vice versa: %w", u, v, ErrFormat)
			}
		}
	}
	g.edges = total / 2

	if err := g.apply(opts); err != nil {
		return nil, err
	}

	return g, nil
}

// apply resolves GraphOption values onto an allocated arena.
func (g *Graph) apply(opts []GraphOption) error {
	var cfg buildConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	n := len(g.vertices)
	var i int
	for i = 0; i < n && i < len(cfg.xs); i++ {
		g.vertices[i].X = cfg.xs[i]
	}
	for i = 0; i < n && i < len(cfg.ys); i++ {
		g.vertices[i].Y = cfg.ys[i]
	}
	for i = 0; i < n && i < len(cfg.groups); i++ {
		if cfg.groups[i] < 0 {
			return fmt.Errorf("core: vertex %d has group %d: %w", i, cfg.groups[i], ErrGroupOutOfRange)
		}
		g.vertices[i].Group = cfg.groups[i]
	}

	return nil
}

// VertexCount returns n.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	return len(g.vertices)
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	return g.edges
}

// Vertex returns a pointer into the arena for v, or ErrVertexOutOfRange.
// The pointer exposes partition state only; topology stays private.
// Complexity: O(1).
func (g *Graph) Vertex(v int) (*Vertex, error) {
	if err := g.check(v); err != nil {
		return nil, err
	}

	return &g.vertices[v], nil
}

// Coordinates returns the display coordinates of v (zero for an invalid index).
func (g *Graph) Coordinates(v int) (x, y int) {
	if v < 0 || v >= len(g.vertices) {
		return 0, 0
	}

	return g.vertices[v].X, g.vertices[v].Y
}

// check validates an index against the arena.
func (g *Graph) check(v int) error {
	if v < 0 || v >= len(g.vertices) {
		return fmt.Errorf("core: vertex %d with n=%d: %w", v, len(g.vertices), ErrVertexOutOfRange)
	}

	return nil
}
