// File: methods_adjacent.go
// Role: neighborhood queries and defensive structural validation.
// Determinism:
//   - Neighbors and Edges are returned in ascending index order.

package core

import (
	"fmt"
	"slices"
)

// Neighbors returns the sorted adjacency list of v, or nil for an invalid index.
// The slice aliases the arena; callers must treat it as read-only.
// Complexity: O(1).
func (g *Graph) Neighbors(v int) []int {
	if v < 0 || v >= len(g.vertices) {
		return nil
	}

	return g.vertices[v].neighbors
}

// Degree returns the number of neighbors of v (0 for an invalid index).
// Complexity: O(1).
func (g *Graph) Degree(v int) int {
	if v < 0 || v >= len(g.vertices) {
		return 0
	}

	return len(g.vertices[v].neighbors)
}

// MaxDegree returns the largest vertex degree (0 for an empty graph).
// Complexity: O(V).
func (g *Graph) MaxDegree() int {
	best := 0
	for i := range g.vertices {
		if d := len(g.vertices[i].neighbors); d > best {
			best = d
		}
	}

	return best
}

// HasEdge reports whether u and v are adjacent.
// Complexity: O(log deg(u)).
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || u >= len(g.vertices) || v < 0 || v >= len(g.vertices) {
		return false
	}
	_, found := slices.BinarySearch(g.vertices[u].neighbors, v)

	return found
}

// Edges returns every undirected edge once as (u,v) with u < v, ordered by u then v.
// Complexity: O(V + E) time and space.
func (g *Graph) Edges() [][2]int {
	out := make([][2]int, 0, g.edges)
	for u := range g.vertices {
		for _, v := range g.vertices[u].neighbors {
			if u < v {
				out = append(out, [2]int{u, v})
			}
		}
	}

	return out
}

// Validate re-checks the structural invariants of the arena: index bounds,
// no self-loops, strictly ascending lists, symmetry and the edge counter.
// Algorithms call it before trusting a Graph handed over by a loader.
//
// Complexity: O(V + E log Δ).
func (g *Graph) Validate() error {
	n := len(g.vertices)
	total := 0
	for u := range g.vertices {
		if g.vertices[u].ID != u {
			return fmt.Errorf("core: Validate: slot %d holds id %d: %w", u, g.vertices[u].ID, ErrFormat)
		}
		list := g.vertices[u].neighbors
		for k, v := range list {
			if v < 0 || v >= n {
				return fmt.Errorf("core: Validate: %d lists %d with n=%d: %w", u, v, n, ErrVertexOutOfRange)
			}
			if v == u {
				return fmt.Errorf("core: Validate: self-loop on %d: %w", u, ErrFormat)
			}
			if k > 0 && list[k-1] >= v {
				return fmt.Errorf("core: Validate: list of %d not strictly ascending: %w", u, ErrFormat)
			}
			if !g.HasEdge(v, u) {
				return fmt.Errorf("core: Validate: %d lists %d but not vice versa: %w", u, v, ErrFormat)
			}
		}
		total += len(list)
	}
	if total != 2*g.edges {
		return fmt.Errorf("core: Validate: edge counter %d, adjacency holds %d half-edges: %w", g.edges, total, ErrFormat)
	}

	return nil
}
