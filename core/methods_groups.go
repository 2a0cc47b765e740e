// File: methods_groups.go
// Role: partition state - labels, scratch fields, snapshots, edge cut.
// Policy:
//   - Only Group/Gain/Fixed/Processed ever mutate after construction.
//   - Snapshots are plain []int so callers can keep several "best so far" states.

package core

import "fmt"

// Group returns the partition label of v (0 for an invalid index).
// Complexity: O(1).
func (g *Graph) Group(v int) int {
	if v < 0 || v >= len(g.vertices) {
		return 0
	}

	return g.vertices[v].Group
}

// SetGroup assigns label p to v. Negative labels are rejected.
// Complexity: O(1).
func (g *Graph) SetGroup(v, p int) error {
	if err := g.check(v); err != nil {
		return err
	}
	if p < 0 {
		return fmt.Errorf("core: SetGroup(%d, %d): %w", v, p, ErrGroupOutOfRange)
	}
	g.vertices[v].Group = p

	return nil
}

// SwapGroups exchanges the labels of u and v.
// Complexity: O(1).
func (g *Graph) SwapGroups(u, v int) error {
	if err := g.check(u); err != nil {
		return err
	}
	if err := g.check(v); err != nil {
		return err
	}
	g.vertices[u].Group, g.vertices[v].Group = g.vertices[v].Group, g.vertices[u].Group

	return nil
}

// Groups returns a snapshot of every label in vertex order.
// Complexity: O(V) time and space.
func (g *Graph) Groups() []int {
	out := make([]int, len(g.vertices))
	for i := range g.vertices {
		out[i] = g.vertices[i].Group
	}

	return out
}

// SetGroups restores a snapshot produced by Groups.
// Complexity: O(V).
func (g *Graph) SetGroups(groups []int) error {
	if len(groups) != len(g.vertices) {
		return fmt.Errorf("core: SetGroups: %d labels for %d vertices: %w", len(groups), len(g.vertices), ErrFormat)
	}
	for i, p := range groups {
		if p < 0 {
			return fmt.Errorf("core: SetGroups: vertex %d label %d: %w", i, p, ErrGroupOutOfRange)
		}
	}
	for i, p := range groups {
		g.vertices[i].Group = p
	}

	return nil
}

// AssignByOrder labels the first split vertices of order with 0 and the rest
// with 1. A nil order means identity (0..n-1). The order must be a permutation.
// Complexity: O(V).
func (g *Graph) AssignByOrder(order []int, split int) error {
	n := len(g.vertices)
	if split < 0 || split > n {
		return fmt.Errorf("core: AssignByOrder: split %d with n=%d: %w", split, n, ErrInfeasible)
	}
	if order == nil {
		for i := range g.vertices {
			if i < split {
				g.vertices[i].Group = 0
			} else {
				g.vertices[i].Group = 1
			}
		}
		return nil
	}
	if err := checkPermutation(order, n); err != nil {
		return err
	}
	for pos, v := range order {
		if pos < split {
			g.vertices[v].Group = 0
		} else {
			g.vertices[v].Group = 1
		}
	}

	return nil
}

// checkPermutation verifies order is a permutation of 0..n-1.
func checkPermutation(order []int, n int) error {
	if len(order) != n {
		return fmt.Errorf("core: order has %d entries for %d vertices: %w", len(order), n, ErrConfig)
	}
	seen := make([]bool, n)
	for _, v := range order {
		if v < 0 || v >= n {
			return fmt.Errorf("core: order entry %d with n=%d: %w", v, n, ErrVertexOutOfRange)
		}
		if seen[v] {
			return fmt.Errorf("core: order repeats vertex %d: %w", v, ErrConfig)
		}
		seen[v] = true
	}

	return nil
}

// GroupSizes counts vertices per label in [0, parts).
// Labels outside the range fail with ErrGroupOutOfRange.
// Complexity: O(V).
func (g *Graph) GroupSizes(parts int) ([]int, error) {
	if parts < 1 {
		return nil, fmt.Errorf("core: GroupSizes: parts=%d: %w", parts, ErrConfig)
	}
	sizes := make([]int, parts)
	for i := range g.vertices {
		p := g.vertices[i].Group
		if p < 0 || p >= parts {
			return nil, fmt.Errorf("core: GroupSizes: vertex %d label %d, parts=%d: %w", i, p, parts, ErrGroupOutOfRange)
		}
		sizes[p]++
	}

	return sizes, nil
}

// CheckGroups verifies every label lies in [0, parts).
// Complexity: O(V).
func (g *Graph) CheckGroups(parts int) error {
	_, err := g.GroupSizes(parts)

	return err
}

// MaxGroup returns the largest label in use (0 for an empty graph).
// Complexity: O(V).
func (g *Graph) MaxGroup() int {
	best := 0
	for i := range g.vertices {
		if g.vertices[i].Group > best {
			best = g.vertices[i].Group
		}
	}

	return best
}

// EdgeCut counts edges whose endpoints carry different labels, each edge once.
// Complexity: O(V + E).
func (g *Graph) EdgeCut() int {
	cut := 0
	for u := range g.vertices {
		for _, v := range g.vertices[u].neighbors {
			if u < v && g.vertices[u].Group != g.vertices[v].Group {
				cut++
			}
		}
	}

	return cut
}

// ExternalInternal returns how many neighbors of v sit outside and inside v's group.
// Complexity: O(deg(v)).
func (g *Graph) ExternalInternal(v int) (external, internal int) {
	if v < 0 || v >= len(g.vertices) {
		return 0, 0
	}
	own := g.vertices[v].Group
	for _, u := range g.vertices[v].neighbors {
		if g.vertices[u].Group == own {
			internal++
		} else {
			external++
		}
	}

	return external, internal
}

// HasNeighborIn reports whether v has at least one neighbor labelled p,
// ignoring the vertex skip (pass -1 to ignore nothing).
// Complexity: O(deg(v)).
func (g *Graph) HasNeighborIn(v, p, skip int) bool {
	if v < 0 || v >= len(g.vertices) {
		return false
	}
	for _, u := range g.vertices[v].neighbors {
		if u != skip && g.vertices[u].Group == p {
			return true
		}
	}

	return false
}

// ResetScratch clears Gain, Fixed and Processed on every vertex.
// Complexity: O(V).
func (g *Graph) ResetScratch() {
	for i := range g.vertices {
		g.vertices[i].Gain = 0
		g.vertices[i].Fixed = false
		g.vertices[i].Processed = false
	}
}

// ResetFixed clears only the Fixed flags.
// Complexity: O(V).
func (g *Graph) ResetFixed() {
	for i := range g.vertices {
		g.vertices[i].Fixed = false
	}
}

// ResetProcessed clears only the Processed flags.
// Complexity: O(V).
func (g *Graph) ResetProcessed() {
	for i := range g.vertices {
		g.vertices[i].Processed = false
	}
}
