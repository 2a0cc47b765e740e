// File: methods_clone.go
// Role: deep copies of the arena.

package core

import "slices"

// Clone returns a deep copy: topology, coordinates and partition state.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := &Graph{vertices: make([]Vertex, len(g.vertices)), edges: g.edges}
	for i := range g.vertices {
		clone.vertices[i] = g.vertices[i]
		clone.vertices[i].neighbors = slices.Clone(g.vertices[i].neighbors)
	}

	return clone
}

// CloneTopology returns a copy with identical topology and coordinates but
// zeroed partition state (labels 0, scratch cleared).
// Complexity: O(V + E).
func (g *Graph) CloneTopology() *Graph {
	clone := g.Clone()
	for i := range clone.vertices {
		clone.vertices[i].Group = 0
	}
	clone.ResetScratch()

	return clone
}
