// SPDX-License-Identifier: MIT
// Package: partlath/bfs
//
// components.go — connected components and per-group fragment counts.

package bfs

import (
	"fmt"

	"github.com/katalvlaran/partlath/core"
)

// Components returns the connected components of g under the given options,
// each listed in visit order. Seeds are taken in ascending vertex order, so
// components are ordered by their smallest vertex.
//
// Time: O(V + E). Memory: O(V).
func Components(g *core.Graph, opts ...Option) ([][]int, error) {
	w, err := newWalker(g, opts)
	if err != nil {
		return nil, err
	}

	var comps [][]int
	for v := 0; v < g.VertexCount(); v++ {
		if w.visited[v] {
			continue
		}
		from := len(w.res.Order)
		if err = w.walk(v); err != nil {
			return nil, err
		}
		comps = append(comps, w.res.Order[from:len(w.res.Order):len(w.res.Order)])
	}

	return comps, nil
}

// GroupFragments returns, for every group p in [0, parts), the number of
// connected components of the subgraph induced by group p. Empty groups
// count 0.
func GroupFragments(g *core.Graph, parts int) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if err := g.CheckGroups(parts); err != nil {
		return nil, fmt.Errorf("bfs: %w", err)
	}
	comps, err := Components(g, WithFilterNeighbor(SameGroup(g)))
	if err != nil {
		return nil, err
	}
	frags := make([]int, parts)
	for _, c := range comps {
		frags[g.Group(c[0])]++
	}

	return frags, nil
}
