// SPDX-License-Identifier: MIT
// Package: partlath/codec
//
// document.go — decoded artifact.

package codec

import (
	"fmt"

	"github.com/katalvlaran/partlath/core"
)

// DocVertex is one decoded vertex record.
type DocVertex struct {
	X, Y      int
	Group     int
	Neighbors []int
}

// Document is a decoded binary or ascii artifact.
type Document struct {
	// FileID and Checksum are zero for ascii documents.
	FileID   uint32
	Checksum uint32
	// Parts is the stored group count (ascii) or max group + 1 (binary).
	Parts    int
	Vertices []DocVertex
}

// Groups returns labels in vertex order.
func (d *Document) Groups() []int {
	out := make([]int, len(d.Vertices))
	for i := range d.Vertices {
		out[i] = d.Vertices[i].Group
	}
	return out
}

// Graph rebuilds a core.Graph, re-validating symmetry and index bounds.
func (d *Document) Graph() (*core.Graph, error) {
	n := len(d.Vertices)
	adj := make([][]int, n)
	xs, ys := make([]int, n), make([]int, n)
	for i, v := range d.Vertices {
		adj[i] = v.Neighbors
		xs[i], ys[i] = v.X, v.Y
	}
	g, err := core.FromAdjacency(adj, core.WithCoordinates(xs, ys), core.WithGroups(d.Groups()))
	if err != nil {
		return nil, fmt.Errorf("codec: document: %w", err)
	}

	return g, nil
}

func (d *Document) maxGroup() int {
	best := 0
	for i := range d.Vertices {
		best = max(best, d.Vertices[i].Group)
	}
	return best
}
