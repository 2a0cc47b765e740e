// SPDX-License-Identifier: MIT
// Package: partlath/loader
//
// write.go — emit a graph in the input grammar.

package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/partlath/core"
)

// Write emits g as a single-graph description. Line 1 is max(x)+1. Y must be
// non-decreasing in vertex order and every x within [0, MaxMatrix).
// Each vertex with higher-numbered neighbors becomes one hub group.
func Write(w io.Writer, g *core.Graph) error {
	if g == nil {
		return fmt.Errorf("loader: nil graph: %w", core.ErrConfig)
	}
	n := g.VertexCount()
	if n == 0 {
		return fmt.Errorf("loader: empty graph: %w", core.ErrFormat)
	}

	xs := make([]int, n)
	rowOff := []int{0}
	width, lastY := 0, 0
	for v := 0; v < n; v++ {
		x, y := g.Coordinates(v)
		if x < 0 || x >= MaxMatrix {
			return fmt.Errorf("loader: vertex %d x=%d outside [0,%d): %w", v, x, MaxMatrix, core.ErrFormat)
		}
		if y < lastY {
			return fmt.Errorf("loader: vertex %d row %d after row %d: %w", v, y, lastY, core.ErrFormat)
		}
		for ; lastY < y; lastY++ {
			rowOff = append(rowOff, v)
		}
		xs[v] = x
		width = max(width, x+1)
	}
	rowOff = append(rowOff, n)

	var conns, offs []int
	for u := 0; u < n; u++ {
		start := len(conns)
		for _, v := range g.Neighbors(u) {
			if v > u {
				if len(conns) == start {
					conns = append(conns, u)
				}
				conns = append(conns, v)
			}
		}
		if len(conns) > start {
			offs = append(offs, start)
		}
	}
	offs = append(offs, len(conns))
	if len(conns) == 0 {
		// Line 4 must not be empty: a lone hub without partners adds no edge.
		conns = []int{0}
		offs = []int{0, 1}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", width)
	for _, list := range [][]int{xs, rowOff, conns, offs} {
		writeList(bw, list)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("loader: write: %v: %w", err, core.ErrIO)
	}

	return nil
}

func writeList(bw *bufio.Writer, list []int) {
	var buf []byte
	for i, v := range list {
		if i > 0 {
			buf = append(buf, ';')
		}
		buf = strconv.AppendInt(buf, int64(v), 10)
	}
	buf = append(buf, '\n')
	bw.Write(buf)
}
