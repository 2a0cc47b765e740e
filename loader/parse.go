// SPDX-License-Identifier: MIT
// Package: partlath/loader
//
// parse.go — input reader.

package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/partlath/core"
)

// Input is a parsed graph description.
type Input struct {
	// MaxMatrix is the grid width declared on line 1.
	MaxMatrix int
	// GraphCount is the number of group-offset lines in the file.
	GraphCount int
	// Graph carries coordinates; all labels are 0.
	Graph *core.Graph
}

// ParseFile opens path and runs Parse. Open failures wrap core.ErrIO.
func ParseFile(path string, graphIndex int) (*Input, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %s: %v: %w", path, err, core.ErrIO)
	}
	defer fh.Close()

	return Parse(fh, graphIndex)
}

// Parse reads a description from r and builds the graph selected by graphIndex.
//
// Implementation:
//   - Stage 1: Collect non-blank lines; resolve graphIndex.
//   - Stage 2: Tokenize and validate lines 1–4 and the selected offsets line.
//   - Stage 3: Derive rows; expand hub groups into edges; core.Build.
func Parse(r io.Reader, graphIndex int) (*Input, error) {
	// Stage 1: lines.
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	var lines []string
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			lines = append(lines, s)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("loader: read: %v: %w", err, core.ErrIO)
	}
	if len(lines) <= headerLines {
		return nil, fmt.Errorf("loader: %d lines, need at least %d: %w", len(lines), headerLines+1, core.ErrFormat)
	}
	graphs := len(lines) - headerLines
	switch {
	case graphIndex < 0:
		return nil, fmt.Errorf("loader: index %d: %w", graphIndex, ErrGraphIndex)
	case graphIndex == 0 && graphs > 1:
		return nil, fmt.Errorf("loader: file holds %d graphs, an index is required: %w", graphs, ErrGraphIndex)
	case graphIndex > 0 && graphs == 1:
		return nil, fmt.Errorf("loader: file holds a single graph, index %d not allowed: %w", graphIndex, ErrGraphIndex)
	case graphIndex > graphs:
		return nil, fmt.Errorf("loader: index %d, file holds %d graphs: %w", graphIndex, graphs, ErrGraphIndex)
	}
	selected := headerLines
	if graphIndex > 0 {
		selected = headerLines + graphIndex - 1
	}

	// Stage 2: tokens.
	maxMatrix, err := strconv.Atoi(lines[0])
	if err != nil || maxMatrix < 0 || maxMatrix > MaxMatrix {
		return nil, fmt.Errorf("loader: line 1: %q is not an integer in [0,%d]: %w", lines[0], MaxMatrix, core.ErrFormat)
	}
	xs, err := ints(lines[1], 2)
	if err != nil {
		return nil, err
	}
	rowOff, err := ints(lines[2], 3)
	if err != nil {
		return nil, err
	}
	conns, err := ints(lines[3], 4)
	if err != nil {
		return nil, err
	}
	offs, err := ints(lines[selected], selected+1)
	if err != nil {
		return nil, err
	}

	n := len(xs)
	if n == 0 {
		return nil, fmt.Errorf("loader: line 2: no vertices: %w", core.ErrFormat)
	}
	for i, x := range xs {
		if x < 0 || x > maxMatrix {
			return nil, fmt.Errorf("loader: line 2: x[%d]=%d outside [0,%d]: %w", i, x, maxMatrix, core.ErrFormat)
		}
	}
	if err = checkOffsets(rowOff, n, 3); err != nil {
		return nil, err
	}
	if rowOff[0] != 0 || rowOff[len(rowOff)-1] != n {
		return nil, fmt.Errorf("loader: line 3: offsets must run from 0 to %d: %w", n, core.ErrFormat)
	}
	for i, c := range conns {
		if c < 0 || c >= n {
			return nil, fmt.Errorf("loader: line 4: connection %d is vertex %d, n=%d: %w", i, c, n, core.ErrFormat)
		}
	}
	if err = checkOffsets(offs, len(conns), selected+1); err != nil {
		return nil, err
	}

	// Stage 3: graph.
	ys := make([]int, n)
	for y := 0; y+1 < len(rowOff); y++ {
		for i := rowOff[y]; i < rowOff[y+1]; i++ {
			ys[i] = y
		}
	}
	var edges [][2]int
	bounds := append(offs, len(conns))
	for k := 0; k+1 < len(bounds); k++ {
		start, end := bounds[k], bounds[k+1]
		if start >= end {
			continue
		}
		hub := conns[start]
		for _, to := range conns[start+1 : end] {
			if to != hub {
				edges = append(edges, [2]int{hub, to})
			}
		}
	}
	g, err := core.Build(n, edges, core.WithCoordinates(xs, ys))
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}

	return &Input{MaxMatrix: maxMatrix, GraphCount: graphs, Graph: g}, nil
}

// ints tokenizes a ';'-separated line; empty tokens are skipped.
func ints(line string, lineNo int) ([]int, error) {
	var out []int
	for _, tok := range strings.Split(line, ";") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("loader: line %d: %q is not an integer: %w", lineNo, tok, core.ErrFormat)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("loader: line %d: empty list: %w", lineNo, core.ErrFormat)
	}

	return out, nil
}

// checkOffsets requires 0 ≤ off[0] ≤ off[1] ≤ … ≤ limit.
func checkOffsets(off []int, limit, lineNo int) error {
	prev := 0
	for i, o := range off {
		if o < prev || o > limit {
			return fmt.Errorf("loader: line %d: offset %d (%d) breaks 0 ≤ … ≤ %d ordering: %w", lineNo, i, o, limit, core.ErrFormat)
		}
		prev = o
	}

	return nil
}
