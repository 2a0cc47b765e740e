// SPDX-License-Identifier: MIT
// Package: partlath/codec
//
// ascii.go — human-readable writer and reader.

package codec

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/partlath/core"
)

// EncodeASCII writes g to w in the ascii format.
func EncodeASCII(w io.Writer, g *core.Graph) error {
	if g == nil {
		return fmt.Errorf("codec: nil graph: %w", core.ErrConfig)
	}
	bw := bufio.NewWriter(w)
	n := g.VertexCount()
	fmt.Fprintf(bw, "%d\n%d\n", n, g.MaxGroup()+1)

	var line []byte
	for v := 0; v < n; v++ {
		x, y := g.Coordinates(v)
		nbrs := g.Neighbors(v)
		line = line[:0]
		for _, f := range [...]int{x, y, g.Group(v), len(nbrs)} {
			line = strconv.AppendInt(line, int64(f), 10)
			line = append(line, ';')
		}
		for _, u := range nbrs {
			line = strconv.AppendInt(line, int64(u), 10)
			line = append(line, ';')
		}
		line = append(line, '\n')
		bw.Write(line)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("codec: write ascii: %v: %w", err, core.ErrIO)
	}

	return nil
}

// ReadASCII decodes the ascii format. Malformed content wraps core.ErrFormat.
func ReadASCII(r io.Reader) (*Document, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNo := 0
	nextLine := func() (string, bool) {
		for sc.Scan() {
			lineNo++
			if s := strings.TrimSpace(sc.Text()); s != "" {
				return s, true
			}
		}
		return "", false
	}
	missing := func(what string) error {
		if err := sc.Err(); err != nil {
			return fmt.Errorf("codec: read ascii: %v: %w", err, core.ErrIO)
		}
		return fmt.Errorf("codec: missing %s: %w", what, core.ErrFormat)
	}
	header := func(what string) (int, error) {
		s, ok := nextLine()
		if !ok {
			return 0, missing(what + " line")
		}
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			return 0, fmt.Errorf("codec: line %d: bad %s %q: %w", lineNo, what, s, core.ErrFormat)
		}
		return v, nil
	}

	n, err := header("vertex count")
	if err != nil {
		return nil, err
	}
	if n > math.MaxUint16+1 {
		return nil, fmt.Errorf("codec: line %d: %d vertices exceed uint16 ids: %w", lineNo, n, core.ErrFormat)
	}
	parts, err := header("group count")
	if err != nil {
		return nil, err
	}

	doc := &Document{Parts: parts, Vertices: make([]DocVertex, 0, n)}
	for id := 0; id < n; id++ {
		s, ok := nextLine()
		if !ok {
			return nil, missing(fmt.Sprintf("vertex line %d of %d", id+1, n))
		}
		vals, err := splitInts(s)
		if err != nil || len(vals) < 4 {
			return nil, fmt.Errorf("codec: line %d: bad vertex record %q: %w", lineNo, s, core.ErrFormat)
		}
		if vals[3] != len(vals)-4 {
			return nil, fmt.Errorf("codec: line %d: edge count %d but %d neighbors: %w", lineNo, vals[3], len(vals)-4, core.ErrFormat)
		}
		doc.Vertices = append(doc.Vertices, DocVertex{
			X: vals[0], Y: vals[1], Group: vals[2],
			Neighbors: vals[4:],
		})
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("codec: read ascii: %v: %w", err, core.ErrIO)
	}
	if extra, ok := nextLine(); ok {
		return nil, fmt.Errorf("codec: line %d: trailing content %q: %w", lineNo, extra, core.ErrFormat)
	}

	return doc, nil
}

// splitInts parses "a;b;c;" (trailing separator optional).
func splitInts(s string) ([]int, error) {
	s = strings.TrimSuffix(s, ";")
	if s == "" {
		return nil, nil
	}
	fields := strings.Split(s, ";")
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}
