// SPDX-License-Identifier: MIT
// Package: partlath/codec
//
// binary.go — checksummed binary writer, verifier and reader.

package codec

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/partlath/core"
)

const (
	markerV1   byte = 0x01
	headerSize      = 9
	idOffset        = 1
	sumOffset       = 5
)

// EncodeBinary writes g to w in the binary format.
//
// Implementation:
//   - Stage 1: Encode the body into memory, rejecting values beyond uint16.
//   - Stage 2: Hash the body; build the header with id and checksum.
//   - Stage 3: Write header then body.
func EncodeBinary(w io.Writer, g *core.Graph, opts ...Option) error {
	cfg := newEncodeConfig(opts...)

	// Stage 1: body.
	body, err := encodeBody(g)
	if err != nil {
		return err
	}

	// Stage 2: header.
	var header [headerSize]byte
	header[0] = markerV1
	binary.LittleEndian.PutUint32(header[idOffset:], cfg.nextFileID())
	sum := checksum(body)
	binary.LittleEndian.PutUint32(header[sumOffset:], sum)

	// Stage 3: output.
	if _, err = w.Write(header[:]); err != nil {
		return fmt.Errorf("codec: write header: %v: %w", err, core.ErrIO)
	}
	if _, err = w.Write(body); err != nil {
		return fmt.Errorf("codec: write body: %v: %w", err, core.ErrIO)
	}

	return nil
}

// encodeBody serializes every vertex; all fields must fit uint16.
func encodeBody(g *core.Graph) ([]byte, error) {
	if g == nil {
		return nil, fmt.Errorf("codec: nil graph: %w", core.ErrConfig)
	}
	n := g.VertexCount()
	if n > math.MaxUint16+1 {
		return nil, fmt.Errorf("codec: %d vertices exceed uint16 ids: %w", n, core.ErrFormat)
	}

	body := make([]byte, 0, n*8+g.EdgeCount()*4)
	var err error
	put := func(v int, what string, id int) {
		if err != nil {
			return
		}
		if v < 0 || v > math.MaxUint16 {
			err = fmt.Errorf("codec: vertex %d %s=%d does not fit uint16: %w", id, what, v, core.ErrFormat)
			return
		}
		body = binary.LittleEndian.AppendUint16(body, uint16(v))
	}

	for v := 0; v < n && err == nil; v++ {
		x, y := g.Coordinates(v)
		nbrs := g.Neighbors(v)
		put(x, "x", v)
		put(y, "y", v)
		put(g.Group(v), "group", v)
		put(len(nbrs), "edge count", v)
		for _, u := range nbrs {
			put(u, "neighbor", v)
		}
	}
	if err != nil {
		return nil, err
	}

	return body, nil
}

// checksum returns the first 4 digest bytes as a little-endian uint32.
func checksum(body []byte) uint32 {
	digest := sha256.Sum256(body)
	return binary.LittleEndian.Uint32(digest[:4])
}

// Verify reads a whole binary artifact and reports whether its stored
// checksum matches the body. Read failures wrap core.ErrIO; a short or
// unmarked header wraps core.ErrFormat.
func Verify(r io.Reader) (bool, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return false, fmt.Errorf("codec: read: %v: %w", err, core.ErrIO)
	}

	return verifyBytes(data)
}

func verifyBytes(data []byte) (bool, error) {
	if len(data) < headerSize {
		return false, fmt.Errorf("codec: %d bytes is shorter than the header: %w", len(data), core.ErrFormat)
	}
	if data[0] != markerV1 {
		return false, fmt.Errorf("codec: marker 0x%02x: %w", data[0], core.ErrFormat)
	}
	stored := binary.LittleEndian.Uint32(data[sumOffset:headerSize])

	return stored == checksum(data[headerSize:]), nil
}

// ReadBinary decodes a binary artifact. A checksum mismatch wraps
// core.ErrChecksumMismatch; truncated records wrap core.ErrFormat.
func ReadBinary(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("codec: read: %v: %w", err, core.ErrIO)
	}
	ok, err := verifyBytes(data)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("codec: stored checksum differs from body: %w", core.ErrChecksumMismatch)
	}

	doc := &Document{
		FileID:   binary.LittleEndian.Uint32(data[idOffset:sumOffset]),
		Checksum: binary.LittleEndian.Uint32(data[sumOffset:headerSize]),
	}
	body := data[headerSize:]
	next := func() (int, bool) {
		if len(body) < 2 {
			return 0, false
		}
		v := int(binary.LittleEndian.Uint16(body))
		body = body[2:]
		return v, true
	}

	for id := 0; len(body) > 0; id++ {
		var (
			rec    DocVertex
			fields [4]int
			ok     bool
		)
		for k := range fields {
			if fields[k], ok = next(); !ok {
				return nil, fmt.Errorf("codec: vertex %d: truncated record: %w", id, core.ErrFormat)
			}
		}
		rec.X, rec.Y, rec.Group = fields[0], fields[1], fields[2]
		rec.Neighbors = make([]int, fields[3])
		for k := range rec.Neighbors {
			if rec.Neighbors[k], ok = next(); !ok {
				return nil, fmt.Errorf("codec: vertex %d: truncated neighbor list: %w", id, core.ErrFormat)
			}
		}
		doc.Vertices = append(doc.Vertices, rec)
	}
	doc.Parts = doc.maxGroup() + 1

	return doc, nil
}
