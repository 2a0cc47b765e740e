// SPDX-License-Identifier: MIT
// Package: partlath/codec
//
// file.go — path-based helpers.

package codec

import (
	"bufio"
	"bytes"
	"fmt"
	"os"

	"github.com/katalvlaran/partlath/core"
)

// WriteFile encodes g in format f and writes it to path. Encoding happens in
// memory first, so an encoding failure leaves an existing file untouched.
// Open, write and close failures wrap core.ErrIO.
func WriteFile(path string, f Format, g *core.Graph, opts ...Option) (err error) {
	if f != FormatBinary && f != FormatASCII {
		return fmt.Errorf("codec: unknown format %q: %w", f, core.ErrConfig)
	}
	cfg := newEncodeConfig(opts...)

	var buf bytes.Buffer
	if f == FormatBinary {
		err = EncodeBinary(&buf, g, opts...)
	} else {
		err = EncodeASCII(&buf, g)
	}
	if err != nil {
		return err
	}

	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("codec: open %s: %v: %w", path, err, core.ErrIO)
	}
	defer func() {
		if cerr := fh.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("codec: close %s: %v: %w", path, cerr, core.ErrIO)
		}
	}()
	if _, err = buf.WriteTo(fh); err != nil {
		return fmt.Errorf("codec: write %s: %v: %w", path, err, core.ErrIO)
	}
	cfg.logger.Info().Str("path", path).Str("format", string(f)).Int("vertices", g.VertexCount()).Msg("partition written")

	return nil
}

// VerifyFile opens path and runs Verify.
func VerifyFile(path string, opts ...Option) (bool, error) {
	cfg := newEncodeConfig(opts...)
	fh, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("codec: open %s: %v: %w", path, err, core.ErrIO)
	}
	defer fh.Close()

	ok, err := Verify(bufio.NewReader(fh))
	if err != nil {
		return false, err
	}
	cfg.logger.Info().Str("path", path).Bool("match", ok).Msg("checksum verified")

	return ok, nil
}

// ReadFile decodes path in format f.
func ReadFile(path string, f Format) (*Document, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("codec: open %s: %v: %w", path, err, core.ErrIO)
	}
	defer fh.Close()

	switch f {
	case FormatBinary:
		return ReadBinary(bufio.NewReader(fh))
	case FormatASCII:
		return ReadASCII(bufio.NewReader(fh))
	default:
		return nil, fmt.Errorf("codec: unknown format %q: %w", f, core.ErrConfig)
	}
}
