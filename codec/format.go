// SPDX-License-Identifier: MIT
// Package: partlath/codec
//
// format.go — output format selector and encode options.

package codec

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/partlath/core"
)

// Format names an output encoding.
type Format string

const (
	FormatBinary Format = "binary"
	FormatASCII  Format = "ascii"
)

// ParseFormat accepts "binary" or "ascii" (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatBinary, FormatASCII:
		return f, nil
	default:
		return "", fmt.Errorf("codec: unknown format %q: %w", s, core.ErrConfig)
	}
}

// Option customizes encoding.
type Option func(*encodeConfig)

type encodeConfig struct {
	rng    *rand.Rand
	fileID *uint32
	logger zerolog.Logger
}

func newEncodeConfig(opts ...Option) encodeConfig {
	cfg := encodeConfig{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil && cfg.fileID == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return cfg
}

// WithRand draws the file id from r. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("codec: WithRand(nil)")
	}
	return func(c *encodeConfig) {
		c.rng = r
	}
}

// WithFileID fixes the file id.
func WithFileID(id uint32) Option {
	return func(c *encodeConfig) {
		c.fileID = &id
	}
}

// WithLogger receives an info event per written or verified file.
func WithLogger(l zerolog.Logger) Option {
	return func(c *encodeConfig) {
		c.logger = l
	}
}

func (c encodeConfig) nextFileID() uint32 {
	if c.fileID != nil {
		return *c.fileID
	}
	return c.rng.Uint32()
}
