// SPDX-License-Identifier: MIT
// Package: partlath/partition
//
// summary.go — YAML run summary.

package partition

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/partlath/core"
)

// Summary is the printable record of one run.
type Summary struct {
	RunID    string           `yaml:"run_id"`
	Method   Method           `yaml:"method"`
	Parts    int              `yaml:"parts"`
	Seed     int64            `yaml:"seed"`
	Vertices int              `yaml:"vertices"`
	Edges    int              `yaml:"edges"`
	Cut      int              `yaml:"edge_cut"`
	Sizes    []int            `yaml:"group_sizes,flow"`
	Frags    []int            `yaml:"group_fragments,flow"`
	KL       *KLSummary       `yaml:"kl,omitempty"`
	Spectral *SpectralSummary `yaml:"spectral,omitempty"`
	Repair   RepairSummary    `yaml:"repair"`
}

// KLSummary holds the winning split size.
type KLSummary struct {
	Split int `yaml:"split"`
}

// SpectralSummary holds the winning rotation and eigen diagnostics.
type SpectralSummary struct {
	Rotation   int     `yaml:"rotation"`
	Eigenvalue float64 `yaml:"eigenvalue"`
	Converged  bool    `yaml:"converged"`
}

// RepairSummary mirrors repair.Report.
type RepairSummary struct {
	Moved      int   `yaml:"moved"`
	Swapped    int   `yaml:"swapped"`
	Passes     int   `yaml:"passes"`
	Unrepaired []int `yaml:"unrepaired,flow"`
}

// NewSummary combines the graph shape with a Run result.
func NewSummary(g *core.Graph, res Result) Summary {
	s := Summary{
		RunID:  res.RunID,
		Method: res.Method,
		Parts:  res.Parts,
		Seed:   res.Seed,
		Cut:    res.Cut,
		Sizes:  res.Sizes,
		Frags:  res.Fragments,
		Repair: RepairSummary{
			Moved:      res.Repair.Moved,
			Swapped:    res.Repair.Swapped,
			Passes:     res.Repair.Passes,
			Unrepaired: res.Repair.Unrepaired,
		},
	}
	if g != nil {
		s.Vertices = g.VertexCount()
		s.Edges = g.EdgeCount()
	}
	switch res.Method {
	case MethodKL:
		s.KL = &KLSummary{Split: res.Split}
	case MethodSpectral:
		s.Spectral = &SpectralSummary{
			Rotation:   res.Rotation,
			Eigenvalue: res.Eigenvalue,
			Converged:  res.Converged,
		}
	}

	return s
}

// WriteSummary encodes s as a YAML document. Write failures wrap core.ErrIO.
func WriteSummary(w io.Writer, s Summary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("partition: summary: %v: %w", err, core.ErrIO)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("partition: summary: %v: %w", err, core.ErrIO)
	}

	return nil
}
