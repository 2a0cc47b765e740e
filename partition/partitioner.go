// SPDX-License-Identifier: MIT
// Package: partlath/partition
//
// partitioner.go — strategy interface and the Run dispatcher.
//
// Design:
//   - One Partitioner per Method; New resolves it.
//   - Run owns the cross-cutting steps: validation, seed resolution, run id,
//     logger context and the final measurement of g.
//   - Strategies label g in place and fill only their method-specific fields.

package partition

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/partlath/bfs"
	"github.com/katalvlaran/partlath/core"
	"github.com/katalvlaran/partlath/kl"
	"github.com/katalvlaran/partlath/repair"
	"github.com/katalvlaran/partlath/spectral"
)

// Partitioner labels every vertex of g with a group in [0, p.Parts).
type Partitioner interface {
	Method() Method
	Partition(g *core.Graph, p Params) (Result, error)
}

// New returns the Partitioner for m. Unknown methods wrap core.ErrConfig.
func New(m Method) (Partitioner, error) {
	switch m {
	case MethodKL:
		return klPartitioner{}, nil
	case MethodSpectral:
		return spectralPartitioner{}, nil
	default:
		return nil, fmt.Errorf("partition: unknown method %q: %w", m, core.ErrConfig)
	}
}

// Run validates p against g, partitions g in place and measures the result.
//
// Implementation:
//   - Stage 1: Validate params and graph invariants.
//   - Stage 2: Resolve seed (0 ⇒ time-based), run id and logger context.
//   - Stage 3: Dispatch; fill the common Result fields from g.
func Run(g *core.Graph, p Params) (Result, error) {
	// Stage 1: validation.
	if g == nil {
		return Result{}, fmt.Errorf("partition: nil graph: %w", core.ErrConfig)
	}
	if err := Validate(p, g.VertexCount()); err != nil {
		return Result{}, err
	}
	if err := g.Validate(); err != nil {
		return Result{}, fmt.Errorf("partition: %w", err)
	}
	strategy, err := New(p.Method)
	if err != nil {
		return Result{}, err
	}

	// Stage 2: run context.
	if p.Seed == 0 {
		p.Seed = timeSeed()
	}
	runID := uuid.NewString()
	p.Logger = p.Logger.With().Str("run", runID).Str("method", string(p.Method)).Logger()
	p.Logger.Debug().
		Int("vertices", g.VertexCount()).
		Int("edges", g.EdgeCount()).
		Int("parts", p.Parts).
		Int("margin", p.Margin).
		Bool("force", p.Force).
		Int64("seed", p.Seed).
		Msg("partition started")

	// Stage 3: dispatch and measure.
	res, err := strategy.Partition(g, p)
	if err != nil {
		return Result{}, err
	}
	res.RunID = runID
	res.Method = p.Method
	res.Parts = p.Parts
	res.Seed = p.Seed
	res.Cut = g.EdgeCut()
	res.Groups = g.Groups()
	if res.Sizes, err = g.GroupSizes(p.Parts); err != nil {
		return Result{}, fmt.Errorf("partition: %w", err)
	}
	if res.Fragments, err = bfs.GroupFragments(g, p.Parts); err != nil {
		return Result{}, fmt.Errorf("partition: %w", err)
	}
	p.Logger.Info().
		Int("cut", res.Cut).
		Ints("sizes", res.Sizes).
		Ints("fragments", res.Fragments).
		Int("unrepaired", len(res.Repair.Unrepaired)).
		Msg("partition complete")

	return res, nil
}

// timeSeed returns a non-zero seed from the wall clock.
func timeSeed() int64 {
	if s := time.Now().UnixNano(); s != 0 {
		return s
	}
	return 1
}

// klPartitioner runs the split-size sweep and then connectivity repair with
// the two-part bounds.
type klPartitioner struct{}

func (klPartitioner) Method() Method { return MethodKL }

func (klPartitioner) Partition(g *core.Graph, p Params) (Result, error) {
	kres, err := kl.BalanceSearch(g, p.Parts, p.Margin, p.Force, kl.Options{Logger: p.Logger})
	if err != nil {
		return Result{}, fmt.Errorf("partition: kl: %w", err)
	}
	rep, err := repair.Repair(g, p.Parts, repair.BoundsFor(g.VertexCount(), p.Parts, p.Margin), repair.Options{
		Force:  p.Force,
		Strict: p.Strict,
		Logger: p.Logger,
	})
	if err != nil {
		return Result{}, fmt.Errorf("partition: kl: %w", err)
	}

	return Result{Split: kres.Split, Repair: rep}, nil
}

// spectralPartitioner maps Params onto spectral.Options; repair runs inside
// spectral.Partition for every rotation.
type spectralPartitioner struct{}

func (spectralPartitioner) Method() Method { return MethodSpectral }

func (spectralPartitioner) Partition(g *core.Graph, p Params) (Result, error) {
	opts := spectral.DefaultOptions()
	if p.Solver != "" {
		opts.Solver = p.Solver
	}
	if p.Banding != "" {
		opts.Banding = p.Banding
	}
	if p.Tolerance > 0 {
		opts.Tolerance = p.Tolerance
	}
	if p.MaxIterFactor > 0 {
		opts.MaxIterFactor = p.MaxIterFactor
	}
	opts.Seed = p.Seed
	opts.Margin = p.Margin
	opts.Force = p.Force
	opts.Strict = p.Strict
	opts.Logger = p.Logger

	sres, err := spectral.Partition(g, p.Parts, opts)
	if err != nil {
		return Result{}, fmt.Errorf("partition: spectral: %w", err)
	}

	return Result{
		Rotation:   sres.Rotation,
		Eigenvalue: sres.Eigen.Value,
		Converged:  sres.Eigen.Converged,
		Repair:     sres.Repair,
	}, nil
}
