// SPDX-License-Identifier: MIT
// Package: partlath/spectral
//
// partition.go — ordering, banding, rotations and repair.
//
// Contract:
//   - 2 ≤ parts ≤ n (else core.ErrConfig / core.ErrInfeasible).
//   - On success g carries the winning labelling, every label in [0, parts).
//   - Non-convergence never fails the call.

package spectral

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/partlath/core"
	"github.com/katalvlaran/partlath/repair"
)

// Partition splits g into parts groups by eigenvector banding.
//
// Implementation:
//   - Stage 1: Validate; compute the eigenvector (soft on ErrNotConverged).
//   - Stage 2: Stable ascending order by component.
//   - Stage 3: Band, repair and measure each rotation; keep the first minimum.
//   - Stage 4: Restore the winner; enforce Strict.
func Partition(g *core.Graph, parts int, opts Options) (Result, error) {
	// Stage 1: validation and eigenvector.
	if g == nil {
		return Result{}, fmt.Errorf("spectral: nil graph: %w", core.ErrConfig)
	}
	n := g.VertexCount()
	if n < 2 {
		return Result{}, fmt.Errorf("spectral: n=%d: %w", n, core.ErrNumeric)
	}
	if parts < 2 {
		return Result{}, fmt.Errorf("spectral: parts=%d: %w", parts, core.ErrConfig)
	}
	if parts > n {
		return Result{}, fmt.Errorf("spectral: parts=%d > n=%d: %w", parts, n, core.ErrInfeasible)
	}
	opts = normalize(opts)
	if opts.Banding != BandRotate && opts.Banding != BandModulo && opts.Banding != BandBlock {
		return Result{}, fmt.Errorf("spectral: unknown banding %q: %w", opts.Banding, core.ErrConfig)
	}

	eig, err := FiedlerVector(g, opts)
	if err != nil {
		if !errors.Is(err, ErrNotConverged) {
			return Result{}, err
		}
		opts.Logger.Warn().
			Int("iterations", eig.Iterations).
			Msg("eigenvector did not converge; using last iterate")
	}

	// Stage 2: ordering.
	order := SortedOrder(eig.Vector)

	// Stage 3: rotations.
	bounds := repair.BoundsFor(n, parts, opts.Margin)
	ropts := repair.Options{Force: opts.Force, Logger: opts.Logger}
	rotations := parts
	if opts.Banding == BandModulo {
		rotations = 1
	}

	var (
		best  Result
		found bool
	)
	for r := 0; r < rotations; r++ {
		g.ResetScratch()
		band(g, order, parts, r, opts.Banding)
		rep, err := repair.Repair(g, parts, bounds, ropts)
		if err != nil {
			return Result{}, fmt.Errorf("spectral: rotation %d: %w", r, err)
		}
		cut := g.EdgeCut()
		opts.Logger.Debug().
			Int("rotation", r).
			Int("cut", cut).
			Int("moved", rep.Moved).
			Int("swapped", rep.Swapped).
			Msg("spectral rotation evaluated")
		if !found || cut < best.Cut {
			best = Result{Cut: cut, Rotation: r, Groups: g.Groups(), Repair: rep}
			found = true
		}
	}

	// Stage 4: winner.
	if err = g.SetGroups(best.Groups); err != nil {
		return Result{}, fmt.Errorf("spectral: %w", err)
	}
	best.Order = order
	best.Eigen = eig
	if opts.Strict && len(best.Repair.Unrepaired) > 0 {
		return best, fmt.Errorf("spectral: %d unrepaired vertices: %w", len(best.Repair.Unrepaired), core.ErrInfeasible)
	}

	return best, nil
}

// SortedOrder returns vertex ids sorted by vec ascending, ties by id.
func SortedOrder(vec []float64) []int {
	order := make([]int, len(vec))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(vec[a], vec[b])
	})

	return order
}

// band labels the i-th vertex of order under the chosen strategy and rotation r.
func band(g *core.Graph, order []int, parts, r int, strategy Banding) {
	n := len(order)
	for i, v := range order {
		pos := i
		if strategy == BandBlock {
			pos = i * parts / n
		}
		_ = g.SetGroup(v, (pos+r)%parts) // v is from order, label ≥ 0
	}
}
