// SPDX-License-Identifier: MIT
// Package: partlath/kl
//
// balance.go — BalanceSearch: sweep admissible split sizes, keep the best cut.
//
// Admissible sizes:
//   ideal = ⌊n/2⌋, half = ⌊⌊n·margin/100⌋ / 2⌋, sizes ∈ [ideal−half, ideal+half] ∩ [1, n−1].
//   force collapses the window to {ideal}.
//   margin 0 with odd n and !force has no admissible size.
//
// Determinism: sizes ascend; the first size reaching the lowest cut wins.

package kl

import (
	"fmt"

	"github.com/katalvlaran/partlath/core"
)

// SplitRange returns the inclusive window of admissible group-A sizes.
func SplitRange(n, margin int, force bool) (lo, hi int, err error) {
	if margin < 0 || margin > 100 {
		return 0, 0, fmt.Errorf("kl: margin %d not in [0,100]: %w", margin, core.ErrConfig)
	}
	if n < 2 {
		return 0, 0, fmt.Errorf("kl: n=%d cannot be bisected: %w", n, core.ErrInfeasible)
	}
	ideal := n / 2
	if force {
		return ideal, ideal, nil
	}
	if margin == 0 && n%2 != 0 {
		return 0, 0, fmt.Errorf("kl: margin 0 with odd n=%d: %w", n, core.ErrInfeasible)
	}
	half := (n * margin / 100) / 2
	lo, hi = max(ideal-half, 1), min(ideal+half, n-1)
	if lo > hi {
		return 0, 0, fmt.Errorf("kl: empty split window [%d,%d]: %w", lo, hi, core.ErrInfeasible)
	}

	return lo, hi, nil
}

// BalanceSearch runs Bisect for every admissible split size from a fresh
// bipartition and leaves g at the labelling with the lowest cut.
//
// Errors:
//   - parts ≠ 2                      → core.ErrInfeasible
//   - margin outside [0,100]         → core.ErrConfig
//   - no admissible split size       → core.ErrInfeasible
func BalanceSearch(g *core.Graph, parts, margin int, force bool, opts Options) (Result, error) {
	if g == nil {
		return Result{}, fmt.Errorf("kl: BalanceSearch: nil graph: %w", core.ErrConfig)
	}
	if parts != 2 {
		return Result{}, fmt.Errorf("kl: method supports 2 parts, got %d: %w", parts, core.ErrInfeasible)
	}
	lo, hi, err := SplitRange(g.VertexCount(), margin, force)
	if err != nil {
		return Result{}, err
	}

	var (
		best  Result
		found bool
	)
	for s := lo; s <= hi; s++ {
		g.ResetScratch()
		res, err := Bisect(g, s, opts)
		if err != nil {
			return Result{}, err
		}
		opts.Logger.Debug().Int("split", s).Int("cut", res.Cut).Msg("kl split evaluated")
		if !found || res.Cut < best.Cut {
			best, found = res, true
		}
	}
	if err = g.SetGroups(best.Groups); err != nil {
		return Result{}, fmt.Errorf("kl: BalanceSearch: %w", err)
	}

	return best, nil
}
