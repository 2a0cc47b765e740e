// SPDX-License-Identifier: MIT
// Package: partlath/partition
//
// validate.go — parameter checks against the graph size.
//
// Order of checks:
//   1. Params alone (parts, method, margin)   → core.ErrConfig
//   2. Graph size (n ≥ 4, parts ≤ n/2)       → core.ErrInfeasible
//   3. Balance feasibility (margin, force)   → core.ErrInfeasible
//   4. Method capability (kl ⇒ parts = 2)    → core.ErrInfeasible
//
// Deterministic and side-effect free. O(1).

package partition

import (
	"fmt"

	"github.com/katalvlaran/partlath/core"
)

// Validate reports whether p can be applied to a graph with n vertices.
func Validate(p Params, n int) error {
	// Stage 1: parameters alone.
	if p.Parts < 2 {
		return fmt.Errorf("partition: parts=%d, need at least 2: %w", p.Parts, core.ErrConfig)
	}
	if p.Method != MethodKL && p.Method != MethodSpectral {
		return fmt.Errorf("partition: unknown method %q: %w", p.Method, core.ErrConfig)
	}
	if p.Margin < 0 || p.Margin > 100 {
		return fmt.Errorf("partition: margin %d not in [0,100]: %w", p.Margin, core.ErrConfig)
	}

	// Stage 2: graph size.
	if n < minVertices {
		return fmt.Errorf("partition: graph too small (n=%d < %d): %w", n, minVertices, core.ErrInfeasible)
	}
	if p.Parts > n/2 {
		return fmt.Errorf("partition: too many parts (%d > n/2=%d): %w", p.Parts, n/2, core.ErrInfeasible)
	}

	// Stage 3: balance.
	if err := checkBalance(p, n); err != nil {
		return err
	}

	// Stage 4: method capability.
	if p.Method == MethodKL && p.Parts != 2 {
		return fmt.Errorf("partition: method kl supports 2 parts, got %d: %w", p.Parts, core.ErrInfeasible)
	}

	return nil
}

// checkBalance rejects margins that admit no group size when n is not a
// multiple of parts. The window is ideal ± ⌊⌊ideal·margin/100⌋/2⌋.
func checkBalance(p Params, n int) error {
	if p.Force || n%p.Parts == 0 {
		return nil
	}
	if p.Margin == 0 {
		return fmt.Errorf("partition: n=%d not divisible by %d with margin 0: %w", n, p.Parts, core.ErrInfeasible)
	}
	if p.Parts > 2 {
		ideal := n / p.Parts
		half := ideal * p.Margin / 100 / 2
		if (ideal+half)-(ideal-half) < 1 {
			return fmt.Errorf("partition: margin %d%% too tight for %d parts of n=%d: %w", p.Margin, p.Parts, n, core.ErrInfeasible)
		}
	}

	return nil
}
