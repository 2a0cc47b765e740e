// SPDX-License-Identifier: MIT
// Package: partlath/repair
//
// types.go — bounds, options and report.

package repair

import "github.com/rs/zerolog"

// Bounds are inclusive group-size limits.
type Bounds struct {
	Min int
	Max int
}

// BoundsFor derives bounds from the ideal size n/parts and a percentage
// margin: slack = ⌊target·margin/100⌋, [max(0, target−slack), target+slack].
func BoundsFor(n, parts, margin int) Bounds {
	if parts < 1 {
		return Bounds{}
	}
	target := n / parts
	slack := target * margin / 100

	return Bounds{Min: max(0, target-slack), Max: target + slack}
}

// Options configures Repair.
//
// Force     – ignore Bounds entirely; moves always succeed.
// Strict    – fail with core.ErrInfeasible when vertices remain unrepaired.
// MaxPasses – cap on passes; 0 means n+1.
// Logger    – receives a warn event listing unrepaired vertices.
type Options struct {
	Force     bool
	Strict    bool
	MaxPasses int
	Logger    zerolog.Logger
}

// DefaultOptions returns bounded, non-strict repair with a silent logger.
func DefaultOptions() Options {
	return Options{Logger: zerolog.Nop()}
}

// Report summarizes one Repair call.
type Report struct {
	// Moved counts single-vertex relocations.
	Moved int
	// Swapped counts two-way exchanges.
	Swapped int
	// Passes is the number of sweeps performed, including the final quiet one.
	Passes int
	// Converged is false only when a MaxPasses below n+1 stopped the loop early.
	Converged bool
	// Unrepaired lists vertices left without a neighbor in their own group, ascending.
	Unrepaired []int
}

// Changed reports whether any label was modified.
func (r Report) Changed() bool { return r.Moved+r.Swapped > 0 }
