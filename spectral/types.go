// SPDX-License-Identifier: MIT
// Package: partlath/spectral
//
// types.go — options, results and sentinel errors.

package spectral

import (
	"errors"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/partlath/repair"
)

// ErrNotConverged marks a best-effort eigenvector returned at the iteration cap.
var ErrNotConverged = errors.New("spectral: eigensolver did not converge")

// Solver selects the eigenvector method.
type Solver string

const (
	// SolverPower is shifted, deflated power iteration.
	SolverPower Solver = "power"
	// SolverExact is full symmetric eigendecomposition.
	SolverExact Solver = "exact"
)

// Banding selects how sorted positions map to groups.
type Banding string

const (
	// BandRotate assigns position i to (i + r) mod parts.
	BandRotate Banding = "rotate"
	// BandModulo assigns position i to i mod parts for every rotation.
	BandModulo Banding = "modulo"
	// BandBlock assigns position i to (⌊i·parts/n⌋ + r) mod parts: contiguous bands.
	BandBlock Banding = "block"
)

const (
	defaultTolerance        = 1e-6
	defaultMaxIterFactor    = 10
	defaultMaxDenseVertices = 4096
	zeroEigenvalue          = 1e-9
)

// Options configures FiedlerVector and Partition.
type Options struct {
	Solver  Solver
	Banding Banding

	// Tolerance: convergence when |⟨x_k, x_{k−1}⟩| ≥ 1 − Tolerance.
	Tolerance float64
	// MaxIterFactor: iteration cap is MaxIterFactor·n.
	MaxIterFactor int
	// MaxDenseVertices bounds n for the dense Laplacian (core.ErrAllocation above it).
	MaxDenseVertices int

	// Seed drives the power-iteration start vector when Rand is nil (0 ⇒ fixed default).
	Seed int64
	// Rand overrides Seed.
	Rand *rand.Rand

	// Margin is the balance margin percentage used for repair bounds.
	Margin int
	// Force makes repair ignore bounds.
	Force bool
	// Strict fails Partition when the winning rotation leaves unrepaired vertices.
	Strict bool

	Logger zerolog.Logger
}

// DefaultOptions returns power iteration, rotate banding, 1e-6 tolerance,
// a 10·n cap and a 10% margin.
func DefaultOptions() Options {
	return Options{
		Solver:           SolverPower,
		Banding:          BandRotate,
		Tolerance:        defaultTolerance,
		MaxIterFactor:    defaultMaxIterFactor,
		MaxDenseVertices: defaultMaxDenseVertices,
		Margin:           10,
		Logger:           zerolog.Nop(),
	}
}

// Eigen is an approximate eigenpair of the Laplacian.
type Eigen struct {
	// Vector is unit-norm, orthogonal to the constant vector for SolverPower.
	Vector []float64
	// Value is the Rayleigh quotient xᵀLx.
	Value float64
	// Iterations performed (0 for SolverExact).
	Iterations int
	Converged  bool
}

// Result is the outcome of Partition.
type Result struct {
	Cut      int
	Rotation int
	// Order lists vertices by ascending eigenvector component.
	Order  []int
	Groups []int
	Eigen  Eigen
	// Repair is the report of the winning rotation.
	Repair repair.Report
}
