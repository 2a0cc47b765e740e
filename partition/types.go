// SPDX-License-Identifier: MIT
// Package: partlath/partition
//
// types.go — methods, parameters and results.

package partition

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/partlath/repair"
	"github.com/katalvlaran/partlath/spectral"
)

// Method names a partitioning strategy.
type Method string

const (
	// MethodKL is Kernighan-Lin bisection with a split-size sweep (parts = 2 only).
	MethodKL Method = "kl"
	// MethodSpectral is Laplacian eigenvector banding for any number of parts.
	MethodSpectral Method = "m"
)

const (
	defaultParts  = 2
	defaultMargin = 10
	minVertices   = 4
)

// Params describes one partitioning run.
type Params struct {
	Parts  int
	Method Method
	// Margin is the balance margin in percent, 0..100. 0 demands exact balance.
	Margin int
	// Force relaxes balance: KL uses the single split n/2, repair ignores bounds.
	Force bool
	// Seed drives every random choice; 0 picks a time-based seed at Run.
	Seed int64
	// Strict turns unrepaired vertices into core.ErrInfeasible.
	Strict bool

	// Spectral knobs; zero values select the engine defaults.
	Solver        spectral.Solver
	Banding       spectral.Banding
	Tolerance     float64
	MaxIterFactor int

	Logger zerolog.Logger
}

// DefaultParams returns a two-part KL run with a 10% margin.
func DefaultParams() Params {
	return Params{
		Parts:   defaultParts,
		Method:  MethodKL,
		Margin:  defaultMargin,
		Solver:  spectral.SolverPower,
		Banding: spectral.BandRotate,
		Logger:  zerolog.Nop(),
	}
}

// Result is the outcome of Run. The graph passed to Run carries Groups.
type Result struct {
	RunID  string
	Method Method
	Parts  int
	Cut    int
	Groups []int
	Sizes  []int

	// Seed is the seed actually used (never 0 after Run).
	Seed int64

	// Fragments counts the connected pieces of each group's induced subgraph.
	Fragments []int

	// Split is the winning group-0 size (MethodKL).
	Split int

	// Rotation, Eigenvalue and Converged describe the spectral run (MethodSpectral).
	Rotation   int
	Eigenvalue float64
	Converged  bool

	Repair repair.Report
}
