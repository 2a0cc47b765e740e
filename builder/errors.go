// SPDX-License-Identifier: MIT
// Package: partlath/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Implementations attach context with %w ("Cycle: n=2 < min=3: ...").
//   • Constructors never panic at runtime; option constructors may panic on nil input.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a constructor could not be applied (nil
// constructor, bridge endpoint not yet present, core rejection).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrBadSpec indicates FromSpec could not parse a topology description.
var ErrBadSpec = errors.New("builder: invalid topology spec")
