// SPDX-License-Identifier: MIT
// Package: partlath/core
//
// errors.go - error kinds shared by every partlath package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers use errors.Is.
//   - Packages attach context with fmt.Errorf("<pkg>: <context>: %w", ErrX).
//   - None of these kinds are retried inside the library; the caller decides
//     presentation and exit codes.

package core

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig indicates invalid or missing parameters (parts, method, margin, flags).
	ErrConfig = errors.New("core: invalid configuration")

	// ErrFormat indicates a malformed graph description: endpoint out of range,
	// self-loop, asymmetric or duplicated adjacency, unparsable input.
	ErrFormat = errors.New("core: malformed graph description")

	// ErrAllocation indicates a request whose size cannot be served
	// (e.g. a dense n×n Laplacian beyond MaxDenseVertices).
	ErrAllocation = errors.New("core: allocation failure")

	// ErrInfeasible indicates the requested parts/margin combination cannot be satisfied.
	ErrInfeasible = errors.New("core: partition infeasible")

	// ErrIO indicates an output artifact could not be opened, written or read.
	ErrIO = errors.New("core: i/o failure")

	// ErrChecksumMismatch indicates a binary artifact failed its integrity check.
	ErrChecksumMismatch = errors.New("core: checksum mismatch")

	// ErrNumeric indicates a degenerate numeric input (e.g. a Laplacian of order < 2).
	ErrNumeric = errors.New("core: numeric failure")

	// ErrVertexOutOfRange indicates an index outside [0, n). It wraps ErrFormat.
	ErrVertexOutOfRange = fmt.Errorf("%w: vertex index out of range", ErrFormat)

	// ErrGroupOutOfRange indicates a group label outside [0, parts). It wraps ErrFormat.
	ErrGroupOutOfRange = fmt.Errorf("%w: group index out of range", ErrFormat)
)
