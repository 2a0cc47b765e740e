// SPDX-License-Identifier: MIT

package main

import (
	"errors"

	"github.com/katalvlaran/partlath/builder"
	"github.com/katalvlaran/partlath/core"
)

// Process exit codes.
const (
	exitOK         = 0
	exitOther      = 1
	exitConfig     = 11
	exitFlag       = 12
	exitFormat     = 13
	exitIO         = 14
	exitAllocation = 15
	exitInfeasible = 20
	exitChecksum   = 30
)

// errFlag marks command-line syntax errors reported by the flag parser.
var errFlag = errors.New("partlath: bad flag")

// exitCode maps an error onto the exit code taxonomy. The most specific
// kind wins: a checksum mismatch is reported as such even when wrapped.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errFlag):
		return exitFlag
	case errors.Is(err, core.ErrChecksumMismatch):
		return exitChecksum
	case errors.Is(err, core.ErrInfeasible):
		return exitInfeasible
	case errors.Is(err, core.ErrAllocation):
		return exitAllocation
	case errors.Is(err, core.ErrIO):
		return exitIO
	case errors.Is(err, core.ErrFormat):
		return exitFormat
	case errors.Is(err, core.ErrConfig),
		errors.Is(err, builder.ErrBadSpec),
		errors.Is(err, builder.ErrTooFewVertices),
		errors.Is(err, builder.ErrInvalidProbability),
		errors.Is(err, builder.ErrNeedRandSource),
		errors.Is(err, builder.ErrConstructFailed):
		return exitConfig
	default:
		return exitOther
	}
}
