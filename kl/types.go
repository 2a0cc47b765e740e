// SPDX-License-Identifier: MIT
// Package: partlath/kl
//
// types.go — options and result of the Kernighan-Lin engine.

package kl

import "github.com/rs/zerolog"

// Options configures Bisect and BalanceSearch.
//
// Order     – initial ordering; the first split vertices of Order form group A.
//
//	nil means identity (0..n-1).
//
// MaxRounds – cap on improvement rounds per bisection; 0 means "until no gain".
// Logger    – debug events for rounds and sweep progress; zero value is silent.
type Options struct {
	Order     []int
	MaxRounds int
	Logger    zerolog.Logger
}

// DefaultOptions returns identity ordering, unlimited rounds and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Order:     nil,
		MaxRounds: 0,
		Logger:    zerolog.Nop(),
	}
}

// Result is the outcome of one bisection or of a full sweep.
type Result struct {
	// Cut is the edge cut of Groups.
	Cut int
	// InitialCut is the cut of the starting bipartition (for BalanceSearch, of
	// the winning split's starting bipartition).
	InitialCut int
	// Split is the size of group A at entry.
	Split int
	// Rounds counts accepted and rejected rounds.
	Rounds int
	// Groups is a snapshot of the final labels (0/1) in vertex order.
	Groups []int
}

// swap is a tentatively selected pair and its gain.
type swap struct {
	a, b int
	gain int
}
