// SPDX-License-Identifier: MIT
// Package: partlath/builder
//
// api.go - the BuildGraph orchestrator.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Resolves cfg, runs cons in order,
//     then freezes the assembly through core.Build.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/partlath/core"
)

// Constructor appends a deterministic block (or, for Bridge, an edge) to the
// assembly using the resolved builderConfig.
type Constructor func(a *assembly, cfg builderConfig) error

// BuildGraph resolves bopts, applies all constructors in order and returns
// the frozen core.Graph with coordinates attached.
//
// Errors:
//   - Constructor errors wrapped as "BuildGraph: %w" (ErrTooFewVertices, ...).
//   - core.ErrFormat family if the assembled edge list is rejected.
//
// Complexity: Σ cost of constructors + O(V + E log E) for core.Build.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	a := &assembly{}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(a, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	g, err := core.Build(a.n, a.edges, core.WithCoordinates(a.xs, a.ys))
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}
