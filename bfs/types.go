// SPDX-License-Identifier: MIT
// Package: partlath/bfs
//
// types.go — options, sentinel errors and the traversal result.

package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/partlath/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = fmt.Errorf("%w: bfs: graph is nil", core.ErrConfig)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = fmt.Errorf("%w: bfs: invalid option supplied", core.ErrConfig)

	// ErrNoPath is returned by PathTo for a vertex the walk never reached.
	ErrNoPath = errors.New("bfs: vertex not reached")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks of one traversal.
type Options struct {
	// Ctx allows cancellation; checked once per dequeued vertex.
	Ctx context.Context

	// OnVisit is called when visiting a vertex. An error aborts the walk.
	OnVisit func(v, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// FilterNeighbor skips the edge curr→next when it returns false.
	FilterNeighbor func(curr, next int) bool

	err error
}

// DefaultOptions returns a background context, no depth limit, no filtering
// and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        func(int, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ int) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback run on every visit.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the walk to depth d (d == 0: no limit, d < 0: invalid).
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, next int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// SameGroup is a neighbor filter that keeps the walk inside one group.
func SameGroup(g *core.Graph) func(curr, next int) bool {
	return func(curr, next int) bool {
		return g.Group(curr) == g.Group(next)
	}
}

// Result holds the outcome of a traversal.
//   - Order: vertices in visit sequence.
//   - Depth: distance from the start, −1 if unreached.
//   - Parent: predecessor in the BFS tree, −1 for the start and unreached vertices.
type Result struct {
	Order  []int
	Depth  []int
	Parent []int
}

// PathTo reconstructs the path from the start vertex to dest.
func (r *Result) PathTo(dest int) ([]int, error) {
	if dest < 0 || dest >= len(r.Depth) || r.Depth[dest] < 0 {
		return nil, fmt.Errorf("bfs: path to %d: %w", dest, ErrNoPath)
	}
	path := make([]int, r.Depth[dest]+1)
	for i, cur := len(path)-1, dest; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}
