// SPDX-License-Identifier: MIT
// Package: partlath/bfs
//
// bfs.go — the walker.

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/partlath/core"
)

// queueItem pairs a vertex with its depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state. visited survives across walks so
// Components can reuse one walker for every seed.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited []bool
	res     *Result
}

// BFS runs breadth-first search on g starting from start.
//
// Errors: ErrGraphNil, core.ErrVertexOutOfRange for a bad start,
// ErrOptionViolation for bad options, ctx.Err() on cancellation, or the
// wrapped OnVisit error.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	w, err := newWalker(g, opts)
	if err != nil {
		return nil, err
	}
	if start < 0 || start >= g.VertexCount() {
		return nil, fmt.Errorf("bfs: start %d with n=%d: %w", start, g.VertexCount(), core.ErrVertexOutOfRange)
	}

	return w.res, w.walk(start)
}

func newWalker(g *core.Graph, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = -1
		w.res.Parent[i] = -1
	}

	return w, nil
}

// walk processes one search tree rooted at start.
func (w *walker) walk(start int) error {
	w.enqueue(start, 0, -1)
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.v)
		if err := w.opts.OnVisit(item.v, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.graph.Neighbors(item.v) {
			if !w.visited[nbr] && w.opts.FilterNeighbor(item.v, nbr) {
				w.enqueue(nbr, next, item.v)
			}
		}
	}

	return nil
}

// enqueue marks v visited at depth d and records its parent.
func (w *walker) enqueue(v, d, parent int) {
	w.visited[v] = true
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}
