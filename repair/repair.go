// SPDX-License-Identifier: MIT
// Package: partlath/repair
//
// repair.go — the pass loop.
//
// Every accepted change strictly lowers the number of isolated vertices.
//
// Complexity: one pass is O(V·parts·Δ²) for moves and O(V²·Δ²) in the
// worst case when swaps are searched.

package repair

import (
	"fmt"

	"github.com/katalvlaran/partlath/core"
)

// Repair fixes isolated vertices of g in place.
//
// Errors:
//   - parts < 1, or Min > Max without Force   → core.ErrConfig
//   - a label outside [0, parts)              → core.ErrGroupOutOfRange
//   - Strict and unrepaired vertices remain   → core.ErrInfeasible (Report still filled)
func Repair(g *core.Graph, parts int, b Bounds, opts Options) (Report, error) {
	if g == nil {
		return Report{}, fmt.Errorf("repair: nil graph: %w", core.ErrConfig)
	}
	if !opts.Force && (b.Min < 0 || b.Min > b.Max) {
		return Report{}, fmt.Errorf("repair: bounds [%d,%d]: %w", b.Min, b.Max, core.ErrConfig)
	}
	sizes, err := g.GroupSizes(parts)
	if err != nil {
		return Report{}, fmt.Errorf("repair: %w", err)
	}

	limit := opts.MaxPasses
	if limit <= 0 {
		limit = g.VertexCount() + 1
	}

	var rep Report
	for rep.Passes < limit {
		rep.Passes++
		if !pass(g, sizes, b, opts.Force, &rep) {
			rep.Converged = true
			break
		}
	}
	g.ResetProcessed()

	rep.Unrepaired = isolated(g)
	if len(rep.Unrepaired) > 0 {
		opts.Logger.Warn().
			Ints("vertices", rep.Unrepaired).
			Int("parts", parts).
			Int("min", b.Min).
			Int("max", b.Max).
			Msg("repair left vertices without a neighbor in their group")
		if opts.Strict {
			return rep, fmt.Errorf("repair: %d unrepaired vertices: %w", len(rep.Unrepaired), core.ErrInfeasible)
		}
	}

	return rep, nil
}

// pass visits every vertex once and reports whether any label changed.
//
// A move or swap is kept only when it strictly lowers the number of isolated
// vertices. The count is at most n, so the loop converges within n+1 passes,
// and a pass that changes nothing depends only on the labels: a second call
// on converged output is a no-op.
func pass(g *core.Graph, sizes []int, b Bounds, force bool, rep *Report) bool {
	g.ResetProcessed()
	changed := false
	parts := len(sizes)

	for v := 0; v < g.VertexCount(); v++ {
		vx, _ := g.Vertex(v) // v < VertexCount
		if vx.Processed || g.Degree(v) == 0 {
			continue
		}
		cur := vx.Group
		if g.HasNeighborIn(v, cur, -1) {
			continue
		}

		// Move.
		moved := false
		for t := 0; t < parts; t++ {
			if t == cur || !g.HasNeighborIn(v, t, -1) {
				continue
			}
			if !force && (sizes[t] >= b.Max || sizes[cur] <= b.Min) {
				continue
			}
			if improves(g, v, -1, func() { vx.Group = t }, func() { vx.Group = cur }) {
				vx.Processed = true
				sizes[cur]--
				sizes[t]++
				rep.Moved++
				moved = true
				break
			}
		}
		if moved {
			changed = true
			continue
		}

		// Swap.
		for t := 0; t < parts && !vx.Processed; t++ {
			if t == cur || !g.HasNeighborIn(v, t, -1) {
				continue
			}
			for w := 0; w < g.VertexCount(); w++ {
				wx, _ := g.Vertex(w) // w < VertexCount
				if w == v || wx.Processed || wx.Group != t {
					continue
				}
				if !g.HasNeighborIn(w, cur, v) || !g.HasNeighborIn(v, t, w) {
					continue
				}
				exchange := func() { vx.Group, wx.Group = wx.Group, vx.Group }
				if improves(g, v, w, exchange, exchange) {
					vx.Processed = true
					wx.Processed = true
					rep.Swapped++
					changed = true
					break
				}
			}
		}
	}

	return changed
}

// improves applies a relabelling of v (and w when w ≥ 0) and keeps it only if
// the number of isolated vertices among them and their neighbors drops.
// Otherwise undo restores the previous labels.
func improves(g *core.Graph, v, w int, apply, undo func()) bool {
	near := neighborhood(g, v, w)
	before := countIsolated(g, near)
	apply()
	if countIsolated(g, near) < before {
		return true
	}
	undo()

	return false
}

// neighborhood returns v, w and their neighbors without duplicates.
func neighborhood(g *core.Graph, v, w int) []int {
	seen := map[int]struct{}{}
	var out []int
	add := func(u int) {
		if _, ok := seen[u]; !ok {
			seen[u] = struct{}{}
			out = append(out, u)
		}
	}
	for _, u := range []int{v, w} {
		if u < 0 {
			continue
		}
		add(u)
		for _, x := range g.Neighbors(u) {
			add(x)
		}
	}

	return out
}

func countIsolated(g *core.Graph, vs []int) int {
	c := 0
	for _, u := range vs {
		if g.Degree(u) > 0 && !g.HasNeighborIn(u, g.Group(u), -1) {
			c++
		}
	}

	return c
}

// isolated lists vertices with edges but no neighbor in their own group.
func isolated(g *core.Graph) []int {
	var out []int
	for v := 0; v < g.VertexCount(); v++ {
		if g.Degree(v) > 0 && !g.HasNeighborIn(v, g.Group(v), -1) {
			out = append(out, v)
		}
	}

	return out
}
