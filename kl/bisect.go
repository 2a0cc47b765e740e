// SPDX-License-Identifier: MIT
// Package: partlath/kl
//
// bisect.go — one Kernighan-Lin bisection with rollback to the best state.
//
// Contract:
//   - 1 ≤ split ≤ n−1 (else core.ErrInfeasible).
//   - On return g carries the best labelling found; Fixed flags are cleared.
//   - Result.Cut ≤ Result.InitialCut.

package kl

import (
	"fmt"

	"github.com/katalvlaran/partlath/core"
)

const (
	groupA = 0
	groupB = 1
)

// Bisect labels g by opts.Order at split and improves it with Refine.
func Bisect(g *core.Graph, split int, opts Options) (Result, error) {
	if g == nil {
		return Result{}, fmt.Errorf("kl: Bisect: nil graph: %w", core.ErrConfig)
	}
	n := g.VertexCount()
	if split < 1 || split >= n {
		return Result{}, fmt.Errorf("kl: split %d with n=%d: %w", split, n, core.ErrInfeasible)
	}
	if err := g.AssignByOrder(opts.Order, split); err != nil {
		return Result{}, fmt.Errorf("kl: Bisect: %w", err)
	}

	res, err := Refine(g, opts)
	res.Split = split

	return res, err
}

// Refine runs Kernighan-Lin rounds on the current 0/1 labelling of g.
//
// Implementation:
//   - Stage 1: Validate labels; remember the starting cut as best.
//   - Stage 2: Per round, select tentative swaps greedily with D updates.
//   - Stage 3: Commit the best positive prefix; re-measure the true cut.
//   - Stage 4: Keep on improvement, otherwise roll back and stop.
func Refine(g *core.Graph, opts Options) (Result, error) {
	// Stage 1: labels must form a bisection.
	if err := g.CheckGroups(2); err != nil {
		return Result{}, fmt.Errorf("kl: Refine: %w", err)
	}
	best := g.EdgeCut()
	res := Result{InitialCut: best}
	bestGroups := g.Groups()

	var (
		swaps []swap
		k     int
		sum   int
	)
	for opts.MaxRounds == 0 || res.Rounds < opts.MaxRounds {
		res.Rounds++

		// Stage 2: greedy tentative selection.
		swaps = selectSwaps(g, swaps[:0])

		// Stage 3: best prefix.
		k, sum = bestPrefix(swaps)
		if sum <= 0 {
			break
		}
		for _, s := range swaps[:k+1] {
			_ = g.SwapGroups(s.a, s.b) // ids come from selectSwaps
		}

		// Stage 4: accept or roll back.
		cut := g.EdgeCut()
		opts.Logger.Debug().
			Int("round", res.Rounds).
			Int("swaps", k+1).
			Int("gain", sum).
			Int("cut", cut).
			Msg("kl round")
		if cut >= best {
			_ = g.SetGroups(bestGroups) // snapshot of valid labels
			break
		}
		best = cut
		bestGroups = g.Groups()
	}

	g.ResetFixed()
	res.Cut = best
	res.Groups = bestGroups

	return res, nil
}

// selectSwaps fills out with up to min(|A|,|B|) tentative pairs.
func selectSwaps(g *core.Graph, out []swap) []swap {
	n := g.VertexCount()
	g.ResetFixed()
	sizeA := 0
	for v := 0; v < n; v++ {
		ext, in := g.ExternalInternal(v)
		vx, _ := g.Vertex(v)
		vx.Gain = ext - in
		if vx.Group == groupA {
			sizeA++
		}
	}
	limit := min(sizeA, n-sizeA)

	for step := 0; step < limit; step++ {
		i, j, gain, ok := bestPair(g)
		if !ok || gain < 0 {
			break
		}
		vi, _ := g.Vertex(i)
		vj, _ := g.Vertex(j)
		vi.Fixed = true
		vj.Fixed = true
		out = append(out, swap{a: i, b: j, gain: gain})
		updateGains(g, i, j)
	}

	return out
}

// bestPair scans unfixed (i∈A, j∈B) in ascending id order; the first maximum wins.
func bestPair(g *core.Graph) (bi, bj, bgain int, ok bool) {
	n := g.VertexCount()
	for i := 0; i < n; i++ {
		vi, _ := g.Vertex(i)
		if vi.Fixed || vi.Group != groupA {
			continue
		}
		for j := 0; j < n; j++ {
			vj, _ := g.Vertex(j)
			if vj.Fixed || vj.Group != groupB {
				continue
			}
			gain := vi.Gain + vj.Gain
			if g.HasEdge(i, j) {
				gain -= 2
			}
			if !ok || gain > bgain {
				bi, bj, bgain, ok = i, j, gain, true
			}
		}
	}

	return bi, bj, bgain, ok
}

// updateGains applies D'(x) = D(x) + 2c(x,i) − 2c(x,j) for x on i's side and
// the mirror rule on j's side, over unfixed vertices only. Labels are untouched.
func updateGains(g *core.Graph, i, j int) {
	bump := func(pivot int) {
		side := g.Group(pivot)
		for _, x := range g.Neighbors(pivot) {
			vx, _ := g.Vertex(x)
			if vx.Fixed {
				continue
			}
			if vx.Group == side {
				vx.Gain += 2
			} else {
				vx.Gain -= 2
			}
		}
	}
	bump(i)
	bump(j)
}

// bestPrefix returns the index k maximizing Σ gains[0..k] and that sum.
// An empty list yields (−1, 0).
func bestPrefix(swaps []swap) (int, int) {
	k, best, run := -1, 0, 0
	for idx, s := range swaps {
		run += s.gain
		if k < 0 || run > best {
			k, best = idx, run
		}
	}

	return k, best
}
