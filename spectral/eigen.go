// SPDX-License-Identifier: MIT
// Package: partlath/spectral
//
// eigen.go — Fiedler-like eigenvector by power iteration or EigenSym.

package spectral

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/partlath/core"
)

// FiedlerVector computes an eigenvector of a small non-trivial eigenvalue of
// the Laplacian of g. On the iteration cap it returns the last iterate and
// ErrNotConverged.
func FiedlerVector(g *core.Graph, opts Options) (Eigen, error) {
	if g == nil {
		return Eigen{}, fmt.Errorf("spectral: nil graph: %w", core.ErrConfig)
	}
	opts = normalize(opts)
	L, err := Laplacian(g, opts.MaxDenseVertices)
	if err != nil {
		return Eigen{}, err
	}

	switch opts.Solver {
	case SolverPower:
		return powerIteration(L, g.MaxDegree(), opts)
	case SolverExact:
		return exactSmallest(L)
	default:
		return Eigen{}, fmt.Errorf("spectral: unknown solver %q: %w", opts.Solver, core.ErrConfig)
	}
}

// normalize fills zero-valued numeric knobs with defaults.
func normalize(opts Options) Options {
	if opts.Solver == "" {
		opts.Solver = SolverPower
	}
	if opts.Banding == "" {
		opts.Banding = BandRotate
	}
	if opts.Tolerance <= 0 {
		opts.Tolerance = defaultTolerance
	}
	if opts.MaxIterFactor <= 0 {
		opts.MaxIterFactor = defaultMaxIterFactor
	}

	return opts
}

// powerIteration runs x ← normalize(P·(c·x − L·x)) where P removes the mean.
//
// Implementation:
//   - Stage 1: Seeded random start, deflated and normalized.
//   - Stage 2: Iterate until the successive dot product reaches 1 − tol or the cap.
//   - Stage 3: Fix the sign (first significant component negative); Rayleigh quotient.
func powerIteration(L *mat.SymDense, maxDeg int, opts Options) (Eigen, error) {
	n := L.SymmetricDim()
	shift := float64(2*maxDeg + 1)
	maxIter := opts.MaxIterFactor * n

	// Stage 1: start vector.
	data := make([]float64, n)
	randomUnit(data, resolveRNG(opts))
	x := mat.NewVecDense(n, data)
	deflate(x)
	if !unitize(x) {
		for i := 0; i < n; i++ {
			x.SetVec(i, float64(1-2*(i%2)))
		}
		deflate(x)
		unitize(x)
	}

	// Stage 2: iterate.
	var (
		lx   = mat.NewVecDense(n, nil)
		y    = mat.NewVecDense(n, nil)
		res  = Eigen{}
		dot  float64
		iter int
	)
	for iter = 1; iter <= maxIter; iter++ {
		lx.MulVec(L, x)
		y.ScaleVec(shift, x)
		y.AddScaledVec(y, -1, lx)
		deflate(y)
		if !unitize(y) {
			break
		}
		dot = mat.Dot(x, y)
		x.CopyVec(y)
		if math.Abs(dot) >= 1-opts.Tolerance {
			res.Converged = true
			break
		}
	}
	res.Iterations = min(iter, maxIter)

	// Stage 3: canonical sign and eigenvalue estimate.
	canonicalSign(x)
	lx.MulVec(L, x)
	res.Value = mat.Dot(x, lx)
	res.Vector = append([]float64(nil), x.RawVector().Data...)

	opts.Logger.Debug().
		Int("iterations", res.Iterations).
		Bool("converged", res.Converged).
		Float64("eigenvalue", res.Value).
		Msg("power iteration finished")
	if !res.Converged {
		return res, fmt.Errorf("spectral: %d iterations: %w", maxIter, ErrNotConverged)
	}

	return res, nil
}

// exactSmallest picks the eigenvector of the smallest eigenvalue above
// zeroEigenvalue; index 1 when none qualifies.
func exactSmallest(L *mat.SymDense) (Eigen, error) {
	var es mat.EigenSym
	if ok := es.Factorize(L, true); !ok {
		return Eigen{}, fmt.Errorf("spectral: eigendecomposition failed: %w", core.ErrNumeric)
	}
	values := es.Values(nil) // ascending
	var vectors mat.Dense
	es.VectorsTo(&vectors)

	idx := 1
	for i, v := range values {
		if v > zeroEigenvalue {
			idx = i
			break
		}
	}

	x := mat.NewVecDense(len(values), mat.Col(nil, idx, &vectors))
	canonicalSign(x)

	return Eigen{
		Vector:    x.RawVector().Data,
		Value:     values[idx],
		Converged: true,
	}, nil
}

// deflate subtracts the mean, projecting out the constant eigenvector of L.
func deflate(x *mat.VecDense) {
	n := x.Len()
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += x.AtVec(i)
	}
	mean := sum / float64(n)
	for i := 0; i < n; i++ {
		x.SetVec(i, x.AtVec(i)-mean)
	}
}

// unitize scales x to unit 2-norm; false when x is numerically zero.
func unitize(x *mat.VecDense) bool {
	norm := mat.Norm(x, 2)
	if norm < zeroEigenvalue {
		return false
	}
	x.ScaleVec(1/norm, x)

	return true
}

// canonicalSign flips x so that its first significant component is negative.
func canonicalSign(x *mat.VecDense) {
	for i := 0; i < x.Len(); i++ {
		v := x.AtVec(i)
		if math.Abs(v) <= zeroEigenvalue {
			continue
		}
		if v > 0 {
			x.ScaleVec(-1, x)
		}
		return
	}
}
