// Package spectral implements multiway partitioning by Laplacian eigenvector
// banding.
//
// Pipeline:
//
//  1. L = Deg − Adj as a dense symmetric matrix (gonum mat.SymDense).
//  2. A Fiedler-like vector of L:
//     - SolverPower (default): power iteration on M = c·I − L, c = 2·Δ+1,
//     restricted to the complement of the constant vector. The dominant
//     eigenvector of M there is the eigenvector of the smallest non-trivial
//     eigenvalue of L. Iterates are unit-normalized; iteration stops when
//     |⟨x_k, x_{k−1}⟩| ≥ 1 − Tolerance or after MaxIterFactor·n steps.
//     - SolverExact: mat.EigenSym; the eigenvector of the smallest eigenvalue
//     above 1e-9.
//  3. Vertices sorted by component ascending, ties by id.
//  4. For each rotation r ∈ [0, parts): band sorted position i into group
//     (i + r) mod parts (BandRotate), i mod parts (BandModulo) or the
//     contiguous band (⌊i·parts/n⌋ + r) mod parts (BandBlock), repair with
//     bounds n/parts ± margin, measure the cut.
//  5. The first rotation with the lowest cut wins.
//
// Non-convergence is soft: Partition keeps the last iterate, sets
// Result.Converged=false and logs a warning. FiedlerVector returns the same
// vector together with ErrNotConverged.
//
// Memory: the Laplacian is dense, O(n²) floats; Options.MaxDenseVertices guards it.
package spectral
