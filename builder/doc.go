// Package builder provides deterministic graph topologies for tests,
// benchmarks and the `partlath generate` command.
//
// Constructors are composed by BuildGraph. Every constructor appends a new
// disjoint block of vertices to the graph under assembly, so
//
//	g, err := builder.BuildGraph(nil,
//		builder.Complete(4),   // vertices 0..3
//		builder.Complete(4),   // vertices 4..7
//		builder.Bridge(3, 4),  // joins the two blocks
//	)
//
// yields a barbell. Bridge is the only constructor that links existing
// vertices instead of adding new ones.
//
// Coordinates: every block starts on a fresh row, so Y is non-decreasing in
// vertex index order and the result can always be written by the loader
// package. Grid blocks use (col,row); other blocks lay vertices out
// left-to-right on a single row.
//
// Topologies:
//
//   - Cycle(n)                 C_n, n ≥ 3
//   - Path(n)                  P_n, n ≥ 2
//   - Star(n)                  hub + n-1 leaves, n ≥ 2
//   - Wheel(n)                 C_{n-1} + hub, n ≥ 4
//   - Complete(n)              K_n, n ≥ 1
//   - CompleteBipartite(a, b)  K_{a,b}, a,b ≥ 1
//   - Grid(rows, cols)         4-neighborhood lattice, rows,cols ≥ 1
//   - RandomSparse(n, p)       Erdős–Rényi G(n,p); requires WithSeed/WithRand for 0<p<1
//   - Bridge(u, v)             single edge between existing vertices
//
// FromSpec parses the textual form used by the CLI ("grid:4x5", "cycle:8",
// "bipartite:3,4", "random:20,0.15", "barbell:5").
//
// Determinism: equal options, seed and constructor order produce identical graphs.
package builder
