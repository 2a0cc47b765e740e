// Package core provides the vertex arena every partitioning algorithm in
// partlath operates on.
//
// A Graph G = (V,E) is undirected, simple and built once:
//
//   - Vertices are addressed by dense integer index 0..n-1.
//   - Adjacency lists store indices, never pointers; each list is sorted
//     ascending, deduplicated and symmetric (if u lists v, v lists u).
//   - Self-loops are rejected at construction time.
//   - The topology never changes after Build/FromAdjacency. Only the
//     partition state mutates: Group, Gain ("D-value"), Fixed, Processed.
//   - Optional display coordinates (X,Y) are carried through untouched.
//
// Construction:
//
//	g, err := core.Build(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
//	g, err := core.FromAdjacency(adj, core.WithCoordinates(xs, ys))
//
// Partition state:
//
//	Group(v) / SetGroup(v, p)        // O(1)
//	Groups() / SetGroups(gs)         // O(V) snapshot / restore
//	GroupSizes(parts)                // O(V)
//	EdgeCut()                        // O(V+E), counts each crossing edge once
//	ResetScratch()                   // clears Gain, Fixed, Processed
//
// Errors:
//
// The error taxonomy shared by the whole module lives in errors.go
// (ErrConfig, ErrFormat, ErrAllocation, ErrInfeasible, ErrIO,
// ErrChecksumMismatch, ErrNumeric). Every package wraps these sentinels
// with context via %w; callers branch with errors.Is.
//
// Concurrency:
//
// A Graph is owned by one partitioning run at a time. It carries no locks;
// concurrent mutation of the same instance is not supported.
package core
