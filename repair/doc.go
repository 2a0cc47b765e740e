// Package repair post-processes a k-way labelling so that every vertex with
// at least one edge has a neighbor in its own group, within per-group size
// bounds.
//
// For an isolated vertex v in group c (no neighbor labelled c):
//
//   - Move: the first group t ≠ c (ascending) holding a neighbor of v, with
//     size(t) < Max and size(c) > Min, receives v. Force ignores both bounds.
//   - Swap: otherwise, the lowest-id unprocessed w in such a group t is
//     exchanged with v, provided that afterwards w has a neighbor in c other
//     than v and v has a neighbor in t other than w. Sizes are unchanged.
//   - Otherwise v stays and is reported as unrepaired.
//
// Passes repeat until one makes no change, so Repair on its own output is a
// no-op. Degree-0 vertices have no neighbor anywhere and are skipped.
package repair
