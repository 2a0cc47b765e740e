// Package kl implements Kernighan-Lin bisection over a core.Graph and the
// split-size sweep (BalanceSearch) that drives it.
//
// A bisection uses labels 0 (group A) and 1 (group B). Each round:
//
//  1. D(v) = external(v) − internal(v) for every vertex.
//  2. Up to min(|A|,|B|) times, pick the unfixed pair (i∈A, j∈B) maximizing
//     G(i,j) = D(i) + D(j) − 2·edge(i,j), fix both, update D as if the pair had
//     been exchanged. Selection stops once the best remaining G is negative.
//  3. Commit the prefix of tentative swaps with the largest positive cumulative gain.
//  4. Recompute the true edge cut; keep it if improved, otherwise restore the
//     best state and stop.
//
// Determinism: pairs are scanned in ascending vertex id, first-found wins ties.
// No randomness is involved.
//
// Complexity: O(min(|A|,|B|) · |A|·|B| · log Δ) per round; rounds terminate
// because the cut strictly decreases on every accepted round.
package kl
