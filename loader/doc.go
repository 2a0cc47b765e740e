// Package loader reads and writes the textual graph description consumed by
// the partitioner.
//
// Grammar: one ';'-separated integer list per line, blank lines ignored.
//
//	line 1  max_matrix          single integer in [0, 1024]
//	line 2  x coordinates       one per vertex; defines n; 0 ≤ x ≤ max_matrix
//	line 3  row offsets         starts at 0, non-decreasing, ends at n;
//	                            vertex i lies on row y iff off[y] ≤ i < off[y+1]
//	line 4  connections         vertex ids in [0, n)
//	line 5+ group offsets       non-decreasing indexes into line 4, ≤ len(line 4)
//
// Each range [off[k], off[k+1]) of a group-offset line, plus the trailing
// range [off[last], len(connections)), names a hub (its first id) followed by
// the vertices joined to it. Self-loops and repeated edges are dropped.
//
// A file with several group-offset lines holds several graphs over the same
// vertices; the 1-based graph index selects one. Index 0 is only valid for a
// single-graph file.
package loader
