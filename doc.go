// Package partlath splits the vertices of an undirected graph into a requested
// number of balanced groups while keeping the edge cut small.
//
// What is inside
//
//	Two engines behind one interface:
//		• Kernighan-Lin bisection with a sweep over admissible split sizes (2 groups)
//		• Spectral banding along an approximate Fiedler vector (any number of groups)
//	followed by a connectivity repair pass and a checksummed output writer.
//
// Layout
//
//	core/         dense-index Graph: symmetric adjacency, group labels, scratch state, error kinds
//	kl/           Bisect, Refine, BalanceSearch, SplitRange
//	spectral/     Laplacian, FiedlerVector (power iteration or exact), Partition
//	repair/       Repair with group-size Bounds and a Report
//	bfs/          breadth-first search, components, per-group fragment counts
//	partition/    Params, Validate, Partitioner strategies, Run, YAML Summary
//	codec/        binary (SHA-256 checksum) and ascii writers/readers, Verify
//	loader/       the textual input grammar: Parse, ParseFile, Write
//	builder/      deterministic fixtures: grid, cycle, path, star, wheel, complete, bipartite, random, bridge
//	config/       viper settings, validator checks, zerolog logger
//	cmd/partlath  the command-line tool (partition, verify, generate)
//
// Quick example:
//
//	A───B       groups {A,B} and {C,D}
//	│   │       cut = 2
//	C───D
//
//	g, _ := core.Build(4, [][2]int{{0, 1}, {1, 3}, {3, 2}, {2, 0}})
//	p := partition.DefaultParams()
//	p.Margin = 0
//	res, _ := partition.Run(g, p)
//
// Errors are sentinels from core (ErrConfig, ErrFormat, ErrAllocation,
// ErrInfeasible, ErrIO, ErrChecksumMismatch, ErrNumeric); every package wraps
// them with context, and callers branch with errors.Is.
//
//	go install github.com/katalvlaran/partlath/cmd/partlath@latest
package partlath
