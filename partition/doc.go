// SPDX-License-Identifier: MIT

// Package partition is the single entry point over the two partitioning
// engines of partlath.
//
// A run is described by Params: the number of parts, the Method ("kl" for
// Kernighan-Lin bisection, "m" for spectral banding), a balance margin in
// percent, the force flag and a seed. Validate rejects parameter/graph
// combinations that cannot be satisfied before any work is done; Run then
// dispatches to the selected Partitioner, applies connectivity repair and
// returns a Result that can be turned into a YAML Summary.
//
//	p := partition.DefaultParams()
//	p.Method = partition.MethodSpectral
//	p.Parts = 4
//	res, err := partition.Run(g, p)
//
// Errors wrap the core sentinels (core.ErrConfig, core.ErrInfeasible, ...)
// so callers branch with errors.Is.
package partition
