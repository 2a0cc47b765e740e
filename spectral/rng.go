// SPDX-License-Identifier: MIT
// Package: partlath/spectral
//
// rng.go — deterministic randomness for the power-iteration start vector.
//
// Policy:
//   - Options.Rand wins when set.
//   - Otherwise Seed==0 ⇒ defaultRNGSeed; other seeds are used verbatim.
//   - math/rand.Rand is not goroutine-safe; one source per call.

package spectral

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// resolveRNG applies the Rand/Seed policy.
func resolveRNG(opts Options) *rand.Rand {
	if opts.Rand != nil {
		return opts.Rand
	}
	return rngFromSeed(opts.Seed)
}

// randomUnit fills dst with uniform values in [−0.5, 0.5).
// Complexity: O(len(dst)).
func randomUnit(dst []float64, rng *rand.Rand) {
	for i := range dst {
		dst[i] = rng.Float64() - 0.5
	}
}
