// SPDX-License-Identifier: MIT

// Package metrictest - deterministic random streams for fixtures.
//
// Goals:
//   - Same seed ⇒ identical fixtures on every platform and run.
//   - One independent stream per family, so adding a family never shifts
//     the values of the others.
//
// Concurrency:
//   - *rand.Rand is not goroutine-safe; every stream is used by one builder.
package metrictest

import "math/rand/v2"

// newStream returns the PCG stream for (seed, stream).
// Policy: seed==0 ⇒ DefaultSeed.
//
// Complexity: O(1).
func newStream(seed, stream uint64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewPCG(deriveSeed(seed, stream), deriveSeed(seed, ^stream)))
}

// deriveSeed mixes a parent seed and a stream id with the SplitMix64 finalizer.
//
// Complexity: O(1).
func deriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb

	return x ^ (x >> 31)
}
