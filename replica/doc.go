// SPDX-License-Identifier: MIT

// Package replica simulates a fixed-size process group inside one process.
//
// Each replica (rank) runs in its own goroutine and owns its local state.
// AllReduce is the only collective: every rank contributes its local value
// for the current round, blocks until all ranks did, and receives the merge
// of all contributions.
//
// Determinism:
//   - contributions are merged in rank order (0, 1, ..., size-1), whatever
//     order the goroutines arrive in, so every rank sees the same value and
//     repeated runs produce identical results.
//
// ⚙️ Usage:
//
//	g, _ := replica.NewGroup[int](2, func(a, b int) (int, error) { return a + b, nil })
//	m0, _ := g.Member(0)
//	m1, _ := g.Member(1)
//	// in two goroutines:
//	sum, err := m0.AllReduce(ctx, 3) // 3 + 4
//	sum, err := m1.AllReduce(ctx, 4) // 3 + 4
package replica
