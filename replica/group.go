// SPDX-License-Identifier: MIT

package replica

import (
	"context"
	"fmt"
	"sync"
)

// MergeFunc combines two states. It must be associative; the group applies
// it left to right in rank order.
type MergeFunc[S any] func(a, b S) (S, error)

// Group is a fixed set of ranks sharing all-reduce rounds.
type Group[S any] struct {
	size  int
	merge MergeFunc[S]

	mu  sync.Mutex
	cur *round[S]
}

// round collects one contribution per rank; done closes once out/err are final.
type round[S any] struct {
	parts []S
	have  []bool
	n     int
	done  chan struct{}
	out   S
	err   error
}

func newRound[S any](size int) *round[S] {
	return &round[S]{
		parts: make([]S, size),
		have:  make([]bool, size),
		done:  make(chan struct{}),
	}
}

// NewGroup creates a group of size ranks.
// Errors: ErrBadSize, ErrNilMerge.
func NewGroup[S any](size int, merge MergeFunc[S]) (*Group[S], error) {
	if size < 1 {
		return nil, fmt.Errorf("NewGroup(%d): %w", size, ErrBadSize)
	}
	if merge == nil {
		return nil, fmt.Errorf("NewGroup(%d): %w", size, ErrNilMerge)
	}

	return &Group[S]{size: size, merge: merge, cur: newRound[S](size)}, nil
}

// Size returns the number of ranks.
func (g *Group[S]) Size() int { return g.size }

// Member returns the handle of one rank.
// Errors: ErrRankOutOfRange.
func (g *Group[S]) Member(rank int) (*Member[S], error) {
	if rank < 0 || rank >= g.size {
		return nil, fmt.Errorf("Group.Member(%d): size %d: %w", rank, g.size, ErrRankOutOfRange)
	}

	return &Member[S]{g: g, rank: rank}, nil
}

// reduce folds parts left to right.
func (g *Group[S]) reduce(parts []S) (S, error) {
	out := parts[0]
	for i := 1; i < len(parts); i++ {
		var err error
		if out, err = g.merge(out, parts[i]); err != nil {
			var zero S

			return zero, fmt.Errorf("merge rank %d: %w", i, err)
		}
	}

	return out, nil
}

// Member is one rank's view of its group.
type Member[S any] struct {
	g    *Group[S]
	rank int
}

// Rank returns the member's rank.
func (m *Member[S]) Rank() int { return m.rank }

// AllReduce contributes local to the current round and waits for the others.
// MAIN DESCRIPTION:
//   - The last rank to arrive merges the round and releases everyone.
//   - Every rank receives the same merged value (shared, not copied).
//
// Errors:
//   - ErrDuplicateRank when this rank already contributed to the open round.
//   - ctx.Err() when the context ends first. The round stays open with this
//     rank's contribution; the group is unusable for further rounds after
//     that, so callers abandon it on cancellation.
//   - merge errors, delivered to every rank.
func (m *Member[S]) AllReduce(ctx context.Context, local S) (S, error) {
	var zero S
	g := m.g

	g.mu.Lock()
	r := g.cur
	if r.have[m.rank] {
		g.mu.Unlock()

		return zero, fmt.Errorf("Member(%d).AllReduce: %w", m.rank, ErrDuplicateRank)
	}
	r.parts[m.rank] = local
	r.have[m.rank] = true
	r.n++
	if r.n == g.size {
		r.out, r.err = g.reduce(r.parts)
		g.cur = newRound[S](g.size)
		close(r.done)
	}
	g.mu.Unlock()

	select {
	case <-r.done:
		if r.err != nil {
			return zero, fmt.Errorf("Member(%d).AllReduce: %w", m.rank, r.err)
		}

		return r.out, nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
