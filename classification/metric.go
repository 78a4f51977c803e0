// SPDX-License-Identifier: MIT

// Package classification - stateful F-beta metric.
//
// Lifecycle:
//   - NewFBeta / NewF1 → Update / Forward (any number of times) → Compute.
//   - Reset clears the state; the configuration is immutable.
//   - Replicas accumulate separately and combine through Merge / MergeState.
//
// Concurrency:
//   - An FBeta is not safe for concurrent use; give each goroutine its own
//     instance and merge at the end.
package classification

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvmetrics/tensor"
)

// Reducer all-reduces a replica's local state across every replica of its group.
// Implementations block until all replicas contributed and return the combined state.
type Reducer interface {
	AllReduce(ctx context.Context, local StatScores) (StatScores, error)
}

// FBeta accumulates per-class stat scores over batches and scores them on demand.
type FBeta struct {
	beta    float64
	opts    Options
	state   StatScores
	updates int
}

// NewFBeta builds a stateful F-beta metric.
// Errors: ErrInvalidBeta.
func NewFBeta(beta float64, opts ...Option) (*FBeta, error) {
	if err := validateBeta(beta); err != nil {
		return nil, fmt.Errorf("NewFBeta: %w", err)
	}
	o := gatherOptions(opts...)
	s, err := NewStatScores(o.numClasses)
	if err != nil {
		return nil, fmt.Errorf("NewFBeta: %w", err)
	}

	return &FBeta{beta: beta, opts: o, state: s}, nil
}

// NewF1 builds a stateful F1 metric (beta = 1).
func NewF1(opts ...Option) (*FBeta, error) {
	return NewFBeta(F1Beta, opts...)
}

// Beta returns the configured beta.
func (m *FBeta) Beta() float64 { return m.beta }

// NumUpdates returns how many batches (or merged states) were accumulated.
func (m *FBeta) NumUpdates() int { return m.updates }

// Update accumulates one batch. On error the state is left unchanged.
func (m *FBeta) Update(preds, target *tensor.Dense) error {
	s, err := statScores(preds, target, &m.opts)
	if err != nil {
		return fmt.Errorf("FBeta.Update: %w", err)
	}
	if err = m.state.Add(s); err != nil {
		return fmt.Errorf("FBeta.Update: %w", err)
	}
	m.updates++

	return nil
}

// Forward accumulates one batch and returns the score of that batch alone.
// MAIN DESCRIPTION:
//   - With WithDistSyncOnStep and a Reducer, the batch counts are all-reduced
//     first, so every replica returns the score of the step's combined batches.
//   - The accumulated state always receives only the local batch.
//
// Errors:
//   - formatting errors; reducer errors (ctx cancellation included).
func (m *FBeta) Forward(ctx context.Context, preds, target *tensor.Dense) (Result, error) {
	batch, err := statScores(preds, target, &m.opts)
	if err != nil {
		return Result{}, fmt.Errorf("FBeta.Forward: %w", err)
	}
	if err = m.state.Add(batch); err != nil {
		return Result{}, fmt.Errorf("FBeta.Forward: %w", err)
	}
	m.updates++

	if m.opts.distSyncOnStep && m.opts.reducer != nil {
		if batch, err = m.opts.reducer.AllReduce(ctx, batch); err != nil {
			return Result{}, fmt.Errorf("FBeta.Forward: all-reduce: %w", err)
		}
	}

	return FBetaFromStatScores(batch, m.beta, m.opts.average)
}

// Compute scores everything accumulated so far.
// Errors: ErrNoUpdates before the first Update/Forward/Merge.
func (m *FBeta) Compute() (Result, error) {
	if m.updates == 0 {
		return Result{}, fmt.Errorf("FBeta.Compute: %w", ErrNoUpdates)
	}

	return FBetaFromStatScores(m.state, m.beta, m.opts.average)
}

// Reset zeroes the accumulated state.
func (m *FBeta) Reset() {
	m.state, _ = NewStatScores(m.opts.numClasses)
	m.updates = 0
}

// State returns a copy of the accumulated stat scores.
func (m *FBeta) State() StatScores { return m.state.Clone() }

// MergeState adds externally accumulated counts; it counts as one update.
// Errors: ErrStateMismatch.
func (m *FBeta) MergeState(s StatScores) error {
	if err := m.state.Add(s); err != nil {
		return fmt.Errorf("FBeta.MergeState: %w", err)
	}
	m.updates++

	return nil
}

// Merge folds another metric's state into m.
// Errors: ErrConfigMismatch when beta or the scoring options differ.
func (m *FBeta) Merge(other *FBeta) error {
	if other == nil {
		return fmt.Errorf("FBeta.Merge: %w", ErrNilInput)
	}
	if m.beta != other.beta || !m.opts.sameScoring(other.opts) {
		return fmt.Errorf("FBeta.Merge: %w", ErrConfigMismatch)
	}
	if other.updates == 0 {
		return nil
	}
	if err := m.state.Add(other.state); err != nil {
		return fmt.Errorf("FBeta.Merge: %w", err)
	}
	m.updates += other.updates

	return nil
}
