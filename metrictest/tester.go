// SPDX-License-Identifier: MIT

package metrictest

import (
	"context"
	"fmt"
	"slices"
	"testing"

	"github.com/katalvlaran/lvmetrics/classification"
	"github.com/katalvlaran/lvmetrics/tensor"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// Metric is the stateful surface the harness drives.
// *classification.FBeta satisfies it.
type Metric interface {
	Forward(ctx context.Context, preds, target *tensor.Dense) (classification.Result, error)
	Compute() (classification.Result, error)
	State() classification.StatScores
	MergeState(s classification.StatScores) error
}

// MetricFactory builds a fresh metric; extra carries replica sync options.
type MetricFactory func(extra ...classification.Option) (Metric, error)

// ReferenceFunc returns the trusted values for a preds/target pair.
type ReferenceFunc func(preds, target *tensor.Dense) ([]float64, error)

// ClassTest is one stateful parity run.
type ClassTest struct {
	Input     Input
	NewMetric MetricFactory
	Reference ReferenceFunc

	// DDP splits batches across NumProcesses replicas (batch i → rank i mod W).
	DDP bool
	// DistSyncOnStep all-reduces each Forward across replicas (DDP only).
	DistSyncOnStep bool
	// CheckBatch compares each unsynced Forward value with its batch.
	CheckBatch bool
	// CheckDistSyncOnStep compares each synced Forward value with the step's batches.
	CheckDistSyncOnStep bool

	Atol float64
}

// FunctionalTest is one stateless parity run over every batch.
type FunctionalTest struct {
	Input     Input
	Func      func(preds, target *tensor.Dense) (classification.Result, error)
	Reference ReferenceFunc
	Atol      float64
}

// RunClassMetricTest runs ct and reports the first failure.
// MAIN DESCRIPTION:
//   - Stage 1: accumulate batches, on one metric or on NumProcesses replicas
//     running concurrently; check per-batch / per-step values on the way.
//   - Stage 2: merge replica states in rank order and in reverse rank order;
//     both must agree.
//   - Stage 3: the merged value must match the reference on all batches.
//
// Errors:
//   - *MismatchError; ErrUnevenShards; ErrIncompleteTest; metric, reference
//     and reducer errors unchanged.
func RunClassMetricTest(ctx context.Context, ct ClassTest) error {
	if ct.NewMetric == nil || ct.Reference == nil {
		return ErrIncompleteTest
	}
	world := 1
	if ct.DDP {
		world = NumProcesses
	}
	nb := ct.Input.NumBatches()
	if nb%world != 0 {
		return fmt.Errorf("RunClassMetricTest: %d batches, %d replicas: %w", nb, world, ErrUnevenShards)
	}

	metrics, err := runReplicas(ctx, ct, world)
	if err != nil {
		return err
	}

	got, err := mergeStates(ct.NewMetric, metrics, false)
	if err != nil {
		return err
	}
	if world > 1 {
		rev, err := mergeStates(ct.NewMetric, metrics, true)
		if err != nil {
			return err
		}
		if err = compareAt(StageMergeOrder, -1, -1, got, rev, ct.Atol); err != nil {
			return err
		}
	}

	preds, target, err := ct.Input.All()
	if err != nil {
		return err
	}
	want, err := ct.Reference(preds, target)
	if err != nil {
		return err
	}

	return compareAt(StageFinal, -1, -1, want, got, ct.Atol)
}

// runReplicas drives world metrics concurrently and returns them in rank order.
func runReplicas(ctx context.Context, ct ClassTest, world int) ([]Metric, error) {
	var extra [][]classification.Option
	synced := ct.DDP && ct.DistSyncOnStep
	if synced {
		group, err := NewReplicaGroup(world)
		if err != nil {
			return nil, err
		}
		for r := 0; r < world; r++ {
			m, err := group.Member(r)
			if err != nil {
				return nil, err
			}
			extra = append(extra, []classification.Option{
				classification.WithDistSyncOnStep(),
				classification.WithReducer(NewReducer(m)),
			})
		}
	} else {
		extra = make([][]classification.Option, world)
	}

	metrics := make([]Metric, world)
	for r := range metrics {
		m, err := ct.NewMetric(extra[r]...)
		if err != nil {
			return nil, err
		}
		metrics[r] = m
	}

	g, gctx := errgroup.WithContext(ctx)
	for r := 0; r < world; r++ {
		g.Go(func() error {
			for i := r; i < ct.Input.NumBatches(); i += world {
				preds, target, err := ct.Input.Batch(i)
				if err != nil {
					return err
				}
				res, err := metrics[r].Forward(gctx, preds, target)
				if err != nil {
					return err
				}
				if (synced && !ct.CheckDistSyncOnStep) || (!synced && !ct.CheckBatch) {
					continue
				}
				stage := StageBatch
				if synced {
					// a synced value covers every batch of the step
					stage = StageStep
					if preds, target, err = ct.Input.Span(i-r, i-r+world); err != nil {
						return err
					}
				}
				want, err := ct.Reference(preds, target)
				if err != nil {
					return err
				}
				if err = compareAt(stage, i, r, want, res.Values(), ct.Atol); err != nil {
					return err
				}
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return metrics, nil
}

// mergeStates folds every replica state into a fresh metric and computes it.
func mergeStates(newMetric MetricFactory, metrics []Metric, reverse bool) ([]float64, error) {
	order := slices.Clone(metrics)
	if reverse {
		slices.Reverse(order)
	}
	sink, err := newMetric()
	if err != nil {
		return nil, err
	}
	for _, m := range order {
		if err = sink.MergeState(m.State()); err != nil {
			return nil, err
		}
	}
	res, err := sink.Compute()
	if err != nil {
		return nil, err
	}

	return res.Values(), nil
}

// RunFunctionalMetricTest compares the stateless metric with the reference on every batch.
func RunFunctionalMetricTest(ft FunctionalTest) error {
	if ft.Func == nil || ft.Reference == nil {
		return ErrIncompleteTest
	}
	for i := 0; i < ft.Input.NumBatches(); i++ {
		preds, target, err := ft.Input.Batch(i)
		if err != nil {
			return err
		}
		got, err := ft.Func(preds, target)
		if err != nil {
			return err
		}
		want, err := ft.Reference(preds, target)
		if err != nil {
			return err
		}
		if err = compareAt(StageFunctional, i, -1, want, got.Values(), ft.Atol); err != nil {
			return err
		}
	}

	return nil
}

// AssertClassMetric fails t when RunClassMetricTest reports an error.
func AssertClassMetric(t testing.TB, ct ClassTest) {
	t.Helper()
	require.NoError(t, RunClassMetricTest(context.Background(), ct))
}

// AssertFunctionalMetric fails t when RunFunctionalMetricTest reports an error.
func AssertFunctionalMetric(t testing.TB, ft FunctionalTest) {
	t.Helper()
	require.NoError(t, RunFunctionalMetricTest(ft))
}
