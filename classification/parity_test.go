// SPDX-License-Identifier: MIT

package classification_test

import (
	"testing"

	"github.com/katalvlaran/lvmetrics/classification"
	"github.com/katalvlaran/lvmetrics/metrictest"
	"github.com/stretchr/testify/require"
)

// TestFBetaParity runs the stateful metric against the reference scorer over
// every family × average × beta × ddp × dist-sync-on-step combination.
func TestFBetaParity(t *testing.T) {
	t.Parallel()

	in, err := metrictest.NewInputs(metrictest.DefaultSeed)
	require.NoError(t, err)

	for _, c := range metrictest.DefaultSweep().Cases(metrictest.DefaultFamilies(in)) {
		t.Run(c.Name(), func(t *testing.T) {
			t.Parallel()
			metrictest.AssertClassMetric(t, c.ClassTest(metrictest.DefaultAtol))
		})
	}
}

// TestFBetaFunctionalParity runs the stateless form batch by batch; ddp and
// sync do not apply to it.
func TestFBetaFunctionalParity(t *testing.T) {
	t.Parallel()

	in, err := metrictest.NewInputs(metrictest.DefaultSeed)
	require.NoError(t, err)

	sweep := metrictest.DefaultSweep()
	sweep.DDP, sweep.DistSyncOnStep = []bool{false}, []bool{false}
	for _, c := range sweep.Cases(metrictest.DefaultFamilies(in)) {
		t.Run(c.Name(), func(t *testing.T) {
			t.Parallel()
			metrictest.AssertFunctionalMetric(t, c.FunctionalTest(metrictest.DefaultAtol))
		})
	}
}

// TestStatefulMatchesFunctional checks Compute over all batches against one
// functional call on the concatenated data.
func TestStatefulMatchesFunctional(t *testing.T) {
	t.Parallel()

	in, err := metrictest.NewInputs(metrictest.DefaultSeed)
	require.NoError(t, err)

	sweep := metrictest.DefaultSweep()
	sweep.DDP, sweep.DistSyncOnStep = []bool{false}, []bool{false}
	for _, c := range sweep.Cases(metrictest.DefaultFamilies(in)) {
		t.Run(c.Name(), func(t *testing.T) {
			t.Parallel()
			m, err := classification.NewFBeta(c.Beta, c.Options()...)
			require.NoError(t, err)
			for i := 0; i < c.Family.Input.NumBatches(); i++ {
				p, y, err := c.Family.Input.Batch(i)
				require.NoError(t, err)
				require.NoError(t, m.Update(p, y))
			}
			got, err := m.Compute()
			require.NoError(t, err)

			p, y, err := c.Family.Input.All()
			require.NoError(t, err)
			want, err := c.Functional(p, y)
			require.NoError(t, err)
			require.Empty(t, metrictest.Compare(want.Values(), got.Values(), metrictest.DefaultAtol))
		})
	}
}
