// SPDX-License-Identifier: MIT

package metrictest_test

import (
	"testing"

	"github.com/katalvlaran/lvmetrics/classification"
	"github.com/katalvlaran/lvmetrics/metrictest"
	"github.com/stretchr/testify/require"
)

func TestDefaultSweepCases(t *testing.T) {
	t.Parallel()

	in, err := metrictest.NewInputs(metrictest.DefaultSeed)
	require.NoError(t, err)
	fams := metrictest.DefaultFamilies(in)
	require.Len(t, fams, 9)

	cases := metrictest.DefaultSweep().Cases(fams)
	require.Len(t, cases, 9*4*3*2*2)

	names := make(map[string]bool, len(cases))
	for _, c := range cases {
		require.False(t, names[c.Name()], "duplicate case %s", c.Name())
		names[c.Name()] = true
	}
	require.Equal(t, "binary_prob/micro/beta=0.5/ddp=true/sync=true", cases[0].Name())
}

func TestCaseMetricConstructors(t *testing.T) {
	t.Parallel()

	in, err := metrictest.NewInputs(metrictest.DefaultSeed)
	require.NoError(t, err)
	fam := metrictest.DefaultFamilies(in)[0]

	for _, beta := range []float64{0.5, 1} {
		c := metrictest.Case{Family: fam, Average: classification.AverageMicro, Beta: beta}
		m, err := c.NewMetric()
		require.NoError(t, err)
		fb, ok := m.(*classification.FBeta)
		require.True(t, ok)
		require.Equal(t, beta, fb.Beta())
	}
}
