// SPDX-License-Identifier: MIT

package classification_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvmetrics/classification"
	"github.com/stretchr/testify/require"
)

func TestOptionPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { classification.WithNumClasses(0) })
	require.Panics(t, func() { classification.WithAverage(classification.Average(42)) })
	require.Panics(t, func() { classification.WithThreshold(0) })
	require.Panics(t, func() { classification.WithThreshold(1) })
	require.Panics(t, func() { classification.WithThreshold(math.NaN()) })
	require.Panics(t, func() { classification.WithReducer(nil) })

	require.NotPanics(t, func() { classification.WithThreshold(0.3) })
}

func TestParseAverage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want classification.Average
	}{
		{"", classification.AverageMicro},
		{"micro", classification.AverageMicro},
		{"Macro", classification.AverageMacro},
		{" weighted ", classification.AverageWeighted},
		{"NONE", classification.AverageNone},
	}
	for _, tc := range tests {
		got, err := classification.ParseAverage(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got, tc.in)
	}

	_, err := classification.ParseAverage("samples")
	require.ErrorIs(t, err, classification.ErrUnknownAverage)
}

func TestAverageText(t *testing.T) {
	t.Parallel()

	b, err := classification.AverageWeighted.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "weighted", string(b))

	var a classification.Average
	require.NoError(t, a.UnmarshalText([]byte("none")))
	require.Equal(t, classification.AverageNone, a)
	require.Error(t, a.UnmarshalText([]byte("binary")))

	_, err = classification.Average(9).MarshalText()
	require.ErrorIs(t, err, classification.ErrUnknownAverage)
	require.Equal(t, "Average(9)", classification.Average(9).String())
}
