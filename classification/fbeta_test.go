// SPDX-License-Identifier: MIT

package classification_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvmetrics/classification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

func TestFBetaScoreAverages(t *testing.T) {
	t.Parallel()

	preds, target := mustTensor(t, docPreds, 6), mustTensor(t, docTarget, 6)
	tests := []struct {
		avg  classification.Average
		beta float64
		want []float64
	}{
		{classification.AverageMicro, 0.5, []float64{1.0 / 3}},
		{classification.AverageMacro, 0.5, []float64{5.0 / 21}},
		{classification.AverageWeighted, 0.5, []float64{5.0 / 21}},
		{classification.AverageNone, 0.5, []float64{5.0 / 7, 0, 0}},
		{classification.AverageNone, 2, []float64{10.0 / 11, 0, 0}},
		{classification.AverageMicro, 2, []float64{1.0 / 3}},
	}
	for _, tc := range tests {
		t.Run(tc.avg.String(), func(t *testing.T) {
			res, err := classification.FBetaScore(preds, target, tc.beta,
				classification.WithNumClasses(3), classification.WithAverage(tc.avg))
			require.NoError(t, err)
			require.Equal(t, tc.avg, res.Average)
			assert.InDeltaSlice(t, tc.want, res.Values(), tol)
		})
	}
}

func TestFBetaMacroSkipsUnseenClasses(t *testing.T) {
	t.Parallel()

	// class 2 never appears in preds or target
	preds := mustTensor(t, []float64{0, 1, 1, 0}, 4)
	target := mustTensor(t, []float64{0, 1, 0, 0}, 4)

	res, err := classification.F1Score(preds, target,
		classification.WithNumClasses(3), classification.WithAverage(classification.AverageMacro))
	require.NoError(t, err)
	// class 0: tp 2, fn 1 → 0.8; class 1: tp 1, fp 1 → 2/3
	assert.InDelta(t, (0.8+2.0/3)/2, res.Value, tol)

	none, err := classification.F1Score(preds, target,
		classification.WithNumClasses(3), classification.WithAverage(classification.AverageNone))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.8, 2.0 / 3, 0}, none.PerClass, tol)
}

func TestFBetaWeightedWithoutSupport(t *testing.T) {
	t.Parallel()

	s := classification.StatScores{TP: []float64{0, 0}, FP: []float64{3, 1}, TN: []float64{1, 3}, FN: []float64{0, 0}}
	res, err := classification.FBetaFromStatScores(s, 1, classification.AverageWeighted)
	require.NoError(t, err)
	assert.Zero(t, res.Value)
}

func TestF1EqualsFBetaOne(t *testing.T) {
	t.Parallel()

	preds, target := mustTensor(t, docPreds, 6), mustTensor(t, docTarget, 6)
	for _, avg := range classification.Averages() {
		opts := []classification.Option{classification.WithNumClasses(3), classification.WithAverage(avg)}
		f1, err := classification.F1Score(preds, target, opts...)
		require.NoError(t, err)
		fb, err := classification.FBetaScore(preds, target, 1, opts...)
		require.NoError(t, err)
		require.Equal(t, fb, f1, avg.String())
	}
}

func TestFBetaInvalidBeta(t *testing.T) {
	t.Parallel()

	preds, target := mustTensor(t, docPreds, 6), mustTensor(t, docTarget, 6)
	for _, beta := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := classification.FBetaScore(preds, target, beta, classification.WithNumClasses(3))
		require.ErrorIs(t, err, classification.ErrInvalidBeta)
		_, err = classification.NewFBeta(beta)
		require.ErrorIs(t, err, classification.ErrInvalidBeta)
	}
}

// Fixed regression values: per-class scores over two classes, and the
// positive-class score when the same rows are scored as binary.
func TestFBetaLiteral(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		preds  []float64
		target []float64
		beta   float64
		want   []float64
		binary []float64
	}{
		{"fbeta 0.5", []float64{1, 0, 1, 0}, []float64{0, 1, 1, 0}, 0.5, []float64{0.5, 0.5}, []float64{0.5}},
		{"fbeta 1", []float64{1, 0, 1, 0}, []float64{0, 1, 1, 0}, 1, []float64{0.5, 0.5}, []float64{0.5}},
		{"fbeta 2", []float64{1, 0, 1, 0}, []float64{0, 1, 1, 0}, 2, []float64{0.5, 0.5}, []float64{0.5}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := classification.FBetaScore(mustTensor(t, tc.preds, 4), mustTensor(t, tc.target, 4), tc.beta,
				classification.WithNumClasses(2), classification.WithAverage(classification.AverageNone))
			require.NoError(t, err)
			assert.InDeltaSlice(t, tc.want, res.Values(), 1e-8)

			bin, err := classification.FBetaScore(mustTensor(t, tc.preds, 4), mustTensor(t, tc.target, 4), tc.beta,
				classification.WithAverage(classification.AverageNone))
			require.NoError(t, err)
			assert.InDeltaSlice(t, tc.binary, bin.Values(), 1e-8)
		})
	}
}

func TestF1Literal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		preds  []float64
		target []float64
		want   []float64
		binary []float64
	}{
		{"all missed", []float64{0, 0, 0, 0}, []float64{1, 1, 1, 1}, []float64{0, 0}, []float64{0}},
		{"half", []float64{1, 0, 1, 0}, []float64{0, 1, 1, 0}, []float64{0.5, 0.5}, []float64{0.5}},
		{"perfect", []float64{1, 0, 1, 0}, []float64{1, 0, 1, 0}, []float64{1, 1}, []float64{1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := classification.F1Score(mustTensor(t, tc.preds, 4), mustTensor(t, tc.target, 4),
				classification.WithNumClasses(2), classification.WithAverage(classification.AverageNone))
			require.NoError(t, err)
			assert.InDeltaSlice(t, tc.want, res.Values(), 1e-8)

			bin, err := classification.F1Score(mustTensor(t, tc.preds, 4), mustTensor(t, tc.target, 4),
				classification.WithAverage(classification.AverageNone))
			require.NoError(t, err)
			assert.InDeltaSlice(t, tc.binary, bin.Values(), 1e-8)
		})
	}
}

func TestResultValues(t *testing.T) {
	t.Parallel()

	scalar := classification.Result{Average: classification.AverageMicro, Value: 0.25}
	vector := classification.Result{Average: classification.AverageNone, PerClass: []float64{0.25}}
	require.Equal(t, scalar.Values(), vector.Values())
	require.Equal(t, "micro=0.25", scalar.String())
	require.Equal(t, "none=[0.25]", vector.String())
}
