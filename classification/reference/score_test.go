// SPDX-License-Identifier: MIT

package reference_test

import (
	"testing"

	"github.com/katalvlaran/lvmetrics/classification"
	"github.com/katalvlaran/lvmetrics/classification/reference"
	"github.com/katalvlaran/lvmetrics/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const tol = 1e-12

// sklearn's fbeta_score documentation example.
var (
	docTrue = []int{0, 1, 2, 0, 1, 2}
	docPred = []int{0, 2, 1, 0, 0, 1}
)

func TestFBetaScoreDocExample(t *testing.T) {
	t.Parallel()

	tests := []struct {
		avg  classification.Average
		want []float64
	}{
		{classification.AverageMicro, []float64{1.0 / 3}},
		{classification.AverageMacro, []float64{5.0 / 21}},
		{classification.AverageWeighted, []float64{5.0 / 21}},
		{classification.AverageNone, []float64{5.0 / 7, 0, 0}},
	}
	for _, tc := range tests {
		t.Run(tc.avg.String(), func(t *testing.T) {
			s, err := reference.FBetaScore(docTrue, docPred, tc.avg, 0.5)
			require.NoError(t, err)
			assert.InDeltaSlice(t, tc.want, s.Values(), tol)
			assert.Equal(t, []int{0, 1, 2}, s.Labels)
		})
	}
}

func TestFBetaScoreLabelsPresentOnly(t *testing.T) {
	t.Parallel()

	// labels 1 and 4 only; nothing is reported for 0, 2, 3
	s, err := reference.FBetaScore([]int{4, 4, 1}, []int{4, 1, 1}, classification.AverageNone, 1)
	require.NoError(t, err)
	require.Equal(t, []int{1, 4}, s.Labels)
	// label 1: P 1/2 R 1 → 2/3; label 4: P 1 R 1/2 → 2/3
	assert.InDeltaSlice(t, []float64{2.0 / 3, 2.0 / 3}, s.PerLabel, tol)
}

func TestBinaryFBetaScore(t *testing.T) {
	t.Parallel()

	for _, beta := range []float64{0.5, 1, 2} {
		s, err := reference.BinaryFBetaScore([]int{0, 1, 1, 0}, []int{1, 0, 1, 0}, beta)
		require.NoError(t, err)
		assert.InDelta(t, 0.5, s.Value, tol)
		assert.Equal(t, []float64{0.5}, s.Values())
	}

	s, err := reference.BinaryFBetaScore([]int{1, 1}, []int{0, 0}, 1)
	require.NoError(t, err)
	assert.Zero(t, s.Value)

	_, err = reference.BinaryFBetaScore([]int{0, 2}, []int{0, 1}, 1)
	require.ErrorIs(t, err, reference.ErrNotBinary)
}

func TestMultilabelFBetaScore(t *testing.T) {
	t.Parallel()

	yTrue := mat.NewDense(3, 2, []float64{1, 0, 1, 1, 0, 1})
	yPred := mat.NewDense(3, 2, []float64{1, 1, 0, 1, 0, 1})

	tests := []struct {
		avg  classification.Average
		want []float64
	}{
		{classification.AverageMicro, []float64{0.75}},
		{classification.AverageMacro, []float64{(2.0/3 + 0.8) / 2}},
		{classification.AverageWeighted, []float64{(2.0/3 + 0.8) / 2}},
		{classification.AverageNone, []float64{2.0 / 3, 0.8}},
	}
	for _, tc := range tests {
		s, err := reference.MultilabelFBetaScore(yTrue, yPred, tc.avg, 1)
		require.NoError(t, err)
		assert.InDeltaSlice(t, tc.want, s.Values(), tol, tc.avg.String())
	}

	_, err := reference.MultilabelFBetaScore(yTrue, mat.NewDense(2, 2, nil), classification.AverageMicro, 1)
	require.ErrorIs(t, err, reference.ErrShape)
	_, err = reference.MultilabelFBetaScore(yTrue, mat.NewDense(3, 2, []float64{2, 0, 0, 0, 0, 0}), classification.AverageMicro, 1)
	require.ErrorIs(t, err, reference.ErrNotBinary)
}

func TestScoreErrors(t *testing.T) {
	t.Parallel()

	_, err := reference.FBetaScore(nil, nil, classification.AverageMicro, 1)
	require.ErrorIs(t, err, reference.ErrEmpty)
	_, err = reference.FBetaScore([]int{0, 1}, []int{0}, classification.AverageMicro, 1)
	require.ErrorIs(t, err, reference.ErrShape)
	_, err = reference.FBetaScore([]int{0}, []int{0}, classification.AverageMicro, 0)
	require.ErrorIs(t, err, reference.ErrBeta)
	_, err = reference.FBetaScore([]int{0}, []int{0}, classification.Average(7), 1)
	require.ErrorIs(t, err, classification.ErrUnknownAverage)
}

func TestAdapterFamilies(t *testing.T) {
	t.Parallel()

	mk := func(data []float64, shape ...int) *tensor.Dense {
		d, err := tensor.FromSlice(data, shape)
		require.NoError(t, err)

		return d
	}

	tests := []struct {
		name   string
		family reference.Family
		preds  *tensor.Dense
		target *tensor.Dense
		avg    classification.Average
		want   []float64
	}{
		{
			name:   "binary prob ignores average",
			family: reference.Family{Kind: reference.Binary, Form: reference.Probabilities},
			preds:  mk([]float64{0.9, 0.2, 0.7, 0.4}, 2, 2),
			target: mk([]float64{0, 1, 1, 0}, 2, 2),
			avg:    classification.AverageNone,
			want:   []float64{0.5},
		},
		{
			name:   "multilabel prob",
			family: reference.Family{Kind: reference.MultiLabel, Form: reference.Probabilities},
			preds:  mk([]float64{0.8, 0.6, 0.1, 0.9, 0.3, 0.7}, 3, 2),
			target: mk([]float64{1, 0, 1, 1, 0, 1}, 3, 2),
			avg:    classification.AverageNone,
			want:   []float64{2.0 / 3, 0.8},
		},
		{
			name:   "multiclass prob",
			family: reference.Family{Kind: reference.MultiClass, Form: reference.Probabilities},
			// argmax rows: 0, 2, 1, 0, 0, 1
			preds: mk([]float64{
				0.8, 0.1, 0.1,
				0.1, 0.2, 0.7,
				0.2, 0.5, 0.3,
				0.6, 0.3, 0.1,
				0.4, 0.3, 0.3,
				0.1, 0.8, 0.1,
			}, 6, 3),
			target: mk([]float64{0, 1, 2, 0, 1, 2}, 6),
			avg:    classification.AverageMacro,
			want:   []float64{0.8 / 3},
		},
		{
			name:   "multidim prob",
			family: reference.Family{Kind: reference.MultiDimMultiClass, Form: reference.Probabilities},
			// (N=1, C=2, E=3): argmax over C → 1, 0, 1
			preds:  mk([]float64{0.1, 0.9, 0.2, 0.9, 0.1, 0.8}, 1, 2, 3),
			target: mk([]float64{1, 0, 0}, 1, 3),
			avg:    classification.AverageMicro,
			want:   []float64{2.0 / 3},
		},
		{
			name:   "multidim labels",
			family: reference.Family{Kind: reference.MultiDimMultiClass, Form: reference.Labels},
			preds:  mk([]float64{1, 0, 1, 2, 2, 0}, 2, 3),
			target: mk([]float64{1, 0, 0, 2, 1, 0}, 2, 3),
			avg:    classification.AverageMicro,
			want:   []float64{4.0 / 6},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := reference.Adapter{Family: tc.family, Threshold: 0.5}
			s, err := a.Score(tc.preds, tc.target, tc.avg, 1)
			require.NoError(t, err)
			assert.InDeltaSlice(t, tc.want, s.Values(), tol)
		})
	}
}

func TestAdapterErrors(t *testing.T) {
	t.Parallel()

	p, err := tensor.FromSlice([]float64{0.5, 1}, []int{2})
	require.NoError(t, err)

	_, err = reference.Adapter{Family: reference.Family{Kind: reference.Kind(9)}}.Score(p, p, classification.AverageMicro, 1)
	require.ErrorIs(t, err, reference.ErrUnknownFamily)

	_, err = reference.Adapter{Family: reference.Family{Kind: reference.MultiClass}}.Score(p, p, classification.AverageMicro, 1)
	require.ErrorIs(t, err, tensor.ErrNotIntegral)

	q, err := tensor.FromSlice([]float64{1, 0, 1, 0}, []int{2, 2})
	require.NoError(t, err)
	_, err = reference.Adapter{Family: reference.Family{Kind: reference.MultiLabel}}.Score(q, p, classification.AverageMicro, 1)
	require.ErrorIs(t, err, reference.ErrShape)
}

func TestFamilyString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "multidim_multiclass_prob",
		reference.Family{Kind: reference.MultiDimMultiClass, Form: reference.Probabilities}.String())
	require.Equal(t, "binary", reference.Family{Kind: reference.Binary}.String())
	require.Equal(t, "Kind(9)", reference.Kind(9).String())
}
