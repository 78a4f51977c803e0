// SPDX-License-Identifier: MIT

package reference

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/lvmetrics/classification"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Score is a reference result. PerLabel is set for AverageNone only;
// Labels lists the labels that were scored, in order.
type Score struct {
	Value    float64
	PerLabel []float64
	Labels   []int
}

// Values returns PerLabel, or Value as a one-element slice.
func (s Score) Values() []float64 {
	if s.PerLabel != nil {
		return append([]float64(nil), s.PerLabel...)
	}

	return []float64{s.Value}
}

// counts holds per-label true positives, predicted positives and actual positives.
type counts struct {
	tp, predicted, actual []float64
}

// FBetaScore scores multiclass label vectors.
// MAIN DESCRIPTION:
//   - Build the L×L confusion matrix over the sorted label union (rows = truth).
//   - tp = diagonal, predicted = column sums, true = row sums.
//
// Errors:
//   - ErrEmpty, ErrShape (length mismatch), ErrBeta.
//
// Complexity:
//   - Time O(n + L²), Space O(L²).
func FBetaScore(yTrue, yPred []int, avg classification.Average, beta float64) (Score, error) {
	if err := checkPair(len(yTrue), len(yPred), beta); err != nil {
		return Score{}, fmt.Errorf("FBetaScore: %w", err)
	}
	labels := uniqueLabels(yTrue, yPred)
	index := make(map[int]int, len(labels))
	for i, l := range labels {
		index[l] = i
	}

	l := len(labels)
	cm := mat.NewDense(l, l, nil)
	for i := range yTrue {
		r, c := index[yTrue[i]], index[yPred[i]]
		cm.Set(r, c, cm.At(r, c)+1)
	}

	cnt := counts{tp: make([]float64, l), predicted: make([]float64, l), actual: make([]float64, l)}
	for k := 0; k < l; k++ {
		cnt.tp[k] = cm.At(k, k)
		cnt.predicted[k] = floats.Sum(mat.Col(nil, k, cm))
		cnt.actual[k] = floats.Sum(mat.Row(nil, k, cm))
	}

	return average(cnt, labels, avg, beta)
}

// BinaryFBetaScore scores label 1 of a {0,1} label vector.
// Errors: ErrEmpty, ErrShape, ErrNotBinary, ErrBeta.
func BinaryFBetaScore(yTrue, yPred []int, beta float64) (Score, error) {
	if err := checkPair(len(yTrue), len(yPred), beta); err != nil {
		return Score{}, fmt.Errorf("BinaryFBetaScore: %w", err)
	}
	var tp, pred, truth float64
	for i := range yTrue {
		t, p := yTrue[i], yPred[i]
		if (t != 0 && t != 1) || (p != 0 && p != 1) {
			return Score{}, fmt.Errorf("BinaryFBetaScore: sample %d (%d, %d): %w", i, t, p, ErrNotBinary)
		}
		if p == 1 {
			pred++
		}
		if t == 1 {
			truth++
		}
		if p == 1 && t == 1 {
			tp++
		}
	}

	return Score{Value: fromPR(tp, pred, truth, beta), Labels: []int{1}}, nil
}

// MultilabelFBetaScore scores N×C indicator matrices column by column.
// Errors: ErrEmpty, ErrShape, ErrNotBinary, ErrBeta.
// Complexity: O(N·C).
func MultilabelFBetaScore(yTrue, yPred *mat.Dense, avg classification.Average, beta float64) (Score, error) {
	if yTrue == nil || yPred == nil || yTrue.IsEmpty() || yPred.IsEmpty() {
		return Score{}, fmt.Errorf("MultilabelFBetaScore: %w", ErrEmpty)
	}
	rt, ct := yTrue.Dims()
	rp, cp := yPred.Dims()
	if rt != rp || ct != cp {
		return Score{}, fmt.Errorf("MultilabelFBetaScore: %dx%d vs %dx%d: %w", rt, ct, rp, cp, ErrShape)
	}
	if err := checkPair(rt, rp, beta); err != nil {
		return Score{}, fmt.Errorf("MultilabelFBetaScore: %w", err)
	}

	cnt := counts{tp: make([]float64, ct), predicted: make([]float64, ct), actual: make([]float64, ct)}
	labels := make([]int, ct)
	tcol, pcol := make([]float64, rt), make([]float64, rt)
	for c := 0; c < ct; c++ {
		mat.Col(tcol, c, yTrue)
		mat.Col(pcol, c, yPred)
		for i := range tcol {
			if !isIndicator(tcol[i]) || !isIndicator(pcol[i]) {
				return Score{}, fmt.Errorf("MultilabelFBetaScore: (%d,%d): %w", i, c, ErrNotBinary)
			}
		}
		cnt.tp[c] = floats.Dot(tcol, pcol)
		cnt.predicted[c] = floats.Sum(pcol)
		cnt.actual[c] = floats.Sum(tcol)
		labels[c] = c
	}

	return average(cnt, labels, avg, beta)
}

// average combines per-label counts the way fbeta_score does.
func average(cnt counts, labels []int, avg classification.Average, beta float64) (Score, error) {
	switch avg {
	case classification.AverageMicro:
		return Score{
			Value:  fromPR(floats.Sum(cnt.tp), floats.Sum(cnt.predicted), floats.Sum(cnt.actual), beta),
			Labels: labels,
		}, nil
	case classification.AverageMacro, classification.AverageWeighted, classification.AverageNone:
	default:
		return Score{}, fmt.Errorf("average %v: %w", avg, classification.ErrUnknownAverage)
	}

	f := make([]float64, len(labels))
	for k := range f {
		f[k] = fromPR(cnt.tp[k], cnt.predicted[k], cnt.actual[k], beta)
	}
	switch avg {
	case classification.AverageNone:
		return Score{PerLabel: f, Labels: labels}, nil
	case classification.AverageWeighted:
		if floats.Sum(cnt.actual) == 0 {
			return Score{Labels: labels}, nil
		}

		return Score{Value: stat.Mean(f, cnt.actual), Labels: labels}, nil
	default:
		return Score{Value: stat.Mean(f, nil), Labels: labels}, nil
	}
}

// fromPR derives precision and recall, then their weighted harmonic mean.
func fromPR(tp, pred, truth, beta float64) float64 {
	p, r := ratio(tp, pred), ratio(tp, truth)
	b2 := beta * beta
	den := b2*p + r
	if den == 0 {
		return 0
	}

	return (1 + b2) * p * r / den
}

func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}

	return num / den
}

func checkPair(nTrue, nPred int, beta float64) error {
	if math.IsNaN(beta) || math.IsInf(beta, 0) || beta <= 0 {
		return ErrBeta
	}
	if nTrue == 0 || nPred == 0 {
		return ErrEmpty
	}
	if nTrue != nPred {
		return fmt.Errorf("%d vs %d samples: %w", nTrue, nPred, ErrShape)
	}

	return nil
}

func uniqueLabels(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	slices.Sort(out)

	return slices.Compact(out)
}

func isIndicator(v float64) bool { return v == 0 || v == 1 }
