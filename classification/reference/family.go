// SPDX-License-Identifier: MIT

package reference

import (
	"fmt"

	"github.com/katalvlaran/lvmetrics/classification"
	"github.com/katalvlaran/lvmetrics/tensor"
	"gonum.org/v1/gonum/mat"
)

// Kind is the label structure of an input family.
type Kind int

const (
	// Binary inputs hold one positive class.
	Binary Kind = iota
	// MultiLabel inputs hold independent indicators on the last axis.
	MultiLabel
	// MultiClass inputs hold one label per sample.
	MultiClass
	// MultiDimMultiClass inputs hold one label per (sample, extra) position.
	MultiDimMultiClass
)

var kindNames = [...]string{
	Binary:             "binary",
	MultiLabel:         "multilabel",
	MultiClass:         "multiclass",
	MultiDimMultiClass: "multidim_multiclass",
}

func (k Kind) String() string {
	if k < Binary || k > MultiDimMultiClass {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// Form tells whether predictions are hard labels or per-class probabilities.
type Form int

const (
	// Labels are hard decisions ({0,1} or class ids).
	Labels Form = iota
	// Probabilities are scores in [0,1]; binary/multilabel ones are thresholded,
	// multiclass ones reduced with argmax over the class axis.
	Probabilities
)

func (f Form) String() string {
	if f == Probabilities {
		return "prob"
	}

	return "labels"
}

// Family is the tagged input variant an Adapter dispatches on.
type Family struct {
	Kind Kind
	Form Form
}

// String returns e.g. "multiclass" or "multiclass_prob".
func (f Family) String() string {
	if f.Form == Probabilities {
		return f.Kind.String() + "_prob"
	}

	return f.Kind.String()
}

func (f Family) valid() bool {
	return f.Kind >= Binary && f.Kind <= MultiDimMultiClass && (f.Form == Labels || f.Form == Probabilities)
}

// Adapter turns raw family-shaped tensors into reference scores.
// Threshold applies to binary and multilabel probabilities only.
type Adapter struct {
	Family    Family
	Threshold float64
}

// Score computes the reference F-beta for a preds/target pair.
// MAIN DESCRIPTION:
//   - Binary: flatten; threshold probabilities; score label 1. avg is ignored:
//     with one positive class every averaging mode reduces to that score.
//   - MultiLabel: reshape to (-1, C) with C = last axis; threshold probabilities.
//   - MultiClass: argmax over the last axis for probabilities; flatten.
//   - MultiDimMultiClass: argmax over axis ndim-2 for probabilities; flatten.
//
// Errors:
//   - ErrUnknownFamily, ErrShape, ErrEmpty, ErrNotBinary, ErrBeta,
//     tensor errors (non-integral labels).
func (a Adapter) Score(preds, target *tensor.Dense, avg classification.Average, beta float64) (Score, error) {
	if !a.Family.valid() {
		return Score{}, fmt.Errorf("Adapter.Score: %v: %w", a.Family, ErrUnknownFamily)
	}
	if preds == nil || target == nil {
		return Score{}, fmt.Errorf("Adapter.Score(%v): %w", a.Family, ErrEmpty)
	}

	var (
		s   Score
		err error
	)
	switch a.Family.Kind {
	case Binary:
		s, err = a.binary(preds, target, beta)
	case MultiLabel:
		s, err = a.multilabel(preds, target, avg, beta)
	case MultiClass:
		s, err = a.multiclass(preds, target, preds.NDim()-1, avg, beta)
	case MultiDimMultiClass:
		s, err = a.multiclass(preds, target, preds.NDim()-2, avg, beta)
	}
	if err != nil {
		return Score{}, fmt.Errorf("Adapter.Score(%v): %w", a.Family, err)
	}

	return s, nil
}

func (a Adapter) binary(preds, target *tensor.Dense, beta float64) (Score, error) {
	if a.Family.Form == Probabilities {
		preds = preds.Threshold(a.Threshold)
	}
	yPred, err := preds.Ints()
	if err != nil {
		return Score{}, err
	}
	yTrue, err := target.Ints()
	if err != nil {
		return Score{}, err
	}

	return BinaryFBetaScore(yTrue, yPred, beta)
}

func (a Adapter) multilabel(preds, target *tensor.Dense, avg classification.Average, beta float64) (Score, error) {
	c := preds.Dim(preds.NDim() - 1)
	if !tensor.SameShape(preds, target) {
		return Score{}, fmt.Errorf("preds %v vs target %v: %w", preds.Shape(), target.Shape(), ErrShape)
	}
	if a.Family.Form == Probabilities {
		preds = preds.Threshold(a.Threshold)
	}
	n := preds.Len() / c

	return MultilabelFBetaScore(mat.NewDense(n, c, target.Data()), mat.NewDense(n, c, preds.Data()), avg, beta)
}

func (a Adapter) multiclass(preds, target *tensor.Dense, classAxis int, avg classification.Average, beta float64) (Score, error) {
	if a.Family.Form == Probabilities {
		if classAxis < 0 {
			return Score{}, fmt.Errorf("probabilities of shape %v: %w", preds.Shape(), ErrShape)
		}
		var err error
		if preds, err = preds.ArgMax(classAxis); err != nil {
			return Score{}, err
		}
	}
	yPred, err := preds.Ints()
	if err != nil {
		return Score{}, err
	}
	yTrue, err := target.Ints()
	if err != nil {
		return Score{}, err
	}

	return FBetaScore(yTrue, yPred, avg, beta)
}
