// SPDX-License-Identifier: MIT

// Package classification - canonical input formatting.
//
// Purpose:
//   - Decide the input family from shapes and options.
//   - Reduce probability inputs to hard decisions (argmax or threshold).
//   - Validate labels so counting never has to.
//
// Determinism:
//   - Pure functions over the inputs; inputs are never mutated.
package classification

import (
	"fmt"

	"github.com/katalvlaran/lvmetrics/tensor"
)

const ctxFormat = "formatInputs"

// inputMode tags the canonical layout produced by formatInputs.
type inputMode int

const (
	modeBinary     inputMode = iota // one positive class, values {0,1}
	modeMultilabel                  // class = index along axis 1, values {0,1}
	modeMulticlass                  // values are class labels in [0,numClasses)
)

// formatted is the canonical, flat view of a preds/target pair.
type formatted struct {
	mode   inputMode
	preds  []float64 // decisions: {0,1} or labels
	target []float64 // {0,1} or labels
	inner  int       // product of dims after the class axis (multilabel only)
}

// formatInputs converts raw preds/target into canonical decisions.
// MAIN DESCRIPTION:
//   - Family detection follows the shape rules documented in the package doc.
//
// Implementation:
//   - Stage 1: nil / empty guards.
//   - Stage 2: preds with one extra dim ⇒ probabilities over axis 1 ⇒ argmax.
//   - Stage 3: shapes must match.
//   - Stage 4: per-mode binarisation and label validation.
//
// Errors:
//   - ErrNilInput, ErrEmptyInput, ErrShapeMismatch, ErrNumClassesMismatch,
//     ErrNonBinaryTarget, ErrNonIntegerLabel, ErrLabelOutOfRange.
//
// Complexity:
//   - Time O(n·C) for probabilities, O(n) otherwise; Space O(n).
func formatInputs(preds, target *tensor.Dense, o *Options) (formatted, error) {
	if preds == nil || target == nil {
		return formatted{}, fmt.Errorf("%s: %w", ctxFormat, ErrNilInput)
	}
	if preds.Len() == 0 || target.Len() == 0 {
		return formatted{}, fmt.Errorf("%s: %w", ctxFormat, ErrEmptyInput)
	}

	var err error
	if preds.NDim() == target.NDim()+1 {
		if o.numClasses < 2 || o.multilabel {
			return formatted{}, fmt.Errorf("%s: preds %v vs target %v: %w",
				ctxFormat, preds.Shape(), target.Shape(), ErrShapeMismatch)
		}
		if preds.Dim(1) != o.numClasses {
			return formatted{}, fmt.Errorf("%s: class axis %d, num classes %d: %w",
				ctxFormat, preds.Dim(1), o.numClasses, ErrNumClassesMismatch)
		}
		if preds, err = preds.ArgMax(1); err != nil {
			return formatted{}, fmt.Errorf("%s: %w", ctxFormat, err)
		}
	}
	if !tensor.SameShape(preds, target) {
		return formatted{}, fmt.Errorf("%s: preds %v vs target %v: %w",
			ctxFormat, preds.Shape(), target.Shape(), ErrShapeMismatch)
	}

	switch {
	case o.multilabel:
		return formatIndicators(preds, target, o, modeMultilabel)
	case o.numClasses == 1:
		return formatIndicators(preds, target, o, modeBinary)
	default:
		return formatLabels(preds, target, o)
	}
}

// formatIndicators binarises preds at the threshold and checks target ∈ {0,1}.
func formatIndicators(preds, target *tensor.Dense, o *Options, mode inputMode) (formatted, error) {
	f := formatted{mode: mode, inner: 1}
	if mode == modeMultilabel {
		if preds.NDim() < 2 || preds.Dim(1) != o.numClasses {
			return formatted{}, fmt.Errorf("%s: multilabel shape %v, num classes %d: %w",
				ctxFormat, preds.Shape(), o.numClasses, ErrNumClassesMismatch)
		}
		f.inner = preds.Len() / (preds.Dim(0) * preds.Dim(1))
	}

	f.preds = preds.Threshold(o.threshold).Data()
	f.target = target.Data()
	for i, v := range f.target {
		if v != 0 && v != 1 {
			return formatted{}, fmt.Errorf("%s: target[%d]=%g: %w", ctxFormat, i, v, ErrNonBinaryTarget)
		}
	}

	return f, nil
}

// formatLabels validates integral labels in [0, numClasses).
func formatLabels(preds, target *tensor.Dense, o *Options) (formatted, error) {
	f := formatted{mode: modeMulticlass, preds: preds.Data(), target: target.Data(), inner: 1}
	if err := checkLabels("preds", preds, o.numClasses); err != nil {
		return formatted{}, err
	}
	if err := checkLabels("target", target, o.numClasses); err != nil {
		return formatted{}, err
	}

	return f, nil
}

func checkLabels(name string, t *tensor.Dense, numClasses int) error {
	if !t.IsIntegral() {
		return fmt.Errorf("%s: %s: %w", ctxFormat, name, ErrNonIntegerLabel)
	}
	var bad error
	t.Do(func(off int, v float64) bool {
		if v < 0 || v >= float64(numClasses) {
			bad = fmt.Errorf("%s: %s[%d]=%g, num classes %d: %w", ctxFormat, name, off, v, numClasses, ErrLabelOutOfRange)

			return false
		}

		return true
	})

	return bad
}
