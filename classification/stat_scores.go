// SPDX-License-Identifier: MIT

// Package classification - per-class confusion counts.
//
// StatScores is the whole accumulated state of an F-beta metric. Merging two
// states is element-wise addition, so it is commutative and associative:
// replicas may accumulate independently and combine in any order.
package classification

import (
	"fmt"

	"github.com/katalvlaran/lvmetrics/tensor"
	"gonum.org/v1/gonum/floats"
)

// StatScores holds per-class true/false positive/negative counts.
// All four slices have one entry per class.
type StatScores struct {
	TP []float64
	FP []float64
	TN []float64
	FN []float64
}

// NewStatScores returns zero counts for numClasses classes.
func NewStatScores(numClasses int) (StatScores, error) {
	if numClasses <= 0 {
		return StatScores{}, fmt.Errorf("NewStatScores(%d): %w", numClasses, ErrStateMismatch)
	}

	return StatScores{
		TP: make([]float64, numClasses),
		FP: make([]float64, numClasses),
		TN: make([]float64, numClasses),
		FN: make([]float64, numClasses),
	}, nil
}

// NumClasses returns the number of classes tracked.
func (s StatScores) NumClasses() int { return len(s.TP) }

// Support returns TP+FN per class (number of true instances).
func (s StatScores) Support() []float64 {
	return floats.AddTo(make([]float64, len(s.TP)), s.TP, s.FN)
}

// Clone returns an independent copy.
func (s StatScores) Clone() StatScores {
	return StatScores{
		TP: append([]float64(nil), s.TP...),
		FP: append([]float64(nil), s.FP...),
		TN: append([]float64(nil), s.TN...),
		FN: append([]float64(nil), s.FN...),
	}
}

// validate checks that all four count vectors line up.
func (s StatScores) validate() error {
	n := len(s.TP)
	if n == 0 || len(s.FP) != n || len(s.TN) != n || len(s.FN) != n {
		return ErrStateMismatch
	}

	return nil
}

// Add accumulates o into s in place.
// Errors: ErrStateMismatch when the class counts differ.
// Complexity: O(C).
func (s *StatScores) Add(o StatScores) error {
	if err := s.validate(); err != nil {
		return fmt.Errorf("StatScores.Add: receiver: %w", err)
	}
	if err := o.validate(); err != nil {
		return fmt.Errorf("StatScores.Add: operand: %w", err)
	}
	if o.NumClasses() != s.NumClasses() {
		return fmt.Errorf("StatScores.Add: %d vs %d classes: %w", s.NumClasses(), o.NumClasses(), ErrStateMismatch)
	}
	floats.Add(s.TP, o.TP)
	floats.Add(s.FP, o.FP)
	floats.Add(s.TN, o.TN)
	floats.Add(s.FN, o.FN)

	return nil
}

// MergeStatScores returns a+b without touching either operand.
// This is the reduction used across replicas.
func MergeStatScores(a, b StatScores) (StatScores, error) {
	out := a.Clone()
	if err := out.Add(b); err != nil {
		return StatScores{}, err
	}

	return out, nil
}

// ComputeStatScores formats preds/target and counts them per class.
// It accepts the same options as FBetaScore; averaging options are ignored.
func ComputeStatScores(preds, target *tensor.Dense, opts ...Option) (StatScores, error) {
	o := gatherOptions(opts...)

	return statScores(preds, target, &o)
}

// statScores is the shared counting kernel of the functional and stateful forms.
// MAIN DESCRIPTION:
//   - Multiclass: a hit counts TP for the label; a miss counts FP for the
//     predicted class and FN for the true class.
//   - Binary/multilabel: each (decision, truth) pair lands in exactly one of
//     TP/FP/TN/FN of its class.
//
// Complexity:
//   - Time O(n + C), Space O(C) beyond formatting.
func statScores(preds, target *tensor.Dense, o *Options) (StatScores, error) {
	f, err := formatInputs(preds, target, o)
	if err != nil {
		return StatScores{}, err
	}
	s, err := NewStatScores(o.numClasses)
	if err != nil {
		return StatScores{}, err
	}

	switch f.mode {
	case modeMulticlass:
		for i, p := range f.preds {
			t := f.target[i]
			if p == t {
				s.TP[int(p)]++
				continue
			}
			s.FP[int(p)]++
			s.FN[int(t)]++
		}
		total := float64(len(f.preds))
		for c := range s.TN {
			s.TN[c] = total - s.TP[c] - s.FP[c] - s.FN[c]
		}
	default:
		c := 0
		for i, p := range f.preds {
			if f.mode == modeMultilabel {
				c = (i / f.inner) % o.numClasses
			}
			switch t := f.target[i]; {
			case p == 1 && t == 1:
				s.TP[c]++
			case p == 1:
				s.FP[c]++
			case t == 1:
				s.FN[c]++
			default:
				s.TN[c]++
			}
		}
	}

	return s, nil
}
