// SPDX-License-Identifier: MIT

// Package classification - F-beta core and the stateless entry points.
//
// Purpose:
//   - One scoring core over per-class counts, parametrised by beta.
//   - FBetaScore / F1Score share that core; F1 only fixes beta = 1.
package classification

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmetrics/tensor"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// F1Beta is the beta at which F-beta equals the F1 score.
const F1Beta = 1.0

// validateBeta rejects NaN, ±Inf and non-positive beta.
func validateBeta(beta float64) error {
	if math.IsNaN(beta) || math.IsInf(beta, 0) || beta <= 0 {
		return fmt.Errorf("beta=%g: %w", beta, ErrInvalidBeta)
	}

	return nil
}

// fbetaFromCounts is (1+β²)·tp / ((1+β²)·tp + β²·fn + fp), 0 on a zero denominator.
func fbetaFromCounts(tp, fp, fn, beta float64) float64 {
	b2 := beta * beta
	num := (1 + b2) * tp
	den := num + b2*fn + fp
	if den == 0 {
		return 0
	}

	return num / den
}

// FBetaFromStatScores scores accumulated counts under the given averaging mode.
// MAIN DESCRIPTION:
//   - micro: counts summed over classes, then scored once.
//   - macro: unweighted mean over classes seen in preds or target (tp+fp+fn > 0).
//   - weighted: mean weighted by support (tp+fn); 0 when no class has support.
//   - none: per-class scores for every class.
//
// Errors:
//   - ErrInvalidBeta, ErrStateMismatch, ErrUnknownAverage.
//
// Complexity:
//   - Time O(C), Space O(C).
func FBetaFromStatScores(s StatScores, beta float64, avg Average) (Result, error) {
	if err := validateBeta(beta); err != nil {
		return Result{}, fmt.Errorf("FBetaFromStatScores: %w", err)
	}
	if err := s.validate(); err != nil {
		return Result{}, fmt.Errorf("FBetaFromStatScores: %w", err)
	}

	res := Result{Average: avg}
	switch avg {
	case AverageMicro:
		res.Value = fbetaFromCounts(floats.Sum(s.TP), floats.Sum(s.FP), floats.Sum(s.FN), beta)
	case AverageMacro:
		seen := make([]float64, 0, s.NumClasses())
		for c := range s.TP {
			if s.TP[c]+s.FP[c]+s.FN[c] > 0 {
				seen = append(seen, fbetaFromCounts(s.TP[c], s.FP[c], s.FN[c], beta))
			}
		}
		if len(seen) > 0 {
			res.Value = stat.Mean(seen, nil)
		}
	case AverageWeighted:
		support := s.Support()
		if floats.Sum(support) > 0 {
			res.Value = stat.Mean(perClass(s, beta), support)
		}
	case AverageNone:
		res.PerClass = perClass(s, beta)
	default:
		return Result{}, fmt.Errorf("FBetaFromStatScores: %v: %w", avg, ErrUnknownAverage)
	}

	return res, nil
}

func perClass(s StatScores, beta float64) []float64 {
	out := make([]float64, s.NumClasses())
	for c := range out {
		out[c] = fbetaFromCounts(s.TP[c], s.FP[c], s.FN[c], beta)
	}

	return out
}

// FBetaScore is the stateless F-beta metric.
// It accepts the same options as NewFBeta; sync options are ignored.
//
// Errors:
//   - ErrInvalidBeta, plus every formatting error (see ComputeStatScores).
//
// Complexity:
//   - Time O(n·C) worst case (probabilities), Space O(n + C).
func FBetaScore(preds, target *tensor.Dense, beta float64, opts ...Option) (Result, error) {
	if err := validateBeta(beta); err != nil {
		return Result{}, fmt.Errorf("FBetaScore: %w", err)
	}
	o := gatherOptions(opts...)
	s, err := statScores(preds, target, &o)
	if err != nil {
		return Result{}, fmt.Errorf("FBetaScore: %w", err)
	}

	return FBetaFromStatScores(s, beta, o.average)
}

// F1Score is FBetaScore at beta = 1.
func F1Score(preds, target *tensor.Dense, opts ...Option) (Result, error) {
	return FBetaScore(preds, target, F1Beta, opts...)
}
