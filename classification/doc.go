// SPDX-License-Identifier: MIT

// Package classification computes F-beta and F1 scores for binary,
// multiclass, multilabel and multidimensional-multiclass predictions.
//
// 🚀 What is F-beta?
//
//	The weighted harmonic mean of precision and recall,
//
//	  F_β = (1+β²)·TP / ((1+β²)·TP + β²·FN + FP),
//
//	where recall weighs β times as much as precision. β = 1 is the F1 score.
//
// ✨ Key features:
//   - one core computation parametrised by β; F1 entry points fix β = 1;
//   - per-class stat scores (TP, FP, TN, FN) that merge by addition, so
//     replicas can accumulate independently and combine in any order;
//   - micro, macro, weighted and per-class (none) averaging;
//   - stateful FBeta metric (Update / Forward / Compute / Merge) and a
//     stateless functional form with the same configuration surface.
//
// ⚙️ Usage:
//
//	m, _ := classification.NewFBeta(0.5,
//		classification.WithNumClasses(5),
//		classification.WithAverage(classification.AverageMacro),
//	)
//	for _, b := range batches {
//		if err := m.Update(b.Preds, b.Target); err != nil { ... }
//	}
//	res, _ := m.Compute()
//
// Input families (preds vs target shapes, N = batch):
//   - binary:        (N, ...) probabilities or {0,1}    vs (N, ...) {0,1}; WithNumClasses(1)
//   - multilabel:    (N, C, ...) probabilities or {0,1} vs same shape;      WithMultilabel()
//   - multiclass:    (N) labels or (N, C) probabilities vs (N) labels
//   - multidim:      (N, E) labels or (N, C, E) probs   vs (N, E) labels
package classification
