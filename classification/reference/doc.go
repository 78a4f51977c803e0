// SPDX-License-Identifier: MIT

// Package reference is the trusted comparison target for the classification
// metrics: an F-beta scorer with sklearn's fbeta_score semantics and one
// adapter per input family that turns raw (preds, target) tensors into the
// label vectors that scorer consumes.
//
// The scorer shares no counting or averaging code with package
// classification. It works from a confusion matrix (gonum/mat), derives
// precision and recall first and only then combines them, which is the
// textbook formulation rather than the count-based one used by the metric.
//
// Semantics:
//   - labels: sorted union of the labels present in y_true or y_pred
//     (multiclass), or every indicator column (multilabel);
//   - precision/recall: 0 on a zero denominator;
//   - F = (1+β²)·P·R / (β²·P + R), 0 on a zero denominator;
//   - micro / macro / weighted (by true support) / none;
//   - binary: only label 1 is scored.
package reference
