// SPDX-License-Identifier: MIT

// Package tensor provides a small N-dimensional, row-major float64 container
// used as the prediction/target carrier of the classification metrics.
//
// 🚀 What is a Dense tensor?
//
//	A flat []float64 buffer plus a shape. Offsets follow the row-major rule
//	off = Σ idx[k]·stride[k], stride[last] = 1. Labels are stored as
//	integral floats, probabilities as values in [0,1].
//
// ✨ Key features:
//   - strict shape validation (every dimension > 0), sentinel errors, no panics
//     on user input;
//   - no-copy views along the leading (batch) axis and through Reshape;
//   - reductions needed by classification inputs: ArgMax over an axis,
//     Threshold binarisation, Concat along axis 0;
//   - optional NaN/±Inf rejection on ingestion and Set (on by default).
//
// ⚙️ Usage:
//
//	probs, _ := tensor.FromSlice([]float64{0.1, 0.9, 0.7, 0.3}, []int{2, 2})
//	labels, _ := probs.ArgMax(1) // shape [2], values [1 0]
//
// Complexity quicksheet:
//   - New/FromSlice/Clone: O(n); At/Set: O(ndim); Reshape/Batch: O(ndim).
//   - ArgMax: O(n); Threshold: O(n); Concat: O(Σn).
package tensor
