// SPDX-License-Identifier: MIT

// Package tensor - reductions and element-wise transforms.
//
// Purpose:
//   - ArgMax collapses a class axis of probabilities/logits into hard labels.
//   - Threshold binarises probabilities (v >= th ⇒ 1).
//   - Concat joins batches along axis 0 (fixture → whole dataset).
//
// Determinism:
//   - Fixed loop orders; ArgMax ties resolve to the first (lowest) index.
package tensor

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	ctxArgMax = "ArgMax"
	ctxMap    = "Map"
	ctxConcat = "Concat"
)

// ArgMax returns the index of the maximum along axis, removing that axis.
// MAIN DESCRIPTION:
//   - Gather each fibre along axis into a scratch slice and pick floats.MaxIdx.
//
// Implementation:
//   - Stage 1: validate axis.
//   - Stage 2: split shape into outer × n × inner blocks.
//   - Stage 3: for each (outer, inner) pair gather n values and record MaxIdx.
//
// Behavior highlights:
//   - A 1-D input yields a one-element tensor.
//   - NaN entries are skipped (gonum MaxIdx policy); ties pick the lowest index.
//
// Errors:
//   - ErrAxisOutOfRange.
//
// Complexity:
//   - Time O(n), Space O(n / shape[axis] + shape[axis]).
func (t *Dense) ArgMax(axis int) (*Dense, error) {
	if axis < 0 || axis >= len(t.shape) {
		return nil, fmt.Errorf("Dense.%s(%d): ndim=%d: %w", ctxArgMax, axis, len(t.shape), ErrAxisOutOfRange)
	}
	outer, n, inner := split(t.shape, axis)

	shape := make([]int, 0, len(t.shape)-1)
	shape = append(shape, t.shape[:axis]...)
	shape = append(shape, t.shape[axis+1:]...)
	if len(shape) == 0 {
		shape = []int{1}
	}

	out := make([]float64, outer*inner)
	fibre := make([]float64, n)
	var o, in, k, base int
	for o = 0; o < outer; o++ {
		base = o * n * inner
		for in = 0; in < inner; in++ {
			for k = 0; k < n; k++ {
				fibre[k] = t.data[base+k*inner+in]
			}
			out[o*inner+in] = float64(floats.MaxIdx(fibre))
		}
	}

	return &Dense{shape: shape, data: out, validateNaNInf: t.validateNaNInf}, nil
}

// Threshold returns a new tensor with 1 where v >= th and 0 elsewhere.
// Complexity: O(n).
func (t *Dense) Threshold(th float64) *Dense {
	out := make([]float64, len(t.data))
	for i, v := range t.data {
		if v >= th {
			out[i] = 1
		}
	}

	return &Dense{shape: cloneInts(t.shape), data: out, validateNaNInf: t.validateNaNInf}
}

// Map returns a new tensor with f applied to every element.
// Respects the numeric policy: a non-finite result aborts with ErrNaNInf.
// Complexity: O(n).
func (t *Dense) Map(f func(v float64) float64) (*Dense, error) {
	out := make([]float64, len(t.data))
	for i, v := range t.data {
		nv := f(v)
		if t.validateNaNInf && isNonFinite(nv) {
			return nil, fmt.Errorf("Dense.%s: element %d: %w", ctxMap, i, ErrNaNInf)
		}
		out[i] = nv
	}

	return &Dense{shape: cloneInts(t.shape), data: out, validateNaNInf: t.validateNaNInf}, nil
}

// IsIntegral reports whether every element is a whole number.
func (t *Dense) IsIntegral() bool {
	for _, v := range t.data {
		if v != math.Trunc(v) {
			return false
		}
	}

	return true
}

// Ints converts the elements to ints. It fails when any element is not integral.
// Complexity: O(n).
func (t *Dense) Ints() ([]int, error) {
	out := make([]int, len(t.data))
	for i, v := range t.data {
		if v != math.Trunc(v) || isNonFinite(v) {
			return nil, fmt.Errorf("Dense.Ints: element %d=%g: %w", i, v, ErrNotIntegral)
		}
		out[i] = int(v)
	}

	return out, nil
}

// SameShape reports whether a and b have identical shapes.
func SameShape(a, b *Dense) bool {
	if a == nil || b == nil || len(a.shape) != len(b.shape) {
		return false
	}
	for k := range a.shape {
		if a.shape[k] != b.shape[k] {
			return false
		}
	}

	return true
}

// Concat joins tensors along axis 0. Trailing dimensions must match.
// MAIN DESCRIPTION:
//   - Copy-based join; the result owns a fresh buffer.
//
// Errors:
//   - ErrEmptyConcat, ErrNilTensor, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(Σn), Space O(Σn).
func Concat(ts ...*Dense) (*Dense, error) {
	if len(ts) == 0 {
		return nil, denseErrorf(ctxConcat, ErrEmptyConcat)
	}
	if ts[0] == nil {
		return nil, denseErrorf(ctxConcat, ErrNilTensor)
	}
	tail := ts[0].shape[1:]
	lead, total := 0, 0
	for i, t := range ts {
		if t == nil {
			return nil, fmt.Errorf("Dense.%s: operand %d: %w", ctxConcat, i, ErrNilTensor)
		}
		if len(t.shape)-1 != len(tail) {
			return nil, fmt.Errorf("Dense.%s: operand %d shape %v: %w", ctxConcat, i, t.shape, ErrDimensionMismatch)
		}
		for k, d := range t.shape[1:] {
			if d != tail[k] {
				return nil, fmt.Errorf("Dense.%s: operand %d shape %v: %w", ctxConcat, i, t.shape, ErrDimensionMismatch)
			}
		}
		lead += t.shape[0]
		total += len(t.data)
	}

	buf := make([]float64, 0, total)
	for _, t := range ts {
		buf = append(buf, t.data...)
	}
	shape := append([]int{lead}, tail...)

	return &Dense{shape: shape, data: buf, validateNaNInf: ts[0].validateNaNInf}, nil
}

// split returns the products of dimensions before, at and after axis.
func split(shape []int, axis int) (outer, n, inner int) {
	outer, inner = 1, 1
	for k := 0; k < axis; k++ {
		outer *= shape[k]
	}
	for k := axis + 1; k < len(shape); k++ {
		inner *= shape[k]
	}

	return outer, shape[axis], inner
}
