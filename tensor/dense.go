// SPDX-License-Identifier: MIT

// Package tensor - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with explicit stride math.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Support no-copy views (Reshape, Batch) over the same storage.
//
// AI-Hints:
//   - Views share storage with their base; Clone before mutating a view you do not own.
//   - Batch(i) is the natural way to walk the leading axis of a fixture.
package tensor

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew      = "New"
	ctxFrom     = "FromSlice"
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxReshape  = "Reshape"
	ctxBatch    = "Batch"
	ctxFromInts = "FromInts"
)

// denseErrorf wraps a sentinel with a uniform Dense context.
// Stable, human-friendly messages; preserves the sentinel via %w.
func denseErrorf(method string, err error) error {
	return fmt.Errorf("Dense.%s: %w", method, err)
}

// Dense is a concrete row-major N-dimensional tensor.
//   - shape holds the dimensions (every entry > 0, len >= 1).
//   - data is a flat buffer of length Π shape in row-major order.
//   - validateNaNInf enables NaN/Inf rejection in Set and Map.
type Dense struct {
	shape          []int     // dimensions, outermost first
	data           []float64 // contiguous row-major storage
	validateNaNInf bool      // numeric guard carried by views and clones
}

var _ fmt.Stringer = (*Dense)(nil)

// New creates a zero tensor of the given shape.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation and default numeric policy.
//
// Implementation:
//   - Stage 1: validate shape (len>0, every dim>0).
//   - Stage 2: allocate zero-filled buffer.
//
// Errors:
//   - ErrBadShape (shape contract violation).
//
// Complexity:
//   - Time O(n), Space O(n), n = Π shape.
func New(shape []int, opts ...Option) (*Dense, error) {
	n, err := volume(shape)
	if err != nil {
		return nil, denseErrorf(ctxNew, err)
	}
	o := gatherOptions(opts...)

	return &Dense{
		shape:          cloneInts(shape),
		data:           make([]float64, n),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// FromSlice builds a tensor of the given shape from a row-major copy of data.
// MAIN DESCRIPTION:
//   - Ingestion entry point; the input slice is copied, never aliased.
//
// Implementation:
//   - Stage 1: validate shape and len(data) == Π shape.
//   - Stage 2: enforce numeric policy on every value.
//   - Stage 3: copy.
//
// Errors:
//   - ErrBadShape, ErrDimensionMismatch, ErrNaNInf.
//
// Complexity:
//   - Time O(n), Space O(n).
func FromSlice(data []float64, shape []int, opts ...Option) (*Dense, error) {
	n, err := volume(shape)
	if err != nil {
		return nil, denseErrorf(ctxFrom, err)
	}
	if len(data) != n {
		return nil, fmt.Errorf("Dense.%s: len(data)=%d, shape %v wants %d: %w",
			ctxFrom, len(data), shape, n, ErrDimensionMismatch)
	}
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		for i, v := range data {
			if isNonFinite(v) {
				return nil, fmt.Errorf("Dense.%s: element %d: %w", ctxFrom, i, ErrNaNInf)
			}
		}
	}
	buf := make([]float64, n)
	copy(buf, data)

	return &Dense{shape: cloneInts(shape), data: buf, validateNaNInf: o.validateNaNInf}, nil
}

// FromInts builds a tensor of integral values (class labels) from an int slice.
// Complexity: O(n).
func FromInts(labels []int, shape []int) (*Dense, error) {
	n, err := volume(shape)
	if err != nil {
		return nil, denseErrorf(ctxFromInts, err)
	}
	if len(labels) != n {
		return nil, fmt.Errorf("Dense.%s: len(labels)=%d, shape %v wants %d: %w",
			ctxFromInts, len(labels), shape, n, ErrDimensionMismatch)
	}
	buf := make([]float64, n)
	for i, v := range labels {
		buf[i] = float64(v)
	}

	return &Dense{shape: cloneInts(shape), data: buf, validateNaNInf: DefaultValidateNaNInf}, nil
}

// Shape returns a copy of the dimensions.
// Complexity: O(ndim).
func (t *Dense) Shape() []int { return cloneInts(t.shape) }

// NDim returns the number of dimensions.
func (t *Dense) NDim() int { return len(t.shape) }

// Dim returns the size of the given axis, or 0 when the axis is invalid.
func (t *Dense) Dim(axis int) int {
	if axis < 0 || axis >= len(t.shape) {
		return 0
	}

	return t.shape[axis]
}

// Len returns the number of elements.
func (t *Dense) Len() int { return len(t.data) }

// Data returns a row-major copy of the elements.
// Complexity: O(n).
func (t *Dense) Data() []float64 {
	cp := make([]float64, len(t.data))
	copy(cp, t.data)

	return cp
}

// Do visits every element in row-major order; stops early when f returns false.
// Read-only; no allocations.
func (t *Dense) Do(f func(off int, v float64) bool) {
	for i, v := range t.data {
		if !f(i, v) {
			return
		}
	}
}

// offsetOf converts a multi-index into a flat offset or returns ErrOutOfRange.
// Complexity: O(ndim).
func (t *Dense) offsetOf(idx []int) (int, error) {
	if len(idx) != len(t.shape) {
		return 0, ErrOutOfRange
	}
	off := 0
	for k, i := range idx {
		if i < 0 || i >= t.shape[k] {
			return 0, ErrOutOfRange
		}
		off = off*t.shape[k] + i
	}

	return off, nil
}

// At returns the element at the multi-index idx.
// Never panics on out-of-range; returns a wrapped ErrOutOfRange.
// Complexity: O(ndim).
func (t *Dense) At(idx ...int) (float64, error) {
	off, err := t.offsetOf(idx)
	if err != nil {
		return 0, fmt.Errorf("Dense.%s%v: %w", ctxAt, idx, err)
	}

	return t.data[off], nil
}

// Set stores v at the multi-index idx, honouring the numeric policy.
// Errors: ErrOutOfRange, ErrNaNInf.
// Complexity: O(ndim).
func (t *Dense) Set(v float64, idx ...int) error {
	off, err := t.offsetOf(idx)
	if err != nil {
		return fmt.Errorf("Dense.%s%v: %w", ctxSet, idx, err)
	}
	if t.validateNaNInf && isNonFinite(v) {
		return fmt.Errorf("Dense.%s%v: %w", ctxSet, idx, ErrNaNInf)
	}
	t.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same shape and policy).
// Complexity: O(n).
func (t *Dense) Clone() *Dense {
	return &Dense{
		shape:          cloneInts(t.shape),
		data:           t.Data(),
		validateNaNInf: t.validateNaNInf,
	}
}

// Reshape returns a view with a new shape over the same storage.
// MAIN DESCRIPTION:
//   - At most one dimension may be -1; it is inferred from the element count.
//
// Errors:
//   - ErrBadShape when the shape is malformed or does not cover Len() elements.
//
// Complexity:
//   - Time O(ndim), Space O(ndim); no data copy.
//
// AI-Hints:
//   - Reshape(-1) flattens; writes through the view reach the base tensor.
func (t *Dense) Reshape(shape ...int) (*Dense, error) {
	if len(shape) == 0 {
		return nil, denseErrorf(ctxReshape, ErrBadShape)
	}
	out := cloneInts(shape)
	infer := -1
	known := 1
	for k, d := range out {
		switch {
		case d == -1 && infer == -1:
			infer = k
		case d > 0:
			known *= d
		default:
			return nil, fmt.Errorf("Dense.%s%v: %w", ctxReshape, shape, ErrBadShape)
		}
	}
	if infer >= 0 {
		if known == 0 || len(t.data)%known != 0 {
			return nil, fmt.Errorf("Dense.%s%v: %w", ctxReshape, shape, ErrBadShape)
		}
		out[infer] = len(t.data) / known
		known *= out[infer]
	}
	if known != len(t.data) {
		return nil, fmt.Errorf("Dense.%s%v: %d elements: %w", ctxReshape, shape, len(t.data), ErrBadShape)
	}

	return &Dense{shape: out, data: t.data, validateNaNInf: t.validateNaNInf}, nil
}

// Batch returns a no-copy view of the i-th slice along axis 0.
// The result has shape shape[1:]; a 1-D tensor yields a one-element tensor.
//
// Errors:
//   - ErrOutOfRange when i is outside [0, Dim(0)).
//
// Complexity:
//   - Time O(ndim), Space O(ndim).
func (t *Dense) Batch(i int) (*Dense, error) {
	if i < 0 || i >= t.shape[0] {
		return nil, fmt.Errorf("Dense.%s(%d): %w", ctxBatch, i, ErrOutOfRange)
	}
	inner := len(t.data) / t.shape[0]
	shape := cloneInts(t.shape[1:])
	if len(shape) == 0 {
		shape = []int{1}
	}

	return &Dense{
		shape:          shape,
		data:           t.data[i*inner : (i+1)*inner : (i+1)*inner],
		validateNaNInf: t.validateNaNInf,
	}, nil
}

// String renders the shape and the flat values; intended for diagnostics.
// Complexity: O(n).
func (t *Dense) String() string {
	var b strings.Builder
	b.WriteString("tensor")
	b.WriteString(fmt.Sprint(t.shape))
	b.WriteString(" [")
	for i, v := range t.data {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(fmt.Sprintf("%g", v))
	}
	b.WriteString("]")

	return b.String()
}

// volume validates a shape and returns the number of elements it addresses.
func volume(shape []int) (int, error) {
	if len(shape) == 0 {
		return 0, ErrBadShape
	}
	n := 1
	for _, d := range shape {
		if d <= 0 {
			return 0, ErrBadShape
		}
		n *= d
	}

	return n, nil
}

func cloneInts(s []int) []int {
	out := make([]int, len(s))
	copy(out, s)

	return out
}

func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }
