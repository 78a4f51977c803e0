// SPDX-License-Identifier: MIT

// Package tensor: sentinel error set.
// Every message is prefixed with "tensor: ..." for easy grepping. Public
// methods wrap these with their method context via fmt.Errorf("...: %w"),
// so callers match with errors.Is.
package tensor

import "errors"

var (
	// ErrBadShape is returned when a shape is empty or has a non-positive dimension,
	// or when a reshape target does not cover the same number of elements.
	ErrBadShape = errors.New("tensor: invalid shape")

	// ErrOutOfRange indicates that an index is outside the valid bounds.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands
	// or a data length that does not match the requested shape.
	ErrDimensionMismatch = errors.New("tensor: dimension mismatch")

	// ErrAxisOutOfRange indicates a reduction axis outside [0, NDim).
	ErrAxisOutOfRange = errors.New("tensor: axis out of range")

	// ErrNaNInf signals a NaN or ±Inf value where the numeric policy requires finite values.
	ErrNaNInf = errors.New("tensor: NaN or Inf encountered")

	// ErrNilTensor indicates that a nil *Dense was used as an argument.
	ErrNilTensor = errors.New("tensor: nil tensor")

	// ErrNotIntegral is returned by Ints when an element is not a whole number.
	ErrNotIntegral = errors.New("tensor: non-integral value")

	// ErrEmptyConcat is returned by Concat when no tensors are given.
	ErrEmptyConcat = errors.New("tensor: nothing to concatenate")
)
