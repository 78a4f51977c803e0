// SPDX-License-Identifier: MIT

// Package classification: sentinel error set.
// Every message is prefixed with "classification: ..."; call sites wrap with
// fmt.Errorf("Op: %w", ErrX) and callers match with errors.Is.
package classification

import "errors"

var (
	// ErrInvalidBeta indicates a beta that is not finite and strictly positive.
	ErrInvalidBeta = errors.New("classification: beta must be finite and > 0")

	// ErrNilInput indicates a nil preds or target tensor.
	ErrNilInput = errors.New("classification: nil input tensor")

	// ErrEmptyInput indicates zero samples.
	ErrEmptyInput = errors.New("classification: empty input")

	// ErrShapeMismatch indicates preds/target shapes that fit no input family.
	ErrShapeMismatch = errors.New("classification: preds and target shapes are incompatible")

	// ErrNumClassesMismatch indicates a class axis whose size differs from the configured number of classes.
	ErrNumClassesMismatch = errors.New("classification: class axis does not match num classes")

	// ErrNonIntegerLabel indicates a label tensor holding non-integral values.
	ErrNonIntegerLabel = errors.New("classification: labels must be integral")

	// ErrLabelOutOfRange indicates a label outside [0, numClasses).
	ErrLabelOutOfRange = errors.New("classification: label out of range")

	// ErrNonBinaryTarget indicates a binary/multilabel target with values other than 0 and 1.
	ErrNonBinaryTarget = errors.New("classification: target must hold only 0 and 1")

	// ErrStateMismatch indicates stat scores with a different number of classes
	// or with inconsistent per-count lengths.
	ErrStateMismatch = errors.New("classification: stat scores do not line up")

	// ErrConfigMismatch indicates merging metrics configured differently.
	ErrConfigMismatch = errors.New("classification: metric configurations differ")

	// ErrNoUpdates is returned by Compute before any data was accumulated.
	ErrNoUpdates = errors.New("classification: compute called before any update")

	// ErrUnknownAverage indicates an unrecognised averaging mode.
	ErrUnknownAverage = errors.New("classification: unknown average")
)
