// SPDX-License-Identifier: MIT

package reference

import "errors"

var (
	// ErrShape indicates inputs whose shapes do not fit the adapter's family.
	ErrShape = errors.New("reference: malformed input shape")

	// ErrEmpty indicates zero samples.
	ErrEmpty = errors.New("reference: empty input")

	// ErrNotBinary indicates a label other than 0 or 1 under binary scoring.
	ErrNotBinary = errors.New("reference: binary scoring needs labels in {0,1}")

	// ErrUnknownFamily indicates a Family outside the supported variants.
	ErrUnknownFamily = errors.New("reference: unknown input family")

	// ErrBeta indicates a beta that is not finite and strictly positive.
	ErrBeta = errors.New("reference: beta must be finite and > 0")
)
