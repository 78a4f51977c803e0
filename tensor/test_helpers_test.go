// SPDX-License-Identifier: MIT
// Package tensor_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures for shape and reduction tests.

package tensor_test

import (
	"testing"

	"github.com/katalvlaran/lvmetrics/tensor"
)

// MustFromSlice BUILDS a tensor from row-major values or fails the test.
// Implementation:
//   - Stage 1: call tensor.FromSlice.
//   - Stage 2: t.Fatalf on error to abort early.
func MustFromSlice(t *testing.T, data []float64, shape ...int) *tensor.Dense {
	t.Helper()
	d, err := tensor.FromSlice(data, shape)
	if err != nil {
		t.Fatalf("FromSlice(%v, %v): %v", data, shape, err)
	}

	return d
}
