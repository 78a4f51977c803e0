// SPDX-License-Identifier: MIT

package metrictest

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Compare returns a go-cmp diff of want vs got, or "" when every element is
// within atol. NaNs compare equal to NaNs; lengths must match.
func Compare(want, got []float64, atol float64) string {
	return cmp.Diff(want, got, cmpopts.EquateApprox(0, atol), cmpopts.EquateNaNs())
}

// compareAt wraps a non-empty diff into a *MismatchError.
func compareAt(stage string, batch, rank int, want, got []float64, atol float64) error {
	if diff := Compare(want, got, atol); diff != "" {
		return &MismatchError{Stage: stage, Batch: batch, Rank: rank, Diff: diff}
	}

	return nil
}
