// SPDX-License-Identifier: MIT

package metrictest

import (
	"errors"
	"fmt"
)

var (
	// ErrUnevenShards indicates a batch count not divisible by the replica count.
	ErrUnevenShards = errors.New("metrictest: batches do not split evenly across replicas")

	// ErrIncompleteTest indicates a ClassTest or FunctionalTest missing a callback.
	ErrIncompleteTest = errors.New("metrictest: test is missing a metric or reference")
)

// Stages at which the harness compares metric output with the reference.
const (
	StageBatch      = "batch"
	StageStep       = "dist-sync-on-step"
	StageFinal      = "final"
	StageMergeOrder = "merge-order"
	StageFunctional = "functional"
)

// MismatchError reports a metric value outside tolerance of its reference.
// Batch and Rank are -1 when the stage is not tied to one.
type MismatchError struct {
	Stage string
	Batch int
	Rank  int
	Diff  string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("metrictest: %s mismatch (batch %d, rank %d) (-want +got):\n%s",
		e.Stage, e.Batch, e.Rank, e.Diff)
}
