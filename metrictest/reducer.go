// SPDX-License-Identifier: MIT

package metrictest

import (
	"context"

	"github.com/katalvlaran/lvmetrics/classification"
	"github.com/katalvlaran/lvmetrics/replica"
)

// NewReplicaGroup builds a group that all-reduces stat scores by addition.
func NewReplicaGroup(size int) (*replica.Group[classification.StatScores], error) {
	return replica.NewGroup[classification.StatScores](size, classification.MergeStatScores)
}

// memberReducer adapts a replica member to classification.Reducer.
type memberReducer struct {
	m *replica.Member[classification.StatScores]
}

// NewReducer returns a classification.Reducer backed by one replica rank.
func NewReducer(m *replica.Member[classification.StatScores]) classification.Reducer {
	return memberReducer{m: m}
}

// AllReduce clones the shared group result so each rank owns its copy.
func (r memberReducer) AllReduce(ctx context.Context, local classification.StatScores) (classification.StatScores, error) {
	s, err := r.m.AllReduce(ctx, local)
	if err != nil {
		return classification.StatScores{}, err
	}

	return s.Clone(), nil
}
