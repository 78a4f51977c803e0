// SPDX-License-Identifier: MIT

package classification_test

import (
	"testing"

	"github.com/katalvlaran/lvmetrics/tensor"
	"github.com/stretchr/testify/require"
)

// mustTensor builds a tensor or fails the test.
func mustTensor(t *testing.T, data []float64, shape ...int) *tensor.Dense {
	t.Helper()
	d, err := tensor.FromSlice(data, shape)
	require.NoError(t, err)

	return d
}

// docPreds / docTarget: three classes, six samples; per class
// TP [2 0 0], FP [1 2 1], FN [0 2 2].
var (
	docPreds  = []float64{0, 2, 1, 0, 0, 1}
	docTarget = []float64{0, 1, 2, 0, 1, 2}
)
