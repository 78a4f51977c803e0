// SPDX-License-Identifier: MIT

package tensor_test

import (
	"fmt"

	"github.com/katalvlaran/lvmetrics/tensor"
)

// ExampleDense_ArgMax reduces class probabilities to hard labels.
func ExampleDense_ArgMax() {
	probs, err := tensor.FromSlice([]float64{
		0.1, 0.7, 0.2,
		0.6, 0.3, 0.1,
	}, []int{2, 3})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	labels, _ := probs.ArgMax(1)
	fmt.Println(labels)
	// Output:
	// tensor[2] [1, 0]
}

// ExampleDense_Threshold binarises probabilities at 0.5.
func ExampleDense_Threshold() {
	probs, _ := tensor.FromSlice([]float64{0.49, 0.5, 0.93}, []int{3})
	fmt.Println(probs.Threshold(0.5))
	// Output:
	// tensor[3] [0, 1, 1]
}
