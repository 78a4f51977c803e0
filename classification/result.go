// SPDX-License-Identifier: MIT

package classification

import (
	"fmt"
	"strings"
)

// Result is the outcome of an F-beta computation.
//   - Averaged modes fill Value and leave PerClass nil.
//   - AverageNone fills PerClass (one score per class) and leaves Value at 0.
type Result struct {
	Average  Average
	Value    float64
	PerClass []float64
}

// Values returns the per-class vector, or the scalar as a one-element slice.
// A scalar and a one-class vector therefore compare equal.
func (r Result) Values() []float64 {
	if r.Average == AverageNone {
		return append([]float64(nil), r.PerClass...)
	}

	return []float64{r.Value}
}

// String renders "micro=0.5" or "none=[0.5 1]".
func (r Result) String() string {
	var b strings.Builder
	b.WriteString(r.Average.String())
	b.WriteByte('=')
	if r.Average == AverageNone {
		b.WriteString(fmt.Sprint(r.PerClass))
	} else {
		b.WriteString(fmt.Sprintf("%g", r.Value))
	}

	return b.String()
}
