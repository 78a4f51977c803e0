// SPDX-License-Identifier: MIT

// Package metrictest is the parity harness for the classification metrics.
//
// It builds seeded fixture inputs for every input family, expands a
// parameter sweep (family × average × beta × ddp × dist-sync-on-step) into
// named cases, and runs each case twice: through the stateful metric
// (optionally split across simulated replicas) and through the stateless
// function. Every value is compared with the reference scorer within an
// absolute tolerance.
//
// Failure signalling:
//   - a numeric disagreement is a *MismatchError carrying a go-cmp diff;
//   - anything else (bad shapes, reducer failures) is returned unchanged,
//     so callers tell "wrong answer" from "could not compute" with errors.As.
//
// ⚙️ Usage (inside a test):
//
//	in, _ := metrictest.NewInputs(metrictest.DefaultSeed)
//	for _, c := range metrictest.DefaultSweep().Cases(metrictest.DefaultFamilies(in)) {
//		t.Run(c.Name(), func(t *testing.T) {
//			metrictest.AssertClassMetric(t, c.ClassTest(metrictest.DefaultAtol))
//		})
//	}
package metrictest
