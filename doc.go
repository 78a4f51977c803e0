// Package lvmetrics is a small toolkit of classification metrics with a
// built-in parity harness: every score it produces is checked against an
// independent reference scorer across input families and averaging modes.
//
// 🚀 What is in lvmetrics?
//
//	• tensor: N-dimensional row-major float64 container (views, argmax, threshold)
//	• classification: F-beta / F1, stateful and functional, micro/macro/weighted/none
//	• classification/reference: sklearn-compatible fbeta_score plus per-family adapters
//	• replica: in-process all-reduce groups that simulate distributed replicas
//	• metrictest: seeded fixtures, parameter sweep and comparison runners
//	• cmd/fbeta-parity: the same sweep as a CLI with table/JSON reports
//
// ✨ Why choose lvmetrics?
//
//   - One F-beta core; F1 is the beta = 1 case, not a second implementation
//   - Mergeable per-class state: replicas accumulate alone and combine in any order
//   - Deterministic fixtures: explicit seeds, no process-wide randomness
//   - Pure Go numerics on gonum
//
// Quick example:
//
//	preds, _ := tensor.FromInts([]int{1, 0, 1, 0}, []int{4})
//	target, _ := tensor.FromInts([]int{0, 1, 1, 0}, []int{4})
//	res, _ := classification.F1Score(preds, target,
//		classification.WithNumClasses(2),
//		classification.WithAverage(classification.AverageNone))
//	// res.PerClass == [0.5 0.5]
//
//	go get github.com/katalvlaran/lvmetrics
package lvmetrics
