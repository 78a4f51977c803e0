// SPDX-License-Identifier: MIT

// Package classification: functional configuration for metrics and the
// functional entry points. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts formatting, averaging or syncing.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package classification

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultNumClasses is the binary case: one (positive) class.
	DefaultNumClasses = 1

	// DefaultAverage collapses per-class counts globally.
	DefaultAverage = AverageMicro

	// DefaultMultilabel treats axis 1 as a class axis of independent labels when true.
	DefaultMultilabel = false

	// DefaultThreshold binarises probability predictions: p >= threshold ⇒ positive.
	DefaultThreshold = 0.5

	// DefaultDistSyncOnStep all-reduces each Forward batch across replicas when true.
	DefaultDistSyncOnStep = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNumClassesInvalid = "classification: WithNumClasses: n must be > 0"
	panicAverageInvalid    = "classification: WithAverage: unknown average"
	panicThresholdInvalid  = "classification: WithThreshold: threshold must be finite and in (0,1)"
	panicReducerNil        = "classification: WithReducer: reducer must be non-nil"
)

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	numClasses     int     // DefaultNumClasses
	average        Average // DefaultAverage
	multilabel     bool    // DefaultMultilabel
	threshold      float64 // DefaultThreshold
	distSyncOnStep bool    // DefaultDistSyncOnStep
	reducer        Reducer // nil ⇒ local only
}

// WithNumClasses sets the number of classes (1 = binary).
// Panics when n <= 0.
func WithNumClasses(n int) Option {
	if n <= 0 {
		panic(panicNumClassesInvalid)
	}

	return func(o *Options) { o.numClasses = n }
}

// WithAverage selects the averaging mode.
// Panics on a value outside the Average enumeration.
func WithAverage(a Average) Option {
	if !a.valid() {
		panic(panicAverageInvalid)
	}

	return func(o *Options) { o.average = a }
}

// WithMultilabel marks inputs as multilabel indicators (class axis = 1).
func WithMultilabel() Option {
	return func(o *Options) { o.multilabel = true }
}

// WithThreshold sets the probability binarisation threshold.
// Panics unless 0 < th < 1 and finite.
//
// AI-Hints:
//   - Label-valued binary/multilabel preds (0/1) are unaffected by any valid threshold.
func WithThreshold(th float64) Option {
	if math.IsNaN(th) || th <= 0 || th >= 1 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.threshold = th }
}

// WithDistSyncOnStep makes FBeta.Forward all-reduce the batch state through
// the configured Reducer before scoring it. Without a Reducer the flag is a no-op.
func WithDistSyncOnStep() Option {
	return func(o *Options) { o.distSyncOnStep = true }
}

// WithReducer attaches the replica reducer used by Forward under dist-sync-on-step.
// Panics when r is nil.
func WithReducer(r Reducer) Option {
	if r == nil {
		panic(panicReducerNil)
	}

	return func(o *Options) { o.reducer = r }
}

// gatherOptions resolves user setters over the documented defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		numClasses:     DefaultNumClasses,
		average:        DefaultAverage,
		multilabel:     DefaultMultilabel,
		threshold:      DefaultThreshold,
		distSyncOnStep: DefaultDistSyncOnStep,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

// sameScoring reports whether two option sets produce comparable states.
// Sync policy is excluded: it never changes accumulated counts.
func (o Options) sameScoring(p Options) bool {
	return o.numClasses == p.numClasses &&
		o.average == p.average &&
		o.multilabel == p.multilabel &&
		o.threshold == p.threshold
}
