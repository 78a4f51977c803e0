// SPDX-License-Identifier: MIT

package metrictest

import (
	"fmt"

	"github.com/katalvlaran/lvmetrics/classification"
	"github.com/katalvlaran/lvmetrics/classification/reference"
	"github.com/katalvlaran/lvmetrics/tensor"
)

// FamilyCase binds a fixture to the metric configuration and reference
// adapter that belong to its input family.
type FamilyCase struct {
	ID         string
	Input      Input
	Family     reference.Family
	NumClasses int
	Multilabel bool
}

// DefaultFamilies lists the nine fixture families of Inputs.
func DefaultFamilies(in Inputs) []FamilyCase {
	bin := func(f reference.Form) reference.Family { return reference.Family{Kind: reference.Binary, Form: f} }
	mlb := func(f reference.Form) reference.Family { return reference.Family{Kind: reference.MultiLabel, Form: f} }
	mcl := func(f reference.Form) reference.Family { return reference.Family{Kind: reference.MultiClass, Form: f} }
	mdm := func(f reference.Form) reference.Family { return reference.Family{Kind: reference.MultiDimMultiClass, Form: f} }

	return []FamilyCase{
		{ID: "binary_prob", Input: in.BinaryProb, Family: bin(reference.Probabilities), NumClasses: 1},
		{ID: "binary", Input: in.Binary, Family: bin(reference.Labels), NumClasses: 1},
		{ID: "multilabel_prob", Input: in.MultilabelProb, Family: mlb(reference.Probabilities), NumClasses: NumClasses, Multilabel: true},
		{ID: "multilabel", Input: in.Multilabel, Family: mlb(reference.Labels), NumClasses: NumClasses, Multilabel: true},
		{ID: "multilabel_no_match", Input: in.MultilabelNoMatch, Family: mlb(reference.Labels), NumClasses: NumClasses, Multilabel: true},
		{ID: "multiclass_prob", Input: in.MulticlassProb, Family: mcl(reference.Probabilities), NumClasses: NumClasses},
		{ID: "multiclass", Input: in.Multiclass, Family: mcl(reference.Labels), NumClasses: NumClasses},
		{ID: "multidim_multiclass_prob", Input: in.MultidimMulticlassProb, Family: mdm(reference.Probabilities), NumClasses: NumClasses},
		{ID: "multidim_multiclass", Input: in.MultidimMulticlass, Family: mdm(reference.Labels), NumClasses: NumClasses},
	}
}

// Sweep is the parameter grid crossed with every family.
type Sweep struct {
	Averages       []classification.Average
	Betas          []float64
	DDP            []bool
	DistSyncOnStep []bool
}

// DefaultSweep is every average × beta {0.5, 1, 2} × ddp × sync.
func DefaultSweep() Sweep {
	return Sweep{
		Averages:       classification.Averages(),
		Betas:          []float64{0.5, 1, 2},
		DDP:            []bool{true, false},
		DistSyncOnStep: []bool{true, false},
	}
}

// Cases expands the grid in family, average, beta, ddp, sync order.
func (s Sweep) Cases(families []FamilyCase) []Case {
	out := make([]Case, 0, len(families)*len(s.Averages)*len(s.Betas)*len(s.DDP)*len(s.DistSyncOnStep))
	for _, f := range families {
		for _, avg := range s.Averages {
			for _, beta := range s.Betas {
				for _, ddp := range s.DDP {
					for _, sync := range s.DistSyncOnStep {
						out = append(out, Case{Family: f, Average: avg, Beta: beta, DDP: ddp, DistSyncOnStep: sync})
					}
				}
			}
		}
	}

	return out
}

// Case is one point of the sweep.
type Case struct {
	Family         FamilyCase
	Average        classification.Average
	Beta           float64
	DDP            bool
	DistSyncOnStep bool
}

// Name identifies the case, e.g. "multiclass_prob/macro/beta=0.5/ddp=true/sync=false".
func (c Case) Name() string {
	return fmt.Sprintf("%s/%s/beta=%g/ddp=%t/sync=%t", c.Family.ID, c.Average, c.Beta, c.DDP, c.DistSyncOnStep)
}

// Options returns the scoring options of the case.
func (c Case) Options() []classification.Option {
	opts := []classification.Option{
		classification.WithNumClasses(c.Family.NumClasses),
		classification.WithAverage(c.Average),
		classification.WithThreshold(Threshold),
	}
	if c.Family.Multilabel {
		opts = append(opts, classification.WithMultilabel())
	}

	return opts
}

// NewMetric builds the stateful metric; beta 1 goes through the F1 constructor.
func (c Case) NewMetric(extra ...classification.Option) (Metric, error) {
	var (
		m   *classification.FBeta
		err error
	)
	opts := append(c.Options(), extra...)
	if c.Beta == classification.F1Beta {
		m, err = classification.NewF1(opts...)
	} else {
		m, err = classification.NewFBeta(c.Beta, opts...)
	}
	if err != nil {
		return nil, err
	}

	return m, nil
}

// Functional is the stateless counterpart of NewMetric.
func (c Case) Functional(preds, target *tensor.Dense) (classification.Result, error) {
	if c.Beta == classification.F1Beta {
		return classification.F1Score(preds, target, c.Options()...)
	}

	return classification.FBetaScore(preds, target, c.Beta, c.Options()...)
}

// Reference scores a preds/target pair with the family's adapter.
func (c Case) Reference(preds, target *tensor.Dense) ([]float64, error) {
	a := reference.Adapter{Family: c.Family.Family, Threshold: Threshold}
	s, err := a.Score(preds, target, c.Average, c.Beta)
	if err != nil {
		return nil, err
	}

	return s.Values(), nil
}

// ClassTest describes the stateful run of the case.
func (c Case) ClassTest(atol float64) ClassTest {
	return ClassTest{
		Input:               c.Family.Input,
		NewMetric:           c.NewMetric,
		Reference:           c.Reference,
		DDP:                 c.DDP,
		DistSyncOnStep:      c.DistSyncOnStep,
		CheckBatch:          true,
		CheckDistSyncOnStep: true,
		Atol:                atol,
	}
}

// FunctionalTest describes the stateless run of the case.
func (c Case) FunctionalTest(atol float64) FunctionalTest {
	return FunctionalTest{
		Input:     c.Family.Input,
		Func:      c.Functional,
		Reference: c.Reference,
		Atol:      atol,
	}
}
