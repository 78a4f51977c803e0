// SPDX-License-Identifier: MIT

package metrictest

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/lvmetrics/tensor"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Harness dimensions.
const (
	NumProcesses = 2
	NumBatches   = 10
	BatchSize    = 32
	NumClasses   = 5
	ExtraDim     = 3
	Threshold    = 0.5

	// DefaultAtol is the absolute tolerance of every comparison.
	DefaultAtol = 1e-8

	// DefaultSeed is used when a seed of 0 is requested.
	DefaultSeed uint64 = 42
)

// Input is one fixture: preds and target with a leading batch axis.
type Input struct {
	Preds  *tensor.Dense
	Target *tensor.Dense
}

// NumBatches returns the size of the leading axis.
func (in Input) NumBatches() int { return in.Preds.Dim(0) }

// Batch returns no-copy views of batch i.
func (in Input) Batch(i int) (preds, target *tensor.Dense, err error) {
	if preds, err = in.Preds.Batch(i); err != nil {
		return nil, nil, err
	}
	if target, err = in.Target.Batch(i); err != nil {
		return nil, nil, err
	}

	return preds, target, nil
}

// Span concatenates batches [from, to) along the sample axis.
func (in Input) Span(from, to int) (preds, target *tensor.Dense, err error) {
	if from < 0 || to > in.NumBatches() || from >= to {
		return nil, nil, fmt.Errorf("Input.Span(%d, %d): %w", from, to, tensor.ErrOutOfRange)
	}
	ps := make([]*tensor.Dense, 0, to-from)
	ts := make([]*tensor.Dense, 0, to-from)
	for i := from; i < to; i++ {
		p, t, err := in.Batch(i)
		if err != nil {
			return nil, nil, err
		}
		ps = append(ps, p)
		ts = append(ts, t)
	}
	if preds, err = tensor.Concat(ps...); err != nil {
		return nil, nil, err
	}
	if target, err = tensor.Concat(ts...); err != nil {
		return nil, nil, err
	}

	return preds, target, nil
}

// All concatenates every batch.
func (in Input) All() (preds, target *tensor.Dense, err error) {
	return in.Span(0, in.NumBatches())
}

// Inputs holds one fixture per input family.
type Inputs struct {
	Binary                 Input
	BinaryProb             Input
	Multilabel             Input
	MultilabelProb         Input
	MultilabelNoMatch      Input
	Multiclass             Input
	MulticlassProb         Input
	MultidimMulticlass     Input
	MultidimMulticlassProb Input
}

// stream ids; fixed so fixtures stay stable when families are added.
const (
	streamBinary uint64 = iota + 1
	streamBinaryProb
	streamMultilabel
	streamMultilabelProb
	streamMultilabelNoMatch
	streamMulticlass
	streamMulticlassProb
	streamMultidim
	streamMultidimProb
)

// NewInputs builds every fixture from seed (0 ⇒ DefaultSeed).
// MAIN DESCRIPTION:
//   - Labels are uniform integers; probabilities are distuv.Uniform draws,
//     normalised over the class axis for the multiclass families.
//   - Each family draws from its own stream (see newStream).
//
// Complexity:
//   - Time O(NB·BS·C·E), Space the same.
func NewInputs(seed uint64) (Inputs, error) {
	var (
		in  Inputs
		err error
	)
	nb, bs, c, e := NumBatches, BatchSize, NumClasses, ExtraDim

	g := newGen(seed, streamBinary)
	if in.Binary, err = g.input(g.labels(2, nb, bs), g.labels(2, nb, bs), nb, bs); err != nil {
		return Inputs{}, err
	}
	g = newGen(seed, streamBinaryProb)
	if in.BinaryProb, err = g.input(g.uniform(nb, bs), g.labels(2, nb, bs), nb, bs); err != nil {
		return Inputs{}, err
	}
	g = newGen(seed, streamMultilabel)
	if in.Multilabel, err = g.input(g.labels(2, nb, bs, c), g.labels(2, nb, bs, c), nb, bs, c); err != nil {
		return Inputs{}, err
	}
	g = newGen(seed, streamMultilabelProb)
	if in.MultilabelProb, err = g.input(g.uniform(nb, bs, c), g.labels(2, nb, bs, c), nb, bs, c); err != nil {
		return Inputs{}, err
	}
	g = newGen(seed, streamMultilabelNoMatch)
	preds := g.labels(2, nb, bs, c)
	target := make([]float64, len(preds))
	for i, p := range preds {
		target[i] = 1 - p
	}
	if in.MultilabelNoMatch, err = g.input(preds, target, nb, bs, c); err != nil {
		return Inputs{}, err
	}
	g = newGen(seed, streamMulticlass)
	if in.Multiclass, err = g.input(g.labels(c, nb, bs), g.labels(c, nb, bs), nb, bs); err != nil {
		return Inputs{}, err
	}
	g = newGen(seed, streamMulticlassProb)
	if in.MulticlassProb, err = g.inputShaped(g.simplex(nb*bs, c, 1), []int{nb, bs, c}, g.labels(c, nb, bs), []int{nb, bs}); err != nil {
		return Inputs{}, err
	}
	g = newGen(seed, streamMultidim)
	if in.MultidimMulticlass, err = g.input(g.labels(c, nb, bs, e), g.labels(c, nb, bs, e), nb, bs, e); err != nil {
		return Inputs{}, err
	}
	g = newGen(seed, streamMultidimProb)
	if in.MultidimMulticlassProb, err = g.inputShaped(g.simplex(nb*bs, c, e), []int{nb, bs, c, e}, g.labels(c, nb, bs, e), []int{nb, bs, e}); err != nil {
		return Inputs{}, err
	}

	return in, nil
}

// gen draws fixture values from one stream.
type gen struct {
	r    *rand.Rand
	unit distuv.Uniform
}

func newGen(seed, stream uint64) *gen {
	r := newStream(seed, stream)

	return &gen{r: r, unit: distuv.Uniform{Min: 0, Max: 1, Src: r}}
}

// labels draws integers in [0, n) for a tensor of the given shape.
func (g *gen) labels(n int, shape ...int) []float64 {
	out := make([]float64, volume(shape))
	for i := range out {
		out[i] = float64(g.r.IntN(n))
	}

	return out
}

// uniform draws values in [0, 1).
func (g *gen) uniform(shape ...int) []float64 {
	out := make([]float64, volume(shape))
	for i := range out {
		out[i] = g.unit.Rand()
	}

	return out
}

// simplex draws rows×classes×inner values normalised to sum to 1 over the class axis.
func (g *gen) simplex(rows, classes, inner int) []float64 {
	out := g.uniform(rows, classes, inner)
	fibre := make([]float64, classes)
	for r := 0; r < rows; r++ {
		base := r * classes * inner
		for in := 0; in < inner; in++ {
			for k := range fibre {
				fibre[k] = out[base+k*inner+in]
			}
			floats.Scale(1/floats.Sum(fibre), fibre)
			for k, v := range fibre {
				out[base+k*inner+in] = v
			}
		}
	}

	return out
}

func (g *gen) input(preds, target []float64, shape ...int) (Input, error) {
	return g.inputShaped(preds, shape, target, shape)
}

func (g *gen) inputShaped(preds []float64, pshape []int, target []float64, tshape []int) (Input, error) {
	p, err := tensor.FromSlice(preds, pshape)
	if err != nil {
		return Input{}, fmt.Errorf("NewInputs: preds: %w", err)
	}
	t, err := tensor.FromSlice(target, tshape)
	if err != nil {
		return Input{}, fmt.Errorf("NewInputs: target: %w", err)
	}

	return Input{Preds: p, Target: t}, nil
}

func volume(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}

	return n
}
