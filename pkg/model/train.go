package model

import (
	"fmt"

	"github.com/salarycast/salarycast/pkg/dataset"
	"github.com/salarycast/salarycast/pkg/eval"
	"github.com/salarycast/salarycast/pkg/forest"
	"github.com/salarycast/salarycast/pkg/pipeline"
)

// TrainOptions control the fit. Zero values fall back to the classic
// configuration: 100 trees, seed 42, 80/20 split.
type TrainOptions struct {
	Trees    int
	Seed     int64
	TestSize float64
}

func (o TrainOptions) withDefaults() TrainOptions {
	if o.Trees == 0 {
		o.Trees = 100
	}
	if o.Seed == 0 {
		o.Seed = 42
	}
	if o.TestSize == 0 {
		o.TestSize = 0.2
	}
	return o
}

// TrainReport is the outcome of a training run.
type TrainReport struct {
	Artifact  *Artifact
	Metrics   eval.Metrics
	TrainRows int
	TestRows  int
}

// Train fits the preprocessing pipeline and forest on the table's training
// split and evaluates on the held-out split.
func Train(t *dataset.Table, opts TrainOptions) (*TrainReport, error) {
	opts = opts.withDefaults()

	train, test := t.Split(opts.Seed, opts.TestSize)
	if train.Len() == 0 || test.Len() == 0 {
		return nil, fmt.Errorf("train: dataset too small to split (%d rows)", t.Len())
	}

	pre := &pipeline.Preprocessor{}
	if err := pre.Fit(train.Rows); err != nil {
		return nil, err
	}

	x, err := pre.Transform(train.Rows)
	if err != nil {
		return nil, err
	}
	f, err := forest.Fit(x, train.Target, opts.Trees, opts.Seed)
	if err != nil {
		return nil, err
	}

	xTest, err := pre.Transform(test.Rows)
	if err != nil {
		return nil, err
	}
	predicted := make([]float64, len(xTest))
	for i, vec := range xTest {
		if predicted[i], err = f.Predict(vec); err != nil {
			return nil, err
		}
	}
	metrics, err := eval.Evaluate(predicted, test.Target)
	if err != nil {
		return nil, err
	}

	return &TrainReport{
		Artifact:  New(pre, f, metrics),
		Metrics:   metrics,
		TrainRows: train.Len(),
		TestRows:  test.Len(),
	}, nil
}
