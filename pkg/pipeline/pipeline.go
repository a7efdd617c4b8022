// Package pipeline implements the preprocessing stage fitted ahead of the
// regressor: mean imputation and standard scaling for numeric features,
// mode imputation and one-hot encoding for categorical ones.
package pipeline

import (
	"fmt"
	"math"

	"github.com/salarycast/salarycast/pkg/dataset"
)

// NumericStats holds the fitted state of one numeric column. Mean doubles
// as the imputation value; Std of zero is treated as one when scaling.
type NumericStats struct {
	Mean float64
	Std  float64
}

func (s *NumericStats) fit(values []float64) {
	var sum float64
	var n int
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		s.Mean, s.Std = 0, 0
		return
	}
	s.Mean = sum / float64(n)

	// Variance over the imputed column: imputed cells sit exactly on the
	// mean and contribute nothing.
	var ss float64
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		d := v - s.Mean
		ss += d * d
	}
	s.Std = math.Sqrt(ss / float64(len(values)))
}

// transform imputes then scales a single value.
func (s *NumericStats) transform(v float64) float64 {
	if math.IsNaN(v) {
		v = s.Mean
	}
	std := s.Std
	if std == 0 {
		std = 1
	}
	return (v - s.Mean) / std
}

// Preprocessor is the fitted preprocessing state for the five-feature
// salary schema. Fields are exported for gob serialization.
type Preprocessor struct {
	RemoteRatio NumericStats
	WorkYear    NumericStats
	Experience  CategoryEncoder
	JobTitle    CategoryEncoder
	Location    CategoryEncoder

	Fitted bool
}

// Fit computes imputation, scaling and encoding state from training rows.
func (p *Preprocessor) Fit(rows []dataset.Row) error {
	if len(rows) == 0 {
		return fmt.Errorf("fit preprocessor: no training rows")
	}

	remote := make([]float64, len(rows))
	year := make([]float64, len(rows))
	exp := make([]string, len(rows))
	job := make([]string, len(rows))
	loc := make([]string, len(rows))
	for i, r := range rows {
		remote[i] = r.RemoteRatio
		year[i] = r.WorkYear
		exp[i] = r.ExperienceLevel
		job[i] = r.JobTitle
		loc[i] = r.CompanyLocation
	}

	p.RemoteRatio.fit(remote)
	p.WorkYear.fit(year)
	p.Experience.fit(exp)
	p.JobTitle.fit(job)
	p.Location.fit(loc)
	p.Fitted = true
	return nil
}

// Width is the length of a transformed feature vector.
func (p *Preprocessor) Width() int {
	return 2 + len(p.Experience.Categories) + len(p.JobTitle.Categories) + len(p.Location.Categories)
}

// TransformRow encodes one row into the numeric feature vector the
// regressor consumes: scaled numerics first, then the one-hot blocks in
// schema order.
func (p *Preprocessor) TransformRow(r dataset.Row) ([]float64, error) {
	if !p.Fitted {
		return nil, fmt.Errorf("transform: preprocessor is not fitted")
	}

	out := make([]float64, 0, p.Width())
	out = append(out, p.RemoteRatio.transform(r.RemoteRatio))
	out = append(out, p.WorkYear.transform(r.WorkYear))
	out = p.Experience.encode(r.ExperienceLevel, out)
	out = p.JobTitle.encode(r.JobTitle, out)
	out = p.Location.encode(r.CompanyLocation, out)
	return out, nil
}

// Transform encodes a batch of rows.
func (p *Preprocessor) Transform(rows []dataset.Row) ([][]float64, error) {
	out := make([][]float64, len(rows))
	for i, r := range rows {
		vec, err := p.TransformRow(r)
		if err != nil {
			return nil, err
		}
		out[i] = vec
	}
	return out, nil
}
