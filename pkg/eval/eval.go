// Package eval computes regression quality metrics for the trained model.
package eval

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Metrics summarizes model performance on a held-out split.
type Metrics struct {
	R2   float64
	MAE  float64
	RMSE float64
}

// Evaluate compares predictions against actual targets.
func Evaluate(predicted, actual []float64) (Metrics, error) {
	if len(predicted) == 0 || len(predicted) != len(actual) {
		return Metrics{}, fmt.Errorf("evaluate: need matching non-empty slices, got %d and %d", len(predicted), len(actual))
	}

	var absSum, sqSum float64
	for i := range predicted {
		d := predicted[i] - actual[i]
		absSum += math.Abs(d)
		sqSum += d * d
	}
	n := float64(len(predicted))

	return Metrics{
		R2:   stat.RSquaredFrom(predicted, actual, nil),
		MAE:  absSum / n,
		RMSE: math.Sqrt(sqSum / n),
	}, nil
}

// String renders the metrics the way the trainer reports them.
func (m Metrics) String() string {
	return fmt.Sprintf("R2=%.2f MAE=%.2f RMSE=%.2f", m.R2, m.MAE, m.RMSE)
}
