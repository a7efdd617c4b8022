// Package metrics exposes prometheus instrumentation for the serving side.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PredictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "salarycast_predictions_total",
			Help: "Total number of prediction requests by outcome",
		},
		[]string{"status"},
	)

	PredictionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "salarycast_prediction_duration_seconds",
			Help: "Duration of model prediction calls in seconds",
		},
	)
)

// Outcome labels for PredictionsTotal.
const (
	StatusOK      = "ok"
	StatusInvalid = "invalid"
	StatusError   = "error"
)
