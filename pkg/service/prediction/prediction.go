// Package prediction implements the serving-side business logic: request
// validation, feature-row construction, the model call, and currency
// presentation of the predicted salary.
package prediction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/salarycast/salarycast/infra/history"
	"github.com/salarycast/salarycast/internal/metrics"
	"github.com/salarycast/salarycast/pkg/currency"
	"github.com/salarycast/salarycast/pkg/dataset"
	"github.com/salarycast/salarycast/pkg/model"
)

// Form candidate lists, mirroring the values the model saw in training.
var (
	ExperienceLevels = []string{"Entry-level", "Mid-level", "Senior", "Executive"}

	JobTitles = []string{
		"AI Engineer", "Analytics Engineer", "BI Developer", "Big Data Engineer",
		"Computer Vision Engineer", "Data Analyst", "Data Architect",
		"Data Engineer", "Data Science Consultant", "Data Scientist",
		"Deep Learning Engineer", "ETL Developer", "Financial Data Analyst",
		"Head of Data", "Lead Data Analyst", "Lead Data Scientist",
		"ML Engineer", "Machine Learning Engineer", "Other",
		"Principal Data Scientist", "Research Engineer", "Research Scientist",
		"Software Engineer",
	}
)

// Work-year bounds of the training data.
const (
	WorkYearMin = 2020
	WorkYearMax = 2025
)

var (
	// ErrNameRequired marks a blank employee name: a recoverable warning,
	// no prediction is attempted.
	ErrNameRequired = errors.New("employee name is required")

	// ErrInvalidRequest marks a request outside the supported domain.
	ErrInvalidRequest = errors.New("invalid prediction request")
)

// Request is one salary prediction submission, built fresh per call.
type Request struct {
	EmployeeName    string
	ExperienceLevel string
	JobTitle        string
	CompanyLocation string
	RemoteRatio     int
	WorkYear        int
}

// Validate checks the request against the supported input domain.
func (r Request) Validate() error {
	if r.EmployeeName == "" {
		return ErrNameRequired
	}
	if !slices.Contains(ExperienceLevels, r.ExperienceLevel) {
		return fmt.Errorf("%w: unsupported experience level %q", ErrInvalidRequest, r.ExperienceLevel)
	}
	if !slices.Contains(JobTitles, r.JobTitle) {
		return fmt.Errorf("%w: unsupported job title %q", ErrInvalidRequest, r.JobTitle)
	}
	if len(r.CompanyLocation) != 2 {
		return fmt.Errorf("%w: company location %q is not a two-letter country code", ErrInvalidRequest, r.CompanyLocation)
	}
	if r.RemoteRatio < 0 || r.RemoteRatio > 100 || r.RemoteRatio%5 != 0 {
		return fmt.Errorf("%w: remote ratio %d must be within [0,100] in steps of 5", ErrInvalidRequest, r.RemoteRatio)
	}
	if r.WorkYear < WorkYearMin || r.WorkYear > WorkYearMax {
		return fmt.Errorf("%w: work year %d must be within [%d,%d]", ErrInvalidRequest, r.WorkYear, WorkYearMin, WorkYearMax)
	}
	return nil
}

// featureRow builds the single-row feature table in the exact column order
// the pipeline was fitted on.
func (r Request) featureRow() dataset.Row {
	return dataset.Row{
		ExperienceLevel: r.ExperienceLevel,
		JobTitle:        r.JobTitle,
		CompanyLocation: r.CompanyLocation,
		RemoteRatio:     float64(r.RemoteRatio),
		WorkYear:        float64(r.WorkYear),
	}
}

// Result is a completed prediction with its currency presentation.
type Result struct {
	ID           uuid.UUID
	EmployeeName string
	SalaryUSD    float64
	Lines        []currency.Line
	CreatedAt    time.Time
}

// Service coordinates the predictor, the rate table and the optional
// history store. A nil history store disables auditing.
type Service struct {
	predictor model.Predictor
	rates     *currency.Registry
	store     *history.Store
	delay     time.Duration
	logger    *slog.Logger
}

// New creates a prediction service. delay is the fixed pause applied
// before a result is shown; zero disables it.
func New(predictor model.Predictor, rates *currency.Registry, store *history.Store, delay time.Duration, logger *slog.Logger) *Service {
	return &Service{
		predictor: predictor,
		rates:     rates,
		store:     store,
		delay:     delay,
		logger:    logger,
	}
}

// Predict validates the request, runs the model and derives the currency
// quote. Model failures are recoverable: the service keeps serving.
func (s *Service) Predict(ctx context.Context, req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		metrics.PredictionsTotal.WithLabelValues(metrics.StatusInvalid).Inc()
		return nil, err
	}

	start := time.Now()
	salaryUSD, err := s.predictor.Predict(req.featureRow())
	metrics.PredictionDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.PredictionsTotal.WithLabelValues(metrics.StatusError).Inc()
		s.logger.Error("prediction failed", "employee", req.EmployeeName, "error", err)
		return nil, fmt.Errorf("predict salary: %w", err)
	}

	quote := s.rates.Quote(salaryUSD, req.CompanyLocation)
	result := &Result{
		ID:           uuid.New(),
		EmployeeName: req.EmployeeName,
		SalaryUSD:    salaryUSD,
		Lines:        quote.Lines,
		CreatedAt:    time.Now().UTC(),
	}

	s.record(ctx, req, result)
	metrics.PredictionsTotal.WithLabelValues(metrics.StatusOK).Inc()

	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	s.logger.Info("prediction served",
		"id", result.ID,
		"employee", req.EmployeeName,
		"company_location", req.CompanyLocation,
		"salary_usd", salaryUSD,
	)
	return result, nil
}

// History lists recent predictions, newest first. Returns an empty slice
// when auditing is disabled.
func (s *Service) History(ctx context.Context, limit int) ([]history.Entry, error) {
	if s.store == nil {
		return nil, nil
	}
	return s.store.Recent(ctx, limit)
}

// record writes the audit entry. A failed insert must not fail the
// prediction, so it only logs.
func (s *Service) record(ctx context.Context, req Request, result *Result) {
	if s.store == nil {
		return
	}

	err := s.store.Record(ctx, history.Entry{
		ID:              result.ID,
		EmployeeName:    req.EmployeeName,
		ExperienceLevel: req.ExperienceLevel,
		JobTitle:        req.JobTitle,
		CompanyLocation: req.CompanyLocation,
		RemoteRatio:     req.RemoteRatio,
		WorkYear:        req.WorkYear,
		SalaryUSD:       result.SalaryUSD,
		CreatedAt:       result.CreatedAt,
	})
	if err != nil {
		s.logger.Error("failed to record prediction", "id", result.ID, "error", err)
	}
}

// wait applies the configured artificial delay, honoring cancellation.
func (s *Service) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	select {
	case <-time.After(s.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
