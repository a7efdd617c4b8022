package prediction

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/salarycast/salarycast/infra/history"
	"github.com/salarycast/salarycast/pkg/currency"
	"github.com/salarycast/salarycast/pkg/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPredictor returns a fixed salary, or an error when set.
type stubPredictor struct {
	salary float64
	err    error
	calls  int
}

func (s *stubPredictor) Predict(dataset.Row) (float64, error) {
	s.calls++
	return s.salary, s.err
}

func validRequest() Request {
	return Request{
		EmployeeName:    "Jane Doe",
		ExperienceLevel: "Senior",
		JobTitle:        "Data Scientist",
		CompanyLocation: "IN",
		RemoteRatio:     50,
		WorkYear:        2024,
	}
}

func newService(p *stubPredictor, store *history.Store) *Service {
	return New(p, currency.NewRegistry(), store, 0, slog.Default())
}

func TestPredictSuccess(t *testing.T) {
	stub := &stubPredictor{salary: 100000.00}
	svc := newService(stub, nil)

	result, err := svc.Predict(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, 100000.00, result.SalaryUSD)
	assert.Equal(t, "Jane Doe", result.EmployeeName)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", result.ID.String())

	// IN is the INR country: USD and INR lines only, no duplicate.
	require.Len(t, result.Lines, 2)
	assert.Equal(t, "$100,000.00 (USD)", result.Lines[0].String())
	assert.Equal(t, "₹8,350,000.00 (INR)", result.Lines[1].String())
}

func TestPredictEmptyNameSkipsModel(t *testing.T) {
	stub := &stubPredictor{salary: 100000}
	svc := newService(stub, nil)

	req := validRequest()
	req.EmployeeName = ""

	result, err := svc.Predict(context.Background(), req)
	assert.ErrorIs(t, err, ErrNameRequired)
	assert.Nil(t, result)
	assert.Zero(t, stub.calls, "no prediction attempted")
}

func TestPredictValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"unsupported experience level", func(r *Request) { r.ExperienceLevel = "Intern" }},
		{"unsupported job title", func(r *Request) { r.JobTitle = "Astronaut" }},
		{"bad country code", func(r *Request) { r.CompanyLocation = "USA" }},
		{"remote ratio out of range", func(r *Request) { r.RemoteRatio = 120 }},
		{"remote ratio off step", func(r *Request) { r.RemoteRatio = 42 }},
		{"work year too early", func(r *Request) { r.WorkYear = 2019 }},
		{"work year too late", func(r *Request) { r.WorkYear = 2026 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(&stubPredictor{salary: 1}, nil)
			req := validRequest()
			tt.mutate(&req)

			_, err := svc.Predict(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidRequest)
		})
	}
}

func TestPredictModelFailureIsRecoverable(t *testing.T) {
	stub := &stubPredictor{err: errors.New("malformed feature row")}
	svc := newService(stub, nil)

	_, err := svc.Predict(context.Background(), validRequest())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidRequest)

	// The service keeps serving after a model failure.
	stub.err = nil
	stub.salary = 90000
	result, err := svc.Predict(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, 90000.0, result.SalaryUSD)
}

func TestPredictRecordsHistory(t *testing.T) {
	store, err := history.Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer store.Close() //nolint: errcheck

	svc := newService(&stubPredictor{salary: 123456}, store)

	_, err = svc.Predict(context.Background(), validRequest())
	require.NoError(t, err)

	entries, err := svc.History(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Jane Doe", entries[0].EmployeeName)
	assert.Equal(t, 123456.0, entries[0].SalaryUSD)
	assert.Equal(t, 2024, entries[0].WorkYear)
}

func TestHistoryDisabled(t *testing.T) {
	svc := newService(&stubPredictor{salary: 1}, nil)

	entries, err := svc.History(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLocalCurrencyLine(t *testing.T) {
	svc := newService(&stubPredictor{salary: 50000}, nil)

	req := validRequest()
	req.CompanyLocation = "GB"

	result, err := svc.Predict(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, result.Lines, 3)
	assert.Equal(t, "GBP", result.Lines[2].Name)
	assert.InDelta(t, 50000*0.79, result.Lines[2].Amount, 1e-9)
}

func TestUnknownLocationFallsBackToUSD(t *testing.T) {
	svc := newService(&stubPredictor{salary: 50000}, nil)

	req := validRequest()
	req.CompanyLocation = "ZZ"

	result, err := svc.Predict(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, result.Lines, 2, "fallback USD local line is suppressed")
	assert.Equal(t, "USD", result.Lines[0].Name)
	assert.Equal(t, "INR", result.Lines[1].Name)
}
