package predict

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/salarycast/salarycast/pkg/config"
	"github.com/salarycast/salarycast/pkg/currency"
	"github.com/salarycast/salarycast/pkg/dataset"
	"github.com/salarycast/salarycast/pkg/service/prediction"
	"github.com/salarycast/salarycast/webapi/common"
	"github.com/stretchr/testify/suite"
)

var errInfer = errors.New("inference failed")

type stubPredictor struct {
	salary float64
	err    error
}

func (s *stubPredictor) Predict(dataset.Row) (float64, error) {
	return s.salary, s.err
}

type PredictTestSuite struct {
	suite.Suite
	app  *fiber.App
	stub *stubPredictor
}

func (s *PredictTestSuite) SetupTest() {
	s.stub = &stubPredictor{salary: 100000}
	svc := prediction.New(s.stub, currency.NewRegistry(), nil, 0, slog.Default())
	cfg := &config.App{Auth: &config.Auth{Jwt: &config.Jwt{Secret: "test-secret"}}}

	s.app = fiber.New()
	Routes(s.app, svc, currency.NewRegistry(), cfg)
}

func (s *PredictTestSuite) doPredict(body string) (int, map[string]any) {
	req := httptest.NewRequest("POST", "/api/predictions", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.app.Test(req, 10000)
	s.Require().NoError(err)
	defer resp.Body.Close() //nolint: errcheck

	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)

	var decoded map[string]any
	s.Require().NoError(json.Unmarshal(raw, &decoded))
	return resp.StatusCode, decoded
}

func (s *PredictTestSuite) TestPredictSuccess() {
	status, body := s.doPredict(`{
		"employee_name": "Jane Doe",
		"experience_level": "Senior",
		"job_title": "Data Scientist",
		"company_location": "IN",
		"remote_ratio": 50,
		"work_year": 2024
	}`)

	s.Assert().Equal(fiber.StatusOK, status)

	data := body["data"].(map[string]any)
	s.Assert().Equal("Jane Doe", data["employee_name"])
	s.Assert().Equal(float64(100000), data["salary_usd"])

	lines := data["currencies"].([]any)
	s.Require().Len(lines, 2)
	first := lines[0].(map[string]any)
	second := lines[1].(map[string]any)
	s.Assert().Equal("$100,000.00 (USD)", first["formatted"])
	s.Assert().Equal("₹8,350,000.00 (INR)", second["formatted"])
}

func (s *PredictTestSuite) TestPredictMissingName() {
	status, body := s.doPredict(`{
		"employee_name": "",
		"experience_level": "Senior",
		"job_title": "Data Scientist",
		"company_location": "IN",
		"remote_ratio": 50,
		"work_year": 2024
	}`)

	s.Assert().Equal(fiber.StatusUnprocessableEntity, status)
	s.Assert().Equal("Employee name is required", body["title"])
}

func (s *PredictTestSuite) TestPredictInvalidBody() {
	status, _ := s.doPredict(`{
		"employee_name": "Jane Doe",
		"experience_level": "Wizard",
		"job_title": "Data Scientist",
		"company_location": "IN",
		"remote_ratio": 50,
		"work_year": 2024
	}`)

	s.Assert().Equal(fiber.StatusBadRequest, status)
}

func (s *PredictTestSuite) TestPredictModelFailure() {
	s.stub.err = errInfer

	status, body := s.doPredict(`{
		"employee_name": "Jane Doe",
		"experience_level": "Senior",
		"job_title": "Data Scientist",
		"company_location": "IN",
		"remote_ratio": 50,
		"work_year": 2024
	}`)

	s.Assert().Equal(fiber.StatusInternalServerError, status)
	s.Assert().Equal("Prediction failed", body["title"])
}

func (s *PredictTestSuite) TestOptions() {
	req := httptest.NewRequest("GET", "/api/predictions/options", nil)

	resp, err := s.app.Test(req, 10000)
	s.Require().NoError(err)
	defer resp.Body.Close() //nolint: errcheck
	s.Assert().Equal(fiber.StatusOK, resp.StatusCode)

	var response common.Response
	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	s.Require().NoError(json.Unmarshal(raw, &response))

	data := response.Data.(map[string]any)
	s.Assert().NotEmpty(data["experience_levels"])
	s.Assert().NotEmpty(data["job_titles"])
	s.Assert().NotEmpty(data["company_locations"])
}

func (s *PredictTestSuite) TestListPredictionsUnauthorized() {
	req := httptest.NewRequest("GET", "/api/predictions", nil)

	resp, err := s.app.Test(req, 10000)
	s.Require().NoError(err)
	defer resp.Body.Close() //nolint: errcheck
	s.Assert().Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func TestPredictTestSuite(t *testing.T) {
	suite.Run(t, new(PredictTestSuite))
}
