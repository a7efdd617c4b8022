package predict

import (
	"time"

	"github.com/salarycast/salarycast/pkg/currency"
	"github.com/salarycast/salarycast/pkg/service/prediction"
)

// PredictionRequest is the request body for a salary prediction. The
// employee name is deliberately untagged: a blank name is the recoverable
// warning case, handled by the service rather than the binder.
type PredictionRequest struct {
	EmployeeName    string `json:"employee_name" form:"employee_name"`
	ExperienceLevel string `json:"experience_level" form:"experience_level" validate:"required,oneof=Entry-level Mid-level Senior Executive"`
	JobTitle        string `json:"job_title" form:"job_title" validate:"required"`
	CompanyLocation string `json:"company_location" form:"company_location" validate:"required,len=2,uppercase"`
	RemoteRatio     int    `json:"remote_ratio" form:"remote_ratio" validate:"min=0,max=100"`
	WorkYear        int    `json:"work_year" form:"work_year" validate:"min=2020,max=2025"`
}

// ToServiceRequest converts the DTO into the service-layer request.
func (r *PredictionRequest) ToServiceRequest() prediction.Request {
	return prediction.Request{
		EmployeeName:    r.EmployeeName,
		ExperienceLevel: r.ExperienceLevel,
		JobTitle:        r.JobTitle,
		CompanyLocation: r.CompanyLocation,
		RemoteRatio:     r.RemoteRatio,
		WorkYear:        r.WorkYear,
	}
}

// CurrencyLine is one display row of the predicted salary.
type CurrencyLine struct {
	Symbol    string  `json:"symbol"`
	Name      string  `json:"name"`
	Amount    float64 `json:"amount"`
	Formatted string  `json:"formatted"`
}

// PredictionResponse is the response body for a completed prediction.
type PredictionResponse struct {
	ID           string         `json:"id"`
	EmployeeName string         `json:"employee_name"`
	SalaryUSD    float64        `json:"salary_usd"`
	Currencies   []CurrencyLine `json:"currencies"`
	CreatedAt    time.Time      `json:"created_at"`
}

// ToResponse converts a service result to a response DTO.
func ToResponse(result *prediction.Result) *PredictionResponse {
	if result == nil {
		return nil
	}

	lines := make([]CurrencyLine, len(result.Lines))
	for i, l := range result.Lines {
		lines[i] = toCurrencyLine(l)
	}
	return &PredictionResponse{
		ID:           result.ID.String(),
		EmployeeName: result.EmployeeName,
		SalaryUSD:    result.SalaryUSD,
		Currencies:   lines,
		CreatedAt:    result.CreatedAt,
	}
}

func toCurrencyLine(l currency.Line) CurrencyLine {
	return CurrencyLine{
		Symbol:    l.Symbol,
		Name:      l.Name,
		Amount:    l.Amount,
		Formatted: l.String(),
	}
}

// OptionsResponse feeds the form page its candidate lists.
type OptionsResponse struct {
	ExperienceLevels []string `json:"experience_levels"`
	JobTitles        []string `json:"job_titles"`
	CompanyLocations []string `json:"company_locations"`
	WorkYearMin      int      `json:"work_year_min"`
	WorkYearMax      int      `json:"work_year_max"`
}
