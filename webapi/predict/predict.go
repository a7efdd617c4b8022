// Package predict exposes the salary prediction endpoints and the form
// page they serve.
package predict

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/salarycast/salarycast/pkg/config"
	"github.com/salarycast/salarycast/pkg/currency"
	"github.com/salarycast/salarycast/pkg/middleware"
	"github.com/salarycast/salarycast/pkg/service/prediction"
	"github.com/salarycast/salarycast/webapi/common"
)

// Routes registers the prediction endpoints. The history listing is only
// mounted when an admin JWT secret is configured.
func Routes(app *fiber.App, svc *prediction.Service, rates *currency.Registry, cfg *config.App) {
	app.Get("/", FormPage(rates))
	app.Get("/api/predictions/options", Options(rates))
	app.Post("/api/predictions", CreatePrediction(svc))

	if cfg.Auth != nil && cfg.Auth.Jwt != nil && cfg.Auth.Jwt.Secret != "" {
		app.Get("/api/predictions", middleware.Protected(cfg.Auth.Jwt), ListPredictions(svc))
	}
}

// FormPage renders the employee-information form.
func FormPage(rates *currency.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Render("index", fiber.Map{
			"ExperienceLevels": prediction.ExperienceLevels,
			"JobTitles":        prediction.JobTitles,
			"CompanyLocations": rates.Codes(),
			"WorkYearMin":      prediction.WorkYearMin,
			"WorkYearMax":      prediction.WorkYearMax,
		})
	}
}

// Options returns the candidate lists backing the form widgets.
// @Summary Form options
// @Description Get the candidate values for the prediction form
// @Tags predictions
// @Produce json
// @Success 200 {object} common.Response
// @Router /api/predictions/options [get]
func Options(rates *currency.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Form options fetched successfully", OptionsResponse{
			ExperienceLevels: prediction.ExperienceLevels,
			JobTitles:        prediction.JobTitles,
			CompanyLocations: rates.Codes(),
			WorkYearMin:      prediction.WorkYearMin,
			WorkYearMax:      prediction.WorkYearMax,
		})
	}
}

// CreatePrediction predicts a salary for one employee submission.
// @Summary Predict a salary
// @Description Predict an employee salary and convert it into display currencies
// @Tags predictions
// @Accept json
// @Produce json
// @Param request body PredictionRequest true "Employee attributes"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 422 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /api/predictions [post]
func CreatePrediction(svc *prediction.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[PredictionRequest](c)
		if err != nil {
			return nil
		}

		result, err := svc.Predict(c.Context(), input.ToServiceRequest())
		switch {
		case errors.Is(err, prediction.ErrNameRequired):
			return common.ProblemDetailsJSON(c, "Employee name is required",
				err, "Please enter the employee name.", fiber.StatusUnprocessableEntity)
		case errors.Is(err, prediction.ErrInvalidRequest):
			return common.ProblemDetailsJSON(c, "Invalid prediction request",
				err, fiber.StatusBadRequest)
		case err != nil:
			return common.ProblemDetailsJSON(c, "Prediction failed",
				err, "Something went wrong while predicting. Please check the inputs and try again.")
		}

		return common.SuccessResponseJSON(c, fiber.StatusOK, "Salary predicted successfully", ToResponse(result))
	}
}

// ListPredictions returns recent predictions from the audit log.
// @Summary List recent predictions
// @Description Get recently served predictions, newest first
// @Tags predictions
// @Produce json
// @Param limit query int false "Maximum entries to return" default(50)
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /api/predictions [get]
// @Security Bearer
func ListPredictions(svc *prediction.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := c.QueryInt("limit", 50)

		entries, err := svc.History(c.Context(), limit)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list predictions", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Predictions fetched successfully", entries)
	}
}
