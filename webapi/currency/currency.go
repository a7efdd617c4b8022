// Package currency exposes the conversion rate table over HTTP.
package currency

import (
	"github.com/gofiber/fiber/v2"
	"github.com/salarycast/salarycast/pkg/config"
	"github.com/salarycast/salarycast/pkg/currency"
	"github.com/salarycast/salarycast/pkg/middleware"
	"github.com/salarycast/salarycast/webapi/common"
)

// Routes registers the currency endpoints. Admin endpoints are only
// mounted when a JWT secret is configured.
func Routes(app *fiber.App, rates *currency.Registry, cfg *config.App) {
	group := app.Group("/api/currencies")

	group.Get("/", ListCurrencies(rates))
	group.Get("/:code", GetCurrency(rates))

	if cfg.Auth != nil && cfg.Auth.Jwt != nil && cfg.Auth.Jwt.Secret != "" {
		admin := group.Group("/admin", middleware.Protected(cfg.Auth.Jwt))
		admin.Post("/", RegisterCurrency(rates))
		admin.Delete("/:code", UnregisterCurrency(rates))
	}
}

// ListCurrencies returns every registered country rate.
// @Summary List all currency rates
// @Description Get the full country-to-currency rate table
// @Tags currencies
// @Produce json
// @Success 200 {object} common.Response
// @Router /api/currencies [get]
func ListCurrencies(rates *currency.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		codes := rates.Codes()
		entries := make([]CurrencyResponse, 0, len(codes))
		for _, code := range codes {
			entries = append(entries, toResponse(code, rates.Lookup(code)))
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Currencies fetched successfully", entries)
	}
}

// GetCurrency returns the rate entry for one country code. Unknown codes
// resolve to the USD fallback, mirroring prediction behavior.
// @Summary Get currency by country code
// @Description Get the currency rate used for a country code
// @Tags currencies
// @Produce json
// @Param code path string true "Two-letter country code (e.g. IN, GB)"
// @Success 200 {object} common.Response
// @Router /api/currencies/{code} [get]
func GetCurrency(rates *currency.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		code := c.Params("code")
		meta := rates.Lookup(code)
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Currency fetched successfully", toResponse(code, meta))
	}
}

// RegisterCurrency adds or replaces a country rate entry.
// @Summary Register a currency rate
// @Description Register a conversion rate under a country code
// @Tags currencies
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Rate entry"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Router /api/currencies/admin [post]
// @Security Bearer
func RegisterCurrency(rates *currency.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[RegisterRequest](c)
		if err != nil {
			return nil
		}
		if err := rates.Register(input.Code, input.ToMeta()); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to register currency", err, fiber.StatusBadRequest)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Currency registered successfully", toResponse(input.Code, input.ToMeta()))
	}
}

// UnregisterCurrency removes a country rate entry.
// @Summary Unregister a currency rate
// @Description Remove the conversion rate registered under a country code
// @Tags currencies
// @Produce json
// @Param code path string true "Two-letter country code"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Router /api/currencies/admin/{code} [delete]
// @Security Bearer
func UnregisterCurrency(rates *currency.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		code := c.Params("code")
		if !rates.Unregister(code) {
			return common.ProblemDetailsJSON(c, "Currency not found", nil,
				"No rate is registered under "+code+".", fiber.StatusNotFound)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Currency unregistered successfully", nil)
	}
}

func toResponse(code string, meta currency.Meta) CurrencyResponse {
	return CurrencyResponse{
		Code:   code,
		Name:   meta.Name,
		Symbol: meta.Symbol,
		Rate:   meta.Rate,
	}
}
