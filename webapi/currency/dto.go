package currency

import "github.com/salarycast/salarycast/pkg/currency"

// RegisterRequest represents the request body for registering a conversion
// rate under a country code.
type RegisterRequest struct {
	Code   string  `json:"code" validate:"required,len=2,uppercase"`
	Name   string  `json:"name" validate:"required,len=3,uppercase"`
	Symbol string  `json:"symbol" validate:"required"`
	Rate   float64 `json:"rate" validate:"required,gt=0"`
}

// ToMeta converts the request into registry metadata.
func (r *RegisterRequest) ToMeta() currency.Meta {
	return currency.Meta{
		Symbol: r.Symbol,
		Name:   r.Name,
		Rate:   r.Rate,
	}
}

// CurrencyResponse is the per-country rate entry returned by the API.
type CurrencyResponse struct {
	Code   string  `json:"code"`
	Name   string  `json:"name"`
	Symbol string  `json:"symbol"`
	Rate   float64 `json:"rate"`
}
