package currency

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Line is one display row of a quote: an amount in a single currency.
type Line struct {
	Symbol string  `json:"symbol"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// String renders the line the way the result panel shows it,
// e.g. "$100,000.00 (USD)".
func (l Line) String() string {
	return fmt.Sprintf("%s%s (%s)", l.Symbol, humanize.FormatFloat("#,###.##", l.Amount), l.Name)
}

// Quote is a USD salary expressed in every display currency: USD itself,
// INR unconditionally, and the local currency of the company location
// unless that would duplicate the USD or INR line.
type Quote struct {
	SalaryUSD float64
	Lines     []Line
}

// Convert returns the salary in the local currency of countryCode.
// Unmapped codes convert at rate 1.0.
func (r *Registry) Convert(amountUSD float64, countryCode string) float64 {
	return amountUSD * r.Lookup(countryCode).Rate
}

// Quote builds the display lines for a predicted USD salary and a company
// location.
func (r *Registry) Quote(amountUSD float64, countryCode string) Quote {
	local := r.Lookup(countryCode)

	q := Quote{
		SalaryUSD: amountUSD,
		Lines: []Line{
			{Symbol: "$", Name: USD, Amount: amountUSD},
			{Symbol: "₹", Name: INR, Amount: amountUSD * r.Lookup("IN").Rate},
		},
	}
	if local.Name != USD && local.Name != INR {
		q.Lines = append(q.Lines, Line{
			Symbol: local.Symbol,
			Name:   local.Name,
			Amount: amountUSD * local.Rate,
		})
	}
	return q
}
