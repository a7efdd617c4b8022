// Package currency maps company locations to display currencies and
// converts predicted USD salaries for presentation.
//
// Rates are static, process-lifetime constants relative to USD. The table
// is seeded with built-in values and can be replaced from a JSON file so
// deployments and tests can inject their own rates.
package currency

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"
)

const (
	// DefaultCountry is the fallback for unmapped company locations.
	DefaultCountry = "US"
	// USD is the currency every prediction is denominated in.
	USD = "USD"
	// INR is always shown alongside USD in quotes.
	INR = "INR"
)

// Meta holds display and conversion data for one country's currency.
type Meta struct {
	Symbol string  `json:"symbol"`
	Name   string  `json:"name"`
	Rate   float64 `json:"rate"`
}

// usdMeta is what Lookup falls back to for unknown country codes.
var usdMeta = Meta{Symbol: "$", Name: USD, Rate: 1.0}

// Registry maps ISO country codes to currency metadata.
type Registry struct {
	mu    sync.RWMutex
	table map[string]Meta
}

// NewRegistry creates a registry seeded with the built-in rate table.
func NewRegistry() *Registry {
	r := &Registry{table: make(map[string]Meta, len(defaultTable))}
	for code, meta := range defaultTable {
		r.table[code] = meta
	}
	return r
}

// Lookup returns the currency metadata for a country code. Unknown codes
// silently resolve to USD at rate 1.0.
func (r *Registry) Lookup(countryCode string) Meta {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if meta, ok := r.table[countryCode]; ok {
		return meta
	}
	return usdMeta
}

// Rate returns the conversion rate for a country code, 1.0 when unmapped.
func (r *Registry) Rate(countryCode string) float64 {
	return r.Lookup(countryCode).Rate
}

// Register adds or replaces the currency for a country code.
func (r *Registry) Register(countryCode string, meta Meta) error {
	if len(countryCode) != 2 {
		return fmt.Errorf("invalid country code %q: must be two letters", countryCode)
	}
	if meta.Rate <= 0 {
		return fmt.Errorf("invalid rate %v for %s: must be positive", meta.Rate, countryCode)
	}
	if meta.Name == "" || meta.Symbol == "" {
		return fmt.Errorf("currency for %s needs a name and a symbol", countryCode)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.table[countryCode] = meta
	return nil
}

// Unregister removes a country from the table. Reports whether it existed.
func (r *Registry) Unregister(countryCode string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.table[countryCode]
	delete(r.table, countryCode)
	return ok
}

// Codes lists all mapped country codes in sorted order.
func (r *Registry) Codes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codes := make([]string, 0, len(r.table))
	for code := range r.table {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Count returns the number of mapped countries.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.table)
}

// LoadFile replaces the table with the contents of a JSON file shaped as
// {"US": {"symbol": "$", "name": "USD", "rate": 1.0}, ...}.
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read currency table: %w", err)
	}

	var table map[string]Meta
	if err := json.Unmarshal(data, &table); err != nil {
		return fmt.Errorf("parse currency table %s: %w", path, err)
	}
	if len(table) == 0 {
		return fmt.Errorf("currency table %s is empty", path)
	}
	for code, meta := range table {
		if meta.Rate <= 0 {
			return fmt.Errorf("currency table %s: non-positive rate for %s", path, code)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.table = table
	return nil
}
