// Package types - Country pricing types
package types

import "github.com/shopspring/decimal"

// Country carries the currency and per-tier rates for one country
type Country struct {
	// Code is the country code (e.g. "IN")
	Code string `json:"code"`

	// Label is the display name
	Label string `json:"label"`

	// Currency is the currency code
	Currency Currency `json:"currency"`

	// CurrencySymbol is the display symbol (e.g. "₹")
	CurrencySymbol string `json:"currency_symbol"`

	// Rates maps tier IDs to hourly rates in Currency
	Rates map[string]decimal.Decimal `json:"rates"`
}

// RateFor returns the country rate for a tier
func (c *Country) RateFor(tierID string) (decimal.Decimal, bool) {
	if c == nil || c.Rates == nil {
		return decimal.Zero, false
	}
	rate, ok := c.Rates[tierID]
	return rate, ok
}
