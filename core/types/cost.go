// Package types - Quote types
package types

import "github.com/shopspring/decimal"

// Currency represents a currency code
type Currency string

const (
	CurrencyINR Currency = "INR"
	CurrencyUSD Currency = "USD"
	CurrencyRUB Currency = "RUB"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// Quote is the fully computed pricing result for one request.
// It is transient: recomputed per request and never cached.
type Quote struct {
	// Tier is the tier the quote was computed against, with the
	// country rate already substituted when a country was selected
	Tier Tier `json:"tier"`

	// RequestedDays is the day count the caller asked for
	RequestedDays int `json:"requested_days"`

	// FinalDays is the billed day count
	FinalDays int `json:"final_days"`

	// HourlyRate is the effective (post-discount) rate
	HourlyRate decimal.Decimal `json:"hourly_rate"`

	// DailyHours is the daily commitment used for billing
	DailyHours decimal.Decimal `json:"daily_hours"`

	// TotalHours = FinalDays * DailyHours
	TotalHours decimal.Decimal `json:"total_hours"`

	// TotalCost = TotalHours * HourlyRate
	TotalCost decimal.Decimal `json:"total_cost"`

	// Benefits are the included benefits, sorted for display
	Benefits []Benefit `json:"benefits"`

	// Unbenefits are the excluded benefits, sorted for display
	Unbenefits []Benefit `json:"unbenefits"`

	// DiscountApplied is set only when a positive discount was applied
	DiscountApplied *int `json:"discount_applied,omitempty"`

	// CustomDailyHoursApplied is set only when a custom commitment replaced
	// the tier midpoint
	CustomDailyHoursApplied *int `json:"custom_daily_hours_applied,omitempty"`

	// ReferralCode is the normalized referral code that matched, if any
	ReferralCode string `json:"referral_code,omitempty"`

	// Currency is the quote currency
	Currency Currency `json:"currency"`

	// CurrencySymbol is the display symbol for Currency
	CurrencySymbol string `json:"currency_symbol"`

	// Country is the country label the rate was resolved for, if any
	Country string `json:"country,omitempty"`
}

// HasDiscount reports whether a discount was applied
func (q *Quote) HasDiscount() bool {
	return q.DiscountApplied != nil
}

// HasCustomHours reports whether a custom daily commitment was applied
func (q *Quote) HasCustomHours() bool {
	return q.CustomDailyHoursApplied != nil
}
