// Package types defines core domain types shared across all layers.
// This package contains NO business logic - only type definitions and
// trivial accessors.
package types

import "github.com/shopspring/decimal"

// DailyHours is the inclusive range of hours worked per day in a tier
type DailyHours struct {
	Min int `json:"min" yaml:"min" hcl:"min"`
	Max int `json:"max" yaml:"max" hcl:"max"`
}

// Midpoint returns the arithmetic mean of Min and Max
func (h DailyHours) Midpoint() decimal.Decimal {
	return decimal.NewFromInt(int64(h.Min + h.Max)).Div(decimal.NewFromInt(2))
}

// Tier is a duration-banded pricing plan
type Tier struct {
	// ID uniquely identifies the tier (e.g. "tier-2")
	ID string `json:"id"`

	// Label is the display label (e.g. "1 to 2 Weeks")
	Label string `json:"label"`

	// MinDays is the inclusive lower bound of the day range
	MinDays int `json:"min_days"`

	// MaxDays is the inclusive upper bound of the day range
	MaxDays int `json:"max_days"`

	// HourlyRate is the undiscounted rate per hour
	HourlyRate decimal.Decimal `json:"hourly_rate"`

	// DailyHours is the daily commitment range
	DailyHours DailyHours `json:"daily_hours"`

	// Benefits lists the keys of included benefits
	Benefits []string `json:"benefits"`

	// Unbenefits lists the keys of explicitly excluded benefits
	Unbenefits []string `json:"unbenefits"`
}

// Contains reports whether days lies in [MinDays, MaxDays]
func (t Tier) Contains(days int) bool {
	return days >= t.MinDays && days <= t.MaxDays
}

// Clamp forces days into [MinDays, MaxDays]
func (t Tier) Clamp(days int) int {
	return max(t.MinDays, min(days, t.MaxDays))
}

// BenefitTemplate is a dictionary entry a tier refers to by key
type BenefitTemplate struct {
	Text        string `json:"text" yaml:"text"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Premium     bool   `json:"premium,omitempty" yaml:"premium,omitempty"`
}

// Benefit is a resolved, displayable benefit
type Benefit struct {
	Text        string `json:"text"`
	Description string `json:"description,omitempty"`
	Included    bool   `json:"included"`
	Premium     bool   `json:"premium,omitempty"`
}
