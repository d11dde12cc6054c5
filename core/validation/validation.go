// Package validation is the caller-side input boundary. The pricing core
// assumes its inputs already passed these checks.
package validation

import (
	"fmt"
	"strings"

	"freelance-rate/core/referral"
	"freelance-rate/core/types"
	"freelance-rate/internal/errors"
)

// Field names reported in error context
const (
	FieldDays         = "days"
	FieldReferralCode = "referral_code"
)

// Options configures a Validator
type Options struct {
	// StrictReferral rejects codes whose family has no active discount and
	// no custom-hours suffix. Such codes would change nothing.
	StrictReferral bool
}

// Validator checks raw request input
type Validator struct {
	parser    *referral.Parser
	discounts referral.Discounts
	opts      Options
}

// NewValidator creates a validator. A nil parser rejects every non-empty
// referral code.
func NewValidator(parser *referral.Parser, discounts referral.Discounts, opts Options) *Validator {
	return &Validator{
		parser:    parser,
		discounts: discounts,
		opts:      opts,
	}
}

// ValidateDays checks days against the tier range
func (v *Validator) ValidateDays(tier types.Tier, days int) error {
	if days < 1 {
		return errors.Input(FieldDays, "days must be at least 1").
			WithContext("days", days)
	}
	if !tier.Contains(days) {
		return errors.Input(FieldDays, fmt.Sprintf("days must be between %d and %d for %s", tier.MinDays, tier.MaxDays, tier.Label)).
			WithContext("days", days).
			WithContext("tier", tier.ID)
	}
	return nil
}

// ValidateReferral parses raw. An empty code yields (nil, nil).
func (v *Validator) ValidateReferral(raw string) (*referral.Code, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	if v.parser == nil {
		return nil, errors.Input(FieldReferralCode, "invalid referral code format")
	}
	code, ok := v.parser.Parse(raw, v.discounts)
	if !ok {
		return nil, errors.Input(FieldReferralCode, "invalid referral code format").
			WithContext("code", raw)
	}

	if v.opts.StrictReferral && !code.HasDiscount() && !code.HasCustomHours() {
		return nil, errors.Input(FieldReferralCode, "referral code is not active").
			WithContext("code", raw)
	}
	return &code, nil
}

// DefaultDays returns days when it fits tier, otherwise tier.MinDays. Used
// when the caller switches tier and the previous day count no longer fits.
func DefaultDays(tier types.Tier, days int) int {
	if tier.Contains(days) {
		return days
	}
	return tier.MinDays
}
