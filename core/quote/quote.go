// Package quote computes pricing quotes.
// Compute is a pure function of its three inputs: no I/O, no shared state.
package quote

import (
	"github.com/shopspring/decimal"

	"freelance-rate/core/referral"
	"freelance-rate/core/types"
)

// BillingBlockDays is the block size custom daily-hour engagements are
// billed in
const BillingBlockDays = 30

var hundred = decimal.NewFromInt(100)

// Compute derives a quote for tier and requestedDays, applying code when
// non-nil. requestedDays is expected to be validated against the tier range
// already; it is only clamped on the custom-hours path, where the day count
// is replaced by a whole number of billing blocks.
//
// Benefits and currency are left for the caller to fill in.
func Compute(tier types.Tier, requestedDays int, code *referral.Code) types.Quote {
	q := types.Quote{
		Tier:          tier,
		RequestedDays: requestedDays,
		FinalDays:     requestedDays,
		HourlyRate:    tier.HourlyRate,
		DailyHours:    tier.DailyHours.Midpoint(),
	}

	if code != nil {
		q.ReferralCode = code.String()

		if code.HasDiscount() {
			factor := hundred.Sub(decimal.NewFromInt(int64(code.DiscountPercent))).Div(hundred)
			q.HourlyRate = tier.HourlyRate.Mul(factor)
			discount := code.DiscountPercent
			q.DiscountApplied = &discount
		}

		if code.HasCustomHours() {
			q.FinalDays = tier.Clamp(RoundToBlock(requestedDays))
			q.DailyHours = decimal.NewFromInt(int64(code.CustomDailyHours))
			hours := code.CustomDailyHours
			q.CustomDailyHoursApplied = &hours
		}
	}

	q.TotalHours = decimal.NewFromInt(int64(q.FinalDays)).Mul(q.DailyHours)
	q.TotalCost = q.TotalHours.Mul(q.HourlyRate)
	return q
}

// RoundToBlock rounds days to the nearest multiple of BillingBlockDays,
// halves rounding up. A result of zero becomes one full block.
func RoundToBlock(days int) int {
	rounded := decimal.NewFromInt(int64(days)).
		Div(decimal.NewFromInt(BillingBlockDays)).
		Round(0).
		IntPart() * BillingBlockDays
	if rounded <= 0 {
		return BillingBlockDays
	}
	return int(rounded)
}
