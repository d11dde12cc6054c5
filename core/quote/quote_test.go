package quote

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freelance-rate/core/catalog"
	"freelance-rate/core/referral"
	"freelance-rate/core/types"
)

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

func weekTier() types.Tier {
	return types.Tier{
		ID:         "tier-2",
		Label:      "1 to 2 Weeks",
		MinDays:    7,
		MaxDays:    14,
		HourlyRate: decimal.NewFromInt(1200),
		DailyHours: types.DailyHours{Min: 5, Max: 8},
	}
}

var testParser = referral.MustNewParser("JV02", "JVX05", "JVC10", "AGNC50")

var testDiscounts = referral.Discounts{"JVX05": 5, "JVC10": 10, "AGNC50": 50}

func parse(t *testing.T, raw string) *referral.Code {
	t.Helper()
	code, ok := testParser.Parse(raw, testDiscounts)
	require.True(t, ok, "code %q should parse", raw)
	return &code
}

func TestComputeWithoutReferral(t *testing.T) {
	q := Compute(weekTier(), 10, nil)

	assert.Equal(t, 10, q.FinalDays)
	assertDecimal(t, "6.5", q.DailyHours)
	assertDecimal(t, "65", q.TotalHours)
	assertDecimal(t, "1200", q.HourlyRate)
	assertDecimal(t, "78000", q.TotalCost)
	assert.Nil(t, q.DiscountApplied)
	assert.Nil(t, q.CustomDailyHoursApplied)
	assert.Empty(t, q.ReferralCode)
}

func TestComputeWithDiscount(t *testing.T) {
	q := Compute(weekTier(), 10, parse(t, "JVC10"))

	assert.Equal(t, 10, q.FinalDays)
	assertDecimal(t, "1080", q.HourlyRate)
	assertDecimal(t, "6.5", q.DailyHours)
	assertDecimal(t, "70200", q.TotalCost)
	require.NotNil(t, q.DiscountApplied)
	assert.Equal(t, 10, *q.DiscountApplied)
	assert.Nil(t, q.CustomDailyHoursApplied)
	assert.Equal(t, "JVC10", q.ReferralCode)
}

func TestComputeWithCustomHoursAndNoDiscount(t *testing.T) {
	q := Compute(weekTier(), 10, parse(t, "JV02-4"))

	// 10 rounds to 0, forced to 30, clamped to 14.
	assert.Equal(t, 14, q.FinalDays)
	assertDecimal(t, "4", q.DailyHours)
	assertDecimal(t, "56", q.TotalHours)
	assertDecimal(t, "1200", q.HourlyRate)
	assertDecimal(t, "67200", q.TotalCost)
	assert.Nil(t, q.DiscountApplied)
	require.NotNil(t, q.CustomDailyHoursApplied)
	assert.Equal(t, 4, *q.CustomDailyHoursApplied)
	assert.Equal(t, "JV02-4", q.ReferralCode)
}

func TestComputeWithDiscountAndCustomHours(t *testing.T) {
	tier := types.Tier{
		ID:         "tier-4",
		MinDays:    31,
		MaxDays:    120,
		HourlyRate: decimal.NewFromInt(800),
		DailyHours: types.DailyHours{Min: 6, Max: 8},
	}

	q := Compute(tier, 100, parse(t, "JVX05-3"))

	assert.Equal(t, 90, q.FinalDays)
	assertDecimal(t, "760", q.HourlyRate)
	assertDecimal(t, "270", q.TotalHours)
	assertDecimal(t, "205200", q.TotalCost)
	assert.Equal(t, 5, *q.DiscountApplied)
	assert.Equal(t, 3, *q.CustomDailyHoursApplied)
}

func TestComputeDoesNotClampWithoutCustomHours(t *testing.T) {
	q := Compute(weekTier(), 20, parse(t, "JVC10"))
	assert.Equal(t, 20, q.FinalDays)

	q = Compute(weekTier(), 3, nil)
	assert.Equal(t, 3, q.FinalDays)
}

func TestRoundToBlock(t *testing.T) {
	tests := []struct {
		days int
		want int
	}{
		{days: 0, want: 30},
		{days: 1, want: 30},
		{days: 14, want: 30},
		{days: 15, want: 30},
		{days: 29, want: 30},
		{days: 44, want: 30},
		{days: 45, want: 60},
		{days: 100, want: 90},
		{days: 105, want: 120},
		{days: 365, want: 360},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundToBlock(tt.days), "days=%d", tt.days)
	}
}

func TestComputeProperties(t *testing.T) {
	cat := catalog.Default()

	for _, tier := range cat.Tiers() {
		t.Run(tier.ID, func(t *testing.T) {
			mean := tier.DailyHours.Midpoint()

			for d := tier.MinDays; d <= tier.MaxDays; d++ {
				q := Compute(tier, d, nil)
				require.Equal(t, d, q.FinalDays)
				want := decimal.NewFromInt(int64(d)).Mul(mean).Mul(tier.HourlyRate)
				require.True(t, want.Equal(q.TotalCost), "days=%d", d)
				require.True(t, q.TotalHours.Equal(decimal.NewFromInt(int64(q.FinalDays)).Mul(q.DailyHours)))

				for _, family := range []referral.Family{"JVX05", "JVC10", "AGNC50"} {
					code := &referral.Code{Family: family, DiscountPercent: testDiscounts[family]}
					q := Compute(tier, d, code)
					require.Equal(t, d, q.FinalDays)
					p := decimal.NewFromInt(int64(code.DiscountPercent))
					wantRate := tier.HourlyRate.Mul(decimal.NewFromInt(1).Sub(p.Div(decimal.NewFromInt(100))))
					require.True(t, wantRate.Equal(q.HourlyRate), "family=%s", family)
					require.True(t, q.TotalCost.Equal(q.TotalHours.Mul(q.HourlyRate)))
				}

				for n := 1; n <= 8; n++ {
					q := Compute(tier, d, &referral.Code{Family: "JV02", CustomDailyHours: n})
					require.True(t, q.DailyHours.Equal(decimal.NewFromInt(int64(n))))
					require.True(t, tier.Contains(q.FinalDays), "final days %d outside tier", q.FinalDays)
					rounded := RoundToBlock(d)
					require.Equal(t, tier.Clamp(rounded), q.FinalDays)
					require.Zero(t, rounded%BillingBlockDays)
				}
			}
		})
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	code := parse(t, "AGNC50-6")
	a := Compute(weekTier(), 12, code)
	b := Compute(weekTier(), 12, code)

	assert.Equal(t, a.FinalDays, b.FinalDays)
	assert.True(t, a.TotalCost.Equal(b.TotalCost))
	assert.True(t, a.TotalHours.Equal(b.TotalHours))
}
