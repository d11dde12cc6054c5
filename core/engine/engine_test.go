package engine

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"freelance-rate/core/catalog"
	"freelance-rate/internal/errors"
	"freelance-rate/internal/logging"
)

func newTestEngine(strict bool) *Engine {
	return NewEngine(catalog.Default(), EngineConfig{StrictReferral: strict}, nil)
}

func TestEstimateScenarios(t *testing.T) {
	e := newTestEngine(false)

	tests := []struct {
		name       string
		req        Request
		finalDays  int
		dailyHours string
		totalHours string
		rate       string
		totalCost  string
	}{
		{
			name:       "no referral",
			req:        Request{TierID: "tier-2", Days: 10},
			finalDays:  10,
			dailyHours: "6.5",
			totalHours: "65",
			rate:       "1200",
			totalCost:  "78000",
		},
		{
			name:       "discount",
			req:        Request{TierID: "tier-2", Days: 10, ReferralCode: "JVC10"},
			finalDays:  10,
			dailyHours: "6.5",
			totalHours: "65",
			rate:       "1080",
			totalCost:  "70200",
		},
		{
			name:       "custom hours without discount",
			req:        Request{TierID: "tier-2", Days: 10, ReferralCode: "JV02-4"},
			finalDays:  14,
			dailyHours: "4",
			totalHours: "56",
			rate:       "1200",
			totalCost:  "67200",
		},
		{
			name:       "country rate",
			req:        Request{TierID: "tier-6", Days: 200, Country: "US"},
			finalDays:  200,
			dailyHours: "7",
			totalHours: "1400",
			rate:       "12.5",
			totalCost:  "17500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := e.Estimate(context.Background(), tt.req)
			require.NoError(t, err)

			assert.Equal(t, tt.finalDays, q.FinalDays)
			assert.True(t, decimal.RequireFromString(tt.dailyHours).Equal(q.DailyHours), "daily hours %s", q.DailyHours)
			assert.True(t, decimal.RequireFromString(tt.totalHours).Equal(q.TotalHours), "total hours %s", q.TotalHours)
			assert.True(t, decimal.RequireFromString(tt.rate).Equal(q.HourlyRate), "rate %s", q.HourlyRate)
			assert.True(t, decimal.RequireFromString(tt.totalCost).Equal(q.TotalCost), "cost %s", q.TotalCost)
		})
	}
}

func TestEstimateFillsPresentationFields(t *testing.T) {
	q, err := newTestEngine(false).Estimate(context.Background(), Request{TierID: "tier-5", Days: 150, Country: "RU"})
	require.NoError(t, err)

	assert.Equal(t, "Russia", q.Country)
	assert.Equal(t, "RUB", q.Currency.String())
	assert.Equal(t, "₽", q.CurrencySymbol)

	require.Len(t, q.Benefits, 4)
	assert.Equal(t, "Priority Support", q.Benefits[0].Text, "premium first")
	require.Len(t, q.Unbenefits, 1)
	assert.Equal(t, "Detailed Progress Reports", q.Unbenefits[0].Text)
	for _, b := range append(q.Benefits, q.Unbenefits...) {
		assert.True(t, b.Included)
	}
}

func TestEstimateWithoutCountryUsesCatalogCurrency(t *testing.T) {
	q, err := newTestEngine(false).Estimate(context.Background(), Request{TierID: "tier-1", Days: 3})
	require.NoError(t, err)

	assert.Empty(t, q.Country)
	assert.Equal(t, "INR", q.Currency.String())
	assert.Equal(t, "₹", q.CurrencySymbol)
}

func TestEstimateErrors(t *testing.T) {
	e := newTestEngine(true)

	tests := []struct {
		name string
		req  Request
		want errors.Type
	}{
		{name: "unknown tier", req: Request{TierID: "tier-0", Days: 3}, want: errors.TypeNotFound},
		{name: "unknown country", req: Request{TierID: "tier-1", Days: 3, Country: "ZZ"}, want: errors.TypeNotFound},
		{name: "days out of range", req: Request{TierID: "tier-2", Days: 30}, want: errors.TypeInput},
		{name: "bad referral", req: Request{TierID: "tier-2", Days: 10, ReferralCode: "JV02-9"}, want: errors.TypeInput},
		{name: "inactive referral in strict mode", req: Request{TierID: "tier-2", Days: 10, ReferralCode: "JV02"}, want: errors.TypeInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := e.Estimate(context.Background(), tt.req)
			require.Error(t, err)
			assert.Nil(t, q)
			assert.Equal(t, tt.want, errors.TypeOf(err))
		})
	}
}

func TestEstimateHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestEngine(false).Estimate(ctx, Request{TierID: "tier-1", Days: 3})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEstimateLogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	e := NewEngine(catalog.Default(), EngineConfig{}, logging.NewWriter(&buf, zapcore.DebugLevel))

	_, err := e.Estimate(context.Background(), Request{TierID: "tier-2", Days: 10, ReferralCode: "jvc10"})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"msg":"quote computed"`)
	assert.Contains(t, buf.String(), `"referral":"JVC10"`)
	assert.Contains(t, buf.String(), `"total_cost":"70200"`)
}
