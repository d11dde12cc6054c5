package share

import (
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freelance-rate/core/types"
)

func intp(v int) *int { return &v }

func baseQuote() *types.Quote {
	return &types.Quote{
		Tier:           types.Tier{ID: "tier-2", Label: "1 to 2 Weeks"},
		FinalDays:      10,
		TotalHours:     decimal.NewFromInt(65),
		TotalCost:      decimal.NewFromInt(78000),
		CurrencySymbol: "₹",
	}
}

func TestMessagePlain(t *testing.T) {
	want := "Hi! I'm interested in hiring you for a project.\n\n" +
		"I've selected the '1 to 2 Weeks' plan for 10 days.\n\n" +
		"The estimated total cost is ₹78,000 for 65 hours.\n\n" +
		"Let's discuss this further."

	assert.Equal(t, want, Message(baseQuote()))
}

func TestMessageWithCountryHoursAndDiscount(t *testing.T) {
	q := baseQuote()
	q.Country = "India"
	q.FinalDays = 14
	q.TotalHours = decimal.NewFromInt(56)
	q.TotalCost = decimal.RequireFromString("60480")
	q.CustomDailyHoursApplied = intp(4)
	q.DiscountApplied = intp(10)

	want := "Hi! I'm interested in hiring you for a project.\n\n" +
		"I've selected the '1 to 2 Weeks' plan for 14 days from India.\n" +
		"This includes a custom commitment of 4 hours/day.\n" +
		"A referral discount of 10% has been applied.\n\n" +
		"The estimated total cost is ₹60,480 for 56 hours.\n\n" +
		"Let's discuss this further."

	assert.Equal(t, want, Message(q))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$1,234,568", FormatMoney("$", decimal.RequireFromString("1234567.5")))
	assert.Equal(t, "₽950", FormatMoney("₽", decimal.RequireFromString("949.6")))
	assert.Equal(t, "₹0", FormatMoney("₹", decimal.Zero))
}

func TestLink(t *testing.T) {
	link := Link("", "+917015954990", "Hi! Let's talk (now) & pay ₹100")

	assert.Equal(t,
		"https://wa.me/+917015954990?text=Hi!%20Let's%20talk%20(now)%20%26%20pay%20%E2%82%B9100",
		link)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "Hi! Let's talk (now) & pay ₹100", u.Query().Get("text"))
}

func TestLinkCustomBase(t *testing.T) {
	assert.Equal(t, "https://chat.example/123?text=a%0Ab", Link("https://chat.example/", "123", "a\nb"))
}
