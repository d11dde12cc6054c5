// Package share builds the pre-filled message and deep link used to forward
// a quote to the freelancer.
package share

import (
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"freelance-rate/core/types"
)

// DefaultBaseURL is the WhatsApp click-to-chat endpoint
const DefaultBaseURL = "https://wa.me/"

var printer = message.NewPrinter(language.English)

// FormatMoney renders amount with en-US grouping and no fraction digits,
// prefixed by symbol (e.g. "₹78,000")
func FormatMoney(symbol string, amount decimal.Decimal) string {
	return symbol + printer.Sprintf("%d", amount.Round(0).IntPart())
}

// Message renders the message text summarizing q
func Message(q *types.Quote) string {
	var b strings.Builder

	b.WriteString("Hi! I'm interested in hiring you for a project.\n\n")
	b.WriteString(printer.Sprintf("I've selected the '%s' plan for %d days", q.Tier.Label, q.FinalDays))
	if q.Country != "" {
		b.WriteString(" from " + q.Country)
	}
	b.WriteString(".")

	if q.HasCustomHours() {
		b.WriteString(printer.Sprintf("\nThis includes a custom commitment of %d hours/day.", *q.CustomDailyHoursApplied))
	}
	if q.HasDiscount() {
		b.WriteString(printer.Sprintf("\nA referral discount of %d%% has been applied.", *q.DiscountApplied))
	}

	b.WriteString("\n\nThe estimated total cost is " + FormatMoney(q.CurrencySymbol, q.TotalCost) +
		" for " + q.TotalHours.String() + " hours.")
	b.WriteString("\n\nLet's discuss this further.")
	return b.String()
}

// Link builds a click-to-chat URL for phone carrying text. baseURL defaults
// to DefaultBaseURL.
func Link(baseURL, phone, text string) string {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return strings.TrimSuffix(baseURL, "/") + "/" + phone + "?text=" + EncodeURIComponent(text)
}

// EncodeURIComponent escapes s like JavaScript's encodeURIComponent: spaces
// become %20, not "+"
func EncodeURIComponent(s string) string {
	escaped := url.QueryEscape(s)
	escaped = strings.ReplaceAll(escaped, "+", "%20")
	for _, r := range []struct{ from, to string }{
		{"%21", "!"}, {"%27", "'"}, {"%28", "("}, {"%29", ")"}, {"%2A", "*"},
	} {
		escaped = strings.ReplaceAll(escaped, r.from, r.to)
	}
	return escaped
}
