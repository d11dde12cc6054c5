package output

import (
	"fmt"
	"io"

	"freelance-rate/core/share"
	"freelance-rate/core/types"
	"freelance-rate/core/ui"
)

// CLIFormatter renders results for a terminal
type CLIFormatter struct {
	noColor   bool
	verbosity int
}

// NewCLIFormatter creates a terminal formatter
func NewCLIFormatter(noColor bool) *CLIFormatter {
	return &CLIFormatter{noColor: noColor, verbosity: 1}
}

// WithVerbosity returns a copy rendering at the given verbosity; at 2 and
// above benefit descriptions are shown
func (f *CLIFormatter) WithVerbosity(level int) *CLIFormatter {
	c := *f
	c.verbosity = level
	return &c
}

// Format returns FormatCLI
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render writes a results-card style summary
func (f *CLIFormatter) Render(w io.Writer, result *QuoteResult) error {
	q := result.Quote
	out := ui.NewWriter(w, f.noColor)
	out.SetVerbosity(f.verbosity)

	summary := out.NewQuoteSummary()
	summary.Title = "Your Estimated Plan"
	summary.Total = share.FormatMoney(q.CurrencySymbol, q.TotalCost)
	summary.Hours = hoursLine(q)
	if q.HasDiscount() {
		summary.Discount = *q.DiscountApplied
	}
	summary.Render()

	out.Println("")
	basis := fmt.Sprintf("Based on the %s tier for %d days", q.Tier.Label, q.FinalDays)
	if q.Country != "" {
		basis += " from " + q.Country
	}
	out.Info("%s.", basis)
	if q.HasCustomHours() && q.FinalDays != q.RequestedDays {
		out.Info("Days rounded from %d to %d (custom hours are billed in 30-day blocks).", q.RequestedDays, q.FinalDays)
	}

	out.Header("What's Included?")
	for _, b := range q.Benefits {
		out.Item(true, b.Text, b.Description)
	}
	for _, b := range q.Unbenefits {
		out.Item(false, b.Text, b.Description)
	}

	if result.ShareURL != "" {
		out.Println("")
		out.SubHeader("Discuss on WhatsApp")
		out.Println("  %s", result.ShareURL)
	}
	return nil
}

// hoursLine mirrors "Approx. 65 hours @ ₹1200.00/hr" or, with custom hours,
// "Total 56 hours @ ₹1200.00/hr (4 hrs/day)"
func hoursLine(q *types.Quote) string {
	prefix := "Approx."
	if q.HasCustomHours() {
		prefix = "Total"
	}
	line := fmt.Sprintf("%s %s hours @ %s%s/hr", prefix, q.TotalHours.String(), q.CurrencySymbol, q.HourlyRate.StringFixed(2))
	if q.HasCustomHours() {
		line += fmt.Sprintf(" (%d hrs/day)", *q.CustomDailyHoursApplied)
	}
	return line
}
