// Package cmd - quote command
package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"freelance-rate/core/engine"
	"freelance-rate/core/output"
	"freelance-rate/core/share"
	"freelance-rate/core/validation"
	"freelance-rate/internal/config"
)

var (
	quoteTier    string
	quoteDays    int
	quoteRef     string
	quoteCountry string
	outputFormat string
	noShare      bool
)

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Estimate a quote for a project",
	Long: `Compute the quote for a tier and project length.

When --days is omitted, the tier's minimum length is used. Referral codes look like JVC10 (discount) or JV02-4 (custom
commitment of 4 hours/day, billed in 30-day blocks).

Examples:
  freelance-rate quote --tier tier-2 --days 10
  freelance-rate quote --tier tier-2 --days 10 --ref JVC10
  freelance-rate quote --tier tier-3 --days 20 --country RU --format json`,
	Args: cobra.NoArgs,
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().StringVarP(&quoteTier, "tier", "t", "", "tier id (see 'freelance-rate tiers')")
	quoteCmd.Flags().IntVarP(&quoteDays, "days", "d", 0, "project length in days")
	quoteCmd.Flags().StringVarP(&quoteRef, "ref", "r", "", "referral code")
	quoteCmd.Flags().StringVarP(&quoteCountry, "country", "c", "", "country code for the rate table")
	quoteCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")
	quoteCmd.Flags().BoolVar(&noShare, "no-share", false, "omit the share link")
	_ = quoteCmd.MarkFlagRequired("tier")
}

func runQuote(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	eng, err := newEngine()
	if err != nil {
		return err
	}

	days := quoteDays
	if tier, ok := eng.Catalog().Tier(quoteTier); ok && !cmd.Flags().Changed("days") {
		days = validation.DefaultDays(tier, days)
	}

	q, err := eng.Estimate(context.Background(), engine.Request{
		TierID:       quoteTier,
		Days:         days,
		ReferralCode: quoteRef,
		Country:      strings.ToUpper(strings.TrimSpace(quoteCountry)),
	})
	if err != nil {
		return err
	}

	result := &output.QuoteResult{
		Quote:   q,
		Message: share.Message(q),
	}
	if !noShare && cfg.Share.Phone != "" {
		result.ShareURL = share.Link(cfg.Share.BaseURL, cfg.Share.Phone, result.Message)
	}

	format := outputFormat
	if format == "" {
		format = cfg.Output.DefaultFormat
	}

	registry := output.NewRegistry(cfg.Output.NoColor)
	if verbose {
		registry.Register(output.NewCLIFormatter(cfg.Output.NoColor).WithVerbosity(2))
	}
	formatter, err := registry.Get(output.Format(format))
	if err != nil {
		return err
	}
	return formatter.Render(cmd.OutOrStdout(), result)
}
