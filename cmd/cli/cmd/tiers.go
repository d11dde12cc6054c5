// Package cmd - tiers command
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"freelance-rate/core/share"
	"freelance-rate/core/ui"
	"freelance-rate/internal/config"
)

var tiersCountry string

var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "List pricing tiers",
	Long: `List the catalog's tiers with their day ranges, hourly rates and
daily commitments. With --country, rates come from that country's table.`,
	Args: cobra.NoArgs,
	RunE: runTiers,
}

func init() {
	tiersCmd.Flags().StringVarP(&tiersCountry, "country", "c", "", "country code for the rate table")
}

func runTiers(cmd *cobra.Command, args []string) error {
	eng, err := newEngine()
	if err != nil {
		return err
	}
	cat := eng.Catalog()
	country := strings.ToUpper(strings.TrimSpace(tiersCountry))

	out := ui.NewWriter(cmd.OutOrStdout(), config.Get().Output.NoColor)
	table := out.NewTable("ID", "PLAN", "DAYS", "RATE", "HOURS/DAY")
	for _, t := range cat.Tiers() {
		pricing, err := cat.TierFor(t.ID, country)
		if err != nil {
			return err
		}
		table.AddRow(
			t.ID,
			t.Label,
			fmt.Sprintf("%d-%d", t.MinDays, t.MaxDays),
			share.FormatMoney(pricing.CurrencySymbol, pricing.Tier.HourlyRate)+"/hr",
			fmt.Sprintf("%d-%d", t.DailyHours.Min, t.DailyHours.Max),
		)
	}
	table.Render()
	return nil
}
