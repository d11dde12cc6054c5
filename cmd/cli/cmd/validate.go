// Package cmd - validate command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"freelance-rate/core/catalog"
	"freelance-rate/core/ui"
	"freelance-rate/internal/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate [catalog]",
	Short: "Validate a catalog file",
	Long: `Load a catalog and run every consistency rule against it.

Without an argument the configured catalog (or the built-in one) is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	path := cfg.Catalog.Path
	if len(args) > 0 {
		path = args[0]
	}

	var (
		cat *catalog.Catalog
		err error
	)
	if path == "" {
		path = "built-in catalog"
		cat = catalog.Default()
	} else {
		cat, err = catalog.Load(path)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	out := ui.NewWriter(cmd.OutOrStdout(), cfg.Output.NoColor)
	out.Success("%s is valid: %d tiers, %d referral families, %d countries",
		path, len(cat.Tiers()), len(cat.Families()), len(cat.Countries()))
	return nil
}
