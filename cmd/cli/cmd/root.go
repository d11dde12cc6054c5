// Package cmd provides the CLI commands for freelance-rate.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"freelance-rate/core/catalog"
	"freelance-rate/core/engine"
	"freelance-rate/internal/config"
	"freelance-rate/internal/logging"
)

// version is set at build time via -ldflags "-X freelance-rate/cmd/cli/cmd.version=x.y.z"
var version = "0.1.0"

var (
	cfgFile     string
	catalogPath string
	verbose     bool
	noColor     bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "freelance-rate",
	Short: "Estimate freelance project quotes",
	Long: `freelance-rate prices freelance projects from a tier catalog.

It picks the hourly rate and daily commitment for the project length,
applies referral discounts and custom hour commitments, and lists what the
plan includes.

Examples:
  freelance-rate quote --tier tier-2 --days 10
  freelance-rate quote --tier tier-2 --days 10 --ref JVC10 --country US
  freelance-rate quote --tier tier-4 --days 45 --ref JV02-4 --format json
  freelance-rate serve --addr :8080`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initConfig,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

// RootCmd returns the root command for tests
func RootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.freelance-rate.json)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "catalog file (.hcl, .yaml, .json); built-in catalog when empty")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Add subcommands
	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(tiersCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// initConfig layers the config file, environment and flags, in that order
func initConfig(cmd *cobra.Command, args []string) error {
	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		return err
	}

	if catalogPath != "" {
		cfg.Catalog.Path = catalogPath
	}
	if noColor {
		cfg.Output.NoColor = true
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	config.Set(cfg)

	if err := logging.Initialize(cfg.Logging); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	return nil
}

// loadCatalog returns the configured catalog, or the built-in one
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.Catalog.Path == "" {
		return catalog.Default(), nil
	}
	logging.Debug("loading catalog", zap.String("path", cfg.Catalog.Path))
	return catalog.Load(cfg.Catalog.Path)
}

// newEngine builds an engine from the active configuration
func newEngine() (*engine.Engine, error) {
	cfg := config.Get()
	cat, err := loadCatalog(cfg)
	if err != nil {
		return nil, err
	}
	return engine.NewEngine(cat, engine.EngineConfig{
		StrictReferral: cfg.Validation.StrictReferral,
	}, logging.Named("engine")), nil
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "freelance-rate version %s\n", version)
	},
}
