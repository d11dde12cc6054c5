package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freelance-rate/core/catalog"
	"freelance-rate/core/output"
	"freelance-rate/internal/errors"
)

const testCatalog = "../../../core/catalog/testdata/catalog.hcl"

// resetFlags restores every flag to its default so commands can be executed
// repeatedly against the shared command tree
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	root := RootCmd()
	resetFlags(root)

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func quoteJSON(t *testing.T, args ...string) output.QuoteResult {
	t.Helper()

	out, err := execute(t, append([]string{"quote", "--format", "json"}, args...)...)
	require.NoError(t, err, out)

	var result output.QuoteResult
	require.NoError(t, json.Unmarshal([]byte(out), &result), out)
	require.NotNil(t, result.Quote)
	return result
}

func TestQuoteJSON(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		totalCost string
		finalDays int
	}{
		{"no referral", []string{"--tier", "tier-2", "--days", "10"}, "78000", 10},
		{"discount", []string{"--tier", "tier-2", "--days", "10", "--ref", "JVC10"}, "70200", 10},
		{"custom hours", []string{"--tier", "tier-2", "--days", "10", "--ref", "jv02-4"}, "67200", 14},
		{"country", []string{"--tier", "tier-2", "--days", "10", "--country", "us"}, "1625", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := quoteJSON(t, tt.args...)
			assert.Equal(t, tt.totalCost, result.Quote.TotalCost.String())
			assert.Equal(t, tt.finalDays, result.Quote.FinalDays)
			assert.Contains(t, result.ShareURL, "https://wa.me/+917015954990?text=")
			assert.Contains(t, result.Message, "'1 to 2 Weeks' plan")
		})
	}
}

func TestQuoteDefaultsDaysToTierMinimum(t *testing.T) {
	tier, ok := catalog.Default().Tier("tier-3")
	require.True(t, ok)

	result := quoteJSON(t, "--tier", "tier-3")
	assert.Equal(t, tier.MinDays, result.Quote.RequestedDays)
}

func TestQuoteNoShare(t *testing.T) {
	result := quoteJSON(t, "--tier", "tier-2", "--days", "10", "--no-share")
	assert.Empty(t, result.ShareURL)
	assert.NotEmpty(t, result.Message)
}

func TestQuoteCLI(t *testing.T) {
	out, err := execute(t, "--no-color", "quote", "--tier", "tier-2", "--days", "10", "--ref", "JVC10")
	require.NoError(t, err)

	assert.Contains(t, out, "Your Estimated Plan")
	assert.Contains(t, out, "10% referral discount applied!")
	assert.Contains(t, out, "₹70,200")
	assert.Contains(t, out, "Approx. 65 hours @ ₹1080.00/hr")
	assert.Contains(t, out, "What's Included?")
	assert.NotContains(t, out, "\033[")
}

func TestQuoteFromCatalogFile(t *testing.T) {
	result := quoteJSON(t, "--catalog", testCatalog, "--tier", "long", "--days", "40", "--country", "US")
	assert.Equal(t, "17.5", result.Quote.HourlyRate.String())
	assert.Equal(t, "$", result.Quote.CurrencySymbol)
}

func TestQuoteErrors(t *testing.T) {
	_, err := execute(t, "quote", "--tier", "tier-2", "--days", "30")
	assert.True(t, errors.IsType(err, errors.TypeInput), "got %v", err)

	_, err = execute(t, "quote", "--tier", "tier-9", "--days", "10")
	assert.True(t, errors.IsType(err, errors.TypeNotFound), "got %v", err)

	_, err = execute(t, "quote", "--tier", "tier-2", "--days", "10", "--format", "xml")
	assert.ErrorContains(t, err, "unknown output format")

	_, err = execute(t, "quote", "--days", "10")
	assert.ErrorContains(t, err, `required flag(s) "tier" not set`)
}

func TestTiers(t *testing.T) {
	out, err := execute(t, "--no-color", "tiers")
	require.NoError(t, err)
	assert.Contains(t, out, "tier-1")
	assert.Contains(t, out, "Under 1 Week")
	assert.Contains(t, out, "₹1,500/hr")

	out, err = execute(t, "--no-color", "tiers", "--country", "us")
	require.NoError(t, err)
	assert.Contains(t, out, "$30/hr")

	_, err = execute(t, "tiers", "--country", "ZZ")
	assert.True(t, errors.IsType(err, errors.TypeNotFound), "got %v", err)
}

func TestValidate(t *testing.T) {
	out, err := execute(t, "--no-color", "validate", testCatalog)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid: 2 tiers, 2 referral families, 2 countries")

	out, err = execute(t, "--no-color", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "built-in catalog is valid: 6 tiers")

	_, err = execute(t, "validate", "../../../core/catalog/testdata/broken.hcl")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "freelance-rate version "+version+"\n", out)
}

func TestEnvOverridesConfig(t *testing.T) {
	t.Setenv("FREELANCE_SHARE_PHONE", "+100")

	result := quoteJSON(t, "--tier", "tier-2", "--days", "10")
	assert.Contains(t, result.ShareURL, "https://wa.me/+100?text=")
}
