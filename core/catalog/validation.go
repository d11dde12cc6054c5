// Package catalog - Catalog validation
// Ensures catalog integrity and enforces invariants. Every rule runs at
// load time so request-time code can treat lookups as infallible.
package catalog

import (
	"fmt"
	"sort"

	"freelance-rate/core/referral"
)

// ValidationRule is a catalog validation rule
type ValidationRule func(*Catalog) []error

// DefaultValidationRules returns the standard validation rules
func DefaultValidationRules() []ValidationRule {
	return []ValidationRule{
		validateTierRanges,
		validateTierRates,
		validateDailyHours,
		validateBenefitKeys,
		validateDiscounts,
		validateCountryRates,
		validateDefaultCountry,
	}
}

// Validate checks a catalog against validation rules
func (c *Catalog) Validate(rules []ValidationRule) []error {
	var errors []error

	for _, rule := range rules {
		errors = append(errors, rule(c)...)
	}

	return errors
}

// validateTierRanges ensures 1 <= MinDays <= MaxDays
func validateTierRanges(c *Catalog) []error {
	var errs []error
	if len(c.tiers) == 0 {
		errs = append(errs, fmt.Errorf("catalog defines no tiers"))
	}
	for _, t := range c.tiers {
		if t.ID == "" {
			errs = append(errs, fmt.Errorf("tier with empty id"))
		}
		if t.MinDays < 1 {
			errs = append(errs, fmt.Errorf("tier %s: min_days must be at least 1, got %d", t.ID, t.MinDays))
		}
		if t.MinDays > t.MaxDays {
			errs = append(errs, fmt.Errorf("tier %s: min_days %d exceeds max_days %d", t.ID, t.MinDays, t.MaxDays))
		}
	}
	return errs
}

// validateTierRates ensures every base rate is positive
func validateTierRates(c *Catalog) []error {
	var errs []error
	for _, t := range c.tiers {
		if !t.HourlyRate.IsPositive() {
			errs = append(errs, fmt.Errorf("tier %s: hourly_rate must be positive, got %s", t.ID, t.HourlyRate))
		}
	}
	return errs
}

// validateDailyHours ensures 1 <= min <= max
func validateDailyHours(c *Catalog) []error {
	var errs []error
	for _, t := range c.tiers {
		h := t.DailyHours
		if h.Min < 1 || h.Min > h.Max {
			errs = append(errs, fmt.Errorf("tier %s: invalid daily_hours %d-%d", t.ID, h.Min, h.Max))
		}
	}
	return errs
}

// validateBenefitKeys ensures every referenced key is in the dictionary
func validateBenefitKeys(c *Catalog) []error {
	var errs []error
	for _, t := range c.tiers {
		for _, key := range c.benefits.Missing(t.Benefits) {
			errs = append(errs, fmt.Errorf("tier %s: unknown benefit %q", t.ID, key))
		}
		for _, key := range c.benefits.Missing(t.Unbenefits) {
			errs = append(errs, fmt.Errorf("tier %s: unknown unbenefit %q", t.ID, key))
		}
	}
	return errs
}

// validateDiscounts ensures discounts lie in [0, 100)
func validateDiscounts(c *Catalog) []error {
	var errs []error
	families := make([]referral.Family, 0, len(c.discounts))
	for f := range c.discounts {
		families = append(families, f)
	}
	sort.Slice(families, func(i, j int) bool { return families[i] < families[j] })

	for _, f := range families {
		if p := c.discounts[f]; p < 0 || p >= 100 {
			errs = append(errs, fmt.Errorf("referral %s: discount must be in [0, 100), got %d", f, p))
		}
	}
	return errs
}

// validateCountryRates ensures every country prices every tier
func validateCountryRates(c *Catalog) []error {
	var errs []error
	for _, country := range c.Countries() {
		if country.CurrencySymbol == "" {
			errs = append(errs, fmt.Errorf("country %s: empty currency_symbol", country.Code))
		}
		for _, t := range c.tiers {
			r, ok := country.RateFor(t.ID)
			if !ok {
				errs = append(errs, fmt.Errorf("country %s: no rate for tier %s", country.Code, t.ID))
				continue
			}
			if !r.IsPositive() {
				errs = append(errs, fmt.Errorf("country %s: rate for tier %s must be positive", country.Code, t.ID))
			}
		}
		for tierID := range country.Rates {
			if _, ok := c.tierIndex[tierID]; !ok {
				errs = append(errs, fmt.Errorf("country %s: rate for unknown tier %s", country.Code, tierID))
			}
		}
	}
	return errs
}

// validateDefaultCountry ensures the default country exists
func validateDefaultCountry(c *Catalog) []error {
	if c.defaultCountry == "" {
		return nil
	}
	if _, ok := c.countries[c.defaultCountry]; !ok {
		return []error{fmt.Errorf("default_country %s is not defined", c.defaultCountry)}
	}
	return nil
}

// MustValidate panics if validation fails
func (c *Catalog) MustValidate() {
	errors := c.Validate(DefaultValidationRules())
	if len(errors) > 0 {
		for _, err := range errors {
			fmt.Printf("Catalog validation error: %v\n", err)
		}
		panic(fmt.Sprintf("Catalog has %d validation errors", len(errors)))
	}
}
