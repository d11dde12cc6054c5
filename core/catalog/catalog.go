// Package catalog - Authoritative pricing catalog
// Holds the tier list, the benefit dictionary, referral families with their
// discounts and the per-country rate table. A catalog is built once at
// startup, validated, and never mutated afterwards.
package catalog

import (
	stderrors "errors"
	"sort"

	"github.com/shopspring/decimal"

	"freelance-rate/core/benefit"
	"freelance-rate/core/referral"
	"freelance-rate/core/types"
	"freelance-rate/internal/errors"
)

// Catalog is the read-only pricing catalog
type Catalog struct {
	currency       types.Currency
	currencySymbol string
	defaultCountry string

	tiers     []types.Tier
	tierIndex map[string]int

	benefits  benefit.Dictionary
	families  []referral.Family
	discounts referral.Discounts
	countries map[string]*types.Country

	parser *referral.Parser
}

// New builds and validates a catalog from its file representation
func New(f *File) (*Catalog, error) {
	c := &Catalog{
		currency:       types.Currency(f.Currency),
		currencySymbol: f.CurrencySymbol,
		defaultCountry: f.DefaultCountry,
		tierIndex:      make(map[string]int, len(f.Tiers)),
		benefits:       make(benefit.Dictionary, len(f.Benefits)),
		discounts:      make(referral.Discounts, len(f.Referrals)),
		countries:      make(map[string]*types.Country, len(f.Countries)),
	}

	var errs []error
	for _, tb := range f.Tiers {
		if _, dup := c.tierIndex[tb.ID]; dup {
			errs = append(errs, errors.Configf("duplicate tier id %q", tb.ID))
			continue
		}
		c.tierIndex[tb.ID] = len(c.tiers)
		c.tiers = append(c.tiers, tb.toTier())
	}

	for _, bb := range f.Benefits {
		if _, dup := c.benefits[bb.Key]; dup {
			errs = append(errs, errors.Configf("duplicate benefit key %q", bb.Key))
			continue
		}
		c.benefits[bb.Key] = types.BenefitTemplate{
			Text:        bb.Text,
			Description: bb.Description,
			Premium:     bb.Premium,
		}
	}

	for _, rb := range f.Referrals {
		family := referral.Family(rb.Family)
		c.families = append(c.families, family)
		if rb.Discount != nil {
			c.discounts[family] = *rb.Discount
		}
	}

	for _, cb := range f.Countries {
		if _, dup := c.countries[cb.Code]; dup {
			errs = append(errs, errors.Configf("duplicate country code %q", cb.Code))
			continue
		}
		c.countries[cb.Code] = cb.toCountry()
	}

	if len(c.families) > 0 {
		parser, err := referral.NewParser(c.families...)
		if err != nil {
			errs = append(errs, errors.Wrap(errors.TypeConfig, "referral families", err))
		}
		c.parser = parser
	}

	errs = append(errs, c.Validate(DefaultValidationRules())...)
	if len(errs) > 0 {
		return nil, errors.Wrap(errors.TypeConfig, "invalid catalog", stderrors.Join(errs...))
	}
	return c, nil
}

// Currency returns the currency used when no country is selected
func (c *Catalog) Currency() types.Currency {
	return c.currency
}

// CurrencySymbol returns the symbol for Currency
func (c *Catalog) CurrencySymbol() string {
	return c.currencySymbol
}

// DefaultCountry returns the country code used when none is requested
func (c *Catalog) DefaultCountry() string {
	return c.defaultCountry
}

// Tiers returns the tiers in catalog order
func (c *Catalog) Tiers() []types.Tier {
	out := make([]types.Tier, len(c.tiers))
	copy(out, c.tiers)
	return out
}

// Tier returns a tier by ID
func (c *Catalog) Tier(id string) (types.Tier, bool) {
	i, ok := c.tierIndex[id]
	if !ok {
		return types.Tier{}, false
	}
	return c.tiers[i], true
}

// Benefits returns the benefit dictionary
func (c *Catalog) Benefits() benefit.Dictionary {
	return c.benefits
}

// Families returns the referral families in catalog order
func (c *Catalog) Families() []referral.Family {
	out := make([]referral.Family, len(c.families))
	copy(out, c.families)
	return out
}

// Discounts returns the discount table
func (c *Catalog) Discounts() referral.Discounts {
	return c.discounts
}

// Parser returns the referral parser for the catalog families. It is nil
// when the catalog defines no families.
func (c *Catalog) Parser() *referral.Parser {
	return c.parser
}

// Country returns a country by code
func (c *Catalog) Country(code string) (*types.Country, bool) {
	country, ok := c.countries[code]
	return country, ok
}

// Countries returns all countries sorted by code
func (c *Catalog) Countries() []*types.Country {
	out := make([]*types.Country, 0, len(c.countries))
	for _, country := range c.countries {
		out = append(out, country)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Code < out[j].Code
	})
	return out
}

// Pricing is a tier resolved for a country
type Pricing struct {
	Tier           types.Tier
	Country        *types.Country
	Currency       types.Currency
	CurrencySymbol string
}

// TierFor resolves tierID for countryCode. An empty countryCode falls back to
// the default country; with no default country the catalog currency and the
// tier's own rate are used. The returned tier carries the country rate.
func (c *Catalog) TierFor(tierID, countryCode string) (Pricing, error) {
	tier, ok := c.Tier(tierID)
	if !ok {
		return Pricing{}, errors.NotFound("tier", tierID)
	}

	if countryCode == "" {
		countryCode = c.defaultCountry
	}
	if countryCode == "" {
		return Pricing{
			Tier:           tier,
			Currency:       c.currency,
			CurrencySymbol: c.currencySymbol,
		}, nil
	}

	country, ok := c.Country(countryCode)
	if !ok {
		return Pricing{}, errors.NotFound("country", countryCode)
	}
	rate, ok := country.RateFor(tierID)
	if !ok {
		// Validation rejects this, so only a hand-built catalog gets here.
		return Pricing{}, errors.Configf("country %s has no rate for tier %s", countryCode, tierID)
	}
	tier.HourlyRate = rate

	return Pricing{
		Tier:           tier,
		Country:        country,
		Currency:       country.Currency,
		CurrencySymbol: country.CurrencySymbol,
	}, nil
}

func rate(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}
