// Package catalog - Catalog file formats
// A catalog file is HCL, YAML or JSON, chosen by extension. All three decode
// into File.
package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"freelance-rate/core/types"
	"freelance-rate/internal/errors"
)

// File is the on-disk catalog representation
type File struct {
	Currency       string          `hcl:"currency" json:"currency" yaml:"currency"`
	CurrencySymbol string          `hcl:"currency_symbol" json:"currency_symbol" yaml:"currency_symbol"`
	DefaultCountry string          `hcl:"default_country,optional" json:"default_country,omitempty" yaml:"default_country,omitempty"`
	Tiers          []TierBlock     `hcl:"tier,block" json:"tiers" yaml:"tiers"`
	Benefits       []BenefitBlock  `hcl:"benefit,block" json:"benefits" yaml:"benefits"`
	Referrals      []ReferralBlock `hcl:"referral,block" json:"referrals" yaml:"referrals"`
	Countries      []CountryBlock  `hcl:"country,block" json:"countries,omitempty" yaml:"countries,omitempty"`
}

// TierBlock is one tier in a catalog file
type TierBlock struct {
	ID         string           `hcl:"id,label" json:"id" yaml:"id"`
	Label      string           `hcl:"label" json:"label" yaml:"label"`
	MinDays    int              `hcl:"min_days" json:"min_days" yaml:"min_days"`
	MaxDays    int              `hcl:"max_days" json:"max_days" yaml:"max_days"`
	HourlyRate float64          `hcl:"hourly_rate" json:"hourly_rate" yaml:"hourly_rate"`
	DailyHours types.DailyHours `hcl:"daily_hours,block" json:"daily_hours" yaml:"daily_hours"`
	Benefits   []string         `hcl:"benefits,optional" json:"benefits" yaml:"benefits"`
	Unbenefits []string         `hcl:"unbenefits,optional" json:"unbenefits" yaml:"unbenefits"`
}

func (b TierBlock) toTier() types.Tier {
	return types.Tier{
		ID:         b.ID,
		Label:      b.Label,
		MinDays:    b.MinDays,
		MaxDays:    b.MaxDays,
		HourlyRate: rate(b.HourlyRate),
		DailyHours: b.DailyHours,
		Benefits:   append([]string(nil), b.Benefits...),
		Unbenefits: append([]string(nil), b.Unbenefits...),
	}
}

// BenefitBlock is one benefit dictionary entry
type BenefitBlock struct {
	Key         string `hcl:"key,label" json:"key" yaml:"key"`
	Text        string `hcl:"text" json:"text" yaml:"text"`
	Description string `hcl:"description,optional" json:"description,omitempty" yaml:"description,omitempty"`
	Premium     bool   `hcl:"premium,optional" json:"premium,omitempty" yaml:"premium,omitempty"`
}

// ReferralBlock declares a referral family. A nil Discount declares the
// family without an active discount.
type ReferralBlock struct {
	Family   string `hcl:"family,label" json:"family" yaml:"family"`
	Discount *int   `hcl:"discount,optional" json:"discount,omitempty" yaml:"discount,omitempty"`
}

// CountryBlock is one entry of the per-country rate table
type CountryBlock struct {
	Code           string             `hcl:"code,label" json:"code" yaml:"code"`
	Label          string             `hcl:"label" json:"label" yaml:"label"`
	Currency       string             `hcl:"currency" json:"currency" yaml:"currency"`
	CurrencySymbol string             `hcl:"currency_symbol" json:"currency_symbol" yaml:"currency_symbol"`
	Rates          map[string]float64 `hcl:"rates" json:"rates" yaml:"rates"`
}

func (b CountryBlock) toCountry() *types.Country {
	country := &types.Country{
		Code:           b.Code,
		Label:          b.Label,
		Currency:       types.Currency(b.Currency),
		CurrencySymbol: b.CurrencySymbol,
		Rates:          make(map[string]decimal.Decimal, len(b.Rates)),
	}
	for tierID, v := range b.Rates {
		country.Rates[tierID] = rate(v)
	}
	return country
}

// Load reads, decodes and validates a catalog file
func Load(path string) (*Catalog, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.TypeConfig, "read catalog", err).WithContext("path", path)
	}

	f, err := Decode(path, src)
	if err != nil {
		return nil, err
	}
	return New(f)
}

// Decode decodes src according to the extension of filename
func Decode(filename string, src []byte) (*File, error) {
	f := &File{}

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".hcl":
		if err := hclsimple.Decode(filename, src, nil, f); err != nil {
			return nil, errors.Parsing("decode HCL catalog", err).WithContext("path", filename)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(src))
		dec.KnownFields(true)
		if err := dec.Decode(f); err != nil {
			return nil, errors.Parsing("decode YAML catalog", err).WithContext("path", filename)
		}
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(src))
		dec.DisallowUnknownFields()
		if err := dec.Decode(f); err != nil {
			return nil, errors.Parsing("decode JSON catalog", err).WithContext("path", filename)
		}
	default:
		return nil, errors.Parsing(fmt.Sprintf("unsupported catalog format %q", ext), nil).WithContext("path", filename)
	}

	return f, nil
}
