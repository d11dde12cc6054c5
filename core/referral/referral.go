// Package referral parses referral codes.
//
// A referral code is a known family prefix, optionally followed by "-N"
// where N (1-8) is a custom daily-hour commitment:
//
//	JVC10      family JVC10, tier default hours
//	JV02-4     family JV02, 4 hours/day
//
// Families and their discounts are supplied by the catalog.
package referral

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Family is a referral code prefix (e.g. "JVC10")
type Family string

// Discounts maps families to discount percentages
type Discounts map[Family]int

// Code is a successfully parsed referral code
type Code struct {
	// Family is the matched prefix, upper case
	Family Family `json:"family"`

	// DiscountPercent is 0 when the family has no configured discount
	DiscountPercent int `json:"discount_percent"`

	// CustomDailyHours is 0 when no suffix was given, otherwise 1-8
	CustomDailyHours int `json:"custom_daily_hours,omitempty"`
}

// HasDiscount reports whether the code carries an active discount
func (c Code) HasDiscount() bool {
	return c.DiscountPercent > 0
}

// HasCustomHours reports whether the code carries a daily-hour suffix
func (c Code) HasCustomHours() bool {
	return c.CustomDailyHours > 0
}

// String renders the normalized code
func (c Code) String() string {
	if c.HasCustomHours() {
		return fmt.Sprintf("%s-%d", c.Family, c.CustomDailyHours)
	}
	return string(c.Family)
}

var familyPattern = regexp.MustCompile(`^[A-Z0-9]+$`)

// Parser matches raw codes against a fixed set of families
type Parser struct {
	families []Family
	pattern  *regexp.Regexp
}

// NewParser compiles the grammar for the given families. Families must be
// non-empty upper-case alphanumerics.
func NewParser(families ...Family) (*Parser, error) {
	if len(families) == 0 {
		return nil, fmt.Errorf("referral: no families configured")
	}

	seen := make(map[Family]bool, len(families))
	sorted := make([]Family, 0, len(families))
	for _, f := range families {
		if !familyPattern.MatchString(string(f)) {
			return nil, fmt.Errorf("referral: invalid family %q", f)
		}
		if seen[f] {
			continue
		}
		seen[f] = true
		sorted = append(sorted, f)
	}

	// Longest first so a family that prefixes another never shadows it.
	sort.Slice(sorted, func(i, j int) bool {
		if len(sorted[i]) != len(sorted[j]) {
			return len(sorted[i]) > len(sorted[j])
		}
		return sorted[i] < sorted[j]
	})

	alts := make([]string, len(sorted))
	for i, f := range sorted {
		alts[i] = regexp.QuoteMeta(string(f))
	}

	return &Parser{
		families: sorted,
		pattern:  regexp.MustCompile(`^(` + strings.Join(alts, "|") + `)(?:-([1-8]))?$`),
	}, nil
}

// MustNewParser is like NewParser but panics on error
func MustNewParser(families ...Family) *Parser {
	p, err := NewParser(families...)
	if err != nil {
		panic(err.Error())
	}
	return p
}

// Families returns the recognized families, longest first
func (p *Parser) Families() []Family {
	out := make([]Family, len(p.families))
	copy(out, p.families)
	return out
}

// Parse matches raw against the grammar. It returns false for an empty or
// malformed code; the two cases are not distinguished.
func (p *Parser) Parse(raw string, discounts Discounts) (Code, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	if normalized == "" {
		return Code{}, false
	}

	m := p.pattern.FindStringSubmatch(normalized)
	if m == nil {
		return Code{}, false
	}

	code := Code{
		Family:          Family(m[1]),
		DiscountPercent: discounts[Family(m[1])],
	}
	if m[2] != "" {
		// Guaranteed a single digit 1-8 by the pattern.
		code.CustomDailyHours, _ = strconv.Atoi(m[2])
	}
	return code, true
}
