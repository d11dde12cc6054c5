// Package benefit resolves benefit keys into sorted, displayable benefits.
package benefit

import (
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"freelance-rate/core/types"
)

// Dictionary maps benefit keys to templates
type Dictionary map[string]types.BenefitTemplate

// Missing returns the keys not present in d, in input order
func (d Dictionary) Missing(keys []string) []string {
	var missing []string
	for _, key := range keys {
		if _, ok := d[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}

// Resolve hydrates keys from dict and sorts them for display: premium
// benefits first, then by text in English collation order. Ties keep input
// order.
//
// Every key must exist in dict. Catalog validation guarantees this for
// catalog tiers, so an unknown key panics.
func Resolve(keys []string, dict Dictionary) []types.Benefit {
	out := make([]types.Benefit, 0, len(keys))
	for _, key := range keys {
		tmpl, ok := dict[key]
		if !ok {
			panic(fmt.Sprintf("benefit: unknown key %q", key))
		}
		out = append(out, types.Benefit{
			Text:        tmpl.Text,
			Description: tmpl.Description,
			Included:    true,
			Premium:     tmpl.Premium,
		})
	}

	Sort(out)
	return out
}

// Sort orders benefits in place: premium first, then by text
func Sort(benefits []types.Benefit) {
	// Collators keep internal buffers; one per call.
	c := collate.New(language.English)
	sort.SliceStable(benefits, func(i, j int) bool {
		a, b := benefits[i], benefits[j]
		if a.Premium != b.Premium {
			return a.Premium
		}
		return c.CompareString(a.Text, b.Text) < 0
	})
}
