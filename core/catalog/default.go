// Package catalog - Built-in catalog
package catalog

import (
	"sync"

	"freelance-rate/core/types"
)

// Benefit keys of the built-in catalog
const (
	RapidPrototyping    = "RAPID_PROTOTYPING"
	AgileSprints        = "AGILE_SPRINTS"
	UIUpdatesLimited    = "UI_UPDATES_LIMITED"
	UIUpdatesLarge      = "UI_UPDATES_LARGE"
	WeekendMeetings     = "WEEKEND_MEETINGS"
	ShortNoticeMeetings = "SHORT_NOTICE_MEETINGS"
	PrioritySupport     = "PRIORITY_SUPPORT"
	DetailedReports     = "DETAILED_REPORTS"
)

func discount(p int) *int { return &p }

// DefaultFile returns the built-in catalog definition. Rates are in INR.
func DefaultFile() *File {
	return &File{
		Currency:       "INR",
		CurrencySymbol: "₹",
		Tiers: []TierBlock{
			{
				ID: "tier-1", Label: "Under 1 Week",
				MinDays: 1, MaxDays: 6, HourlyRate: 1500,
				DailyHours: dailyHours(5, 8),
				Benefits:   []string{RapidPrototyping, AgileSprints},
				Unbenefits: []string{WeekendMeetings, UIUpdatesLimited, ShortNoticeMeetings, PrioritySupport, DetailedReports},
			},
			{
				ID: "tier-2", Label: "1 to 2 Weeks",
				MinDays: 7, MaxDays: 14, HourlyRate: 1200,
				DailyHours: dailyHours(5, 8),
				Benefits:   []string{WeekendMeetings},
				Unbenefits: []string{UIUpdatesLimited, ShortNoticeMeetings, PrioritySupport, DetailedReports},
			},
			{
				ID: "tier-3", Label: "2 Weeks to 1 Month",
				MinDays: 15, MaxDays: 30, HourlyRate: 1000,
				DailyHours: dailyHours(6, 8),
				Benefits:   []string{WeekendMeetings, UIUpdatesLimited},
				Unbenefits: []string{ShortNoticeMeetings, PrioritySupport, DetailedReports},
			},
			{
				ID: "tier-4", Label: "1 to 4 Months",
				MinDays: 31, MaxDays: 120, HourlyRate: 800,
				DailyHours: dailyHours(6, 8),
				Benefits:   []string{WeekendMeetings, UIUpdatesLarge, ShortNoticeMeetings},
				Unbenefits: []string{PrioritySupport, DetailedReports},
			},
			{
				ID: "tier-5", Label: "4 to 6 Months",
				MinDays: 121, MaxDays: 180, HourlyRate: 700,
				DailyHours: dailyHours(6, 8),
				Benefits:   []string{WeekendMeetings, UIUpdatesLarge, ShortNoticeMeetings, PrioritySupport},
				Unbenefits: []string{DetailedReports},
			},
			{
				ID: "tier-6", Label: "6 to 12 Months",
				MinDays: 181, MaxDays: 365, HourlyRate: 600,
				DailyHours: dailyHours(6, 8),
				Benefits:   []string{WeekendMeetings, UIUpdatesLarge, ShortNoticeMeetings, PrioritySupport, DetailedReports},
			},
		},
		Benefits: []BenefitBlock{
			{Key: RapidPrototyping, Text: "Rapid Prototyping", Description: "Quick turnaround on initial concepts and interactive prototypes."},
			{Key: AgileSprints, Text: "Agile Development Sprints", Description: "The project will be developed in short, iterative cycles for faster feedback."},
			{Key: UIUpdatesLimited, Text: "Limited UI/Design Updates", Description: "Minor tweaks and updates to the user interface are included."},
			{Key: UIUpdatesLarge, Text: "Large UI/Design Changes", Description: "Significant changes and redesigns of components are allowed."},
			{Key: WeekendMeetings, Text: "Weekend Meeting Availability", Description: "Meetings on Saturday/Sunday can be scheduled for urgent matters."},
			{Key: ShortNoticeMeetings, Text: "Short-Notice Meetings", Description: "Meetings can be confirmed with more flexibility and less advance notice."},
			{Key: PrioritySupport, Text: "Priority Support", Description: "Your requests and queries will be handled with higher priority.", Premium: true},
			{Key: DetailedReports, Text: "Detailed Progress Reports", Description: "You'll receive detailed weekly reports on progress and milestones.", Premium: true},
		},
		Referrals: []ReferralBlock{
			{Family: "JV02"},
			{Family: "JVX05", Discount: discount(5)},
			{Family: "JVC10", Discount: discount(10)},
			{Family: "AGNC50", Discount: discount(50)},
		},
		Countries: []CountryBlock{
			{
				Code: "IN", Label: "India", Currency: "INR", CurrencySymbol: "₹",
				Rates: map[string]float64{"tier-1": 1500, "tier-2": 1200, "tier-3": 1000, "tier-4": 800, "tier-5": 700, "tier-6": 600},
			},
			{
				Code: "RU", Label: "Russia", Currency: "RUB", CurrencySymbol: "₽",
				Rates: map[string]float64{"tier-1": 1700, "tier-2": 1400, "tier-3": 1150, "tier-4": 950, "tier-5": 800, "tier-6": 700},
			},
			{
				Code: "US", Label: "United States", Currency: "USD", CurrencySymbol: "$",
				Rates: map[string]float64{"tier-1": 30, "tier-2": 25, "tier-3": 20, "tier-4": 17.5, "tier-5": 15, "tier-6": 12.5},
			},
		},
	}
}

func dailyHours(lo, hi int) types.DailyHours {
	return types.DailyHours{Min: lo, Max: hi}
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in catalog. It panics if the built-in definition
// is invalid.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := New(DefaultFile())
		if err != nil {
			panic(err.Error())
		}
		defaultCatalog = c
	})
	return defaultCatalog
}
