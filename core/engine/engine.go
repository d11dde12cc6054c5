// Package engine provides the API-primary estimation engine.
// CLI and HTTP are thin wrappers around this engine.
package engine

import (
	"context"

	"go.uber.org/zap"

	"freelance-rate/core/benefit"
	"freelance-rate/core/catalog"
	"freelance-rate/core/quote"
	"freelance-rate/core/types"
	"freelance-rate/core/validation"
)

// Engine is the primary API for quote estimation.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	catalog   *catalog.Catalog
	validator *validation.Validator
	logger    *zap.Logger
}

// EngineConfig configures the estimation engine
type EngineConfig struct {
	// StrictReferral rejects recognized codes that carry neither a discount
	// nor custom hours
	StrictReferral bool
}

// Request is one estimation request
type Request struct {
	TierID       string `json:"tier_id"`
	Days         int    `json:"days"`
	ReferralCode string `json:"referral_code,omitempty"`
	Country      string `json:"country,omitempty"`
}

// NewEngine creates a new estimation engine over a validated catalog
func NewEngine(cat *catalog.Catalog, config EngineConfig, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		catalog: cat,
		validator: validation.NewValidator(cat.Parser(), cat.Discounts(), validation.Options{
			StrictReferral: config.StrictReferral,
		}),
		logger: logger,
	}
}

// Catalog returns the engine's catalog
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Estimate validates req and computes its quote
func (e *Engine) Estimate(ctx context.Context, req Request) (*types.Quote, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pricing, err := e.catalog.TierFor(req.TierID, req.Country)
	if err != nil {
		return nil, err
	}

	if err := e.validator.ValidateDays(pricing.Tier, req.Days); err != nil {
		return nil, err
	}

	code, err := e.validator.ValidateReferral(req.ReferralCode)
	if err != nil {
		return nil, err
	}

	q := quote.Compute(pricing.Tier, req.Days, code)
	q.Benefits = benefit.Resolve(pricing.Tier.Benefits, e.catalog.Benefits())
	q.Unbenefits = benefit.Resolve(pricing.Tier.Unbenefits, e.catalog.Benefits())
	q.Currency = pricing.Currency
	q.CurrencySymbol = pricing.CurrencySymbol
	if pricing.Country != nil {
		q.Country = pricing.Country.Label
	}

	e.logger.Debug("quote computed",
		zap.String("tier", q.Tier.ID),
		zap.Int("requested_days", q.RequestedDays),
		zap.Int("final_days", q.FinalDays),
		zap.String("referral", q.ReferralCode),
		zap.String("country", q.Country),
		zap.Stringer("hourly_rate", q.HourlyRate),
		zap.Stringer("total_hours", q.TotalHours),
		zap.Stringer("total_cost", q.TotalCost),
	)

	return &q, nil
}
