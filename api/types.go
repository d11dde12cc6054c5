// Package api - API types for quote estimation
// These types define the contract for the /api endpoints.
// The API is stateless, idempotent, and deterministic.
package api

import (
	"freelance-rate/core/types"
)

// QuoteRequest is the input to POST /quote
type QuoteRequest struct {
	// TierID selects the pricing tier
	TierID string `json:"tier_id"`

	// Days is the requested project length
	Days int `json:"days"`

	// ReferralCode is optional
	ReferralCode string `json:"referral_code,omitempty"`

	// Country selects the rate table; empty uses the catalog default
	Country string `json:"country,omitempty"`
}

// QuoteResponse is the output of POST /quote
type QuoteResponse struct {
	RequestID string       `json:"request_id"`
	Quote     *types.Quote `json:"quote"`

	// Message is the pre-filled share text
	Message string `json:"message"`

	// ShareURL opens a chat carrying Message
	ShareURL string `json:"share_url"`

	// RoundingNote is set when custom hours rounded the day count
	RoundingNote string `json:"rounding_note,omitempty"`

	Metadata *ResponseMetadata `json:"metadata"`
}

// ResponseMetadata describes how a response was produced
type ResponseMetadata struct {
	// InputHash is a SHA-256 of the normalized request
	InputHash string `json:"input_hash"`

	EngineVersion string `json:"engine_version"`
	DurationMs    int64  `json:"duration_ms"`
}

// TiersResponse is the output of GET /tiers
type TiersResponse struct {
	Currency       types.Currency `json:"currency"`
	CurrencySymbol string         `json:"currency_symbol"`
	Tiers          []types.Tier   `json:"tiers"`
}

// CountriesResponse is the output of GET /countries
type CountriesResponse struct {
	Default   string           `json:"default,omitempty"`
	Countries []*types.Country `json:"countries"`
}

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	RequestID string      `json:"request_id,omitempty"`
	Error     ErrorDetail `json:"error"`
}

// ErrorDetail describes one failure
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}
