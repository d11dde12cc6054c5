package api

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"freelance-rate/core/engine"
	"freelance-rate/core/share"
	"freelance-rate/internal/errors"
)

// maxBodyBytes bounds request bodies
const maxBodyBytes = 1 << 16

// handleQuote handles POST /quote
func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req QuoteRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, ErrorDetail{
			Code:    "INVALID_JSON",
			Message: err.Error(),
		})
		return
	}

	normalizeRequest(&req)

	// Execute engine (no pricing logic here)
	q, err := s.engine.Estimate(r.Context(), engine.Request{
		TierID:       req.TierID,
		Days:         req.Days,
		ReferralCode: req.ReferralCode,
		Country:      req.Country,
	})
	if err != nil {
		s.writeEngineError(w, r, err)
		return
	}

	msg := share.Message(q)
	resp := &QuoteResponse{
		RequestID: RequestIDFrom(r.Context()),
		Quote:     q,
		Message:   msg,
		ShareURL:  share.Link(s.opts.ShareBaseURL, s.opts.SharePhone, msg),
		Metadata: &ResponseMetadata{
			InputHash:     computeInputHash(&req),
			EngineVersion: s.opts.Version,
			DurationMs:    time.Since(start).Milliseconds(),
		},
	}
	if q.FinalDays != q.RequestedDays {
		resp.RoundingNote = fmt.Sprintf("days rounded from %d to %d", q.RequestedDays, q.FinalDays)
	}

	s.writeJSON(w, resp, http.StatusOK)
}

// handleTiers handles GET /tiers
func (s *Server) handleTiers(w http.ResponseWriter, r *http.Request) {
	cat := s.engine.Catalog()
	s.writeJSON(w, &TiersResponse{
		Currency:       cat.Currency(),
		CurrencySymbol: cat.CurrencySymbol(),
		Tiers:          cat.Tiers(),
	}, http.StatusOK)
}

// handleCountries handles GET /countries
func (s *Server) handleCountries(w http.ResponseWriter, r *http.Request) {
	cat := s.engine.Catalog()
	s.writeJSON(w, &CountriesResponse{
		Default:   cat.DefaultCountry(),
		Countries: cat.Countries(),
	}, http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.opts.Version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version":     s.opts.Version,
		"engine":      "freelance-rate",
		"api_version": "v1",
	}, http.StatusOK)
}

// writeEngineError maps typed engine errors to HTTP statuses
func (s *Server) writeEngineError(w http.ResponseWriter, r *http.Request, err error) {
	detail := ErrorDetail{
		Code:    string(errors.TypeOf(err)),
		Message: err.Error(),
	}

	var status int
	switch errors.TypeOf(err) {
	case errors.TypeInput:
		status = http.StatusBadRequest
		detail.Field = errors.FieldOf(err)
	case errors.TypeNotFound:
		status = http.StatusNotFound
	default:
		status = http.StatusInternalServerError
		s.logger.Error("quote failed",
			zap.String("request_id", RequestIDFrom(r.Context())),
			zap.Error(err),
		)
		detail.Message = http.StatusText(status)
	}

	s.writeError(w, r, status, detail)
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("write response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, detail ErrorDetail) {
	s.writeJSON(w, &ErrorResponse{
		RequestID: RequestIDFrom(r.Context()),
		Error:     detail,
	}, status)
}

// Helper functions

func normalizeRequest(req *QuoteRequest) {
	req.TierID = strings.TrimSpace(req.TierID)
	req.ReferralCode = strings.ToUpper(strings.TrimSpace(req.ReferralCode))
	req.Country = strings.ToUpper(strings.TrimSpace(req.Country))
}

func computeInputHash(req *QuoteRequest) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
