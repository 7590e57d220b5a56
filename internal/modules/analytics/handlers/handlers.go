// Package handlers provides HTTP handlers for analytics derivation.
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/avramis/navlens/internal/modules/analytics"
)

// Handler handles analytics HTTP requests
type Handler struct {
	service          *analytics.Service
	defaultSMAWindow int
	log              zerolog.Logger
}

// NewHandler creates a new analytics handler
func NewHandler(service *analytics.Service, defaultSMAWindow int, log zerolog.Logger) *Handler {
	return &Handler{
		service:          service,
		defaultSMAWindow: defaultSMAWindow,
		log:              log.With().Str("handler", "analytics").Logger(),
	}
}

// RegisterRoutes registers analytics routes on the given router
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/analytics", func(r chi.Router) {
		r.Post("/derive", h.HandleDerive)
	})
}

// deriveRequest is the POST /api/analytics/derive body. Records are the
// already-decoded rows of the uploaded file; no file parsing happens here.
type deriveRequest struct {
	Records    []analytics.RawRecord `json:"records"`
	IncludeSMA bool                  `json:"include_sma"`
	SMAWindow  int                   `json:"sma_window"`
}

// HandleDerive handles POST /api/analytics/derive
// Derives the equity curve, drawdown curve, monthly-return matrix and summary
// statistics from the submitted raw records. Invalid records are dropped by
// the engine; an empty or fully-invalid upload is a 200 with empty series.
func (h *Handler) HandleDerive(w http.ResponseWriter, r *http.Request) {
	var req deriveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn().Err(err).Msg("Failed to decode derive request")
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	opts := analytics.DeriveOptions{}
	if req.IncludeSMA {
		opts.SMAWindow = req.SMAWindow
		if opts.SMAWindow < 2 {
			opts.SMAWindow = h.defaultSMAWindow
		}
	}

	report := h.service.Derive(req.Records, opts)

	response := map[string]interface{}{
		"data": report,
		"metadata": map[string]interface{}{
			"timestamp":        time.Now().Format(time.RFC3339),
			"report_id":        uuid.NewString(),
			"records_received": len(req.Records),
			"records_valid":    len(report.Equity),
		},
	}

	h.writeJSON(w, http.StatusOK, response)
}

// writeJSON writes a JSON response
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
