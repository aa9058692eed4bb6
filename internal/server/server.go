// Package server exposes the quote evaluator over a small JSON HTTP API.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/voyageware/farequote/internal/config"
	"github.com/voyageware/farequote/internal/quote"
	"github.com/voyageware/farequote/internal/rules"
	"github.com/voyageware/farequote/pkg/constants"
	"github.com/voyageware/farequote/pkg/output"
	"github.com/voyageware/farequote/pkg/validation"
	"go.uber.org/zap"
)

type handler struct {
	logger         *zap.Logger
	engine         *quote.Engine
	store          *rules.Store
	maxRequestSize int64
	version        string
}

// NewHandler constructs the HTTP handler that serves the quote API.
func NewHandler(logger *zap.Logger, store *rules.Store, maxRequestSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxRequestSize <= 0 {
		maxRequestSize = constants.DefaultMaxRequestSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:         logger,
		engine:         quote.NewEngine(logger),
		store:          store,
		maxRequestSize: maxRequestSize,
		version:        trimmedVersion,
	}

	mux := http.NewServeMux()

	// Quote API endpoint
	mux.HandleFunc("/api/quote", h.handleQuote)

	// Version endpoint for client metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

// quoteRequest is the JSON body of POST /api/quote. An inline carrier table
// may be supplied to price against rules other than the process store's.
type quoteRequest struct {
	Itinerary quote.Itinerary                     `json:"itinerary"`
	Criteria  quote.TravelerCriteria              `json:"criteria"`
	Carriers  map[string]config.CarrierRuleConfig `json:"carriers,omitempty"`
}

type quoteResponse struct {
	Quote        quote.Result `json:"quote"`
	CSV          string       `json:"csv"`
	RuleWarnings []string     `json:"ruleWarnings,omitempty"`
	Duration     string       `json:"duration"`
	Version      string       `json:"version"`
}

func (h *handler) handleQuote(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleQuote"

	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	if h.maxRequestSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)
	}

	var payload quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxRequestSize), op)
			return
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return
	}

	var ruleWarnings []string
	snapshot := h.snapshot()
	if payload.Carriers != nil {
		// Inline rules replace the process store for this call only.
		snapshot = rules.NewSnapshot(payload.Carriers)
		ruleWarnings = validation.ValidateCarrierRules(payload.Carriers)
	}

	result := h.engine.Evaluate(snapshot, payload.Itinerary, payload.Criteria)
	elapsed := time.Since(start)

	h.logger.Info("quote computed",
		zap.String("op", op),
		zap.String("carrier", payload.Itinerary.Carrier),
		zap.Float64("total", result.Total),
		zap.Bool("eligible", result.Eligible),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, quoteResponse{
		Quote:        result,
		CSV:          output.CsvString(result),
		RuleWarnings: ruleWarnings,
		Duration:     elapsed.String(),
		Version:      h.version,
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) snapshot() *rules.Snapshot {
	if h.store == nil {
		return nil
	}
	return h.store.Snapshot()
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	if h.logger != nil {
		h.logger.Error("quote request failed",
			zap.String("op", op),
			zap.Int("status", status),
			zap.String("error", msg),
		)
	}

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
