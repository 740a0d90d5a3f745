// Package handlers provides HTTP request handlers for the Decision Critic
// API.
package handlers

import (
	"encoding/json"
	"net/http"

	"decision-critic/internal/api/response"
	"decision-critic/internal/config"
	"decision-critic/internal/engine"
	"decision-critic/internal/logging"
)

// AnalyzeHandler exposes the analysis pipeline over HTTP.
type AnalyzeHandler struct {
	cfg    *config.Config
	engine *engine.Engine
	logger logging.Logger
}

// NewAnalyzeHandler creates a new analyze handler.
func NewAnalyzeHandler(cfg *config.Config, eng *engine.Engine, logger logging.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{
		cfg:    cfg,
		engine: eng,
		logger: logger.WithComponent("analyze_handler"),
	}
}

// analyzeRequest is the request body for POST /api/v1/analyze.
type analyzeRequest struct {
	Decision  string `json:"decision"`
	Context   string `json:"context"`
	Intensity int    `json:"intensity"`
	UseModel  bool   `json:"use_model"`
}

// modesResponse advertises which generation modes are available, so a
// client can decide whether to offer the external-model toggle at all.
type modesResponse struct {
	Heuristic bool `json:"heuristic"`
	Model     bool `json:"model"`
}

// Analyze handles POST /api/v1/analyze.
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteError(w, http.StatusBadRequest, response.ErrorCodeBadRequest,
			"invalid request body", err.Error())
		return
	}

	// Empty decision text is allowed and produces a sparse analysis;
	// a missing intensity falls back to the configured default.
	if req.Intensity == 0 {
		req.Intensity = h.cfg.Analysis.DefaultIntensity
	}

	analysis := h.engine.Analyze(r.Context(), engine.Request{
		Decision:  req.Decision,
		Context:   req.Context,
		Intensity: req.Intensity,
		UseModel:  req.UseModel,
	})

	response.WriteSuccess(w, analysis)
}

// Modes handles GET /api/v1/analyze/modes.
func (h *AnalyzeHandler) Modes(w http.ResponseWriter, r *http.Request) {
	response.WriteSuccess(w, modesResponse{
		Heuristic: true,
		Model:     h.engine.ModelAvailable(),
	})
}
