package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Ritik-katariya/truthguardBE/internal/domain"
	"github.com/Ritik-katariya/truthguardBE/internal/service"
)

// Analyzer runs one submission through the credibility pipeline.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (*domain.CredibilityReport, error)
}

type AnalyzeHandler struct {
	svc Analyzer
}

func NewAnalyzeHandler(svc Analyzer) *AnalyzeHandler {
	return &AnalyzeHandler{svc: svc}
}

type analyzeRequest struct {
	Text string `json:"text"`
}

// errorResponse distinguishes "analysis failed" from a report. Upstream
// failures carry a suggested retry delay.
type errorResponse struct {
	Error             string `json:"error"`
	Code              string `json:"code"`
	RetryAfterSeconds int    `json:"retry_after_seconds,omitempty"`
}

func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorBody(w, http.StatusBadRequest, errorResponse{Error: "invalid request body", Code: "invalid_input"})
		return
	}

	report, err := h.svc.Analyze(r.Context(), req.Text)
	if err != nil {
		writeAnalyzeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func writeAnalyzeError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrEmptySubmission) {
		writeErrorBody(w, http.StatusBadRequest, errorResponse{
			Error: "text is required for analysis",
			Code:  "invalid_input",
		})
		return
	}

	var upstream *service.UpstreamError
	if errors.As(err, &upstream) {
		retryAfter := int(service.SuggestedRetryDelay.Seconds())
		code := "upstream_failure"
		if upstream.Timeout {
			code = "upstream_timeout"
		}
		w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
		writeErrorBody(w, http.StatusBadGateway, errorResponse{
			Error:             upstream.Error(),
			Code:              code,
			RetryAfterSeconds: retryAfter,
		})
		return
	}

	writeErrorBody(w, http.StatusInternalServerError, errorResponse{
		Error: "analysis failed",
		Code:  "internal_error",
	})
}
