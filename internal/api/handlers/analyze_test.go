package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ritik-katariya/truthguardBE/internal/domain"
	"github.com/Ritik-katariya/truthguardBE/internal/service"
)

type stubAnalyzer struct {
	report *domain.CredibilityReport
	err    error
	gotten string
}

func (s *stubAnalyzer) Analyze(_ context.Context, text string) (*domain.CredibilityReport, error) {
	s.gotten = text
	if s.err != nil {
		return nil, s.err
	}
	return s.report, nil
}

func postAnalyze(t *testing.T, h *AnalyzeHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/analyze", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Analyze(rec, req)
	return rec
}

func TestAnalyzeHandler_Success(t *testing.T) {
	id := uuid.New()
	stub := &stubAnalyzer{report: &domain.CredibilityReport{
		ID:               id,
		ReliabilityLabel: "Generally Reliable",
		CombinedMetrics:  domain.CombinedMetrics{CredibilityScore: 72},
	}}
	rec := postAnalyze(t, NewAnalyzeHandler(stub), `{"text":"Officials confirmed the results on Tuesday."}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Officials confirmed the results on Tuesday.", stub.gotten)

	var got domain.CredibilityReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, id, got.ID)
	assert.Equal(t, 72, got.CombinedMetrics.CredibilityScore)
}

func TestAnalyzeHandler_EmptySubmission(t *testing.T) {
	stub := &stubAnalyzer{err: service.ErrEmptySubmission}
	rec := postAnalyze(t, NewAnalyzeHandler(stub), `{"text":""}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "invalid_input", resp.Code)
	assert.Zero(t, resp.RetryAfterSeconds)
}

func TestAnalyzeHandler_MalformedBody(t *testing.T) {
	stub := &stubAnalyzer{}
	rec := postAnalyze(t, NewAnalyzeHandler(stub), `{"text":`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, stub.gotten)
}

func TestAnalyzeHandler_UpstreamFailure(t *testing.T) {
	stub := &stubAnalyzer{err: &service.UpstreamError{
		Service: "classifier",
		Err:     errors.New("status 503"),
	}}
	rec := postAnalyze(t, NewAnalyzeHandler(stub), `{"text":"some claim"}`)

	require.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "30", rec.Header().Get("Retry-After"))

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "upstream_failure", resp.Code)
	assert.Equal(t, 30, resp.RetryAfterSeconds)
}

func TestAnalyzeHandler_UpstreamTimeout(t *testing.T) {
	stub := &stubAnalyzer{err: &service.UpstreamError{
		Service: "assessor",
		Timeout: true,
		Err:     context.DeadlineExceeded,
	}}
	rec := postAnalyze(t, NewAnalyzeHandler(stub), `{"text":"some claim"}`)

	require.Equal(t, http.StatusBadGateway, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "upstream_timeout", resp.Code)
}

func TestAnalyzeHandler_InternalError(t *testing.T) {
	stub := &stubAnalyzer{err: errors.New("boom")}
	rec := postAnalyze(t, NewAnalyzeHandler(stub), `{"text":"some claim"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "internal_error", resp.Code)
}
