package classify

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Ritik-katariya/truthguardBE/internal/domain"
)

func TestHFClient_Classify_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("expected bearer credential, got %q", r.Header.Get("Authorization"))
		}
		var req inferenceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if len(req.Parameters.CandidateLabels) != 5 {
			t.Errorf("expected 5 candidate labels, got %d", len(req.Parameters.CandidateLabels))
		}
		_ = json.NewEncoder(w).Encode(inferenceResponse{
			Labels: []string{"factual", "misleading", "false", "opinion", "unverified"},
			Scores: []float64{0.7, 0.1, 0.05, 0.1, 0.05},
		})
	}))
	defer server.Close()

	client := NewHFClient(Config{APIKey: "test-key", BaseURL: server.URL})
	result, err := client.Classify(context.Background(), "some text", FactualityLabels)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if result.Labels[0] != "factual" || result.Scores[0] != 0.7 {
		t.Errorf("unexpected top prediction: %+v", result)
	}
}

func TestHFClient_Classify_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(inferenceResponse{Error: "model loading"})
	}))
	defer server.Close()

	client := NewHFClient(Config{APIKey: "test-key", BaseURL: server.URL})
	if _, err := client.Classify(context.Background(), "text", FactualityLabels); err == nil {
		t.Fatal("expected error from API error body")
	}
}

func TestHFClient_Classify_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewHFClient(Config{APIKey: "test-key", BaseURL: server.URL})
	if _, err := client.Classify(context.Background(), "text", FactualityLabels); err == nil {
		t.Fatal("expected error for non-200 status")
	}
}

func TestHFClient_Classify_MisalignedScores(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(inferenceResponse{
			Labels: []string{"factual", "false"},
			Scores: []float64{0.9},
		})
	}))
	defer server.Close()

	client := NewHFClient(Config{APIKey: "test-key", BaseURL: server.URL})
	if _, err := client.Classify(context.Background(), "text", FactualityLabels); err == nil {
		t.Fatal("expected error for misaligned labels and scores")
	}
}

func TestExtractFactuality_AllLabels(t *testing.T) {
	scores, err := ExtractFactuality(&domain.ClassificationResult{
		Labels: []string{"factual", "misleading", "false", "opinion", "unverified"},
		Scores: []float64{0.7, 0.1, 0.05, 0.1, 0.05},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if scores.Factual != 0.7 || scores.Misleading != 0.1 || scores.False != 0.05 || scores.Unverified != 0.05 {
		t.Errorf("unexpected scores: %+v", scores)
	}
}

func TestExtractFactuality_MissingLabelIsHardError(t *testing.T) {
	_, err := ExtractFactuality(&domain.ClassificationResult{
		Labels: []string{"factual", "misleading", "opinion"},
		Scores: []float64{0.7, 0.2, 0.1},
	})
	if !errors.Is(err, ErrMissingLabel) {
		t.Fatalf("expected ErrMissingLabel, got %v", err)
	}
}

func TestTopPrediction(t *testing.T) {
	top, err := TopPrediction(&domain.ClassificationResult{
		Labels: []string{"news article", "blog post"},
		Scores: []float64{0.8, 0.2},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if top.Label != "news article" || top.Score != 0.8 {
		t.Errorf("unexpected top prediction: %+v", top)
	}

	if _, err := TopPrediction(&domain.ClassificationResult{}); !errors.Is(err, ErrMissingLabel) {
		t.Fatalf("expected ErrMissingLabel for empty result, got %v", err)
	}
}
