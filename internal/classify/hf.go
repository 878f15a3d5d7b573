// Package classify provides the zero-shot classification clients and the
// label-set handling used to turn raw classifier output into content-type
// and factuality judgments.
package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Ritik-katariya/truthguardBE/internal/domain"
)

const defaultInferenceURL = "https://api-inference.huggingface.co/models/facebook/bart-large-mnli"

// Config configures the HuggingFace client. BaseURL is overridable for tests.
type Config struct {
	APIKey  string
	BaseURL string
}

type HFClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewHFClient(cfg Config) *HFClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultInferenceURL
	}
	return &HFClient{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

type inferenceRequest struct {
	Inputs     string              `json:"inputs"`
	Parameters inferenceParameters `json:"parameters"`
}

type inferenceParameters struct {
	CandidateLabels []string `json:"candidate_labels"`
}

type inferenceResponse struct {
	Labels []string  `json:"labels"`
	Scores []float64 `json:"scores"`
	Error  string    `json:"error,omitempty"`
}

// Classify runs one zero-shot classification call. The returned labels are
// ordered by score with index 0 holding the top prediction.
func (c *HFClient) Classify(ctx context.Context, text string, labels []string) (*domain.ClassificationResult, error) {
	body, err := json.Marshal(inferenceRequest{
		Inputs:     text,
		Parameters: inferenceParameters{CandidateLabels: labels},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal inference request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create inference request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("inference request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read inference response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("inference API returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var result inferenceResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("unmarshal inference response: %w", err)
	}

	if result.Error != "" {
		return nil, fmt.Errorf("inference API error: %s", result.Error)
	}

	if len(result.Labels) == 0 || len(result.Labels) != len(result.Scores) {
		return nil, fmt.Errorf("inference API returned %d labels and %d scores", len(result.Labels), len(result.Scores))
	}

	return &domain.ClassificationResult{Labels: result.Labels, Scores: result.Scores}, nil
}
