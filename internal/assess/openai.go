// Package assess provides the generative credibility assessor clients.
package assess

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Ritik-katariya/truthguardBE/internal/domain"
)

const (
	defaultChatURL = "https://api.openai.com/v1/chat/completions"
	chatModel      = "gpt-4o-mini"
)

// ErrMalformedResponse signals an assessor response that did not parse into
// the expected structured shape.
var ErrMalformedResponse = errors.New("assessor response is not the expected shape")

// Config configures the OpenAI client. BaseURL is overridable for tests.
type Config struct {
	APIKey  string
	BaseURL string
}

type OpenAIClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewOpenAIClient(cfg Config) *OpenAIClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultChatURL
	}
	return &OpenAIClient{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// chat types for the OpenAI API
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// assessmentPayload uses pointers so absent fields are detected instead of
// silently defaulting to zero.
type assessmentPayload struct {
	CredibilityScore *float64 `json:"credibilityScore"`
	TruthScore       *float64 `json:"truthScore"`
	Confidence       *float64 `json:"confidence"`
}

func (c *OpenAIClient) complete(ctx context.Context, messages []chatMessage, temp float32) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       chatModel,
		Messages:    messages,
		Temperature: temp,
	})
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read chat response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat API returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var result chatResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("unmarshal chat response: %w", err)
	}

	if result.Error != nil {
		return "", fmt.Errorf("chat API error: %s", result.Error.Message)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("chat API returned no choices")
	}

	return strings.TrimSpace(result.Choices[0].Message.Content), nil
}

// Assess asks for a structured credibility judgment of the text.
func (c *OpenAIClient) Assess(ctx context.Context, text string) (*domain.GenerativeAssessment, error) {
	messages := []chatMessage{
		{Role: "system", Content: assessSystemPrompt},
		{Role: "user", Content: text},
	}

	result, err := c.complete(ctx, messages, 0.2)
	if err != nil {
		return nil, fmt.Errorf("assess: %w", err)
	}

	// Strip markdown fences if present
	result = strings.TrimPrefix(result, "```json")
	result = strings.TrimPrefix(result, "```")
	result = strings.TrimSuffix(result, "```")
	result = strings.TrimSpace(result)

	var payload assessmentPayload
	if err := json.Unmarshal([]byte(result), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v (raw: %s)", ErrMalformedResponse, err, result)
	}
	if payload.CredibilityScore == nil || payload.TruthScore == nil || payload.Confidence == nil {
		return nil, fmt.Errorf("%w: missing fields (raw: %s)", ErrMalformedResponse, result)
	}

	return &domain.GenerativeAssessment{
		CredibilityScore: *payload.CredibilityScore,
		TruthScore:       *payload.TruthScore,
		Confidence:       *payload.Confidence,
	}, nil
}
