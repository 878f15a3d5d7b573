// Package newsverify cross-checks submitted text against a news search
// index and scores the lexical overlap with returned coverage.
package newsverify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Ritik-katariya/truthguardBE/internal/domain"
)

const defaultNewsAPIURL = "https://newsapi.org/v2/everything"

// Config configures the NewsAPI client. BaseURL is overridable for tests.
type Config struct {
	APIKey  string
	BaseURL string
}

type NewsAPIClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewNewsAPIClient(cfg Config) *NewsAPIClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultNewsAPIURL
	}
	return &NewsAPIClient{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

type newsAPIResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message,omitempty"`
	Articles []struct {
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		PublishedAt string `json:"publishedAt"`
	} `json:"articles"`
}

// Search queries the index for English articles sorted by relevance.
func (c *NewsAPIClient) Search(ctx context.Context, query string, limit int) ([]domain.NewsArticle, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("language", "en")
	params.Set("sortBy", "relevancy")
	params.Set("pageSize", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create search request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read search response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news API returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var result newsAPIResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("unmarshal search response: %w", err)
	}

	if result.Status != "ok" {
		return nil, fmt.Errorf("news API error: %s", result.Message)
	}

	articles := make([]domain.NewsArticle, 0, len(result.Articles))
	for _, a := range result.Articles {
		articles = append(articles, domain.NewsArticle{
			Title:       a.Title,
			Description: a.Description,
			Source:      a.Source.Name,
			URL:         a.URL,
			PublishedAt: a.PublishedAt,
		})
	}
	return articles, nil
}
