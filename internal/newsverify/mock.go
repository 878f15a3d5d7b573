package newsverify

import (
	"context"

	"github.com/Ritik-katariya/truthguardBE/internal/domain"
)

// MockSearcher is a configurable news searcher for tests and local runs.
type MockSearcher struct {
	Articles []domain.NewsArticle
	Err      error

	// Call tracking for assertions
	Queries []string
}

func NewMockSearcher() *MockSearcher {
	return &MockSearcher{Articles: []domain.NewsArticle{}}
}

func (m *MockSearcher) Search(ctx context.Context, query string, limit int) ([]domain.NewsArticle, error) {
	m.Queries = append(m.Queries, query)
	if m.Err != nil {
		return nil, m.Err
	}
	if len(m.Articles) > limit {
		return m.Articles[:limit], nil
	}
	return m.Articles, nil
}
