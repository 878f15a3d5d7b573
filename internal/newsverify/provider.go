package newsverify

import (
	"fmt"

	"github.com/Ritik-katariya/truthguardBE/internal/domain"
)

// Provider constants
const (
	ProviderNewsAPI = "newsapi"
	ProviderMock    = "mock"
)

// NewSearcher creates a news searcher for the given provider name.
// Real providers require their credential up front.
func NewSearcher(provider, apiKey string) (domain.NewsSearcher, error) {
	switch provider {
	case ProviderNewsAPI:
		if apiKey == "" {
			return nil, fmt.Errorf("NEWS_API_KEY is required for NewsAPI provider")
		}
		return NewNewsAPIClient(Config{APIKey: apiKey}), nil

	case ProviderMock:
		return NewMockSearcher(), nil

	default:
		return nil, fmt.Errorf("unknown news provider: %s (valid options: newsapi, mock)", provider)
	}
}
