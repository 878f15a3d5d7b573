package assess

import (
	"fmt"

	"github.com/Ritik-katariya/truthguardBE/internal/domain"
)

// Provider constants
const (
	ProviderOpenAI = "openai"
	ProviderMock   = "mock"
)

// NewClient creates a credibility assessor for the given provider name.
// Real providers require their bearer credential up front.
func NewClient(provider, apiKey string) (domain.CredibilityAssessor, error) {
	switch provider {
	case ProviderOpenAI:
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required for OpenAI provider")
		}
		return NewOpenAIClient(Config{APIKey: apiKey}), nil

	case ProviderMock:
		return NewMockAssessor(), nil

	default:
		return nil, fmt.Errorf("unknown assessor provider: %s (valid options: openai, mock)", provider)
	}
}
