package classify

import (
	"fmt"

	"github.com/Ritik-katariya/truthguardBE/internal/domain"
)

// Provider constants
const (
	ProviderHuggingFace = "huggingface"
	ProviderMock        = "mock"
)

// NewClient creates a zero-shot classifier for the given provider name.
// Real providers require their bearer credential up front.
func NewClient(provider, apiKey string) (domain.ZeroShotClassifier, error) {
	switch provider {
	case ProviderHuggingFace:
		if apiKey == "" {
			return nil, fmt.Errorf("HF_API_KEY is required for HuggingFace provider")
		}
		return NewHFClient(Config{APIKey: apiKey}), nil

	case ProviderMock:
		return NewMockClassifier(), nil

	default:
		return nil, fmt.Errorf("unknown classifier provider: %s (valid options: huggingface, mock)", provider)
	}
}
