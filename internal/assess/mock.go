package assess

import (
	"context"

	"github.com/Ritik-katariya/truthguardBE/internal/domain"
)

// MockAssessor is a configurable assessor for tests and local runs.
type MockAssessor struct {
	Response *domain.GenerativeAssessment
	Err      error

	// Call tracking for assertions
	Calls []string
}

func NewMockAssessor() *MockAssessor {
	return &MockAssessor{
		Response: &domain.GenerativeAssessment{CredibilityScore: 60, TruthScore: 65, Confidence: 70},
	}
}

func (m *MockAssessor) Assess(ctx context.Context, text string) (*domain.GenerativeAssessment, error) {
	m.Calls = append(m.Calls, text)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Response, nil
}
