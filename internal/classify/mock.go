package classify

import (
	"context"
	"sync"

	"github.com/Ritik-katariya/truthguardBE/internal/domain"
)

// MockClassifier is a configurable classifier for tests and local runs.
// Responses are keyed by the first candidate label so the content-type and
// factuality calls can be primed independently. Safe for the concurrent
// paired calls the pipeline issues.
type MockClassifier struct {
	Responses map[string]*domain.ClassificationResult
	Err       error

	mu sync.Mutex
	// Call tracking for assertions
	Calls [][]string
}

func NewMockClassifier() *MockClassifier {
	return &MockClassifier{Responses: map[string]*domain.ClassificationResult{}}
}

func (m *MockClassifier) Classify(ctx context.Context, text string, labels []string) (*domain.ClassificationResult, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, labels)
	m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	if len(labels) > 0 {
		if r, ok := m.Responses[labels[0]]; ok {
			return r, nil
		}
	}
	// Default: flat-ish distribution favoring the first label.
	scores := make([]float64, len(labels))
	for i := range scores {
		if i == 0 {
			scores[i] = 0.6
			continue
		}
		scores[i] = 0.4 / float64(len(labels)-1)
	}
	return &domain.ClassificationResult{Labels: append([]string(nil), labels...), Scores: scores}, nil
}
