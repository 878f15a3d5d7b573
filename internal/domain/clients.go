package domain

import "context"

// ZeroShotClassifier classifies text against a caller-provided label set.
type ZeroShotClassifier interface {
	Classify(ctx context.Context, text string, labels []string) (*ClassificationResult, error)
}

// CredibilityAssessor asks a generative service for a structured judgment.
type CredibilityAssessor interface {
	Assess(ctx context.Context, text string) (*GenerativeAssessment, error)
}

// NewsSearcher queries a news search index.
type NewsSearcher interface {
	Search(ctx context.Context, query string, limit int) ([]NewsArticle, error)
}

// NewsVerifier cross-checks a submission against indexed news coverage.
// Implementations must degrade to an unverified result instead of failing.
type NewsVerifier interface {
	Verify(ctx context.Context, text string) NewsVerificationResult
}

// ReportArchiver persists a copy of a finished report. The pipeline never
// reads archived reports back.
type ReportArchiver interface {
	Archive(ctx context.Context, report *CredibilityReport, text string) error
}
