package domain

import (
	"time"

	"github.com/google/uuid"
)

// CombinedMetrics are the fused scores. All values are integers in [0,100].
type CombinedMetrics struct {
	CredibilityScore int `json:"credibility_score"`
	TruthScore       int `json:"truth_score"`
	Confidence       int `json:"confidence"`
	NewsReliability  int `json:"news_reliability"`
}

// CredibilityReport is the sole output of the pipeline. It is constructed
// once after all adapter outcomes settle and never mutated afterward.
type CredibilityReport struct {
	ID          uuid.UUID `json:"id"`
	SubmittedAt time.Time `json:"submitted_at"`

	ContentType      ContentTypeResult      `json:"content_type"`
	Factuality       FactualityScores       `json:"factuality"`
	Assessment       GenerativeAssessment   `json:"assessment"`
	NewsVerification NewsVerificationResult `json:"news_verification"`
	Sources          []ExtractedSource      `json:"sources"`
	Factors          ContentFactors         `json:"factors"`

	LocalCredibilityScore int             `json:"local_credibility_score"`
	LocalTruthScore       int             `json:"local_truth_score"`
	ReliabilityLabel      string          `json:"reliability_label"`
	CombinedMetrics       CombinedMetrics `json:"combined_metrics"`
}
