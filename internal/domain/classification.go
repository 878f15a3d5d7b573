package domain

// ClassificationResult is the normalized output of one zero-shot
// classification call. Labels and Scores are index-aligned with index 0
// holding the top prediction. Scores are not required to sum to 1.
type ClassificationResult struct {
	Labels []string  `json:"labels"`
	Scores []float64 `json:"scores"`
}

// ScoreFor returns the score for a label by name.
func (r *ClassificationResult) ScoreFor(label string) (float64, bool) {
	for i, l := range r.Labels {
		if l == label && i < len(r.Scores) {
			return r.Scores[i], true
		}
	}
	return 0, false
}

// ContentTypeResult is the top content-type prediction for a submission.
type ContentTypeResult struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// FactualityScores holds the per-label factuality probabilities the fusion
// math consumes. All four must be present in the classifier response.
type FactualityScores struct {
	Factual    float64 `json:"factual"`
	Misleading float64 `json:"misleading"`
	False      float64 `json:"false"`
	Unverified float64 `json:"unverified"`
}

// GenerativeAssessment is the external assessor's judgment, already on the
// service's own 0-100 scale.
type GenerativeAssessment struct {
	CredibilityScore float64 `json:"credibility_score"`
	TruthScore       float64 `json:"truth_score"`
	Confidence       float64 `json:"confidence"`
}
