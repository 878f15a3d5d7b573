package classify

import (
	"errors"
	"fmt"

	"github.com/Ritik-katariya/truthguardBE/internal/domain"
)

// ErrMissingLabel signals a classifier response lacking a label the score
// math requires. It is a hard error, never silently defaulted.
var ErrMissingLabel = errors.New("classifier response missing expected label")

// Candidate label sets for the two classification calls per submission.
var (
	ContentTypeLabels = []string{"news article", "opinion piece", "social media post", "advertisement", "blog post"}
	FactualityLabels  = []string{"factual", "misleading", "false", "opinion", "unverified"}
)

const (
	labelFactual    = "factual"
	labelMisleading = "misleading"
	labelFalse      = "false"
	labelUnverified = "unverified"
)

// TopPrediction reads the top content-type label and score.
func TopPrediction(r *domain.ClassificationResult) (domain.ContentTypeResult, error) {
	if len(r.Labels) == 0 || len(r.Scores) == 0 {
		return domain.ContentTypeResult{}, fmt.Errorf("%w: empty result", ErrMissingLabel)
	}
	return domain.ContentTypeResult{Label: r.Labels[0], Score: r.Scores[0]}, nil
}

// ExtractFactuality pulls the four factuality scores by label name. A
// missing label fails the whole extraction.
func ExtractFactuality(r *domain.ClassificationResult) (domain.FactualityScores, error) {
	var scores domain.FactualityScores
	for _, entry := range []struct {
		label string
		dst   *float64
	}{
		{labelFactual, &scores.Factual},
		{labelMisleading, &scores.Misleading},
		{labelFalse, &scores.False},
		{labelUnverified, &scores.Unverified},
	} {
		v, ok := r.ScoreFor(entry.label)
		if !ok {
			return domain.FactualityScores{}, fmt.Errorf("%w: %q", ErrMissingLabel, entry.label)
		}
		*entry.dst = v
	}
	return scores, nil
}
