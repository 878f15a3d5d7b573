package service

import (
	"math"

	"github.com/Ritik-katariya/truthguardBE/internal/domain"
)

// Fusion weights and score shaping. The weights and bands are empirical
// values carried over unchanged; the engine exposes the weights so they can
// be tuned without touching the math.
const (
	DefaultLocalWeight    = 0.6
	DefaultExternalWeight = 0.4

	misleadingPenalty = 50.0
	scoreShift        = 50.0

	bandHighlyReliable     = 80.0
	bandReliable           = 60.0
	bandModeratelyReliable = 40.0
	bandSomewhatUnreliable = 20.0
)

// FuseInput gathers everything the fusion step consumes.
type FuseInput struct {
	ContentType    domain.ContentTypeResult
	Factuality     domain.FactualityScores
	Assessment     domain.GenerativeAssessment
	NewsConfidence int
}

// FuseOutput is the fused scoring block of the final report.
type FuseOutput struct {
	LocalCredibility int
	LocalTruth       int
	ReliabilityLabel string
	Combined         domain.CombinedMetrics
}

// FusionEngine deterministically merges local and external judgments.
type FusionEngine struct {
	LocalWeight    float64
	ExternalWeight float64
}

func NewFusionEngine() *FusionEngine {
	return &FusionEngine{
		LocalWeight:    DefaultLocalWeight,
		ExternalWeight: DefaultExternalWeight,
	}
}

// Fuse computes local scores from the factuality probabilities, labels the
// unshifted credibility value, and blends in the external assessment. Each
// output field is rounded exactly once.
func (f *FusionEngine) Fuse(in FuseInput) FuseOutput {
	rawCredibility := in.Factuality.Factual*100 - in.Factuality.Misleading*misleadingPenalty - in.Factuality.False*100
	rawTruth := in.Factuality.Factual*100 - in.Factuality.False*100

	localCredibility := clampScore(int(math.Round(rawCredibility)) + int(scoreShift))
	localTruth := clampScore(int(math.Round(rawTruth)) + int(scoreShift))

	return FuseOutput{
		LocalCredibility: localCredibility,
		LocalTruth:       localTruth,
		ReliabilityLabel: reliabilityLabel(rawCredibility),
		Combined: domain.CombinedMetrics{
			CredibilityScore: f.combine(localCredibility, in.Assessment.CredibilityScore),
			TruthScore:       f.combine(localTruth, in.Assessment.TruthScore),
			Confidence:       clampScore(int(math.Round((in.ContentType.Score*100 + in.Assessment.Confidence) / 2))),
			NewsReliability:  clampScore(in.NewsConfidence),
		},
	}
}

func (f *FusionEngine) combine(local int, external float64) int {
	return clampScore(int(math.Round(float64(local)*f.LocalWeight + external*f.ExternalWeight)))
}

// reliabilityLabel bands the unshifted local credibility value.
func reliabilityLabel(raw float64) string {
	switch {
	case raw >= bandHighlyReliable:
		return "highly reliable"
	case raw >= bandReliable:
		return "reliable"
	case raw >= bandModeratelyReliable:
		return "moderately reliable"
	case raw >= bandSomewhatUnreliable:
		return "somewhat unreliable"
	default:
		return "unreliable"
	}
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
