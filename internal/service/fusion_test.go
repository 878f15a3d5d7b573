package service

import (
	"testing"

	"github.com/Ritik-katariya/truthguardBE/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFuse_StrongFactualSignalClampsToHundred(t *testing.T) {
	engine := NewFusionEngine()
	out := engine.Fuse(FuseInput{
		ContentType: domain.ContentTypeResult{Label: "news article", Score: 0.9},
		Factuality:  domain.FactualityScores{Factual: 0.7, Misleading: 0.1, False: 0.05, Unverified: 0.05},
		Assessment:  domain.GenerativeAssessment{CredibilityScore: 100, TruthScore: 100, Confidence: 90},
	})

	// round(70-5-5)+50 = 110 -> clamp -> 100; round(70-5)+50 = 115 -> clamp -> 100
	assert.Equal(t, 100, out.LocalCredibility)
	assert.Equal(t, 100, out.LocalTruth)
	assert.Equal(t, 100, out.Combined.CredibilityScore)
	assert.Equal(t, 100, out.Combined.TruthScore)
}

func TestFuse_WeightsLocalAndExternal(t *testing.T) {
	engine := NewFusionEngine()
	out := engine.Fuse(FuseInput{
		ContentType: domain.ContentTypeResult{Label: "news article", Score: 0.5},
		Factuality:  domain.FactualityScores{Factual: 0.3, Misleading: 0.2, False: 0.1},
		Assessment:  domain.GenerativeAssessment{CredibilityScore: 40, TruthScore: 50, Confidence: 60},
	})

	// raw cred = 30 - 10 - 10 = 10; local = 60; combined = round(60*0.6 + 40*0.4) = 52
	assert.Equal(t, 60, out.LocalCredibility)
	assert.Equal(t, 52, out.Combined.CredibilityScore)
	// raw truth = 30 - 10 = 20; local = 70; combined = round(70*0.6 + 50*0.4) = 62
	assert.Equal(t, 70, out.LocalTruth)
	assert.Equal(t, 62, out.Combined.TruthScore)
	// confidence = round((50 + 60) / 2) = 55
	assert.Equal(t, 55, out.Combined.Confidence)
}

func TestFuse_AllNegativeSignalClampsToZero(t *testing.T) {
	engine := NewFusionEngine()
	out := engine.Fuse(FuseInput{
		Factuality: domain.FactualityScores{Factual: 0, Misleading: 0.5, False: 0.9},
		Assessment: domain.GenerativeAssessment{CredibilityScore: 0, TruthScore: 0, Confidence: 0},
	})

	// raw cred = 0 - 25 - 90 = -115; local clamps to 0
	assert.Equal(t, 0, out.LocalCredibility)
	assert.Equal(t, 0, out.Combined.CredibilityScore)
	assert.Equal(t, "unreliable", out.ReliabilityLabel)
}

func TestFuse_NewsReliabilityPassedThrough(t *testing.T) {
	engine := NewFusionEngine()
	out := engine.Fuse(FuseInput{NewsConfidence: 73})
	assert.Equal(t, 73, out.Combined.NewsReliability)
}

func TestFuse_CombinedScoresAlwaysBounded(t *testing.T) {
	engine := NewFusionEngine()
	grid := []float64{0, 0.25, 0.5, 0.75, 1}
	for _, factual := range grid {
		for _, misleading := range grid {
			for _, falseScore := range grid {
				for _, external := range []float64{0, 50, 100} {
					out := engine.Fuse(FuseInput{
						ContentType: domain.ContentTypeResult{Score: factual},
						Factuality:  domain.FactualityScores{Factual: factual, Misleading: misleading, False: falseScore},
						Assessment:  domain.GenerativeAssessment{CredibilityScore: external, TruthScore: external, Confidence: external},
					})
					for name, v := range map[string]int{
						"credibility": out.Combined.CredibilityScore,
						"truth":       out.Combined.TruthScore,
						"confidence":  out.Combined.Confidence,
						"news":        out.Combined.NewsReliability,
					} {
						if v < 0 || v > 100 {
							t.Fatalf("%s out of range for factual=%f misleading=%f false=%f external=%f: %d",
								name, factual, misleading, falseScore, external, v)
						}
					}
				}
			}
		}
	}
}

func TestReliabilityLabel_Bands(t *testing.T) {
	cases := []struct {
		raw  float64
		want string
	}{
		{95, "highly reliable"},
		{80, "highly reliable"},
		{79.9, "reliable"},
		{60, "reliable"},
		{59.9, "moderately reliable"},
		{40, "moderately reliable"},
		{39.9, "somewhat unreliable"},
		{20, "somewhat unreliable"},
		{19.9, "unreliable"},
		{0, "unreliable"},
		{-115, "unreliable"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, reliabilityLabel(tc.raw), "raw=%f", tc.raw)
	}
}

func TestReliabilityLabel_MonotonicAcrossBands(t *testing.T) {
	rank := map[string]int{
		"unreliable":          0,
		"somewhat unreliable": 1,
		"moderately reliable": 2,
		"reliable":            3,
		"highly reliable":     4,
	}
	prev := -1
	for raw := -120.0; raw <= 120; raw += 0.5 {
		r := rank[reliabilityLabel(raw)]
		if r < prev {
			t.Fatalf("reliability label regressed at raw=%f", raw)
		}
		prev = r
	}
}
