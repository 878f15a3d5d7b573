package domain

// SourceType categorizes where an attributed source appears to come from.
type SourceType string

const (
	SourceMajorNewsAgency SourceType = "major_news_agency"
	SourceSocialMedia     SourceType = "social_media"
	SourceNewsWebsite     SourceType = "news_website"
	SourceCited           SourceType = "cited_source"
	SourceOfficial        SourceType = "official_source"
	SourceLocalNews       SourceType = "local_news"
)

// ConfidenceTier is the fixed per-rule confidence of a source attribution.
type ConfidenceTier string

const (
	ConfidenceHigh   ConfidenceTier = "high"
	ConfidenceMedium ConfidenceTier = "medium"
	ConfidenceLow    ConfidenceTier = "low"
)

// Rank orders tiers for sorting; higher means more trustworthy.
func (c ConfidenceTier) Rank() int {
	switch c {
	case ConfidenceHigh:
		return 3
	case ConfidenceMedium:
		return 2
	case ConfidenceLow:
		return 1
	default:
		return 0
	}
}

// ExtractedSource is one attributed source found in the submitted text.
type ExtractedSource struct {
	Name       string         `json:"name"`
	Type       SourceType     `json:"type"`
	Confidence ConfidenceTier `json:"confidence"`
}
