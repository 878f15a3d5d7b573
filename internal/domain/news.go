package domain

// NewsArticle is one article returned by the news search index.
type NewsArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Source      string `json:"source"`
	URL         string `json:"url"`
	PublishedAt string `json:"published_at"`
}

// MatchedArticle is an article that lexically overlapped the submission.
type MatchedArticle struct {
	Title       string `json:"title"`
	Source      string `json:"source"`
	URL         string `json:"url"`
	PublishedAt string `json:"published_at"`
}

// NewsVerificationResult is the news verifier's outcome. A failed lookup
// degrades to the zero value with IsVerified false rather than an error.
type NewsVerificationResult struct {
	IsVerified      bool             `json:"is_verified"`
	Confidence      int              `json:"confidence"`
	MatchedArticles []MatchedArticle `json:"matched_articles"`
}

// Unverified returns the degraded result used when verification fails.
func Unverified() NewsVerificationResult {
	return NewsVerificationResult{MatchedArticles: []MatchedArticle{}}
}
