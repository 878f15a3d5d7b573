package newsverify

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/Ritik-katariya/truthguardBE/internal/domain"
	"github.com/Ritik-katariya/truthguardBE/internal/extract"
	"github.com/Ritik-katariya/truthguardBE/internal/retry"
	"go.uber.org/zap"
)

const (
	// VerifiedThreshold is the minimum lexical similarity for a submission
	// to count as backed by indexed coverage.
	VerifiedThreshold = 0.6

	maxKeywords   = 5
	keywordMinLen = 5
	maxArticles   = 5
	maxMatched    = 3
)

// Verifier is the soft-fail adapter: any failure degrades to an unverified
// result instead of propagating an error.
type Verifier struct {
	searcher domain.NewsSearcher
	logger   *zap.Logger
	retryCfg retry.Config
}

func NewVerifier(searcher domain.NewsSearcher, logger *zap.Logger, retryCfg retry.Config) *Verifier {
	return &Verifier{searcher: searcher, logger: logger, retryCfg: retryCfg}
}

// Verify searches for coverage matching the text and scores the overlap.
func (v *Verifier) Verify(ctx context.Context, text string) domain.NewsVerificationResult {
	keywords := Keywords(text, maxKeywords)
	if len(keywords) == 0 {
		v.logger.Debug("news verification skipped: no usable keywords")
		return domain.Unverified()
	}

	query := strings.Join(keywords, " OR ")
	articles, err := retry.Do(ctx, v.logger, "news search", v.retryCfg, func(ctx context.Context) ([]domain.NewsArticle, error) {
		return v.searcher.Search(ctx, query, maxArticles)
	})
	if err != nil {
		v.logger.Warn("news verification degraded", zap.Error(err))
		return domain.Unverified()
	}
	if len(articles) == 0 {
		v.logger.Debug("news verification found no articles", zap.String("query", query))
		return domain.Unverified()
	}

	type scored struct {
		article    domain.NewsArticle
		similarity float64
	}

	maxSimilarity := 0.0
	candidates := make([]scored, 0, len(articles))
	for _, a := range articles {
		sim := math.Max(extract.Similarity(text, a.Title), extract.Similarity(text, a.Description))
		if sim > maxSimilarity {
			maxSimilarity = sim
		}
		if sim > 0 {
			candidates = append(candidates, scored{article: a, similarity: sim})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].similarity > candidates[j].similarity
	})
	if len(candidates) > maxMatched {
		candidates = candidates[:maxMatched]
	}

	matched := make([]domain.MatchedArticle, 0, len(candidates))
	for _, c := range candidates {
		matched = append(matched, domain.MatchedArticle{
			Title:       c.article.Title,
			Source:      c.article.Source,
			URL:         c.article.URL,
			PublishedAt: c.article.PublishedAt,
		})
	}

	return domain.NewsVerificationResult{
		IsVerified:      maxSimilarity > VerifiedThreshold,
		Confidence:      int(math.Round(maxSimilarity * 100)),
		MatchedArticles: matched,
	}
}

// Keywords picks the first max words longer than four characters,
// punctuation trimmed, as search terms.
func Keywords(text string, max int) []string {
	keywords := []string{}
	for _, w := range strings.Fields(text) {
		w = strings.Trim(w, ".,!?;:'\"()[]")
		if len(w) < keywordMinLen {
			continue
		}
		keywords = append(keywords, w)
		if len(keywords) == max {
			break
		}
	}
	return keywords
}
