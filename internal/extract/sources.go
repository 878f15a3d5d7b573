// Package extract implements the pure text analyzers of the credibility
// pipeline: source attribution, content factors, and lexical similarity.
package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/Ritik-katariya/truthguardBE/internal/domain"
)

// sourceRule pairs a recognition pattern with a classifier for its matches.
// Rules run in order; earlier rules win dedup ties on the same name.
type sourceRule struct {
	pattern  *regexp.Regexp
	group    int
	classify func(name string) domain.ExtractedSource
}

func tagged(srcType domain.SourceType, tier domain.ConfidenceTier) func(string) domain.ExtractedSource {
	return func(name string) domain.ExtractedSource {
		return domain.ExtractedSource{Name: name, Type: srcType, Confidence: tier}
	}
}

var sourceRules = []sourceRule{
	{
		pattern:  regexp.MustCompile(`(?i)\b(Reuters|Associated Press|AFP|BBC News|BBC|CNN|Fox News|The New York Times|The Washington Post|The Guardian|Al Jazeera|Bloomberg|NPR|NBC News|ABC News|CBS News)\b`),
		classify: tagged(domain.SourceMajorNewsAgency, domain.ConfidenceHigh),
	},
	{
		pattern:  regexp.MustCompile(`(?i)\b(officials?|government|ministry|authorities|police|spokesperson|white house|state department)\b`),
		classify: tagged(domain.SourceOfficial, domain.ConfidenceHigh),
	},
	{
		pattern:  regexp.MustCompile(`(?i)\b[a-z0-9][a-z0-9-]*\.(?:com|org|net|news|gov|edu)\b`),
		classify: tagged(domain.SourceNewsWebsite, domain.ConfidenceMedium),
	},
	{
		pattern:  regexp.MustCompile(`(?i)\b(Twitter|Facebook|Instagram|TikTok|Reddit|Telegram|WhatsApp|social media)\b`),
		classify: tagged(domain.SourceSocialMedia, domain.ConfidenceLow),
	},
	{
		pattern:  regexp.MustCompile(`(?i)(?:according to|as reported by|reported by|cited by|sources? (?:say|said|told|at|from)|per)\s+([A-Z][A-Za-z .&'-]{1,40})`),
		group:    1,
		classify: tagged(domain.SourceCited, domain.ConfidenceLow),
	},
	{
		pattern:  regexp.MustCompile(`(?i)\b(local (?:news|media|reports|station)|eyewitness(?:es)?)\b`),
		classify: tagged(domain.SourceLocalNews, domain.ConfidenceLow),
	},
}

// attributionPrefix strips boilerplate attribution words left at the front
// of a captured name.
var attributionPrefix = regexp.MustCompile(`(?i)^(?:according to|as reported by|reported by|cited by|sources?|the)\s+`)

// Sources runs the recognition rules over the text and returns the
// deduplicated attribution list, sorted by confidence tier with first-seen
// order preserved within a tier.
func Sources(text string) []domain.ExtractedSource {
	seen := make(map[string]struct{})
	sources := []domain.ExtractedSource{}

	for _, rule := range sourceRules {
		for _, m := range rule.pattern.FindAllStringSubmatch(text, -1) {
			name := cleanSourceName(m[rule.group])
			if name == "" {
				continue
			}
			key := strings.ToLower(name)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			sources = append(sources, rule.classify(name))
		}
	}

	sort.SliceStable(sources, func(i, j int) bool {
		return sources[i].Confidence.Rank() > sources[j].Confidence.Rank()
	})
	return sources
}

func cleanSourceName(raw string) string {
	name := strings.TrimSpace(raw)
	name = attributionPrefix.ReplaceAllString(name, "")
	name = strings.Trim(name, " \t\n.,;:'\"()[]")
	return name
}
