package extract

import (
	"regexp"
	"strings"

	"github.com/Ritik-katariya/truthguardBE/internal/domain"
)

// Complexity weighting. Word length is normalized against 8 characters,
// sentence length against 25 words, and complex-word density against 10%
// of the word count.
const (
	wordLenNorm        = 8.0
	sentenceLenNorm    = 25.0
	complexDensityNorm = 0.1

	wordLenWeight     = 0.3
	sentenceLenWeight = 0.3
	densityWeight     = 0.4

	complexWordMinLen = 7
)

var connectiveWords = map[string]struct{}{
	"however":       {},
	"therefore":     {},
	"furthermore":   {},
	"consequently":  {},
	"nevertheless":  {},
	"moreover":      {},
	"additionally":  {},
	"meanwhile":     {},
	"subsequently":  {},
	"accordingly":   {},
	"alternatively": {},
}

var sentenceSplit = regexp.MustCompile(`[.!?]+`)

var citationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:according to|as reported by|reported by|cited by|sources? (?:say|said|told)|as per)\b`),
	regexp.MustCompile(`\[\d+\]`),
	regexp.MustCompile(`\((?:19|20)\d{2}\)`),
}

var quotePatterns = []*regexp.Regexp{
	regexp.MustCompile(`"([^"]+)"`),
	regexp.MustCompile(`'([^']+)'`),
}

var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{4}\b`),
	regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`),
	regexp.MustCompile(`(?i)\b(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2}(?:,)?\s+\d{4}\b`),
}

var statisticPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+(?:\.\d+)?\s?%`),
	regexp.MustCompile(`[$€£]\s?\d`),
	regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?\s?(?:million|billion|trillion)\b`),
	regexp.MustCompile(`(?i)\b(?:increased|decreased|rose|fell|grew|dropped|declined|surged)\s+by\b`),
	regexp.MustCompile(`(?i)\b(?:statistics|study|survey|poll|census|data shows?)\b`),
}

// Factors derives all structural signals from the text in one pass.
func Factors(text string) domain.ContentFactors {
	return domain.ContentFactors{
		Length:        len(text),
		Complexity:    Complexity(text),
		CitationCount: Citations(text),
		Quotes:        Quotes(text),
		Dates:         Dates(text),
		HasStatistics: HasStatistics(text),
	}
}

// Complexity scores lexical complexity in [0,1]. Degenerate inputs with no
// words or no sentences score 0.
func Complexity(text string) float64 {
	words := strings.Fields(text)
	wordCount := len(words)
	sentenceCount := countSentences(text)
	if wordCount == 0 || sentenceCount == 0 {
		return 0
	}

	totalLen := 0
	complexCount := 0
	for _, w := range words {
		runes := []rune(strings.Trim(w, ".,!?;:'\"()[]"))
		totalLen += len(runes)
		if len(runes) >= complexWordMinLen {
			complexCount++
			continue
		}
		if _, ok := connectiveWords[strings.ToLower(string(runes))]; ok {
			complexCount++
		}
	}

	avgWordLen := float64(totalLen) / float64(wordCount)
	avgSentenceLen := float64(wordCount) / float64(sentenceCount)
	density := float64(complexCount) / (float64(wordCount) * complexDensityNorm)

	score := wordLenWeight*minF(avgWordLen/wordLenNorm, 1) +
		sentenceLenWeight*minF(avgSentenceLen/sentenceLenNorm, 1) +
		densityWeight*minF(density, 1)
	return clampUnit(score)
}

func countSentences(text string) int {
	count := 0
	for _, part := range sentenceSplit.Split(text, -1) {
		if strings.TrimSpace(part) != "" {
			count++
		}
	}
	return count
}

// Citations sums matches across all citation patterns. Patterns may double
// count the same span; that overlap is accepted signal redundancy.
func Citations(text string) int {
	total := 0
	for _, p := range citationPatterns {
		total += len(p.FindAllString(text, -1))
	}
	return total
}

// Quotes returns the contents of quoted spans, delimiters stripped, with
// trailing punctuation trimmed. Double-quoted spans come before
// single-quoted ones; position order is preserved within each form.
func Quotes(text string) []string {
	quotes := []string{}
	for _, p := range quotePatterns {
		for _, m := range p.FindAllStringSubmatch(text, -1) {
			q := strings.TrimRight(strings.TrimSpace(m[1]), ",;:")
			if q != "" {
				quotes = append(quotes, q)
			}
		}
	}
	return quotes
}

// Dates returns date mentions in pattern-then-position order.
func Dates(text string) []string {
	dates := []string{}
	for _, p := range datePatterns {
		dates = append(dates, p.FindAllString(text, -1)...)
	}
	return dates
}

// HasStatistics reports whether any statistical marker appears in the text.
func HasStatistics(text string) bool {
	for _, p := range statisticPatterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
