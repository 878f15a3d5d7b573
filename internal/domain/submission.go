package domain

import "time"

// ContentSubmission is the raw input to the credibility pipeline. It is
// created per request and never outlives the request/response cycle.
type ContentSubmission struct {
	Text       string    `json:"text"`
	ReceivedAt time.Time `json:"received_at"`
}

// ContentFactors holds the structural signals derived once per submission.
type ContentFactors struct {
	Length        int      `json:"length"`
	Complexity    float64  `json:"complexity"`
	CitationCount int      `json:"citation_count"`
	Quotes        []string `json:"quotes"`
	Dates         []string `json:"dates"`
	HasStatistics bool     `json:"has_statistics"`
}
