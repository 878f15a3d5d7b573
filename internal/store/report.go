package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Ritik-katariya/truthguardBE/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReportStore archives finished credibility reports. The pipeline writes a
// copy here and never reads it back.
type ReportStore struct {
	db *pgxpool.Pool
}

func NewReportStore(db *pgxpool.Pool) *ReportStore {
	return &ReportStore{db: db}
}

func (s *ReportStore) Archive(ctx context.Context, report *domain.CredibilityReport, text string) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	_, err = s.db.Exec(ctx,
		`INSERT INTO credibility_reports (id, submitted_text, report, reliability_label, credibility_score, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		report.ID, text, payload, report.ReliabilityLabel, report.CombinedMetrics.CredibilityScore, report.SubmittedAt,
	)
	return err
}
