package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/Ritik-katariya/truthguardBE/internal/classify"
	"github.com/Ritik-katariya/truthguardBE/internal/domain"
	"github.com/Ritik-katariya/truthguardBE/internal/extract"
	"github.com/Ritik-katariya/truthguardBE/internal/retry"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type pipelineState string

const (
	stateReceived   pipelineState = "received"
	stateDispatched pipelineState = "dispatched"
	stateMerging    pipelineState = "merging"
	stateCompleted  pipelineState = "completed"
	stateFailed     pipelineState = "failed"
)

const archiveTimeout = 5 * time.Second

// PipelineService drives one submission end to end: concurrent adapter
// fan-out, synchronous signal extraction, and fusion into the final report.
type PipelineService struct {
	classifier domain.ZeroShotClassifier
	assessor   domain.CredibilityAssessor
	verifier   domain.NewsVerifier
	archiver   domain.ReportArchiver
	fusion     *FusionEngine
	logger     *zap.Logger
	retryCfg   retry.Config
}

func NewPipelineService(
	classifier domain.ZeroShotClassifier,
	assessor domain.CredibilityAssessor,
	verifier domain.NewsVerifier,
	archiver domain.ReportArchiver,
	logger *zap.Logger,
	retryCfg retry.Config,
) *PipelineService {
	return &PipelineService{
		classifier: classifier,
		assessor:   assessor,
		verifier:   verifier,
		archiver:   archiver,
		fusion:     NewFusionEngine(),
		logger:     logger,
		retryCfg:   retryCfg,
	}
}

// Analyze validates the submission, runs the adapters and extractors, and
// fuses everything into one immutable report. Classifier or assessor
// failure rejects the whole submission; news verification never does.
func (s *PipelineService) Analyze(ctx context.Context, text string) (*domain.CredibilityReport, error) {
	state := stateReceived
	if strings.TrimSpace(text) == "" {
		s.transition(&state, stateFailed)
		return nil, ErrEmptySubmission
	}

	submittedAt := time.Now().UTC()
	s.transition(&state, stateDispatched)

	var (
		wg sync.WaitGroup

		contentType domain.ContentTypeResult
		factuality  domain.FactualityScores
		classifyErr error

		assessment *domain.GenerativeAssessment
		assessErr  error

		verification domain.NewsVerificationResult
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		contentType, factuality, classifyErr = s.classifyBoth(ctx, text)
	}()
	go func() {
		defer wg.Done()
		assessment, assessErr = retry.Do(ctx, s.logger, "credibility assessment", s.retryCfg, func(ctx context.Context) (*domain.GenerativeAssessment, error) {
			return s.assessor.Assess(ctx, text)
		})
	}()
	go func() {
		defer wg.Done()
		verification = s.verifier.Verify(ctx, text)
	}()

	// Extractors run on the request goroutine while the adapters are in
	// flight; they are pure and need no network.
	sources := extract.Sources(text)
	factors := extract.Factors(text)

	wg.Wait()
	s.transition(&state, stateMerging)

	if classifyErr != nil {
		s.transition(&state, stateFailed)
		return nil, s.upstreamError("classifier", classifyErr)
	}
	if assessErr != nil {
		s.transition(&state, stateFailed)
		return nil, s.upstreamError("assessor", assessErr)
	}

	fused := s.fusion.Fuse(FuseInput{
		ContentType:    contentType,
		Factuality:     factuality,
		Assessment:     *assessment,
		NewsConfidence: verification.Confidence,
	})

	report := &domain.CredibilityReport{
		ID:               uuid.New(),
		SubmittedAt:      submittedAt,
		ContentType:      contentType,
		Factuality:       factuality,
		Assessment:       *assessment,
		NewsVerification: verification,
		Sources:          sources,
		Factors:          factors,

		LocalCredibilityScore: fused.LocalCredibility,
		LocalTruthScore:       fused.LocalTruth,
		ReliabilityLabel:      fused.ReliabilityLabel,
		CombinedMetrics:       fused.Combined,
	}

	s.transition(&state, stateCompleted)
	s.logger.Info("submission analyzed",
		zap.String("report_id", report.ID.String()),
		zap.String("reliability", report.ReliabilityLabel),
		zap.Int("credibility", report.CombinedMetrics.CredibilityScore),
		zap.Bool("news_verified", verification.IsVerified))

	s.archive(report, text)
	return report, nil
}

// classifyBoth issues the content-type and factuality calls concurrently;
// either failing fails the pair.
func (s *PipelineService) classifyBoth(ctx context.Context, text string) (domain.ContentTypeResult, domain.FactualityScores, error) {
	var (
		contentType domain.ContentTypeResult
		factuality  domain.FactualityScores
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		result, err := retry.Do(gctx, s.logger, "content type classification", s.retryCfg, func(ctx context.Context) (*domain.ClassificationResult, error) {
			return s.classifier.Classify(ctx, text, classify.ContentTypeLabels)
		})
		if err != nil {
			return err
		}
		contentType, err = classify.TopPrediction(result)
		return err
	})
	g.Go(func() error {
		result, err := retry.Do(gctx, s.logger, "factuality classification", s.retryCfg, func(ctx context.Context) (*domain.ClassificationResult, error) {
			return s.classifier.Classify(ctx, text, classify.FactualityLabels)
		})
		if err != nil {
			return err
		}
		factuality, err = classify.ExtractFactuality(result)
		return err
	})

	if err := g.Wait(); err != nil {
		return domain.ContentTypeResult{}, domain.FactualityScores{}, err
	}
	return contentType, factuality, nil
}

func (s *PipelineService) upstreamError(service string, err error) error {
	return &UpstreamError{
		Service: service,
		Timeout: errors.Is(err, context.DeadlineExceeded),
		Err:     err,
	}
}

// archive hands the finished report to the collaborator store. Failures are
// logged and never reach the caller; the report is already complete.
func (s *PipelineService) archive(report *domain.CredibilityReport, text string) {
	if s.archiver == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), archiveTimeout)
		defer cancel()
		if err := s.archiver.Archive(ctx, report, text); err != nil {
			s.logger.Warn("report archive failed",
				zap.String("report_id", report.ID.String()),
				zap.Error(err))
		}
	}()
}

func (s *PipelineService) transition(state *pipelineState, next pipelineState) {
	s.logger.Debug("pipeline transition",
		zap.String("from", string(*state)),
		zap.String("to", string(next)))
	*state = next
}
