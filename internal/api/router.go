package api

import (
	"encoding/json"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/Ritik-katariya/truthguardBE/internal/api/handlers"
	mw "github.com/Ritik-katariya/truthguardBE/internal/api/middleware"
	"github.com/Ritik-katariya/truthguardBE/internal/assess"
	"github.com/Ritik-katariya/truthguardBE/internal/buildconfig"
	"github.com/Ritik-katariya/truthguardBE/internal/classify"
	"github.com/Ritik-katariya/truthguardBE/internal/config"
	"github.com/Ritik-katariya/truthguardBE/internal/domain"
	"github.com/Ritik-katariya/truthguardBE/internal/newsverify"
	"github.com/Ritik-katariya/truthguardBE/internal/retry"
	"github.com/Ritik-katariya/truthguardBE/internal/service"
	"github.com/Ritik-katariya/truthguardBE/internal/store"
)

// App holds the router and request metrics for lifecycle management.
type App struct {
	Router       *chi.Mux
	startTime    time.Time
	requestCount atomic.Int64
	errorCount   atomic.Int64
}

// NewApp wires external clients, the pipeline service, and the HTTP surface.
// db may be nil, in which case report archiving is disabled.
func NewApp(db *pgxpool.Pool, logger *zap.Logger) (*App, error) {
	classifier, err := classify.NewClient(config.ClassifierProvider(), config.HuggingFaceAPIKey())
	if err != nil {
		return nil, err
	}
	logger.Info("classifier client initialized", zap.String("provider", config.ClassifierProvider()))

	assessor, err := assess.NewClient(config.AssessorProvider(), config.OpenAIAPIKey())
	if err != nil {
		return nil, err
	}
	logger.Info("assessor client initialized", zap.String("provider", config.AssessorProvider()))

	searcher, err := newsverify.NewSearcher(config.NewsProvider(), config.NewsAPIKey())
	if err != nil {
		return nil, err
	}
	logger.Info("news searcher initialized", zap.String("provider", config.NewsProvider()))

	retryCfg := retry.Config{
		MaxAttempts:    config.RetryMaxAttempts(),
		AttemptTimeout: config.RetryAttemptTimeout(),
	}
	verifier := newsverify.NewVerifier(searcher, logger, retryCfg)

	var archiver domain.ReportArchiver
	if db != nil {
		archiver = store.NewReportStore(db)
		logger.Info("report archiving enabled")
	}

	pipeline := service.NewPipelineService(classifier, assessor, verifier, archiver, logger, retryCfg)
	analyzeHandler := handlers.NewAnalyzeHandler(pipeline)

	r := chi.NewRouter()

	app := &App{
		Router:    r,
		startTime: time.Now(),
	}

	metricsCollector := mw.NewMetricsCollector(&app.requestCount, &app.errorCount)

	// Global middleware (order matters)
	r.Use(mw.RequestID)
	r.Use(middleware.RealIP)
	r.Use(metricsCollector.Middleware)
	r.Use(mw.Logging(logger))
	r.Use(middleware.Recoverer)
	r.Use(mw.RateLimit(config.RateLimitRPS(), config.RateLimitBurst()))

	// Health (no auth)
	r.Get("/health", healthHandler(db))

	// Metrics (no auth)
	r.Get("/metrics", app.metricsHandler())

	r.Route("/v1", func(r chi.Router) {
		if key := config.APIKey(); key != "" {
			r.Use(mw.APIKeyAuth(key))
		}
		r.Post("/analyze", analyzeHandler.Analyze)
	})

	return app, nil
}

func healthHandler(db *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			if err := db.Ping(r.Context()); err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusServiceUnavailable)
				_ = json.NewEncoder(w).Encode(map[string]string{"status": "error", "error": err.Error()})
				return
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}

func (app *App) metricsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)

		uptime := time.Since(app.startTime)

		response := map[string]any{
			"uptime_seconds": uptime.Seconds(),
			"uptime_human":   uptime.Round(time.Second).String(),
			"request_count":  app.requestCount.Load(),
			"error_count":    app.errorCount.Load(),
			"goroutines":     runtime.NumGoroutine(),
			"memory": map[string]any{
				"alloc_mb":       float64(memStats.Alloc) / 1024 / 1024,
				"total_alloc_mb": float64(memStats.TotalAlloc) / 1024 / 1024,
				"sys_mb":         float64(memStats.Sys) / 1024 / 1024,
				"num_gc":         memStats.NumGC,
			},
			"go_version": runtime.Version(),
			"build":      buildconfig.VersionInfo(),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

// Ensure clients and stores satisfy interfaces at compile time.
var (
	_ domain.ZeroShotClassifier  = (*classify.HFClient)(nil)
	_ domain.ZeroShotClassifier  = (*classify.MockClassifier)(nil)
	_ domain.CredibilityAssessor = (*assess.OpenAIClient)(nil)
	_ domain.CredibilityAssessor = (*assess.MockAssessor)(nil)
	_ domain.NewsSearcher        = (*newsverify.NewsAPIClient)(nil)
	_ domain.NewsSearcher        = (*newsverify.MockSearcher)(nil)
	_ domain.NewsVerifier        = (*newsverify.Verifier)(nil)
	_ domain.ReportArchiver      = (*store.ReportStore)(nil)
	_ handlers.Analyzer          = (*service.PipelineService)(nil)
)
