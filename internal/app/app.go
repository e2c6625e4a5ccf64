package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/futebolao/futebolao/external/footballdata"
	"github.com/futebolao/futebolao/internal/config"
	"github.com/futebolao/futebolao/internal/domain/championship"
	"github.com/futebolao/futebolao/internal/domain/match"
	"github.com/futebolao/futebolao/internal/domain/prediction"
	"github.com/futebolao/futebolao/internal/infrastructure/account/sessions"
	"github.com/futebolao/futebolao/internal/infrastructure/repository/memory"
	"github.com/futebolao/futebolao/internal/infrastructure/repository/postgres"
	"github.com/futebolao/futebolao/internal/interfaces/httpapi"
	"github.com/futebolao/futebolao/internal/platform/cache"
	idgen "github.com/futebolao/futebolao/internal/platform/id"
	"github.com/futebolao/futebolao/internal/platform/logging"
	"github.com/futebolao/futebolao/internal/platform/resilience"
	"github.com/futebolao/futebolao/internal/usecase"
)

type repositories struct {
	championships championship.Repository
	matches       match.Repository
	predictions   prediction.Repository
}

// NewHTTPServer wires repositories, services and transport. The returned
// cleanup closes the database pool and must run after the server stops.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, cleanup, err := buildRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	generator := idgen.NewRandomGenerator()

	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
	}

	championshipSvc := usecase.NewChampionshipService(repos.championships, generator)
	matchSvc := usecase.NewMatchService(repos.championships, repos.matches, generator)
	predictionSvc := usecase.NewPredictionService(repos.matches, repos.predictions, generator)
	rankingSvc := usecase.NewRankingService(repos.matches, repos.predictions, store)
	scoringSvc := usecase.NewScoringService(repos.matches, repos.predictions, rankingSvc, logger)

	var provider usecase.MatchProvider
	if cfg.FootballDataEnabled {
		provider = footballdata.NewClient(footballdata.ClientConfig{
			BaseURL:    cfg.FootballDataBaseURL,
			Token:      cfg.FootballDataToken,
			Timeout:    cfg.FootballDataTimeout,
			MaxRetries: cfg.FootballDataMaxRetries,
			Logger:     logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.FootballDataCircuitEnabled,
				FailureThreshold: cfg.FootballDataCircuitFailureCount,
				OpenTimeout:      cfg.FootballDataCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.FootballDataCircuitHalfOpenMaxReq,
			},
		})
	}
	syncSvc := usecase.NewSyncService(repos.championships, repos.matches, provider, scoringSvc, usecase.SyncConfig{
		Enabled:    cfg.FootballDataEnabled,
		WindowDays: cfg.SyncWindowDays,
	}, logger)

	verifier := sessions.NewClient(sessions.ClientConfig{
		HTTPClient:     &http.Client{Timeout: cfg.AuthTimeout},
		BaseURL:        cfg.AuthBaseURL,
		IntrospectPath: cfg.AuthIntrospectPath,
		Logger:         logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.AuthCircuitEnabled,
			FailureThreshold: cfg.AuthCircuitFailureCount,
			OpenTimeout:      cfg.AuthCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.AuthCircuitHalfOpenMaxReq,
		},
	})

	handler := httpapi.NewHandler(
		championshipSvc,
		matchSvc,
		predictionSvc,
		scoringSvc,
		rankingSvc,
		syncSvc,
		logger,
	)
	router := httpapi.NewRouter(handler, verifier, logger, cfg.CORSAllowedOrigins, cfg.CronSyncToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		_ = cleanup()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}

func buildRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, func() error, error) {
	if cfg.DBURL == "" {
		logger.Info("database url not set, using in-memory repositories with seed data")
		return repositories{
			championships: memory.NewChampionshipRepository(memory.SeedChampionships()),
			matches:       memory.NewMatchRepository(memory.SeedMatches()),
			predictions:   memory.NewPredictionRepository(),
		}, func() error { return nil }, nil
	}

	db, err := sqlx.ConnectContext(ctx, "postgres", normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary))
	if err != nil {
		return repositories{}, nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := postgres.BootstrapSeed(ctx, db); err != nil {
		_ = db.Close()
		return repositories{}, nil, fmt.Errorf("bootstrap seed: %w", err)
	}

	logger.Info("database connected", "db_name", dbNameFromURL(cfg.DBURL))

	return repositories{
		championships: postgres.NewChampionshipRepository(db),
		matches:       postgres.NewMatchRepository(db),
		predictions:   postgres.NewPredictionRepository(db),
	}, db.Close, nil
}
