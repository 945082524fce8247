package app

import (
	"fmt"
	"net/http"

	"github.com/lifeboat-community/leaderboard-api/external/youtube"
	"github.com/lifeboat-community/leaderboard-api/internal/config"
	"github.com/lifeboat-community/leaderboard-api/internal/domain/category"
	"github.com/lifeboat-community/leaderboard-api/internal/domain/gamemode"
	"github.com/lifeboat-community/leaderboard-api/internal/domain/moderationlog"
	"github.com/lifeboat-community/leaderboard-api/internal/domain/profile"
	"github.com/lifeboat-community/leaderboard-api/internal/domain/record"
	"github.com/lifeboat-community/leaderboard-api/internal/infrastructure/account/warden"
	cacherepo "github.com/lifeboat-community/leaderboard-api/internal/infrastructure/repository/cache"
	"github.com/lifeboat-community/leaderboard-api/internal/infrastructure/repository/memory"
	"github.com/lifeboat-community/leaderboard-api/internal/infrastructure/repository/postgres"
	"github.com/lifeboat-community/leaderboard-api/internal/interfaces/httpapi"
	basecache "github.com/lifeboat-community/leaderboard-api/internal/platform/cache"
	idgen "github.com/lifeboat-community/leaderboard-api/internal/platform/id"
	"github.com/lifeboat-community/leaderboard-api/internal/platform/logging"
	"github.com/lifeboat-community/leaderboard-api/internal/platform/resilience"
	"github.com/lifeboat-community/leaderboard-api/internal/usecase"
)

type repositories struct {
	gamemodes  gamemode.Repository
	categories category.Repository
	profiles   profile.Repository
	records    record.Repository
	auditLog   moderationlog.Repository
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, err
	}

	store := basecache.NewStore(cfg.CacheTTL)

	// Catalog reads dominate traffic, so gamemodes and categories go through
	// the read-through decorators.
	gamemodeRepo := cacherepo.NewGamemodeRepository(repos.gamemodes, store)
	categoryRepo := cacherepo.NewCategoryRepository(repos.categories, store)

	idGen := idgen.NewRandomGenerator()

	catalogSvc := usecase.NewCatalogService(gamemodeRepo, categoryRepo)
	leaderboardSvc := usecase.NewLeaderboardService(categoryRepo, repos.records, repos.profiles, store)
	submissionSvc := usecase.NewSubmissionService(categoryRepo, repos.records, idGen, logger)
	moderationSvc := usecase.NewModerationService(repos.records, repos.profiles, repos.auditLog, store, idGen, logger)
	adminSvc := usecase.NewAdminService(gamemodeRepo, categoryRepo, repos.profiles, store, idGen, logger)

	proofChecker := youtube.NewClient(youtube.ClientConfig{
		HTTPClient: &http.Client{Timeout: cfg.YouTubeTimeout},
		BaseURL:    cfg.YouTubeBaseURL,
		Timeout:    cfg.YouTubeTimeout,
		MaxRetries: cfg.YouTubeMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.YouTubeCircuitEnabled,
			FailureThreshold: cfg.YouTubeCircuitFailureCount,
			OpenTimeout:      cfg.YouTubeCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.YouTubeCircuitHalfOpenMaxReq,
		},
	})
	proofSweepSvc := usecase.NewProofSweepService(repos.records, proofChecker, cfg.ProofSweepWorkers, logger)

	wardenClient := warden.NewClient(warden.ClientConfig{
		HTTPClient:     &http.Client{Timeout: cfg.WardenTimeout},
		BaseURL:        cfg.WardenBaseURL,
		IntrospectPath: cfg.WardenIntrospectPath,
		AdminKey:       cfg.WardenAdminKey,
		CacheTTL:       cfg.WardenCacheTTL,
		Logger:         logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.WardenCircuitEnabled,
			FailureThreshold: cfg.WardenCircuitFailureCount,
			OpenTimeout:      cfg.WardenCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.WardenCircuitHalfOpenMaxReq,
		},
	})

	handler := httpapi.NewHandler(
		catalogSvc,
		leaderboardSvc,
		submissionSvc,
		moderationSvc,
		adminSvc,
		proofSweepSvc,
		logger,
	)
	router := httpapi.NewRouter(handler, wardenClient, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, error) {
	switch cfg.StoreBackend {
	case config.StorePostgres:
		db, err := openDB(cfg, logger)
		if err != nil {
			return repositories{}, fmt.Errorf("open database: %w", err)
		}
		return repositories{
			gamemodes:  postgres.NewGamemodeRepository(db),
			categories: postgres.NewCategoryRepository(db),
			profiles:   postgres.NewProfileRepository(db),
			records:    postgres.NewRecordRepository(db),
			auditLog:   postgres.NewModerationLogRepository(db),
		}, nil
	default:
		logger.Info("using in-memory store", "backend", cfg.StoreBackend)
		return repositories{
			gamemodes:  memory.NewGamemodeRepository(memory.SeedGamemodes()),
			categories: memory.NewCategoryRepository(memory.SeedCategories()),
			profiles:   memory.NewProfileRepository(memory.SeedProfiles()),
			records:    memory.NewRecordRepository(memory.SeedRecords()),
			auditLog:   memory.NewModerationLogRepository(),
		}, nil
	}
}
