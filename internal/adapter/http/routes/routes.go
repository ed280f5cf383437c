package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "controle_financeiro/docs" // swag generated
	"controle_financeiro/internal/adapter/http/handlers"
	"controle_financeiro/internal/adapter/http/middleware"
	"controle_financeiro/internal/adapter/persistence/repository"
	"controle_financeiro/internal/config"
	"controle_financeiro/internal/infrastructure/database"
	"controle_financeiro/internal/infrastructure/ratelimit"
	"controle_financeiro/internal/infrastructure/stats"
	"controle_financeiro/internal/infrastructure/telemetry"
	"controle_financeiro/internal/usecase"
	"controle_financeiro/internal/usecase/interfaces"
	"controle_financeiro/pkg"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	APIBasePath     = "/api/v1"
	shutdownTimeout = 10 * time.Second

	msgInternalError = "Erro interno do servidor"
)

// Dependencies is what the router needs. A nil RateLimiter or Stats
// disables the matching middleware.
type Dependencies struct {
	ContaUseCase usecase.IContaUseCase
	RateLimiter  middleware.Limiter
	TrustXFF     bool
	Stats        middleware.StatsRecorder
}

// contaStore is a storage driver: the repository plus its schema setup.
type contaStore interface {
	interfaces.IContaRepository
	repository.SchemaManager
}

func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, deps)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	contaHandler := handlers.NewContaHandler(deps.ContaUseCase)

	v1 := router.Group(APIBasePath)
	addPingRoutes(v1)
	addContaRoutes(v1, contaHandler)
	return router
}

func setMiddlewares(router *gin.Engine, deps Dependencies) {
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error().Str("component", "[http]").Interface("panic", recovered).Msg("recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, pkg.HTTPError{Message: msgInternalError})
	}))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS())
	if deps.Stats != nil {
		router.Use(middleware.RequestStats(deps.Stats))
	}
	if deps.RateLimiter != nil {
		router.Use(middleware.RateLimit(deps.RateLimiter, deps.TrustXFF))
	}
}

// Run wires storage, prepares the contas table and serves HTTP until
// SIGINT/SIGTERM. The listener only opens once the table is ready.
func Run(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := log.With().Str("component", "[server]").Logger()

	if cfg.TelemetryEnabled {
		shutdownTelemetry, err := telemetry.Setup()
		if err != nil {
			return fmt.Errorf("telemetry setup: %w", err)
		}
		defer shutdownTelemetry()
	}

	store, closeStore, err := newContaStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	if err := repository.NewSchemaInitializer(store, cfg.SchemaMode, cfg.SchemaRetryInterval).Run(ctx); err != nil {
		logger.Info().Err(err).Msg("shutdown requested before the contas table was ready")
		return nil
	}

	deps := Dependencies{
		ContaUseCase: usecase.NewContaUseCase(store),
		TrustXFF:     cfg.RateLimit.TrustXFF,
	}
	if cfg.RateLimit.Enabled {
		limiter := ratelimit.NewStore(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		limiter.StartJanitor(ctx)
		deps.RateLimiter = limiter
	}
	if cfg.RequestStats.Enabled {
		rec, closeStats := newStatsRecorder(ctx, cfg.RequestStats)
		defer closeStats()
		deps.Stats = rec
	}

	var handler http.Handler = NewRouter(deps)
	if cfg.TelemetryEnabled {
		handler = telemetry.WrapHandler(handler)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		logger.Info().Str("addr", srv.Addr).Str("storage", cfg.StorageDriver).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to startup the application: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newContaStore(ctx context.Context, cfg config.Config) (contaStore, func(), error) {
	switch cfg.StorageDriver {
	case config.StorageDriverDynamoDB:
		client, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewContaDynamoRepository(client, cfg.DynamoDB.TableName), func() {}, nil
	default:
		pool, err := database.ConnectPostgres(ctx, cfg.Postgres, cfg.TelemetryEnabled)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewContaPostgresRepository(pool, cfg.QueryTimeout), pool.Close, nil
	}
}

// newStatsRecorder prefers Redis; without an address, or when Redis does not
// answer at startup, counters are kept in memory.
func newStatsRecorder(ctx context.Context, cfg config.RequestStatsConfig) (middleware.StatsRecorder, func()) {
	if cfg.RedisAddr == "" {
		return stats.NewMemoryStore(), func() {}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		log.Warn().Err(err).Str("component", "[stats]").Str("addr", cfg.RedisAddr).Msg("redis unavailable, keeping request stats in memory")
		_ = rdb.Close()
		return stats.NewMemoryStore(), func() {}
	}

	return stats.NewRedisStore(rdb, stats.WithPrefix(cfg.Prefix), stats.WithTTL(cfg.TTL)), func() { _ = rdb.Close() }
}
