package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/seo-review-backend/internal/adapter/postgres"
	"github.com/heartmarshall/seo-review-backend/internal/adapter/postgres/metadata"
	"github.com/heartmarshall/seo-review-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/seo-review-backend/internal/adapter/redis"
	"github.com/heartmarshall/seo-review-backend/internal/auth"
	"github.com/heartmarshall/seo-review-backend/internal/config"
	authsvc "github.com/heartmarshall/seo-review-backend/internal/service/auth"
	"github.com/heartmarshall/seo-review-backend/internal/service/review"
	"github.com/heartmarshall/seo-review-backend/internal/transport/middleware"
	"github.com/heartmarshall/seo-review-backend/internal/transport/rest"
)

// Run is the server entry point. It wires storage, services and the HTTP
// surface, then serves until ctx is cancelled and shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	db := postgres.NewProvider(cfg.Database)
	defer db.Close()

	if err := db.Ping(ctx); err != nil {
		return fmt.Errorf("app: %w", err)
	}
	logger.Info("database connected")

	cache, closeCache, err := openStatsCache(ctx, cfg.Redis, logger)
	if err != nil {
		return err
	}
	defer closeCache()

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.SessionTTL)

	reviewService := newReviewService(logger, db, cache, cfg.Review)
	authService := authsvc.NewService(logger, user.New(db), jwtManager, cfg.Auth)

	limiter := middleware.NewRateLimiter(5 * time.Minute)
	defer limiter.Stop()

	var cachePinger interface{ Ping(context.Context) error }
	if cache != nil {
		cachePinger = cache
	}

	handler := rest.NewRouter(rest.RouterDeps{
		Metadata:    rest.NewMetadataHandler(reviewService, logger),
		Auth:        rest.NewAuthHandler(authService, cfg.Auth, logger),
		Health:      rest.NewHealthHandler(db, cachePinger, BuildVersion()),
		Tokens:      authService,
		RateLimiter: limiter,
		Config:      cfg,
		Logger:      logger,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("app: serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("app: shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// newReviewService keeps the optional cache a true nil interface when Redis
// is disabled.
func newReviewService(logger *slog.Logger, db *postgres.Provider, cache *redis.StatsCache, cfg config.ReviewConfig) *review.Service {
	records := metadata.New(db)
	tx := postgres.NewTxManager(db)
	if cache == nil {
		return review.NewService(logger, records, tx, nil, cfg)
	}
	return review.NewService(logger, records, tx, cache, cfg)
}

// openStatsCache connects to Redis when configured. A nil cache with a no-op
// closer is returned when it is disabled.
func openStatsCache(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) (*redis.StatsCache, func(), error) {
	if !cfg.Enabled() {
		logger.Info("stats cache disabled")
		return nil, func() {}, nil
	}

	client, err := redis.NewClient(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("app: %w", err)
	}
	logger.Info("stats cache connected", slog.String("addr", cfg.Addr))

	return redis.NewStatsCache(client, cfg.StatsTTL), func() { _ = client.Close() }, nil
}
