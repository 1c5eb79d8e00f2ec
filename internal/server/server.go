package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"matrimony-service/internal/config"
	"matrimony-service/internal/events"
	hrest "matrimony-service/internal/handler/rest"
	"matrimony-service/internal/repository"
	"matrimony-service/internal/router"
	"matrimony-service/internal/usecase"
	"matrimony-service/pkg/cache"
	"matrimony-service/pkg/jwtutil"
	"matrimony-service/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Server bundles the HTTP server with the resources it must release on
// shutdown.
type Server struct {
	HTTP    *http.Server
	closers []func() error
	logger  *zap.Logger
}

func NewServer(ctx context.Context, cfg config.AppConfig, logger *zap.Logger) (*Server, error) {
	s := &Server{logger: logger}

	// --- DB connection ---
	dbpool, err := config.ConnectDB(ctx, logger)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	// closed from Shutdown, not here, so the pool outlives NewServer
	s.closers = append(s.closers, func() error { dbpool.Close(); return nil })

	// --- Redis ---
	rcache := cache.NewCache([]string{cfg.RedisAddr}, cfg.RedisPass, false)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	if err := rcache.Ping(pingCtx); err != nil {
		logger.Warn("redis unreachable, cache and rate limiting will degrade", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	}
	cancel()
	s.closers = append(s.closers, rcache.Close)

	// --- Events ---
	var publisher events.ProfilePublisher
	if len(cfg.KafkaBrokers) > 0 {
		publisher = events.NewKafkaPublisher(events.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic, logger), logger)
		logger.Info("profile events enabled", zap.Strings("brokers", cfg.KafkaBrokers), zap.String("topic", cfg.KafkaTopic))
	} else {
		publisher = events.NewNoopPublisher()
		logger.Info("KAFKA_BROKERS not set, profile events disabled")
	}
	s.closers = append(s.closers, publisher.Close)

	// --- JWT ---
	verifier, err := jwtutil.LoadAndBuild(jwtutil.JWTConfig{
		PubPath:  cfg.JWTPubPath,
		Issuer:   cfg.JWTIssuer,
		Audience: cfg.JWTAudience,
	})
	if err != nil {
		s.close()
		return nil, fmt.Errorf("init jwt verifier: %w", err)
	}

	// --- Init repos & usecases ---
	profileRepo := repository.NewProfileRepo(dbpool)
	subRepo := repository.NewSubscriptionRepo(dbpool)

	profileUC := usecase.NewProfileUsecase(profileRepo, rcache, publisher, cfg.ProfileCacheTTL, logger)
	dashboardUC := usecase.NewDashboardUsecase(subRepo, profileUC, rcache, cfg.SubscriptionCacheTTL, logger)

	auth := middleware.NewAuthMiddleware(verifier, dashboardUC, logger)

	// --- HTTP routes ---
	r := chi.NewRouter()
	router.SetupRoutes(r,
		hrest.NewDashboardHandler(dashboardUC, logger),
		hrest.NewProfileHandler(profileUC, logger),
		auth,
		router.Options{
			RateLimitPerMin: cfg.RateLimitPerMin,
			Cache:           rcache,
			TrustProxy:      cfg.TrustProxy,
			Logger:          logger,
		},
	)

	s.HTTP = &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

// Shutdown drains HTTP connections, then releases the pool, redis and the
// kafka writer.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.HTTP.Shutdown(ctx)
	s.close()
	return err
}

func (s *Server) close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			s.logger.Warn("close failed", zap.Error(err))
		}
	}
	s.closers = nil
}
