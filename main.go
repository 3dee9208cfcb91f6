package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"investment-engine/config"
	httpLayer "investment-engine/http"
	"investment-engine/logger"
	"investment-engine/repository"
	"investment-engine/service"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/app.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	base, err := logger.New(cfg.Logging.Level)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = base.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cache, closeCache := buildCache(ctx, cfg, base)
	defer closeCache()

	calcRepo := repository.NewCalculationRepositoryMemory(cfg.Engine.HistorySize)

	opts := service.Options{
		CacheTTL: cfg.Cache.TTL,
		Limits: service.Limits{
			MaxLoanAmount:      cfg.Engine.MaxLoanAmount,
			MaxInterestRate:    cfg.Engine.MaxInterestRate,
			MaxTermYears:       cfg.Engine.MaxTermYears,
			MaxSimulationYears: cfg.Engine.MaxSimulationYears,
			MaxPlans:           cfg.Engine.MaxPlans,
		},
	}

	loanService := service.NewLoanService(calcRepo, cache, opts, logger.Named(base, "svc.loan"))
	projectionService := service.NewProjectionService(loanService, calcRepo, cache, opts, logger.Named(base, "svc.projection"))
	portfolioService := service.NewPortfolioService(loanService, calcRepo, opts, logger.Named(base, "svc.portfolio"))
	historyService := service.NewHistoryService(calcRepo)

	httpLogger := logger.Named(base, "http")
	handlers := httpLayer.Handlers{
		Loan:      httpLayer.NewLoanHandler(loanService, httpLogger),
		Deal:      httpLayer.NewDealHandler(projectionService, httpLogger),
		Portfolio: httpLayer.NewPortfolioHandler(portfolioService, historyService, httpLogger),
	}

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Window)
	defer rateLimiter.Stop()

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpLayer.NewRouter(handlers, rateLimiter, httpLogger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		base.Info("server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		base.Error("error starting server", zap.Error(err))
		return
	case <-ctx.Done():
		base.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		base.Error("error during server shutdown", zap.Error(err))
	}

	base.Info("server exited")
}

// buildCache returns Redis when it is enabled and reachable, otherwise the
// in-process cache. The returned func releases the connection.
func buildCache(ctx context.Context, cfg *config.Config, base *zap.Logger) (repository.CacheRepository, func()) {
	if !cfg.Redis.Enabled {
		return repository.NewMemoryCache(), func() {}
	}

	client := repository.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	redisCache := repository.NewRedisCache(client, cfg.Redis.KeyPrefix)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := redisCache.Ping(pingCtx); err != nil {
		base.Warn("redis unavailable, using in-memory cache",
			zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		_ = redisCache.Close()
		return repository.NewMemoryCache(), func() {}
	}

	base.Info("using redis cache", zap.String("addr", cfg.Redis.Addr))
	return redisCache, func() {
		if err := redisCache.Close(); err != nil {
			base.Warn("error closing redis", zap.Error(err))
		}
	}
}
