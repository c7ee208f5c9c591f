package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lure/sales-dashboard/internal/cache"
	"github.com/lure/sales-dashboard/internal/config"
	httpapi "github.com/lure/sales-dashboard/internal/http"
	"github.com/lure/sales-dashboard/internal/period"
	"github.com/lure/sales-dashboard/internal/service"
	"github.com/lure/sales-dashboard/internal/sheets"
	"github.com/lure/sales-dashboard/internal/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	zerolog.TimeFieldFormat = time.RFC3339
	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	logger := log.Level(level).With().Str("service", "sales-dashboard").Logger()

	var store cache.Cache
	switch {
	case cfg.CacheTTL <= 0:
		store = cache.NewNoop()
		logger.Info().Msg("cache disabled")
	case cfg.RedisURL == "":
		store = cache.NewMemory()
		logger.Info().Msg("using in-memory cache")
	default:
		rc, err := cache.NewRedis(cfg.RedisURL, "sales-dashboard:")
		if err != nil {
			logger.Fatal().Err(err).Msg("invalid redis url")
		}
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := rc.Ping(pingCtx); err != nil {
			cancel()
			logger.Fatal().Err(err).Msg("failed to connect redis")
		}
		cancel()
		defer rc.Close()
		store = rc
		logger.Info().Msg("using redis cache")
	}

	metrics := telemetry.New()
	policy := service.NewWonPolicy(cfg.WonStatusList()...)
	svc := &service.DashboardService{
		Source:     sheets.NewHTTPSource(cfg.SheetTimeout, cfg.SheetMaxBytes(), logger),
		Cache:      store,
		Metrics:    metrics,
		Policy:     policy,
		TTL:        cfg.CacheTTL,
		DefaultURL: cfg.SheetURL,
		Logger:     logger,
	}
	if cfg.DataSource == config.DataSourceSheet && cfg.SheetURL == "" {
		logger.Warn().Msg("DATA_SOURCE=sheet without SHEET_URL: requests must pass sheetUrl")
	}
	logger.Info().
		Str("data_source", cfg.DataSource).
		Strs("won_statuses", policy.Markers()).
		Dur("cache_ttl", cfg.CacheTTL).
		Msg("dashboard configured")

	router := httpapi.Router(cfg, svc, period.NewResolver(), metrics, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctxShutdown)
	logger.Info().Msg("server stopped")
}
