// README: Entry point; loads config, wires the composer and serves the HTTP API until signalled.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/deepaklokare24/travel-agent/internal/app"
	"github.com/deepaklokare24/travel-agent/internal/config"
	httptransport "github.com/deepaklokare24/travel-agent/internal/http"
	"github.com/deepaklokare24/travel-agent/internal/http/middleware"
	"github.com/deepaklokare24/travel-agent/internal/infra"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := infra.NewLogger(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	composer, closeComposer, err := app.NewComposer(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("wire composer", zap.Error(err))
	}
	defer closeComposer()

	var limiter middleware.Limiter = middleware.NewMemoryLimiter(cfg.HTTP.RateLimitPerMin)
	if cfg.Redis.Addr != "" {
		rdb, err := infra.NewRedis(ctx, cfg.Redis.Addr)
		if err != nil {
			logger.Fatal("redis init", zap.Error(err))
		}
		defer rdb.Close()
		limiter = middleware.NewRedisLimiter(rdb, cfg.HTTP.RateLimitPerMin)
		logger.Info("rate limiting via redis", zap.String("addr", cfg.Redis.Addr))
	}

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Composer:    composer,
		Limiter:     limiter,
		Logger:      logger,
		CORSOrigins: cfg.HTTP.CORSOrigins,
	})

	// generation plus a provider round must fit in one response
	writeTimeout := cfg.Timeouts.Generation + cfg.Timeouts.Provider + 10*time.Second
	server := httptransport.NewServer(cfg.HTTP.Addr, router, writeTimeout, logger)
	if err := server.Run(ctx); err != nil {
		logger.Fatal("http server", zap.Error(err))
	}
}
