package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/memespace/market-engine/internal/bootstrap"
	"github.com/memespace/market-engine/pkg/config"
	"github.com/memespace/market-engine/pkg/logger"
	"github.com/memespace/market-engine/pkg/postgresql"
	"github.com/memespace/market-engine/pkg/redis"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(logger.WithLoggingLevel(logger.Level(cfg.App.LogLevel)))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	pgClient, err := postgresql.NewClient(ctx, cfg.Postgres)
	if err != nil {
		appLogger.Error(err, logger.Field{Key: "action", Value: "postgresql_connect"})
		os.Exit(1)
	}
	defer pgClient.Close()

	redisClient := redis.NewClient(appLogger, &cfg.Redis)
	if err := redisClient.Connect(ctx); err != nil {
		appLogger.Error(err, logger.Field{Key: "action", Value: "redis_connect"})
		os.Exit(1)
	}
	defer redisClient.Disconnect(context.Background())

	b := (&bootstrap.Bootstrap{}).Init(bootstrap.BootstrapConfig{
		Config: cfg,
		Logger: appLogger,
		DB:     pgClient,
		Redis:  redisClient,
	})
	defer b.Usecase.Publisher.Close()

	go b.Worker.Settlement.Start(ctx)

	appLogger.Info("market engine started",
		logger.Field{Key: "app", Value: cfg.App.Name},
		logger.Field{Key: "environment", Value: cfg.App.Environment},
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down market engine")
	cancel()

	appLogger.Info("market engine stopped")
}
