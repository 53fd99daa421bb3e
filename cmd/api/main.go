package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labos-hq/labos-backend/internal/api"
	"github.com/labos-hq/labos-backend/internal/infrastructure/credentials"
	mongodb "github.com/labos-hq/labos-backend/internal/infrastructure/db/mongo"
	redisdb "github.com/labos-hq/labos-backend/internal/infrastructure/db/redis"
	"github.com/labos-hq/labos-backend/internal/pkg/config"
	"github.com/labos-hq/labos-backend/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	if err := mongodb.EnsureSchema(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure mongodb schema")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer func() {
		_ = rdb.Close()
	}()

	creds, err := credentials.Load(cfg.UsersFile)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.UsersFile).Msg("failed to load credentials")
	}

	e := api.NewRouter(cfg, db, rdb, creds, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting http server")
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("http server stopped")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}
