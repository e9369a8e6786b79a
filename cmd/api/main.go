// Package main is the entry point for the intranet-portal API.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"intranet-portal/internal/app/service"
	"intranet-portal/internal/config"
	"intranet-portal/internal/domain"
	rediscache "intranet-portal/internal/infra/redis"
	"intranet-portal/internal/infra/seed"
	"intranet-portal/internal/infra/store"
	"intranet-portal/internal/job"
	"intranet-portal/internal/logger"
	"intranet-portal/internal/transport/httpserver"
	"intranet-portal/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	v := validator.New()
	if err := v.Validate(cfg); err != nil {
		panic("invalid config: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(
		logger.Config{
			Level:  cfg.Logger.Level,
			Format: cfg.Logger.Format,
			Output: cfg.Logger.Output,
		},
		logger.SentryConfig{
			Enabled:     cfg.Sentry.Enabled,
			DSN:         cfg.Sentry.DSN,
			Environment: cfg.Sentry.Environment,
			SampleRate:  cfg.Sentry.SampleRate,
		},
	)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting intranet-portal",
		zap.String("env", cfg.App.Env),
		zap.Int("port", cfg.App.Port),
	)

	// Load the initial snapshot (embedded default or seed file)
	users, items, err := seed.Load(cfg.Seed.Path, v)
	if err != nil {
		log.Fatal("failed to load seed data", zap.Error(err))
	}

	mem := store.NewMemory(users, items, log.Logger)
	log.Info("snapshot loaded",
		zap.Int("users", len(users)),
		zap.Int("contents", len(items)),
	)

	// Remote CMS export source with periodic snapshot refresh (optional)
	var scheduler *job.RefreshScheduler
	if cfg.Seed.Remote.Enabled {
		source := seed.NewClient(
			seed.ClientConfig{
				BaseURL:  cfg.Seed.Remote.BaseURL,
				Endpoint: cfg.Seed.Remote.Endpoint,
				Timeout:  cfg.Seed.Remote.Timeout,
				Retry: seed.RetryConfig{
					MaxAttempts: cfg.Seed.Remote.Retry.MaxAttempts,
					WaitTime:    cfg.Seed.Remote.Retry.WaitTime,
					MaxWaitTime: cfg.Seed.Remote.Retry.MaxWaitTime,
				},
				CB: seed.CBConfig{
					MaxRequests:  cfg.Seed.Remote.CB.MaxRequests,
					Interval:     cfg.Seed.Remote.CB.Interval,
					Timeout:      cfg.Seed.Remote.CB.Timeout,
					FailureRatio: cfg.Seed.Remote.CB.FailureRatio,
				},
			},
			v,
			log.Logger,
		)

		if cfg.Refresh.Enabled {
			refreshSvc := service.NewRefreshService(mem, source, log.Logger)
			scheduler = job.NewRefreshScheduler(
				refreshSvc,
				job.RefreshConfig{
					Interval:  cfg.Refresh.Interval,
					Timeout:   cfg.Refresh.Timeout,
					OnStartup: cfg.Refresh.OnStartup,
				},
				log.Logger,
			)
			scheduler.Start(cfg.Refresh.OnStartup)
		}
	}

	// Search response cache (optional, based on config)
	var cache domain.Cache
	if cfg.Cache.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("failed to connect to Redis", zap.Error(err))
		}
		defer func() { _ = redisClient.Close() }()

		cache = rediscache.NewCache(redisClient, log.Logger, cfg.Cache.KeyPrefix)
		log.Info("search cache enabled",
			zap.String("redis", cfg.Redis.Addr()),
			zap.Duration("search_ttl", cfg.Cache.SearchTTL),
			zap.String("key_prefix", cfg.Cache.KeyPrefix),
		)
	} else {
		log.Info("search cache disabled")
	}

	// Create services
	contentSvc := service.NewContentService(mem, cache, cfg.Cache.SearchTTL, log.Logger)
	directorySvc := service.NewDirectoryService(mem, log.Logger)

	// Create HTTP server
	server := httpserver.NewServer(
		httpserver.ServerConfig{
			Port:      cfg.App.Port,
			BodyLimit: 1024 * 1024, // 1MB
			Debug:     cfg.App.Debug,
		},
		contentSvc,
		directorySvc,
		mem,
		log.Logger,
	)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info("shutdown signal received")

		if scheduler != nil {
			scheduler.Stop()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.App.ShutdownWithContext(ctx); err != nil {
			log.Error("server shutdown error", zap.Error(err))
		}
	}()

	// Start server
	if err := server.Start(cfg.App.Port); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
