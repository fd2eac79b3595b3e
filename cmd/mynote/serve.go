package main

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	mygrpc "mynote/internal/mynote/adapters/grpc"
	httpServer "mynote/internal/mynote/adapters/http"
	"mynote/internal/mynote/adapters/http/middleware"
	pgAdapter "mynote/internal/mynote/adapters/postgres"
	redisAdapter "mynote/internal/mynote/adapters/redis"
	"mynote/internal/mynote/adapters/services"
	"mynote/internal/mynote/app"
	"mynote/internal/mynote/config"
	"mynote/pkg/db/postgres"
	"mynote/pkg/db/redis"
	"mynote/pkg/logger"
	"mynote/pkg/retry"
	"mynote/pkg/shutdown"
)

// Константы для сообщений сервиса.
const (
	LogInitDatabase        = "initializing database"
	LogInitRedis           = "initializing session store"
	LogInitServices        = "initializing services"
	LogInitHTTPServer      = "initializing HTTP server"
	LogStartingHTTP        = "starting HTTP server"
	LogStoppingHTTP        = "stopping HTTP server"
	LogServiceShutdownDone = "mynote shutdown complete"
	LogDefaultSecret       = "session secret is not set, using the default value"

	ErrConnectDatabase = "failed to connect to database"
	ErrRunMigrations   = "failed to run migrations"
	ErrConnectRedis    = "failed to connect to Redis"
	ErrStartGRPC       = "failed to start gRPC health server"
	ErrStartHTTPServer = "failed to start HTTP server"
)

func runServe(rt *bootstrap) error {
	ctx, cfg, log := rt.ctx, rt.cfg, rt.log

	if cfg.Session.UsesDefaultSecret() {
		if cfg.Logging.GetEnvironment() == logger.Production {
			return config.ErrDefaultSessionSecret
		}
		log.Warn(ctx, LogDefaultSecret)
	}

	log.Info(ctx, LogInitDatabase)
	connectRetry := retry.DefaultConfig()
	connectRetry.MaxAttempts = cfg.Startup.ConnectAttempts
	connectRetry.InitialBackoff = cfg.Startup.ConnectBackoff

	var db *postgres.Database
	err := retry.Do(ctx, "postgres", connectRetry, func(ctx context.Context) error {
		var connErr error
		db, connErr = postgres.New(ctx, cfg.Postgres.GetDSN(), cfg.Postgres.MinConn, cfg.Postgres.MaxConn)
		return connErr
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrConnectDatabase, err)
	}

	if err := postgres.MigrateDSN(ctx, cfg.Postgres.GetConnectionURL(), cfg.Postgres.GetMigrationsURL()); err != nil {
		db.Close(ctx)
		return fmt.Errorf("%s: %w", ErrRunMigrations, err)
	}

	log.Info(ctx, LogInitRedis)
	var redisClient *redis.Client
	err = retry.Do(ctx, "redis", connectRetry, func(ctx context.Context) error {
		var connErr error
		redisClient, connErr = redis.NewClient(ctx, cfg.Redis.ToClientConfig())
		return connErr
	})
	if err != nil {
		db.Close(ctx)
		return fmt.Errorf("%s: %w", ErrConnectRedis, err)
	}

	log.Info(ctx, LogInitServices)
	repos := pgAdapter.NewRepositoryFactory(db.Pool())
	svcFactory := services.NewServiceFactory(cfg.Session.Secret, cfg.Password.BCryptCost)

	authUseCase := app.NewAuthUseCase(repos.UserRepository(), svcFactory.PasswordService())
	noteUseCase := app.NewNoteUseCase(repos.NoteRepository())

	log.Info(ctx, LogInitHTTPServer)
	fiberApp := fiber.New(fiber.Config{
		AppName:      "mynote",
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	})

	httpServer.SetupRouter(fiberApp, httpServer.Dependencies{
		Auth:     authUseCase,
		Notes:    noteUseCase,
		Sessions: redisAdapter.NewSessionStore(redisClient.RawClient()),
		Signer:   svcFactory.CookieSigner(),
		Session: middleware.SessionOptions{
			CookieName: cfg.Session.CookieName,
			TTL:        cfg.Session.TTL,
			Secure:     cfg.Session.Secure,
		},
	})

	healthServer := mygrpc.New(&cfg.GRPC, map[string]mygrpc.Probe{
		"postgres": db.Ping,
		"redis":    redisClient.Ping,
	})
	if err := healthServer.Start(ctx); err != nil {
		_ = redisClient.Close(ctx)
		db.Close(ctx)
		return fmt.Errorf("%s: %w", ErrStartGRPC, err)
	}

	log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.GetAddress()))
	go func() {
		if err := fiberApp.Listen(cfg.HTTP.GetAddress(), fiber.ListenConfig{DisableStartupMessage: true}); err != nil {
			log.Error(ctx, ErrStartHTTPServer, zap.Error(err))
		}
	}()

	shutdown.Wait(ctx, cfg.Shutdown.GetTimeout(),
		// Остановка HTTP сервера.
		func(ctx context.Context) error {
			log.Info(ctx, LogStoppingHTTP)
			return fiberApp.ShutdownWithContext(ctx)
		},
		// Остановка gRPC сервера здоровья.
		func(ctx context.Context) error {
			healthServer.Stop(ctx)
			return nil
		},
	)

	// Хранилища закрываются после остановки серверов.
	shutdown.Run(ctx, cfg.Shutdown.GetTimeout(),
		func(ctx context.Context) error {
			return redisClient.Close(ctx)
		},
		func(ctx context.Context) error {
			db.Close(ctx)
			return nil
		},
	)

	log.Info(ctx, LogServiceShutdownDone)
	return nil
}
