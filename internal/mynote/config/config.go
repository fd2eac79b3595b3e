// Package config содержит конфигурацию сервиса заметок.
package config

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	pkgconfig "mynote/pkg/config"
	"mynote/pkg/logger"
)

// ServiceName - имя сервиса в логах.
const ServiceName = "mynote"

// Константы ошибок и сообщений для конфигурации.
const (
	LogConfigLoaded     = "mynote configuration loaded"
	ErrFailedLoadConfig = "failed to load mynote configuration"
)

// Config представляет полную конфигурацию приложения.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	GRPC     GRPCConfig     `yaml:"grpc"`
	Postgres PostgresConfig `yaml:"postgres"`
	Redis    RedisConfig    `yaml:"redis"`
	Session  SessionConfig  `yaml:"session"`
	Password PasswordConfig `yaml:"password"`
	Logging  LoggingConfig  `yaml:"logging"`
	Shutdown ShutdownConfig `yaml:"shutdown"`
	Startup  StartupConfig  `yaml:"startup"`
}

// Load загружает конфигурацию из файла path (если он есть) и переменных окружения.
func Load(ctx context.Context, path string) (*Config, error) {
	cfg, err := pkgconfig.Load[Config](ctx, ServiceName, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrFailedLoadConfig, err)
	}

	logger.Log(ctx).Info(ctx, LogConfigLoaded,
		zap.String("http_address", cfg.HTTP.GetAddress()),
		zap.String("grpc_address", cfg.GRPC.GetAddress()),
		zap.String("postgres_host", cfg.Postgres.Host),
		zap.Int("postgres_port", cfg.Postgres.Port),
		zap.String("redis_address", cfg.Redis.GetAddress()),
		zap.String("session_cookie", cfg.Session.CookieName),
		zap.Duration("session_ttl", cfg.Session.TTL),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("log_mode", cfg.Logging.Mode),
		zap.Int("shutdown_timeout_seconds", cfg.Shutdown.Timeout))

	return cfg, nil
}
