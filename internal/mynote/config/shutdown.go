package config

import (
	"time"
)

// ShutdownConfig содержит настройки для graceful shutdown.
type ShutdownConfig struct {
	Timeout int `yaml:"timeout" env:"MYNOTE_GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"5"`
}

// GetTimeout возвращает timeout как time.Duration.
func (s *ShutdownConfig) GetTimeout() time.Duration {
	return time.Duration(s.Timeout) * time.Second
}

// StartupConfig содержит настройки повторного подключения к зависимостям при старте.
type StartupConfig struct {
	ConnectAttempts int           `yaml:"connect_attempts" env:"MYNOTE_STARTUP_CONNECT_ATTEMPTS" env-default:"5"`
	ConnectBackoff  time.Duration `yaml:"connect_backoff" env:"MYNOTE_STARTUP_CONNECT_BACKOFF" env-default:"500ms"`
}
