package config

import (
	"fmt"
	"time"
)

// GRPCConfig конфигурация gRPC сервера проверки здоровья.
type GRPCConfig struct {
	Host string `yaml:"host" env:"MYNOTE_GRPC_HOST" env-default:"0.0.0.0"`
	Port int    `yaml:"port" env:"MYNOTE_GRPC_PORT" env-default:"50051"`
	// CheckInterval - период повторной проверки зависимостей.
	CheckInterval time.Duration `yaml:"check_interval" env:"MYNOTE_GRPC_CHECK_INTERVAL" env-default:"10s"`
}

// GetAddress возвращает адрес для gRPC сервера.
func (g *GRPCConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", g.Host, g.Port)
}
