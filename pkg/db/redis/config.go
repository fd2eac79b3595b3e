// Package redis предоставляет общую реализацию клиента Redis.
package redis

import (
	"fmt"
	"time"
)

// DefaultValues содержит значения по умолчанию для Redis.
// Значения должны быть синхронизированы с тегами env-default в RedisConfig сервиса.
const (
	DefaultHost         = "localhost"
	DefaultPort         = 6379
	DefaultPassword     = ""
	DefaultDB           = 0
	DefaultPoolSize     = 10
	DefaultDialTimeout  = 5 * time.Second
	DefaultReadTimeout  = 3 * time.Second
	DefaultWriteTimeout = 3 * time.Second
)

// Config содержит настройки подключения к Redis.
type Config struct {
	Host         string
	Port         int
	Password     string
	DB           int
	PoolSize     int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DefaultConfig возвращает конфигурацию Redis по умолчанию.
func DefaultConfig() *Config {
	return &Config{
		Host:         DefaultHost,
		Port:         DefaultPort,
		Password:     DefaultPassword,
		DB:           DefaultDB,
		PoolSize:     DefaultPoolSize,
		DialTimeout:  DefaultDialTimeout,
		ReadTimeout:  DefaultReadTimeout,
		WriteTimeout: DefaultWriteTimeout,
	}
}

// Address возвращает адрес Redis в формате host:port.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
