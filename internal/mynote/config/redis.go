package config

import (
	"fmt"
	"time"

	"mynote/pkg/db/redis"
)

// RedisConfig представляет конфигурацию Redis для хранения сессий.
type RedisConfig struct {
	Host         string        `yaml:"host" env:"MYNOTE_REDIS_HOST" env-default:"localhost"`
	Port         int           `yaml:"port" env:"MYNOTE_REDIS_PORT" env-default:"6379"`
	Password     string        `yaml:"password" env:"MYNOTE_REDIS_PASSWORD" env-default:""`
	DB           int           `yaml:"db" env:"MYNOTE_REDIS_DB" env-default:"0"`
	DialTimeout  time.Duration `yaml:"dial_timeout" env:"MYNOTE_REDIS_DIAL_TIMEOUT" env-default:"5s"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"MYNOTE_REDIS_READ_TIMEOUT" env-default:"3s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"MYNOTE_REDIS_WRITE_TIMEOUT" env-default:"3s"`
	PoolSize     int           `yaml:"pool_size" env:"MYNOTE_REDIS_POOL_SIZE" env-default:"10"`
}

// GetAddress возвращает адрес Redis.
func (c *RedisConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ToClientConfig преобразует настройки в конфигурацию клиента pkg/db/redis.
func (c *RedisConfig) ToClientConfig() *redis.Config {
	return &redis.Config{
		Host:         c.Host,
		Port:         c.Port,
		Password:     c.Password,
		DB:           c.DB,
		PoolSize:     c.PoolSize,
		DialTimeout:  c.DialTimeout,
		ReadTimeout:  c.ReadTimeout,
		WriteTimeout: c.WriteTimeout,
	}
}
