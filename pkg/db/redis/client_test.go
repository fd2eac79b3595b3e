package redis_test

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mynote/pkg/db/redis"
)

func configFor(t *testing.T, addr string) *redis.Config {
	t.Helper()

	host, portStr, _ := strings.Cut(addr, ":")
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	cfg := redis.DefaultConfig()
	cfg.Host = host
	cfg.Port = port
	return cfg
}

func TestNewClient_Success(t *testing.T) {
	s := miniredis.RunT(t)
	ctx := context.Background()

	client, err := redis.NewClient(ctx, configFor(t, s.Addr()))
	require.NoError(t, err)
	require.NotNil(t, client)

	require.NoError(t, client.Ping(ctx))
	require.NoError(t, client.RawClient().Set(ctx, "key", "value", time.Minute).Err())

	got, err := s.Get("key")
	require.NoError(t, err)
	assert.Equal(t, "value", got)

	assert.NoError(t, client.Close(ctx))
}

func TestNewClient_ConnectionFailure(t *testing.T) {
	cfg := &redis.Config{
		Host:         "127.0.0.1",
		Port:         1,
		DialTimeout:  100 * time.Millisecond,
		ReadTimeout:  100 * time.Millisecond,
		WriteTimeout: 100 * time.Millisecond,
	}

	client, err := redis.NewClient(context.Background(), cfg)

	require.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), redis.ErrConnect)
}

func TestConfigAddress(t *testing.T) {
	cfg := redis.DefaultConfig()
	assert.Equal(t, "localhost:6379", cfg.Address())
}
