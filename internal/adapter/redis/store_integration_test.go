//go:build integration

package redis_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/learning-continuity/internal/adapter/kv"
	"github.com/heartmarshall/learning-continuity/internal/adapter/kv/kvtest"
	"github.com/heartmarshall/learning-continuity/internal/adapter/redis"
	"github.com/heartmarshall/learning-continuity/internal/config"
)

func startRedis(t *testing.T) string {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	return fmt.Sprintf("redis://%s:%s/0", host, port.Port())
}

func TestStore_Contract(t *testing.T) {
	url := startRedis(t)

	client, err := redis.NewClient(context.Background(), config.RedisConfig{URL: url})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	kvtest.RunStoreSuite(t, func(t *testing.T) kv.Store {
		require.NoError(t, client.FlushDB(context.Background()).Err())
		return redis.NewStore(client, "continuity:")
	})
}

func TestStore_NamespaceIsolation(t *testing.T) {
	url := startRedis(t)

	opt, err := goredis.ParseURL(url)
	require.NoError(t, err)
	client := goredis.NewClient(opt)
	t.Cleanup(func() { _ = client.Close() })

	ctx := context.Background()
	a := redis.NewStore(client, "a:")
	b := redis.NewStore(client, "b:")

	require.NoError(t, a.Set(ctx, "sessions/s1", []byte("from-a")))

	_, ok, err := b.Get(ctx, "sessions/s1")
	require.NoError(t, err)
	require.False(t, ok)

	keys, err := a.ListKeysByPrefix(ctx, "sessions/")
	require.NoError(t, err)
	require.Equal(t, []string{"sessions/s1"}, keys)
}
