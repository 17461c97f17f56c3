// Package suite gives integration tests a clean Redis server running in a
// throwaway docker container.
package suite

import (
	"context"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

const (
	containerLifetime = 2 * time.Minute
	startupTimeout    = 2 * time.Minute
)

var redisContainer = dockertest.RunOptions{
	Repository: "redis",
	Tag:        "alpine",
}

type Suite struct {
	*testing.T

	// Addr is the host:port the container's Redis listens on.
	Addr    string
	Storage *redis.Client
}

// New - starts Redis, connects to it and flushes the database. Everything
// is torn down when the test finishes. Skipped in -short mode.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	if testing.Short() {
		t.Skip("redis integration test needs docker")
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	t.Cleanup(cancel)

	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "could not connect to docker")
	pool.MaxWait = startupTimeout

	resource := startRedis(t, pool)
	addr := resource.GetHostPort("6379/tcp")

	client := connect(ctx, t, pool, addr)
	require.NoError(t, client.FlushDB(ctx).Err(), "could not flush redis")

	return ctx, &Suite{
		T:       t,
		Addr:    addr,
		Storage: client,
	}
}

func startRedis(t *testing.T, pool *dockertest.Pool) *dockertest.Resource {
	t.Helper()

	options := redisContainer
	resource, err := pool.RunWithOptions(&options, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err, "could not start redis container")

	// hard limit in case the cleanup below never runs
	_ = resource.Expire(uint(containerLifetime.Seconds()))

	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Errorf("could not purge redis container: %v", err)
		}
	})

	return resource
}

// connect - retries until the server accepts connections.
func connect(ctx context.Context, t *testing.T, pool *dockertest.Pool, addr string) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })

	err := pool.Retry(func() error {
		return client.Ping(ctx).Err()
	})
	require.NoError(t, err, "redis never answered at %s", addr)

	return client
}
