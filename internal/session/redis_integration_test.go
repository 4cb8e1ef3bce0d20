package session

import (
	"context"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestRedisStoreIntegration(t *testing.T) {
	ctx := context.Background()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7-alpine",
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Purge(resource) })

	client := redis.NewClient(&redis.Options{Addr: "localhost:" + resource.GetPort("6379/tcp")})
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, pool.Retry(func() error {
		return client.Ping(ctx).Err()
	}))

	store := NewRedisStore(client, "test:session:")

	require.NoError(t, store.Save(ctx, "abc", 11, time.Minute))
	id, err := store.Load(ctx, "abc")
	require.NoError(t, err)
	require.Equal(t, int64(11), id)

	ttl, err := client.TTL(ctx, "test:session:abc").Result()
	require.NoError(t, err)
	require.Greater(t, ttl, time.Duration(0))

	require.NoError(t, store.Delete(ctx, "abc"))
	_, err = store.Load(ctx, "abc")
	require.ErrorIs(t, err, ErrNotFound)

	m := NewManager(store, testSecret, time.Minute, "test")
	token, err := m.Issue(ctx, 99)
	require.NoError(t, err)
	userID, err := m.Resolve(ctx, token)
	require.NoError(t, err)
	require.Equal(t, int64(99), userID)
}
