package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (*miniredis.Miniredis, *redisRepository) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, &redisRepository{client: client}
}

func TestRedisRepositorySetGetDelete(t *testing.T) {
	mr, repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "centers:all", []int{1, 2}, time.Minute))
	got, err := repo.Get(ctx, "centers:all")
	require.NoError(t, err)
	assert.JSONEq(t, `[1,2]`, got)
	assert.Equal(t, time.Minute, mr.TTL("centers:all"))

	require.NoError(t, repo.Delete(ctx, "centers:all", "unknown"))
	got, err = repo.Get(ctx, "centers:all")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRedisRepositoryIncrementWithTTL(t *testing.T) {
	mr, repo := newTestRepository(t)
	ctx := context.Background()

	count, err := repo.IncrementWithTTL(ctx, "BOOKING:42:1", 30*time.Second)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	mr.FastForward(10 * time.Second)
	count, err = repo.IncrementWithTTL(ctx, "BOOKING:42:1", 30*time.Second)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, 20*time.Second, mr.TTL("BOOKING:42:1"))
}

func TestRedisRepositoryGetFailure(t *testing.T) {
	mr, repo := newTestRepository(t)
	mr.Close()

	_, err := repo.Get(context.Background(), "session:x")
	assert.Error(t, err)
}

func TestRedisRepositoryTrySetNX(t *testing.T) {
	mr, repo := newTestRepository(t)
	ctx := context.Background()

	acquired, err := repo.TrySetNX(ctx, "lock:a", "owner-1", 30*time.Second)
	require.NoError(t, err)
	assert.True(t, acquired)

	acquired, err = repo.TrySetNX(ctx, "lock:a", "owner-2", 30*time.Second)
	require.NoError(t, err)
	assert.False(t, acquired)

	got, err := repo.Get(ctx, "lock:a")
	require.NoError(t, err)
	assert.Equal(t, `"owner-1"`, got)
	assert.Equal(t, 30*time.Second, mr.TTL("lock:a"))
}

func TestRedisRepositoryDeleteIfEqual(t *testing.T) {
	mr, repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.TrySetNX(ctx, "lock:a", "owner-1", 30*time.Second)
	require.NoError(t, err)

	deleted, err := repo.DeleteIfEqual(ctx, "lock:a", "owner-2")
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.True(t, mr.Exists("lock:a"))

	deleted, err = repo.DeleteIfEqual(ctx, "lock:a", "owner-1")
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.False(t, mr.Exists("lock:a"))

	deleted, err = repo.DeleteIfEqual(ctx, "lock:a", "owner-1")
	require.NoError(t, err)
	assert.False(t, deleted)
}
