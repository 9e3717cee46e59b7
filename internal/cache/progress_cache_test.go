package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, ProgressCache) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	c := NewProgressCache(client, Config{KeyPrefix: "sixfactors:", TTL: time.Hour})

	return mr, c
}

func TestProgressCache_RoundTrip(t *testing.T) {
	_, c := setupRedis(t)
	ctx := context.Background()

	err := c.SetLastQuestionID(ctx, "user123", 7)
	require.NoError(t, err)

	id, ok, err := c.GetLastQuestionID(ctx, "user123")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 7, id)
}

func TestProgressCache_Miss(t *testing.T) {
	_, c := setupRedis(t)

	_, ok, err := c.GetLastQuestionID(context.Background(), "nobody")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestProgressCache_TTL(t *testing.T) {
	mr, c := setupRedis(t)
	ctx := context.Background()

	require.NoError(t, c.SetLastQuestionID(ctx, "user123", 3))
	assert.Equal(t, time.Hour, mr.TTL("sixfactors:progress:user123"))

	mr.FastForward(2 * time.Hour)

	_, ok, err := c.GetLastQuestionID(ctx, "user123")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestProgressCache_CorruptedValueIsAMiss(t *testing.T) {
	mr, c := setupRedis(t)

	mr.Set("sixfactors:progress:user123", "not-a-number")

	_, ok, err := c.GetLastQuestionID(context.Background(), "user123")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestProgressCache_Overwrite(t *testing.T) {
	_, c := setupRedis(t)
	ctx := context.Background()

	require.NoError(t, c.SetLastQuestionID(ctx, "user123", 0))
	require.NoError(t, c.SetLastQuestionID(ctx, "user123", 1))

	id, ok, err := c.GetLastQuestionID(ctx, "user123")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, id)
}

func TestProgressCache_DefaultTTL(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c := NewProgressCache(client, Config{KeyPrefix: "p:"})

	require.NoError(t, c.SetLastQuestionID(context.Background(), "u", 5))
	assert.Equal(t, defaultTTL, mr.TTL("p:progress:u"))
}

func TestProgressCache_ServerDown(t *testing.T) {
	mr, c := setupRedis(t)

	mr.Close()

	_, _, err := c.GetLastQuestionID(context.Background(), "user123")
	assert.Error(t, err)
}
