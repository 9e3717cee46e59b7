package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config holds the Redis cache settings.
type Config struct {
	KeyPrefix string        `mapstructure:"key_prefix"`
	TTL       time.Duration `mapstructure:"ttl"`
}

const defaultTTL = 24 * time.Hour

// ProgressCache keeps the last answered question id per user so the
// next-question path can usually skip the document store read.
type ProgressCache interface {
	// GetLastQuestionID returns the cached id. A miss is (0, false, nil).
	GetLastQuestionID(ctx context.Context, userID string) (int, bool, error)

	// SetLastQuestionID stores the id with the configured TTL.
	SetLastQuestionID(ctx context.Context, userID string, questionID int) error
}

type progressCache struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// NewProgressCache creates a Redis-backed progress cache.
func NewProgressCache(client *redis.Client, cfg Config) ProgressCache {
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	return &progressCache{
		client:    client,
		keyPrefix: cfg.KeyPrefix,
		ttl:       ttl,
	}
}

func (c *progressCache) key(userID string) string {
	return c.keyPrefix + "progress:" + userID
}

func (c *progressCache) GetLastQuestionID(ctx context.Context, userID string) (int, bool, error) {
	data, err := c.client.Get(ctx, c.key(userID)).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	id, err := strconv.Atoi(data)
	if err != nil {
		// Treat a corrupted value as a miss; the store remains the
		// source of truth.
		return 0, false, nil
	}

	return id, true, nil
}

func (c *progressCache) SetLastQuestionID(ctx context.Context, userID string, questionID int) error {
	return c.client.Set(ctx, c.key(userID), strconv.Itoa(questionID), c.ttl).Err()
}
