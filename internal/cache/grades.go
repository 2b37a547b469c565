package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// GradeCache stores JSON-serialized grading results in Redis so repeated
// submissions of the same answer do not trigger repeated AI calls. A nil
// client disables caching; Redis errors degrade to cache misses.
type GradeCache struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// NewGradeCache constructs a grade cache. Client may be nil.
func NewGradeCache(client *redis.Client, ttl time.Duration, logger zerolog.Logger) *GradeCache {
	return &GradeCache{
		client: client,
		ttl:    ttl,
		logger: logger.With().Str("component", "grade_cache").Logger(),
	}
}

// Key derives a stable cache key from the identifying parts of a grading
// call.
func Key(parts ...string) string {
	h := sha256.New()
	for _, part := range parts {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return "grade:" + hex.EncodeToString(h.Sum(nil))
}

// Get loads a cached value into dest, reporting whether it was found.
func (c *GradeCache) Get(ctx context.Context, key string, dest any) bool {
	if c == nil || c.client == nil {
		return false
	}

	payload, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn().Err(err).Msg("failed to read grade cache")
		}
		return false
	}

	if err := json.Unmarshal([]byte(payload), dest); err != nil {
		c.logger.Warn().Err(err).Msg("failed to decode cached grade")
		return false
	}

	c.logger.Debug().Str("key", key).Msg("grade cache hit")
	return true
}

// Set stores a value under key for the configured TTL.
func (c *GradeCache) Set(ctx context.Context, key string, value any) {
	if c == nil || c.client == nil {
		return
	}

	payload, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn().Err(err).Msg("failed to encode grade for cache")
		return
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.Warn().Err(err).Msg("failed to store grade cache")
	}
}
