package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/dtroode/habiro-server/internal/model"
)

const (
	DefaultTTL    = 10 * time.Minute
	DefaultPrefix = "habiro:ranking:"
)

type redisAPI interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

var _ model.RankingCache = (*LeaderboardCache)(nil)

// LeaderboardCache stores computed rankings as JSON, one key per window.
type LeaderboardCache struct {
	client redisAPI
	prefix string
	ttl    time.Duration
}

// NewLeaderboardCache creates a cache over client. A non-positive ttl uses DefaultTTL.
func NewLeaderboardCache(client redisAPI, ttl time.Duration) *LeaderboardCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &LeaderboardCache{
		client: client,
		prefix: DefaultPrefix,
		ttl:    ttl,
	}
}

// NewClient connects to Redis and verifies the connection.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

func (c *LeaderboardCache) key(window model.RankingWindow) string {
	return c.prefix + string(window)
}

// Get returns the cached ranking for window. A missing key is not an error.
func (c *LeaderboardCache) Get(ctx context.Context, window model.RankingWindow) ([]model.RankingEntry, bool, error) {
	raw, err := c.client.Get(ctx, c.key(window)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get cached ranking: %w", err)
	}

	var entries []model.RankingEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached ranking: %w", err)
	}
	return entries, true, nil
}

func (c *LeaderboardCache) Set(ctx context.Context, window model.RankingWindow, entries []model.RankingEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode ranking: %w", err)
	}
	if err := c.client.Set(ctx, c.key(window), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache ranking: %w", err)
	}
	return nil
}
