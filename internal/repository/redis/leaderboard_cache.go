// Package redis caches the computed leaderboard view. A stale leaderboard
// is preferable to an unavailable one, so every miss or failure here falls
// back to a fresh computation by the caller.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"mentorhub-backend/internal/domain"
)

const leaderboardKey = "leaderboard:entries"

var ErrCacheMiss = errors.New("leaderboard cache miss")

type LeaderboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewLeaderboardCache(client *redis.Client, ttl time.Duration) *LeaderboardCache {
	return &LeaderboardCache{client: client, ttl: ttl}
}

// Get returns the full cached ranking, newest computation first wins.
func (c *LeaderboardCache) Get(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	data, err := c.client.Get(ctx, leaderboardKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}

	var entries []domain.LeaderboardEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Set replaces the cached ranking. The TTL bounds how stale a reader can
// observe the board when the rebuild job stops running.
func (c *LeaderboardCache) Set(ctx context.Context, entries []domain.LeaderboardEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, leaderboardKey, data, c.ttl).Err()
}

// Invalidate drops the cached ranking.
func (c *LeaderboardCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, leaderboardKey).Err()
}
