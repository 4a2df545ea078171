package leaderboard_cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"arcade_backend/internal/model"
	"arcade_backend/internal/repository"

	"github.com/redis/go-redis/v9"
)

type cache struct {
	client *redis.Client
}

func NewLeaderboardCache(client *redis.Client) repository.LeaderboardCache {
	return &cache{
		client: client,
	}
}

// Get - чтение кэшированного списка. Промах и истекший TTL
// неразличимы: redis сам удаляет ключ по истечении
func (c *cache) Get(ctx context.Context, key string) ([]model.LeaderboardEntry, bool, error) {
	raw, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var entries []model.LeaderboardEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		// Битое значение считаем промахом, оно будет перезаписано
		return nil, false, nil
	}

	return entries, true, nil
}

// Put - запись списка с TTL
func (c *cache) Put(ctx context.Context, key string, entries []model.LeaderboardEntry, ttl time.Duration) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, raw, ttl).Err()
}
