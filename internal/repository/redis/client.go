package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/iamasit07/4-in-a-row/minimax/internal/service/tournament"
	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client
var redisEnabled bool

// InitRedis connects to addr. An unreachable server only disables the
// Redis sink; it never stops the caller.
func InitRedis(addr, password string) error {
	if addr == "" {
		redisEnabled = false
		return nil
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := RedisClient.Ping(ctx).Err(); err != nil {
		log.Printf("[REDIS] Warning: Could not connect to Redis: %v. Summaries will not be stored.", err)
		redisEnabled = false
		return nil
	}

	redisEnabled = true
	log.Println("[REDIS] Connected successfully")
	return nil
}

// IsRedisEnabled returns whether Redis is available
func IsRedisEnabled() bool {
	return redisEnabled
}

// CloseRedis closes the Redis connection
func CloseRedis() error {
	if RedisClient != nil {
		return RedisClient.Close()
	}
	return nil
}

// Cache is the subset of Redis the summary store needs.
type Cache interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}

// RedisCache acts as a wrapper around redis.Client to implement Cache
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (r *RedisCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return r.client.Set(ctx, key, value, expiration).Err()
}

// SummaryStore keeps the latest tournament summaries for a limited time.
type SummaryStore struct {
	cache Cache
	ttl   time.Duration
}

func NewSummaryStore(cache Cache, ttl time.Duration) *SummaryStore {
	return &SummaryStore{cache: cache, ttl: ttl}
}

func SummaryKey(runID, strategy string) string {
	return fmt.Sprintf("tournament:%s:%s", runID, strings.ToLower(strings.TrimSpace(strategy)))
}

func (s *SummaryStore) Publish(ctx context.Context, summary tournament.Summary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %v", err)
	}
	key := SummaryKey(summary.RunID, summary.Strategy)
	if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
		return fmt.Errorf("failed to store summary %s: %v", key, err)
	}
	log.Printf("[REDIS] Stored summary %s", key)
	return nil
}
