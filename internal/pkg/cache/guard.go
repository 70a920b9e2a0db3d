package cache

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultGuardTTL bounds how long a claimed key is remembered.
const DefaultGuardTTL = 24 * time.Hour

// RedisGuard claims keys with SETNX so a key is granted once across all
// processes sharing the cache.
type RedisGuard struct {
	rdb    *redis.Client
	ttl    time.Duration
	prefix string
}

func NewRedisGuard(rdb *redis.Client, ttl time.Duration) *RedisGuard {
	if ttl <= 0 {
		ttl = DefaultGuardTTL
	}
	return &RedisGuard{rdb: rdb, ttl: ttl, prefix: "siteforge:once:"}
}

func (g *RedisGuard) Claim(ctx context.Context, key string) (bool, error) {
	return g.rdb.SetNX(ctx, g.prefix+key, time.Now().UTC().Format(time.RFC3339), g.ttl).Result()
}

// MemoryGuard is the single-process fallback used when no cache is configured.
type MemoryGuard struct {
	mu      sync.Mutex
	ttl     time.Duration
	claimed map[string]time.Time
	now     func() time.Time
}

func NewMemoryGuard(ttl time.Duration) *MemoryGuard {
	if ttl <= 0 {
		ttl = DefaultGuardTTL
	}
	return &MemoryGuard{ttl: ttl, claimed: make(map[string]time.Time), now: time.Now}
}

func (g *MemoryGuard) Claim(_ context.Context, key string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	for k, exp := range g.claimed {
		if now.After(exp) {
			delete(g.claimed, k)
		}
	}
	if _, ok := g.claimed[key]; ok {
		return false, nil
	}
	g.claimed[key] = now.Add(g.ttl)
	return true, nil
}
