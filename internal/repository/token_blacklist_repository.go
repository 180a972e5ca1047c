package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// TokenBlacklistRepository 记录已登出的 token，直到它们自然过期。
type TokenBlacklistRepository interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

type redisTokenBlacklist struct {
	redisClient *redis.Client
}

// NewRedisTokenBlacklist 使用 Redis 实现 token 黑名单，键为 blacklist:{token}。
func NewRedisTokenBlacklist(redisClient *redis.Client) TokenBlacklistRepository {
	return &redisTokenBlacklist{redisClient: redisClient}
}

func (r *redisTokenBlacklist) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := r.redisClient.Set(ctx, "blacklist:"+token, "true", ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (r *redisTokenBlacklist) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := r.redisClient.Exists(ctx, "blacklist:"+token).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token blacklist: %w", err)
	}
	return n > 0, nil
}

type memoryTokenBlacklist struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

// NewMemoryTokenBlacklist 创建进程内的 token 黑名单，Redis 未启用时使用。
func NewMemoryTokenBlacklist() TokenBlacklistRepository {
	return &memoryTokenBlacklist{revoked: make(map[string]time.Time), now: time.Now}
}

func (r *memoryTokenBlacklist) Revoke(_ context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	for t, exp := range r.revoked {
		if !exp.After(now) {
			delete(r.revoked, t)
		}
	}
	r.revoked[token] = now.Add(ttl)
	return nil
}

func (r *memoryTokenBlacklist) IsRevoked(_ context.Context, token string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	exp, ok := r.revoked[token]
	return ok && exp.After(r.now()), nil
}
