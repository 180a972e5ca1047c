// Package repository 提供了数据访问层的实现。
package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"amassah-lodge-go/internal/chatbot"

	"github.com/go-redis/redis/v8"
)

// TranscriptRepository 为每位访客提供一个独立的键值空间，用来保存聊天记录。
type TranscriptRepository interface {
	ForVisitor(visitorID string) chatbot.Store
}

type redisTranscriptRepository struct {
	redisClient *redis.Client
	ttl         time.Duration
}

// NewRedisTranscriptRepository 创建基于 Redis 的 TranscriptRepository。
// 键的格式为 visitor:{visitorID}:{key}，每次写入都会刷新过期时间。
func NewRedisTranscriptRepository(redisClient *redis.Client, ttl time.Duration) TranscriptRepository {
	return &redisTranscriptRepository{redisClient: redisClient, ttl: ttl}
}

func (r *redisTranscriptRepository) ForVisitor(visitorID string) chatbot.Store {
	return &redisVisitorStore{redisClient: r.redisClient, ttl: r.ttl, visitorID: visitorID}
}

type redisVisitorStore struct {
	redisClient *redis.Client
	ttl         time.Duration
	visitorID   string
}

func (s *redisVisitorStore) key(key string) string {
	return fmt.Sprintf("visitor:%s:%s", s.visitorID, key)
}

func (s *redisVisitorStore) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.redisClient.Get(ctx, s.key(key)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get %s: %w", s.key(key), err)
	}
	return val, true, nil
}

func (s *redisVisitorStore) Set(ctx context.Context, key, value string) error {
	if err := s.redisClient.Set(ctx, s.key(key), value, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", s.key(key), err)
	}
	return nil
}

func (s *redisVisitorStore) Remove(ctx context.Context, key string) error {
	if err := s.redisClient.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete %s: %w", s.key(key), err)
	}
	return nil
}

type memoryTranscriptRepository struct {
	mu   sync.Mutex
	data map[string]map[string]string
}

// NewMemoryTranscriptRepository 创建进程内的 TranscriptRepository，Redis 未启用时使用。
func NewMemoryTranscriptRepository() TranscriptRepository {
	return &memoryTranscriptRepository{data: make(map[string]map[string]string)}
}

func (r *memoryTranscriptRepository) ForVisitor(visitorID string) chatbot.Store {
	return &memoryVisitorStore{repo: r, visitorID: visitorID}
}

type memoryVisitorStore struct {
	repo      *memoryTranscriptRepository
	visitorID string
}

func (s *memoryVisitorStore) Get(_ context.Context, key string) (string, bool, error) {
	s.repo.mu.Lock()
	defer s.repo.mu.Unlock()
	val, ok := s.repo.data[s.visitorID][key]
	return val, ok, nil
}

func (s *memoryVisitorStore) Set(_ context.Context, key, value string) error {
	s.repo.mu.Lock()
	defer s.repo.mu.Unlock()
	ns, ok := s.repo.data[s.visitorID]
	if !ok {
		ns = make(map[string]string)
		s.repo.data[s.visitorID] = ns
	}
	ns[key] = value
	return nil
}

func (s *memoryVisitorStore) Remove(_ context.Context, key string) error {
	s.repo.mu.Lock()
	defer s.repo.mu.Unlock()
	delete(s.repo.data[s.visitorID], key)
	return nil
}
