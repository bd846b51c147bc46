package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

const DefaultKeyPrefix = "boletin:page:"

type Page struct {
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

type PageStore interface {
	Get(ctx context.Context, key string) (Page, bool)
	Set(ctx context.Context, key string, page Page)
}

type MemoryPageStore struct {
	cache *gocache.Cache
}

func NewMemoryPageStore(ttl time.Duration) *MemoryPageStore {
	return &MemoryPageStore{cache: gocache.New(ttl, ttl*2)}
}

func (s *MemoryPageStore) Get(_ context.Context, key string) (Page, bool) {
	cached, found := s.cache.Get(key)
	if !found {
		return Page{}, false
	}

	page, ok := cached.(Page)
	return page, ok
}

func (s *MemoryPageStore) Set(_ context.Context, key string, page Page) {
	s.cache.Set(key, page, gocache.DefaultExpiration)
}

func (s *MemoryPageStore) Flush() {
	s.cache.Flush()
}

// RedisPageStore shares rendered pages between server instances. Redis
// failures degrade to cache misses.
type RedisPageStore struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

func NewRedisPageStore(client *redis.Client, ttl time.Duration, prefix string) *RedisPageStore {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &RedisPageStore{client: client, ttl: ttl, prefix: prefix}
}

func (s *RedisPageStore) Get(ctx context.Context, key string) (Page, bool) {
	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return Page{}, false
	}

	if err != nil {
		slog.Warn("error reading page cache", "key", key, "error", err)
		return Page{}, false
	}

	var page Page
	if err := json.Unmarshal(data, &page); err != nil {
		slog.Warn("discarding corrupt page cache entry", "key", key, "error", err)
		return Page{}, false
	}

	return page, true
}

func (s *RedisPageStore) Set(ctx context.Context, key string, page Page) {
	data, err := json.Marshal(page)
	if err != nil {
		slog.Warn("error encoding page cache entry", "key", key, "error", err)
		return
	}

	if err := s.client.Set(ctx, s.prefix+key, data, s.ttl).Err(); err != nil {
		slog.Warn("error writing page cache", "key", key, "error", err)
	}
}
