package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"github.com/riskibarqy/jadwal-pertandingan/internal/platform/logging"
)

// RedisStore shares raw feed payloads between service replicas.
// Redis errors degrade to a direct load instead of failing the render.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	flight singleflight.Group
	logger *logging.Logger
}

func NewRedisStore(client *redis.Client, prefix string, ttl time.Duration, logger *logging.Logger) *RedisStore {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &RedisStore{
		client: client,
		prefix: prefix,
		ttl:    ttl,
		logger: logger,
	}
}

func (s *RedisStore) GetOrLoad(ctx context.Context, key string, loader Loader) ([]byte, error) {
	if loader == nil {
		return nil, fmt.Errorf("loader is required")
	}
	if key == "" {
		return loader(ctx)
	}

	fullKey := s.prefix + key
	cached, err := s.client.Get(ctx, fullKey).Bytes()
	switch {
	case err == nil:
		return cached, nil
	case !errors.Is(err, redis.Nil):
		s.logger.WarnContext(ctx, "redis cache read failed", "key", fullKey, "error", err)
	}

	return sharedLoad(ctx, &s.flight, fullKey, func(loadCtx context.Context) ([]byte, error) {
		loaded, loadErr := loader(loadCtx)
		if loadErr != nil {
			return nil, loadErr
		}
		if setErr := s.client.Set(loadCtx, fullKey, loaded, s.ttl).Err(); setErr != nil {
			s.logger.WarnContext(loadCtx, "redis cache write failed", "key", fullKey, "error", setErr)
		}
		return loaded, nil
	})
}
