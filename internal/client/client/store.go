package client

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/moodkeeper/internal/client/config"
	"github.com/dmitrijs2005/moodkeeper/internal/client/repositories/kv"
	"github.com/redis/go-redis/v9"
)

const redisPingTimeout = 5 * time.Second

// OpenStore builds the storage backend selected by cfg.Backend. The returned
// close function releases the backend and must be called once.
func OpenStore(ctx context.Context, cfg *config.Config) (kv.Store, func() error, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return kv.NewMemoryStore(), func() error { return nil }, nil

	case config.BackendSQLite:
		db, err := InitDatabase(ctx, cfg.DatabasePath)
		if err != nil {
			return nil, nil, fmt.Errorf("sqlite init: %w", err)
		}
		return kv.NewSQLiteStore(db), db.Close, nil

	case config.BackendRedis:
		rc := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, DB: cfg.RedisDB})

		pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
		defer cancel()
		if err := rc.Ping(pingCtx).Err(); err != nil {
			_ = rc.Close()
			return nil, nil, fmt.Errorf("%w: redis ping %s: %v", ErrUnavailable, cfg.RedisAddr, err)
		}
		return kv.NewRedisStore(rc, cfg.RedisKeyPrefix), rc.Close, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
