package save

import (
	"context"
	"fmt"

	"github.com/ratel-online/rummy/config"
)

// Open builds the store selected by save.backend. The returned close func is never nil.
func Open(ctx context.Context, cfg config.Config) (Store, func() error, error) {
	switch cfg.Save.Backend {
	case config.BackendFile:
		return NewFileStore(cfg.Save.Path), noClose, nil
	case config.BackendMemory:
		return NewMemoryStore(cfg.Save.Key), noClose, nil
	case config.BackendRedis:
		store := NewRedisStore(RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			TTL:      cfg.Redis.TTL,
		})
		if err := store.Ping(ctx); err != nil {
			_ = store.Close()
			return nil, noClose, fmt.Errorf("redis %s: %w", cfg.Redis.Addr, err)
		}
		return store, store.Close, nil
	default:
		return nil, noClose, fmt.Errorf("unknown save backend '%s'", cfg.Save.Backend)
	}
}

func noClose() error {
	return nil
}
