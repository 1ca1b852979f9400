package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/micromouse/internal/config"
	"github.com/aretw0/micromouse/pkg/adapters/file"
	"github.com/aretw0/micromouse/pkg/adapters/memory"
	"github.com/aretw0/micromouse/pkg/adapters/redis"
	"github.com/aretw0/micromouse/pkg/persistence/middleware"
	"github.com/aretw0/micromouse/pkg/ports"
)

// redisTimeout bounds each redis call so a dead server fails the run quickly.
const redisTimeout = 2 * time.Second

// OpenStore builds the run store selected by cfg. The returned func releases it.
func OpenStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (ports.RunStore, func() error, error) {
	noop := func() error { return nil }
	mws := []middleware.Middleware{middleware.NewThrottleMiddleware(cfg.StoreEvery)}

	switch cfg.Store {
	case config.StoreMemory:
		return middleware.Chain(memory.NewStore(), mws...), noop, nil

	case config.StoreFile:
		store := file.New(cfg.StorePath)
		logger.Debug("file store", "path", store.BasePath)
		return middleware.Chain(store, mws...), noop, nil

	case config.StoreRedis:
		store := redis.New(cfg.RedisAddr, "", 0,
			redis.WithPrefix(cfg.RedisPrefix),
			redis.WithTTL(cfg.RedisTTL),
		)
		pingCtx, cancel := context.WithTimeout(ctx, redisTimeout)
		defer cancel()
		if err := store.Ping(pingCtx); err != nil {
			_ = store.Close()
			return nil, noop, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
		}
		logger.Debug("redis store", "addr", cfg.RedisAddr)
		mws = append(mws, middleware.NewTimeoutMiddleware(redisTimeout))
		return middleware.Chain(store, mws...), store.Close, nil
	}
	return nil, noop, fmt.Errorf("unknown store %q", cfg.Store)
}
