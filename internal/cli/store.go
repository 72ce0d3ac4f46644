package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/cmdassist/internal/config"
	"github.com/aretw0/cmdassist/pkg/adapters/memory"
	"github.com/aretw0/cmdassist/pkg/adapters/redis"
	"github.com/aretw0/cmdassist/pkg/session"
)

const redisPingTimeout = 3 * time.Second

// openSessions builds the session manager for the configured store.
// The returned close func releases the backend connection.
func openSessions(ctx context.Context, cfg config.Config, logger *slog.Logger) (*session.Manager, func() error, error) {
	switch cfg.Session.Store {
	case "redis":
		store := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
			redis.WithTTL(cfg.Session.TTL),
			redis.WithPrefix(cfg.Redis.Prefix),
		)

		pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
		defer cancel()
		if err := store.Ping(pingCtx); err != nil {
			_ = store.Close()
			return nil, nil, fmt.Errorf("redis unreachable at %s: %w", cfg.Redis.Addr, err)
		}

		logger.Info("Session store ready", "store", "redis", "addr", cfg.Redis.Addr, "ttl", cfg.Session.TTL)
		m := session.NewManager(store,
			session.WithLocker(redis.NewLocker(store.Client(), cfg.Redis.Prefix)),
			session.WithLogger(logger),
		)
		return m, store.Close, nil

	case "memory", "":
		logger.Info("Session store ready", "store", "memory", "ttl", cfg.Session.TTL)
		m := session.NewManager(memory.NewStore(memory.WithTTL(cfg.Session.TTL)), session.WithLogger(logger))
		return m, func() error { return nil }, nil
	}
	return nil, nil, fmt.Errorf("unknown session store %q", cfg.Session.Store)
}
