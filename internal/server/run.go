package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/thenoetrevino/kanban/internal/backend"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/database"
)

// Run opens the configured SQLite store, fronts it with the Redis snapshot
// cache when server.redis_url is set, and serves until ctx is cancelled
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	if cfg.Backend.Kind == config.BackendHTTP {
		return fmt.Errorf("the server needs a local store; backend.kind is %q", cfg.Backend.Kind)
	}

	db, err := database.InitDB(ctx, cfg.Backend.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("error closing db", "error", err)
		}
	}()

	metrics := NewMetrics()
	var store backend.Store = database.NewRepository(db)

	if cfg.Server.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.Server.RedisURL)
		if err != nil {
			return fmt.Errorf("invalid redis url: %w", err)
		}
		client := redis.NewClient(opts)
		defer func() { _ = client.Close() }()

		// An unreachable cache only costs hits, so keep serving
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Warn("redis unreachable, serving uncached until it recovers", "error", err)
		}
		store = NewCache(database.NewRepository(db), client, cfg.Server.CacheTTL, metrics, logger)
		logger.Info("snapshot cache enabled", "ttl", cfg.Server.CacheTTL)
	}

	return New(cfg.Server.Addr, store, metrics, logger).Start(ctx)
}
