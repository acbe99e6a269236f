package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/KirkDiggler/critter-arena/internal/config"
	"github.com/KirkDiggler/critter-arena/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/critter-arena/internal/redis"
	battlelog "github.com/KirkDiggler/critter-arena/internal/repositories/battle_log"
	"github.com/KirkDiggler/critter-arena/internal/repositories/profile"
)

const redisPingTimeout = 5 * time.Second

// stores holds the repositories the server runs on
type stores struct {
	profiles  profile.Repository
	battleLog battlelog.Repository
	closers   []func() error
}

// Close releases every opened backend
func (s *stores) Close() {
	for _, closeFn := range s.closers {
		if err := closeFn(); err != nil {
			slog.Warn("failed to close store", "error", err)
		}
	}
}

func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	switch cfg.Store {
	case config.StoreMemory:
		slog.WarnContext(ctx, "using in-memory profile store, state is lost on restart")
		return &stores{profiles: profile.NewInMemory(clock.New())}, nil

	case config.StoreSQLite:
		repo, err := profile.NewSQLite(&profile.SQLiteConfig{Path: cfg.SQLitePath})
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		return &stores{profiles: repo, closers: []func() error{repo.Close}}, nil

	case config.StoreRedis:
		client, err := newRedisClient(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create redis client: %w", err)
		}
		st := &stores{closers: []func() error{client.Close}}

		if err := redisclient.Ping(ctx, client, redisPingTimeout); err != nil {
			st.Close()
			return nil, fmt.Errorf("failed to reach redis: %w", err)
		}

		st.profiles, err = profile.NewRedis(&profile.RedisConfig{Client: client})
		if err != nil {
			st.Close()
			return nil, fmt.Errorf("failed to create profile repository: %w", err)
		}

		if cfg.BattleLog {
			st.battleLog, err = battlelog.NewRedis(&battlelog.RedisConfig{Client: client})
			if err != nil {
				st.Close()
				return nil, fmt.Errorf("failed to create battle log repository: %w", err)
			}
		}
		return st, nil

	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}

func newRedisClient(cfg *config.Config) (redisclient.Client, error) {
	opts := &redisclient.Options{
		PoolSize: cfg.RedisPoolSize,
		UseTLS:   cfg.RedisTLS,
	}

	switch cfg.RedisMode {
	case config.RedisModeCluster:
		return redisclient.NewClusterClient(cfg.RedisAddrs, opts)
	case config.RedisModeFailover:
		return redisclient.NewFailoverClient(cfg.RedisMasterName, cfg.RedisAddrs, opts)
	default:
		if len(cfg.RedisAddrs) == 0 {
			return redisclient.NewClient("", opts)
		}
		return redisclient.NewClient(cfg.RedisAddrs[0], opts)
	}
}
