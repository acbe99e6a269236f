// Package config loads server settings from the environment and .env files
package config

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/critter-arena/internal/errors"
)

// Profile stores
const (
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

// Redis connection modes
const (
	RedisModeSingle   = "single"
	RedisModeCluster  = "cluster"
	RedisModeFailover = "failover"
)

// Config holds everything the server needs at startup
type Config struct {
	Port int `env:"CRITTER_ARENA_PORT" envDefault:"50051"`

	Store      string `env:"CRITTER_ARENA_STORE"       envDefault:"redis"`
	SQLitePath string `env:"CRITTER_ARENA_SQLITE_PATH" envDefault:"critter-arena.db"`

	RedisMode       string   `env:"CRITTER_ARENA_REDIS_MODE"        envDefault:"single"`
	RedisAddrs      []string `env:"CRITTER_ARENA_REDIS_ADDRS"       envDefault:"localhost:6379" envSeparator:","`
	RedisMasterName string   `env:"CRITTER_ARENA_REDIS_MASTER_NAME"`
	RedisPoolSize   int      `env:"CRITTER_ARENA_REDIS_POOL_SIZE"   envDefault:"10"`
	RedisTLS        bool     `env:"CRITTER_ARENA_REDIS_TLS"`

	// BattleLog keeps recent battles in Redis; ignored for other stores
	BattleLog bool `env:"CRITTER_ARENA_BATTLE_LOG" envDefault:"true"`

	LogLevel  string `env:"CRITTER_ARENA_LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"CRITTER_ARENA_LOG_FORMAT" envDefault:"text"`
}

// Load reads the given .env files, if present, and then the environment.
// Variables already set in the environment win over .env values.
func Load(envFiles ...string) (*Config, error) {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, "failed to load %s", file)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values and combinations
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Port <= 0 || c.Port > 65535 {
		vb.Field("Port", fmt.Sprintf("must be between 1 and 65535, got %d", c.Port))
	}

	switch c.Store {
	case StoreRedis:
		c.validateRedis(vb)
	case StoreSQLite:
		if strings.TrimSpace(c.SQLitePath) == "" {
			vb.RequiredField("SQLitePath")
		}
	case StoreMemory:
	default:
		vb.Field("Store", fmt.Sprintf("unknown store %q", c.Store))
	}

	if _, ok := parseLevel(c.LogLevel); !ok {
		vb.Field("LogLevel", fmt.Sprintf("unknown level %q", c.LogLevel))
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		vb.Field("LogFormat", fmt.Sprintf("must be text or json, got %q", c.LogFormat))
	}

	return vb.Build()
}

func (c *Config) validateRedis(vb *errors.ValidationBuilder) {
	if len(c.RedisAddrs) == 0 {
		vb.RequiredField("RedisAddrs")
	}
	switch c.RedisMode {
	case RedisModeSingle:
		if len(c.RedisAddrs) > 1 {
			vb.Field("RedisAddrs", "single mode takes exactly one address")
		}
	case RedisModeCluster:
	case RedisModeFailover:
		if c.RedisMasterName == "" {
			vb.RequiredField("RedisMasterName")
		}
	default:
		vb.Field("RedisMode", fmt.Sprintf("unknown mode %q", c.RedisMode))
	}
}

// NewLogger builds the slog logger described by LogLevel and LogFormat
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level, _ := parseLevel(c.LogLevel)
	opts := &slog.HandlerOptions{Level: level}

	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) (slog.Level, bool) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, false
	}
	return level, true
}
