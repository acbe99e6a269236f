package battlelog

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/critter-arena/internal/entities"
	"github.com/KirkDiggler/critter-arena/internal/errors"
	redisclient "github.com/KirkDiggler/critter-arena/internal/redis"
)

const battleLogKeyPrefix = "battle_log:"

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis battle log
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a Redis-backed battle log. Each user has one capped list
// that expires TTL after the last battle.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

func battleLogKey(userID string) string {
	return battleLogKeyPrefix + userID
}

func (r *redisRepository) Append(ctx context.Context, input AppendInput) (*AppendOutput, error) {
	if input.Outcome == nil {
		return nil, errors.InvalidArgument("outcome cannot be nil")
	}
	if input.Outcome.UserID == "" {
		return nil, errors.InvalidArgument("user ID cannot be empty")
	}

	data, err := json.Marshal(input.Outcome)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal battle outcome")
	}

	key := battleLogKey(input.Outcome.UserID)
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, key, data)
		pipe.LTrim(ctx, key, 0, MaxEntries-1)
		pipe.Expire(ctx, key, TTL)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to append battle outcome")
	}

	return &AppendOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument("user ID cannot be empty")
	}

	limit := input.Limit
	if limit <= 0 || limit > MaxEntries {
		limit = MaxEntries
	}

	raw, err := r.client.LRange(ctx, battleLogKey(input.UserID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list battles")
	}

	outcomes := make([]*entities.BattleOutcome, 0, len(raw))
	for _, item := range raw {
		var o entities.BattleOutcome
		if err := json.Unmarshal([]byte(item), &o); err != nil {
			// skip entries written by an older format
			slog.WarnContext(ctx, "dropping unreadable battle log entry",
				"user_id", input.UserID,
				"error", err)
			continue
		}
		outcomes = append(outcomes, &o)
	}

	return &ListOutput{Outcomes: outcomes}, nil
}
