package profile

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/critter-arena/internal/entities"
	"github.com/KirkDiggler/critter-arena/internal/errors"
	"github.com/KirkDiggler/critter-arena/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/critter-arena/internal/redis"
)

// RedisKeyPrefix prefixes every profile key; the rest of the key is the user id
const RedisKeyPrefix = "profile:"

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis profile repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
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

// NewRedis creates a new Redis-backed profile repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func profileKey(userID string) string {
	return RedisKeyPrefix + userID
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}
	key := profileKey(input.UserID)

	p, err := r.load(ctx, key)
	if err == nil {
		return &GetOutput{Profile: p}, nil
	}
	if !errors.IsNotFound(err) {
		return nil, err
	}

	fresh := entities.NewProfile(input.UserID, r.clock.Now())
	data, err := json.Marshal(fresh)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal profile")
	}

	created, err := r.client.SetNX(ctx, key, data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create profile")
	}
	if !created {
		// another caller created it first
		p, err := r.load(ctx, key)
		if err != nil {
			return nil, err
		}
		return &GetOutput{Profile: p}, nil
	}

	slog.InfoContext(ctx, "created profile", "user_id", input.UserID)
	return &GetOutput{Profile: fresh, Created: true}, nil
}

func (r *redisRepository) load(ctx context.Context, key string) (*entities.Profile, error) {
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("profile %s not found", key)
		}
		return nil, errors.Wrapf(err, "failed to get profile")
	}
	return decode([]byte(result))
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}
	key := profileKey(input.Profile.UserID)

	next := prepare(input.Profile, r.clock)
	data, err := json.Marshal(next)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal profile")
	}

	txf := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				return errors.NotFoundf("profile %s not found", input.Profile.UserID)
			}
			return errors.Wrapf(err, "failed to get profile")
		}
		stored, err := decode([]byte(raw))
		if err != nil {
			return err
		}
		if stored.Version != input.Profile.Version {
			return errors.Abortedf(errVersionChanged, input.Profile.UserID, input.Profile.Version, stored.Version)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			return nil
		})
		return err
	}

	err = r.client.Watch(ctx, txf, key)
	switch {
	case err == nil:
	case err == redis.TxFailedErr:
		return nil, errors.Abortedf("profile %s was written concurrently", input.Profile.UserID)
	case errors.As(err, new(*errors.Error)):
		return nil, err
	default:
		return nil, errors.Wrapf(err, "failed to save profile")
	}

	return &SaveOutput{Profile: next}, nil
}

func decode(data []byte) (*entities.Profile, error) {
	var p entities.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal profile")
	}
	p.Normalize()
	return &p, nil
}

func validateSave(input SaveInput) error {
	if input.Profile == nil {
		return errors.InvalidArgument(errProfileNil)
	}
	if input.Profile.UserID == "" {
		return errors.InvalidArgument(errUserIDEmpty)
	}
	return nil
}

// prepare returns the copy that will be stored: next version, fresh timestamp
func prepare(p *entities.Profile, c clock.Clock) *entities.Profile {
	next := p.Clone()
	next.Version = p.Version + 1
	next.UpdatedAt = c.Now()
	return next
}
