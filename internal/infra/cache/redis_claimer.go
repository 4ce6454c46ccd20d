package cache

import (
	"context"
	"time"

	"tracenfind/config"
	"tracenfind/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "tracenfind:signature:"

// redisClaimer claims keys across processes with SET NX PX.
type redisClaimer struct {
	client    redis.UniversalClient
	keyPrefix string
}

// NewRedisClient connects and pings the configured redis.
func NewRedisClient(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	if cfg == nil || cfg.Addr == "" {
		return nil, errors.New("redis address is required for the redis claim provider")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()

		return nil, errors.Wrap(err, "failed to connect to redis")
	}

	return client, nil
}

// NewRedisClaimer wraps an existing client.
func NewRedisClaimer(client redis.UniversalClient, keyPrefix string) service.SignatureClaimer {
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}

	return &redisClaimer{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

func (c *redisClaimer) Claim(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := c.client.SetNX(ctx, c.keyPrefix+key, "1", ttl).Result()
	if err != nil {
		return false, errors.Wrap(err, "failed to claim signature")
	}

	return ok, nil
}
