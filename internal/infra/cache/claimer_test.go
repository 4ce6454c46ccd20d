package cache

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"testing"
	"time"

	"tracenfind/config"
	"tracenfind/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestMemoryClaimer_OneWinnerPerWindow(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	claimer := NewMemoryClaimer().(*memoryClaimer)
	claimer.now = func() time.Time { return now }

	ok, err := claimer.Claim(ctx, "u1:sig", 10*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = claimer.Claim(ctx, "u1:sig", 10*time.Second)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = claimer.Claim(ctx, "u2:sig", 10*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)

	now = now.Add(10 * time.Second)
	ok, err = claimer.Claim(ctx, "u1:sig", 10*time.Second)
	require.NoError(t, err)
	assert.True(t, ok, "claim expires after ttl")
	assert.Len(t, claimer.expires, 1)
}

func TestNewSignatureClaimer_Providers(t *testing.T) {
	newParams := func(claim *config.ClaimConfig, rds *config.RedisConfig) ClaimerParams {
		return ClaimerParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{Claim: claim, Redis: rds},
			Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		}
	}

	claimer, err := NewSignatureClaimer(newParams(nil, nil))
	require.NoError(t, err)
	assert.Nil(t, claimer)

	claimer, err = NewSignatureClaimer(newParams(&config.ClaimConfig{Provider: constants.ClaimProviderMemory}, nil))
	require.NoError(t, err)
	assert.NotNil(t, claimer)

	_, err = NewSignatureClaimer(newParams(&config.ClaimConfig{Provider: constants.ClaimProviderRedis}, nil))
	assert.Error(t, err)

	_, err = NewSignatureClaimer(newParams(&config.ClaimConfig{Provider: "etcd"}, nil))
	assert.Error(t, err)
}

// TestRedisClaimer runs against a real server when REDIS_ADDR is set.
func TestRedisClaimer(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	ctx := context.Background()
	client, err := NewRedisClient(ctx, &config.RedisConfig{Addr: addr})
	require.NoError(t, err)
	defer client.Close()

	prefix := "tracenfind:test:" + strconv.FormatInt(time.Now().UnixNano(), 10) + ":"
	claimer := NewRedisClaimer(client, prefix)

	ok, err := claimer.Claim(ctx, "sig", time.Second)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = claimer.Claim(ctx, "sig", time.Second)
	require.NoError(t, err)
	assert.False(t, ok)

	ttl, err := client.PTTL(ctx, prefix+"sig").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

}
