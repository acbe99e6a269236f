package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisclient "github.com/KirkDiggler/critter-arena/internal/redis"
)

func TestNewClientPing(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := redisclient.NewClient(mr.Addr(), &redisclient.Options{PoolSize: 2})
	require.NoError(t, err)
	defer func() {
		_ = client.Close()
	}()

	require.NoError(t, redisclient.Ping(context.Background(), client, time.Second))

	require.NoError(t, client.Set(context.Background(), "profile:user-1", "{}", 0).Err())
	assert.True(t, mr.Exists("profile:user-1"))
}

func TestPingUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	client, err := redisclient.NewClient(addr, nil)
	require.NoError(t, err)
	defer func() {
		_ = client.Close()
	}()

	assert.Error(t, redisclient.Ping(context.Background(), client, 200*time.Millisecond))
}

func TestConstructorValidation(t *testing.T) {
	_, err := redisclient.NewClient("", nil)
	assert.Error(t, err)

	_, err = redisclient.NewClusterClient(nil, nil)
	assert.Error(t, err)

	_, err = redisclient.NewFailoverClient("", []string{"localhost:26379"}, nil)
	assert.Error(t, err)

	_, err = redisclient.NewFailoverClient("primary", nil, nil)
	assert.Error(t, err)

	client, err := redisclient.NewClusterClient([]string{"localhost:7000"}, &redisclient.Options{UseTLS: true})
	require.NoError(t, err)
	assert.NoError(t, client.Close())
}
