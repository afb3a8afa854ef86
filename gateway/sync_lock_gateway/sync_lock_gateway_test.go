package sync_lock_gateway

import (
	"context"
	"testing"
	"time"

	"rss-reader/driver/sync_lock_driver"
	"rss-reader/port/sync_lock_port"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ sync_lock_port.SyncLockPort = (*SyncLockGateway)(nil)

func TestSyncLockGateway_WithoutDriver(t *testing.T) {
	gateway := NewSyncLockGateway(nil)

	ok, err := gateway.Acquire(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, gateway.Release(context.Background()))
}

func TestSyncLockGateway_WithRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	first := NewSyncLockGateway(sync_lock_driver.NewRedisLockDriver(client, "lock", time.Minute))
	second := NewSyncLockGateway(sync_lock_driver.NewRedisLockDriver(client, "lock", time.Minute))

	ok, err := first.Acquire(context.Background())
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = second.Acquire(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}
