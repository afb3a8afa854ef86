// Package sync_lock_driver holds a Redis lease that serializes sync runs across replicas.
package sync_lock_driver

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the key only while it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type RedisLockDriver struct {
	client *redis.Client
	key    string
	ttl    time.Duration
	token  string
}

// NewRedisLockDriverWithURL creates a lock driver from a redis:// URL.
func NewRedisLockDriverWithURL(url, key string, ttl time.Duration) (*RedisLockDriver, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return NewRedisLockDriver(redis.NewClient(opts), key, ttl), nil
}

func NewRedisLockDriver(client *redis.Client, key string, ttl time.Duration) *RedisLockDriver {
	return &RedisLockDriver{
		client: client,
		key:    key,
		ttl:    ttl,
		token:  uuid.NewString(),
	}
}

// Acquire sets the key if absent. It returns false when another holder owns it.
func (d *RedisLockDriver) Acquire(ctx context.Context) (bool, error) {
	ok, err := d.client.SetNX(ctx, d.key, d.token, d.ttl).Result()
	if err != nil {
		return false, err
	}
	return ok, nil
}

// Release drops the lock if this driver still owns it.
func (d *RedisLockDriver) Release(ctx context.Context) error {
	err := releaseScript.Run(ctx, d.client, []string{d.key}, d.token).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	return nil
}

func (d *RedisLockDriver) Close() error {
	return d.client.Close()
}
