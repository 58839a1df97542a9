package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	lockKeyPrefix     = "lock:game:"
	lockRetryInterval = 20 * time.Millisecond
)

var ErrLockNotHeld = errors.New("lock is not held")

// UnlockFunc - releases a lock obtained from a Locker.
type UnlockFunc func(ctx context.Context) error

// Locker - serialises work on one game so an input is fully applied before the next.
type Locker interface {
	Lock(ctx context.Context, key string) (UnlockFunc, error)
}

// releaseScript deletes the key only while it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

type redisLocker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisLocker - locks shared by every instance using the same redis. ttl bounds
// how long a crashed holder can block the key.
func NewRedisLocker(client *redis.Client, ttl time.Duration) Locker {
	return &redisLocker{
		client: client,
		ttl:    ttl,
	}
}

func (that *redisLocker) Lock(ctx context.Context, key string) (UnlockFunc, error) {
	lockKey := lockKeyPrefix + key
	token := uuid.NewString()

	ticker := time.NewTicker(lockRetryInterval)
	defer ticker.Stop()

	for {
		acquired, err := that.client.SetNX(ctx, lockKey, token, that.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire lock %s: %w", key, err)
		}

		if acquired {
			return func(ctx context.Context) error {
				released, err := releaseScript.Run(ctx, that.client, []string{lockKey}, token).Int()
				if err != nil {
					return fmt.Errorf("failed to release lock %s: %w", key, err)
				}

				if released == 0 {
					return fmt.Errorf("%w: %s", ErrLockNotHeld, key)
				}

				return nil
			}, nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("waiting for lock %s: %w", key, ctx.Err())
		case <-ticker.C:
		}
	}
}

type memoryLock struct {
	slot chan struct{}
	refs int
}

type memoryLocker struct {
	mu    sync.Mutex
	locks map[string]*memoryLock
}

// NewMemoryLocker - locks for a single process.
func NewMemoryLocker() Locker {
	return &memoryLocker{
		locks: make(map[string]*memoryLock),
	}
}

func (that *memoryLocker) Lock(ctx context.Context, key string) (UnlockFunc, error) {
	that.mu.Lock()
	lock, ok := that.locks[key]
	if !ok {
		lock = &memoryLock{slot: make(chan struct{}, 1)}
		that.locks[key] = lock
	}
	lock.refs++
	that.mu.Unlock()

	select {
	case lock.slot <- struct{}{}:
	case <-ctx.Done():
		that.release(key, lock)
		return nil, fmt.Errorf("waiting for lock %s: %w", key, ctx.Err())
	}

	var once sync.Once

	return func(context.Context) error {
		err := fmt.Errorf("%w: %s", ErrLockNotHeld, key)

		once.Do(func() {
			<-lock.slot
			that.release(key, lock)
			err = nil
		})

		return err
	}, nil
}

func (that *memoryLocker) release(key string, lock *memoryLock) {
	that.mu.Lock()
	defer that.mu.Unlock()

	lock.refs--
	if lock.refs == 0 {
		delete(that.locks, key)
	}
}
