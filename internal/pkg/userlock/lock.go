package userlock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/proxline/proxline/internal/pkg/constants"
	"github.com/proxline/proxline/internal/pkg/logger"
)

// ErrLockHeld is returned when another process already holds the lock.
var ErrLockHeld = errors.New("lock already held")

// releaseScript deletes the lock key only if it still carries our token,
// so an expired lock reacquired by someone else is never released by us.
const releaseScript = `
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`

// Locker provides per-user mutual exclusion backed by Redis.
// Balance-mutating operations for a given user must run under the
// user's lock so concurrent purchases and top-ups serialize.
type Locker struct {
	client   *redis.Client
	ttl      time.Duration
	batchTTL time.Duration
}

// Lock represents a held lock. Release it when the critical section ends.
type Lock struct {
	client *redis.Client
	key    string
	token  string
}

// New creates a Locker. ttl bounds per-user locks; batchTTL bounds
// named locks such as the prolongation run lock, which guard work that
// outlives a single user operation. A non-positive batchTTL falls back
// to ttl.
func New(client *redis.Client, ttl, batchTTL time.Duration) *Locker {
	if batchTTL <= 0 {
		batchTTL = ttl
	}
	return &Locker{client: client, ttl: ttl, batchTTL: batchTTL}
}

// AcquireUser takes the per-user lock, returning ErrLockHeld if another
// operation for the same user is in flight.
func (l *Locker) AcquireUser(ctx context.Context, userID uuid.UUID) (*Lock, error) {
	return l.acquire(ctx, fmt.Sprintf(constants.KeyUserLock, userID.String()), l.ttl)
}

// AcquireKey takes a lock on an arbitrary key, e.g. the prolongation
// batch run lock.
func (l *Locker) AcquireKey(ctx context.Context, key string) (*Lock, error) {
	return l.acquire(ctx, key, l.batchTTL)
}

func (l *Locker) acquire(ctx context.Context, key string, ttl time.Duration) (*Lock, error) {
	token := uuid.New().String()

	ok, err := l.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock %s: %w", key, err)
	}
	if !ok {
		return nil, ErrLockHeld
	}

	return &Lock{client: l.client, key: key, token: token}, nil
}

// WithLock runs fn under a named lock, releasing it afterwards.
func (l *Locker) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	lk, err := l.AcquireKey(ctx, key)
	if err != nil {
		return err
	}
	defer func() {
		if rerr := lk.Release(ctx); rerr != nil {
			logger.Warn("Failed to release lock",
				logger.String("key", key),
				logger.Err(rerr))
		}
	}()

	return fn(ctx)
}

// WithUserLock runs fn under the per-user lock, releasing it afterwards.
func (l *Locker) WithUserLock(ctx context.Context, userID uuid.UUID, fn func(ctx context.Context) error) error {
	lk, err := l.AcquireUser(ctx, userID)
	if err != nil {
		return err
	}
	defer func() {
		if rerr := lk.Release(ctx); rerr != nil {
			logger.Warn("Failed to release user lock",
				logger.String("user_id", userID.String()),
				logger.Err(rerr))
		}
	}()

	return fn(ctx)
}

// Release frees the lock if this holder still owns it.
func (lk *Lock) Release(ctx context.Context) error {
	if err := lk.client.Eval(ctx, releaseScript, []string{lk.key}, lk.token).Err(); err != nil {
		return fmt.Errorf("failed to release lock %s: %w", lk.key, err)
	}
	return nil
}
