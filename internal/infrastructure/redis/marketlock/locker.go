package marketlock

import (
	"context"
	"time"

	"github.com/memespace/market-engine/pkg/errors"
	"github.com/memespace/market-engine/pkg/logger"
	"github.com/memespace/market-engine/pkg/redis"
)

// Locker is the Redis-backed settlement lock: SET NX with a TTL keyed by
// market id, so the lock survives process restarts and is shared across
// worker instances. The TTL bounds how long a crashed holder can block a
// market.
type Locker struct {
	client redis.Client
	logger logger.Interface
	prefix string
	ttl    time.Duration
}

// NewLocker creates a Redis-backed market locker.
func NewLocker(client redis.Client, logger logger.Interface, prefix string, ttl time.Duration) *Locker {
	return &Locker{
		client: client,
		logger: logger,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (l *Locker) key(marketID string) string {
	return l.prefix + "settlement_lock:" + marketID
}

// TryLock attempts a non-blocking acquisition; false means another pass
// holds the lock and the caller should skip.
func (l *Locker) TryLock(ctx context.Context, marketID string) (bool, error) {
	acquired, err := l.client.SetNX(ctx, l.key(marketID), 1, l.ttl)
	if err != nil {
		return false, errors.NewErrorDetails("failed to acquire settlement lock", string(errors.LockAcquireError), "marketID")
	}
	return acquired, nil
}

// Unlock releases the lock. Safe to call when the TTL already expired.
func (l *Locker) Unlock(ctx context.Context, marketID string) error {
	if _, err := l.client.Del(ctx, l.key(marketID)); err != nil {
		return errors.NewErrorDetails("failed to release settlement lock", string(errors.LockReleaseError), "marketID")
	}
	return nil
}
