package v1

import (
	"context"
)

//go:generate mockgen -source=interface.go -destination=mock/locker_mock.go -package=mock

// MarketLocker is the exclusive per-market settlement lock. TryLock never
// blocks: contention is reported as acquired == false and the caller skips
// its pass, relying on the periodic timer to retry.
type MarketLocker interface {
	TryLock(ctx context.Context, marketID string) (acquired bool, err error)
	Unlock(ctx context.Context, marketID string) error
}
