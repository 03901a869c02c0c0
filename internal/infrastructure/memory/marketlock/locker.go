package marketlock

import (
	"context"
	"sync"
)

// Locker is an in-process market lock for single-instance deployments and
// tests. Multi-instance deployments need the Redis-backed locker.
type Locker struct {
	mu   sync.Mutex
	held map[string]bool
}

// NewLocker creates an in-memory market locker.
func NewLocker() *Locker {
	return &Locker{
		held: make(map[string]bool),
	}
}

// TryLock attempts a non-blocking acquisition.
func (l *Locker) TryLock(_ context.Context, marketID string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.held[marketID] {
		return false, nil
	}
	l.held[marketID] = true
	return true, nil
}

// Unlock releases the lock.
func (l *Locker) Unlock(_ context.Context, marketID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.held, marketID)
	return nil
}
