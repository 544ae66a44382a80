package i18n

import "sync/atomic"

// OptimisticLock is a non-blocking binary lock. TryAcquire never waits:
// a caller that fails to acquire it is expected to drop its work, not to
// retry or queue it.
type OptimisticLock struct {
	held atomic.Bool
}

// TryAcquire acquires the lock if it is free.
func (l *OptimisticLock) TryAcquire() bool {
	return l.held.CompareAndSwap(false, true)
}

func (l *OptimisticLock) Release() {
	l.held.Store(false)
}

func (l *OptimisticLock) Held() bool {
	return l.held.Load()
}
