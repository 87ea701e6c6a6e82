package concurrency

import (
	"sync"
)

// LockManager handles named locks. Keys are built with Key so that
// unrelated resources of the same game never share a mutex.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// Key joins a resource kind and its name, e.g. Key("ledger", "hsr")
func Key(kind string, parts ...string) string {
	key := kind
	for _, p := range parts {
		key += ":" + p
	}
	return key
}

// GetLock returns a mutex for the given key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// WithLock runs fn while holding the named lock
func (lm *LockManager) WithLock(key string, fn func() error) error {
	mu := lm.GetLock(key)
	mu.Lock()
	defer mu.Unlock()
	return fn()
}

// TryWithLock runs fn only if the named lock is free. It reports whether fn ran.
func (lm *LockManager) TryWithLock(key string, fn func() error) (bool, error) {
	mu := lm.GetLock(key)
	if !mu.TryLock() {
		return false, nil
	}
	defer mu.Unlock()
	return true, fn()
}
