package lifecycle

import (
	"sync"

	"github.com/google/uuid"
)

// LockRegistry serializes transitions per application id so two
// concurrent requests can't both succeed against the same stale status.
// Only the state machine needs this; every other engine operation is
// read-only.
type LockRegistry struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

// NewLockRegistry creates an empty registry.
func NewLockRegistry() *LockRegistry {
	return &LockRegistry{locks: make(map[uuid.UUID]*entry)}
}

// Lock acquires the lock for id and returns the release function.
// Entries are reference-counted and removed once unused, so the map
// doesn't grow with every application ever transitioned.
func (r *LockRegistry) Lock(id uuid.UUID) (unlock func()) {
	r.mu.Lock()
	e, ok := r.locks[id]
	if !ok {
		e = &entry{}
		r.locks[id] = e
	}
	e.refs++
	r.mu.Unlock()

	e.mu.Lock()
	return func() {
		e.mu.Unlock()
		r.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(r.locks, id)
		}
		r.mu.Unlock()
	}
}
