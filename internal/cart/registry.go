package cart

import (
	"sync"
	"time"
)

// Registry maps session tokens to their cart store and expires idle
// sessions. Carts are ephemeral, in-memory, per-session state; nothing
// survives a process restart and nothing is shared between sessions.
type Registry struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]*registryEntry
	now     func() time.Time
}

type registryEntry struct {
	store     *Store
	expiresAt time.Time
}

// NewRegistry creates a registry whose sessions expire after ttl of
// inactivity.
func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		ttl:     ttl,
		entries: map[string]*registryEntry{},
		now:     time.Now,
	}
}

// Get returns the cart for the session token, creating it when absent.
// Every access renews the session TTL.
func (r *Registry) Get(token string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sweepLocked()

	entry, ok := r.entries[token]
	if !ok {
		entry = &registryEntry{store: NewStore()}
		r.entries[token] = entry
	}
	entry.expiresAt = r.now().Add(r.ttl)
	return entry.store
}

// Dispose drops the session's cart immediately.
func (r *Registry) Dispose(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, token)
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sweepLocked()
	return len(r.entries)
}

func (r *Registry) sweepLocked() {
	now := r.now()
	for token, entry := range r.entries {
		if now.After(entry.expiresAt) {
			delete(r.entries, token)
		}
	}
}
