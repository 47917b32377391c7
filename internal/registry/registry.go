// filepath: internal/registry/registry.go
// Package registry provides the in-memory, lock-guarded entity registries
// backing the catalog. Each registry owns its entries: values are cloned
// on the way in and on the way out, so callers never share memory with
// registry state.
package registry

import (
	"fmt"
	"sync"

	"reelhub/internal/logging"
	"reelhub/internal/shared"
)

// Entity is the contract an entry type must satisfy to live in a
// Registry. Identity 0 means "not yet saved".
type Entity[T any] interface {
	EntityID() int64
	SetEntityID(int64)
	Clone() T
}

// Registry is a lock-guarded list of entities with sequential identity
// assignment. Readers may run concurrently; writers are exclusive.
// There are no cross-registry transactions.
type Registry[T Entity[T]] struct {
	name   string
	mu     sync.RWMutex
	items  []T
	nextID int64
}

// New creates an empty registry. The name is only used in log output.
func New[T Entity[T]](name string) *Registry[T] {
	return &Registry[T]{name: name}
}

// Save stores an entity. If its identity is unset (0) it is assigned the
// next sequential identity and appended; the assigned identity is also
// written back to the passed entity. If the identity is set, the entry
// with the matching identity is replaced, or ErrNotFound is returned.
// Identity is immutable once assigned.
func (r *Registry[T]) Save(item T) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id := item.EntityID(); id != 0 {
		for i := range r.items {
			if r.items[i].EntityID() == id {
				r.items[i] = item.Clone()
				logging.Log.Debugf("registry %s: replaced entity %d", r.name, id)
				return id, nil
			}
		}
		return 0, fmt.Errorf("%w: %s entity %d", shared.ErrNotFound, r.name, id)
	}

	r.nextID++
	item.SetEntityID(r.nextID)
	r.items = append(r.items, item.Clone())
	logging.Log.Debugf("registry %s: assigned identity %d", r.name, r.nextID)
	return r.nextID, nil
}

// FindByID returns a copy of the entity with the given identity.
func (r *Registry[T]) FindByID(id int64) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.items {
		if r.items[i].EntityID() == id {
			return r.items[i].Clone(), nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: %s entity %d", shared.ErrNotFound, r.name, id)
}

// All returns a defensive snapshot of the registry contents in
// insertion order.
func (r *Registry[T]) All() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]T, len(r.items))
	for i := range r.items {
		out[i] = r.items[i].Clone()
	}
	return out
}

// Delete removes the entity with the given identity. It returns
// ErrNotFound for a missing identity so callers can distinguish a
// removal from a no-op.
func (r *Registry[T]) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].EntityID() == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			logging.Log.Debugf("registry %s: deleted entity %d", r.name, id)
			return nil
		}
	}
	return fmt.Errorf("%w: %s entity %d", shared.ErrNotFound, r.name, id)
}

// Len returns the number of stored entities.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
