// Package repository provides the in-memory keyed store used for every entity kind.
package repository

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

var (
	// ErrNotFound is returned when no entity has the requested id.
	ErrNotFound = errors.New("entity not found")
	// ErrDuplicateID is returned when an entity with the same id is already stored.
	ErrDuplicateID = errors.New("duplicate entity id")
	// ErrConflict is returned by AddUnique when a stored entity collides with the new one.
	ErrConflict = errors.New("conflicting entity exists")
)

// Entity is anything with a stable id and an update timestamp.
type Entity interface {
	ID() string
	Touch()
}

// Repository is a volatile, insertion-ordered store keyed by entity id.
// Its index is safe for concurrent use; the entities it holds are not
// locked and are guarded by the caller.
type Repository[T Entity] struct {
	mu    sync.RWMutex
	items map[string]T
	order []string
}

// New creates an empty repository.
func New[T Entity]() *Repository[T] {
	return &Repository[T]{items: make(map[string]T)}
}

// Add inserts e.
func (r *Repository[T]) Add(e T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.insert(e)
}

// AddUnique inserts e unless some stored entity satisfies conflicts.
// The check and the insert happen under one lock.
func (r *Repository[T]) AddUnique(e T, conflicts func(T) bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.order {
		if conflicts(r.items[id]) {
			return ErrConflict
		}
	}
	return r.insert(e)
}

func (r *Repository[T]) insert(e T) error {
	id := e.ID()
	if _, ok := r.items[id]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}
	r.items[id] = e
	r.order = append(r.order, id)
	return nil
}

// Get returns the entity with the given id.
func (r *Repository[T]) Get(id string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.items[id]
	return e, ok
}

// GetBy returns the first entity, in insertion order, that satisfies match.
func (r *Repository[T]) GetBy(match func(T) bool) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if e := r.items[id]; match(e) {
			return e, true
		}
	}
	var zero T
	return zero, false
}

// GetAll returns a snapshot of every entity in insertion order.
func (r *Repository[T]) GetAll() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]T, 0, len(r.order))
	for _, id := range r.order {
		all = append(all, r.items[id])
	}
	return all
}

// Filter returns every entity that satisfies match, in insertion order.
func (r *Repository[T]) Filter(match func(T) bool) []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []T
	for _, id := range r.order {
		if e := r.items[id]; match(e) {
			out = append(out, e)
		}
	}
	return out
}

// Update runs apply against the stored entity and touches it on success.
// apply is expected to validate before mutating.
func (r *Repository[T]) Update(id string, apply func(T) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.items[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err := apply(e); err != nil {
		return err
	}
	e.Touch()
	return nil
}

// Delete removes the entity with the given id.
func (r *Repository[T]) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	delete(r.items, id)
	r.order = slices.DeleteFunc(r.order, func(k string) bool { return k == id })
	return nil
}

// Len returns the number of stored entities.
func (r *Repository[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
