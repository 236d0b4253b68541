package memory

import "sync"

// Collection is an ordered, append-biased set of identity-bearing records.
// Ids come from a monotonic counter starting at 1 and are never reused,
// even after the most recently created record is deleted. Uniqueness
// therefore holds across the full history of the collection, not just
// among currently present records.
type Collection[T any] struct {
	mu      sync.RWMutex
	entries []entry[T]
	lastID  int64
}

type entry[T any] struct {
	id    int64
	value T
}

// NewCollection creates an empty collection
func NewCollection[T any]() *Collection[T] {
	return &Collection[T]{}
}

// Insert assigns the next id, builds the record with it and appends it.
// The build callback runs under the collection lock and must not call back
// into the collection.
func (c *Collection[T]) Insert(build func(id int64) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lastID++
	v := build(c.lastID)
	c.entries = append(c.entries, entry[T]{id: c.lastID, value: v})
	return v
}

// Get returns the record with the given id
func (c *Collection[T]) Get(id int64) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, e := range c.entries {
		if e.id == id {
			return e.value, true
		}
	}
	var zero T
	return zero, false
}

// List returns a snapshot of the records matching pred, in insertion order.
// A nil pred matches every record.
func (c *Collection[T]) List(pred func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]T, 0, len(c.entries))
	for _, e := range c.entries {
		if pred == nil || pred(e.value) {
			result = append(result, e.value)
		}
	}
	return result
}

// Replace overwrites the record with the given id, preserving its position.
// Returns false if no record has that id.
func (c *Collection[T]) Replace(id int64, v T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, e := range c.entries {
		if e.id == id {
			c.entries[i].value = v
			return true
		}
	}
	return false
}

// Delete removes the record with the given id.
// Deleting an absent id is a no-op, never an error.
func (c *Collection[T]) Delete(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, e := range c.entries {
		if e.id == id {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			return
		}
	}
}

// Len returns the number of records currently held
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
