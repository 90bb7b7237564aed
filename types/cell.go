package types

import "sync"

// cell is a write-once container: the first successful Set wins and every
// later Set silently no-ops. Overlapping writers never occur in a
// well-formed load order, so this is a structural safety net rather than
// a hot path.
type cell[T any] struct {
	mu    sync.Mutex
	value T
	set   bool
}

// Set stores v if the cell is still empty and reports whether it did.
func (c *cell[T]) Set(v T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.set {
		return false
	}
	c.value = v
	c.set = true
	return true
}

// Get returns the stored value and whether one was ever set.
func (c *cell[T]) Get() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value, c.set
}
