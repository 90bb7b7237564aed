package loader

import "sync"

// Table is the concurrent insert-many container for one metadata table.
// Rows are addressed by 1-based row id. Exactly one unit appends to a
// given table; other units read it only after that unit's level
// completed, which the level plan guarantees.
type Table[T any] struct {
	mu   sync.RWMutex
	rows []T
}

// NewTable creates an empty container with capacity for n rows.
func NewTable[T any](n int) *Table[T] {
	return &Table[T]{rows: make([]T, 0, n)}
}

// Append adds a row and returns its 1-based row id.
func (t *Table[T]) Append(row T) uint32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = append(t.rows, row)
	return uint32(len(t.rows))
}

// Get returns the row with the given 1-based row id.
func (t *Table[T]) Get(rid uint32) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if rid == 0 || int64(rid) > int64(len(t.rows)) {
		var zero T
		return zero, false
	}
	return t.rows[rid-1], true
}

// Len returns the number of rows.
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

// Rows returns a snapshot of all rows in row order.
func (t *Table[T]) Rows() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, len(t.rows))
	copy(out, t.rows)
	return out
}

// Cell is the write-once container used for singleton tables: the format
// guarantees at most one module and one assembly row, so the first
// successful Set wins and later writers no-op.
type Cell[T any] struct {
	mu    sync.Mutex
	value T
	set   bool
}

// Set stores v if the cell is still empty and reports whether it did.
func (c *Cell[T]) Set(v T) bool {
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
func (c *Cell[T]) Get() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value, c.set
}
