package hashing

import "sync"

// ThreadSafePositionTable wraps PositionTable with mutex protection for
// concurrent access.
type ThreadSafePositionTable struct {
	table *PositionTable
	mu    sync.RWMutex
}

// NewThreadSafePositionTable creates an empty thread-safe table.
func NewThreadSafePositionTable() *ThreadSafePositionTable {
	return &ThreadSafePositionTable{
		table: NewPositionTable(),
	}
}

// Add atomically records the position and returns its new count.
func (t *ThreadSafePositionTable) Add(position string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Add(position)
}

// Count returns how many times the position has been recorded.
func (t *ThreadSafePositionTable) Count(position string) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.Count(position)
}

// UniqueCount returns the number of distinct positions.
func (t *ThreadSafePositionTable) UniqueCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.UniqueCount()
}

// Total returns the number of recorded occurrences.
func (t *ThreadSafePositionTable) Total() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.Total()
}

